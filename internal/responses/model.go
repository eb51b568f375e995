package responses

import (
	"errors"
	"time"

	"diagnostics-backend/internal/diagnostic"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Response is one completed diagnostic run with the user's answers.
type Response struct {
	ID          string              `json:"id"`
	SessionID   string              `json:"sessionId"`
	ToolName    string              `json:"toolName"`
	UserName    string              `json:"userName,omitempty"`
	UserEmail   string              `json:"userEmail,omitempty"`
	Answers     []diagnostic.Answer `json:"responses"`
	Score       int                 `json:"score"`
	CompletedAt time.Time           `json:"completedAt"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// SessionRecord is the durable trace of a diagnostic session, kept for
// completion-rate analytics independently of the ephemeral session state.
type SessionRecord struct {
	ID          string     `json:"id"`
	ToolName    string     `json:"toolName"`
	StartedAt   time.Time  `json:"startedAt"`
	Completed   bool       `json:"completed"`
	AbandonedAt *time.Time `json:"abandonedAt,omitempty"`
}

// QuestionStat aggregates Yes/No counts for one question.
type QuestionStat struct {
	QuestionID    string  `json:"questionId"`
	Question      string  `json:"question"`
	YesCount      int     `json:"yesCount"`
	NoCount       int     `json:"noCount"`
	YesPercentage float64 `json:"yesPercentage"`
}

// Analytics is the simple aggregate view over recorded sessions and
// responses.
type Analytics struct {
	TotalSessions     int            `json:"totalSessions"`
	CompletedSessions int            `json:"completedSessions"`
	CompletionRate    float64        `json:"completionRate"`
	AverageScore      float64        `json:"averageScore"`
	ToolUsage         map[string]int `json:"toolUsage"`
	QuestionAnalytics []QuestionStat `json:"questionAnalytics"`
}
