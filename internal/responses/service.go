package responses

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

// Service records completed diagnostics and computes simple aggregates.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// Record stores a completed diagnostic run and marks its session done.
func (s *Service) Record(ctx context.Context, response Response) (Response, error) {
	response.ID = uuid.NewString()
	response.CreatedAt = s.Now().UTC()
	if response.CompletedAt.IsZero() {
		response.CompletedAt = response.CreatedAt
	}
	if err := s.Repo.CreateResponse(ctx, response); err != nil {
		return Response{}, err
	}
	if response.SessionID != "" {
		// Session may be unknown to the durable store (e.g. memory repo
		// restarted); completion is best-effort.
		_ = s.Repo.MarkSessionCompleted(ctx, response.SessionID)
	}
	return response, nil
}

// TrackSessionStart records a durable session-start trace.
func (s *Service) TrackSessionStart(ctx context.Context, sessionID, toolName string) error {
	return s.Repo.CreateSession(ctx, SessionRecord{
		ID:        sessionID,
		ToolName:  toolName,
		StartedAt: s.Now().UTC(),
	})
}

// TrackSessionAbandonment timestamps an incomplete session.
func (s *Service) TrackSessionAbandonment(ctx context.Context, sessionID string) error {
	return s.Repo.MarkSessionAbandoned(ctx, sessionID, s.Now().UTC())
}

// Analytics computes the aggregate view over all recorded data.
func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	sessions, err := s.Repo.ListSessions(ctx)
	if err != nil {
		return Analytics{}, err
	}
	responses, err := s.Repo.ListResponses(ctx)
	if err != nil {
		return Analytics{}, err
	}

	analytics := Analytics{
		TotalSessions:     len(sessions),
		CompletedSessions: len(responses),
		ToolUsage:         make(map[string]int),
	}
	if len(sessions) > 0 {
		analytics.CompletionRate = round2(100 * float64(len(responses)) / float64(len(sessions)))
	}
	for _, session := range sessions {
		analytics.ToolUsage[session.ToolName]++
	}

	if len(responses) > 0 {
		sum := 0
		for _, response := range responses {
			sum += response.Score
		}
		analytics.AverageScore = round2(float64(sum) / float64(len(responses)))
	}

	analytics.QuestionAnalytics = questionStats(responses)
	return analytics, nil
}

func questionStats(responses []Response) []QuestionStat {
	type counts struct {
		question string
		yes      int
		no       int
	}
	byID := make(map[string]*counts)
	var order []string

	for _, response := range responses {
		for _, answer := range response.Answers {
			id := answer.QuestionID
			if id == "" {
				id = answer.Question
			}
			c, ok := byID[id]
			if !ok {
				c = &counts{question: answer.Question}
				byID[id] = c
				order = append(order, id)
			}
			if answer.Value == "Yes" {
				c.yes++
			} else {
				c.no++
			}
		}
	}

	out := make([]QuestionStat, 0, len(order))
	for _, id := range order {
		c := byID[id]
		total := c.yes + c.no
		stat := QuestionStat{
			QuestionID: id,
			Question:   c.question,
			YesCount:   c.yes,
			NoCount:    c.no,
		}
		if total > 0 {
			stat.YesPercentage = round2(100 * float64(c.yes) / float64(total))
		}
		out = append(out, stat)
	}
	return out
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
