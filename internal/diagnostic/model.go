package diagnostic

import "fmt"

// AnswerValue is a Yes/No response to a diagnostic question.
type AnswerValue string

const (
	Yes AnswerValue = "Yes"
	No  AnswerValue = "No"
)

// Answer is a single recorded response. Answers are immutable once recorded
// and keep their original question order.
type Answer struct {
	QuestionID string      `json:"questionId,omitempty"`
	Question   string      `json:"question"`
	Value      AnswerValue `json:"answer"`
}

// Bucket classifies the Yes/No skew of a completed answer set.
type Bucket string

const (
	BucketAllYes    Bucket = "all_yes"
	BucketAllNo     Bucket = "all_no"
	BucketMostlyYes Bucket = "mostly_yes"
	BucketMostlyNo  Bucket = "mostly_no"
	BucketBalanced  Bucket = "balanced"
)

// Classification is the scored summary of an answer set.
type Classification struct {
	Score    int    `json:"score"`
	YesCount int    `json:"yesCount"`
	NoCount  int    `json:"noCount"`
	Bucket   Bucket `json:"bucket"`
}

// EntryKind distinguishes the narrative entries the synthesizer emits.
type EntryKind string

const (
	KindInsight   EntryKind = "Insight"
	KindChallenge EntryKind = "Challenge"
	KindStrength  EntryKind = "Strength"
)

// InsightEntry is one synthesized narrative line shown to the user.
type InsightEntry struct {
	Kind        EntryKind `json:"type"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description"`
}

// InvalidAnswerError reports a malformed answer by its position in the set.
type InvalidAnswerError struct {
	Index int
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("answer %d is missing a Yes/No value", e.Index)
}

// Topic selects which rule library applies to a tool.
type Topic string

const (
	TopicDataHygiene Topic = "data_hygiene"
	TopicMarketing   Topic = "marketing"
	TopicCashFlow    Topic = "cash_flow"
	TopicGeneric     Topic = "generic"
)

// TopicFor dispatches a tool name to its rule library. Matching is on
// substrings rather than exact names so renamed tools keep resolving.
func TopicFor(toolName string) Topic {
	switch {
	case containsAny(toolName, "Data Hygiene"):
		return TopicDataHygiene
	case containsAny(toolName, "Marketing"):
		return TopicMarketing
	case containsAny(toolName, "Cash Flow"):
		return TopicCashFlow
	default:
		return TopicGeneric
	}
}
