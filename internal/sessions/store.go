package sessions

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// State is the per-session context that used to live in browser storage:
// the synthetic leaderboard scores, the walkthrough flag, and milestone
// progress. It is ephemeral, per-tab state with no cross-device guarantee.
type State struct {
	ID               string     `json:"id"`
	ToolName         string     `json:"toolName"`
	StartedAt        time.Time  `json:"startedAt"`
	Completed        bool       `json:"completed"`
	AbandonedAt      *time.Time `json:"abandonedAt,omitempty"`
	CompetitorScores []int      `json:"competitorScores,omitempty"`
	WalkthroughSeen  bool       `json:"walkthroughSeen"`
	EmailCaptured    bool       `json:"emailCaptured"`
	SignedUp         bool       `json:"signedUp"`
}

// Store holds session state for the lifetime of a session.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Put(ctx context.Context, state State) error
	Delete(ctx context.Context, id string) error
}
