package responses

import (
	"context"
	"time"
)

// Repo persists completed responses and session traces.
type Repo interface {
	CreateResponse(ctx context.Context, response Response) error
	ListResponses(ctx context.Context) ([]Response, error)
	CreateSession(ctx context.Context, session SessionRecord) error
	MarkSessionCompleted(ctx context.Context, sessionID string) error
	MarkSessionAbandoned(ctx context.Context, sessionID string, at time.Time) error
	ListSessions(ctx context.Context) ([]SessionRecord, error)
}
