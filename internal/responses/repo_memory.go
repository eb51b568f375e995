package responses

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores responses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu        sync.RWMutex
	responses []Response
	sessions  map[string]SessionRecord
	order     []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{sessions: make(map[string]SessionRecord)}
}

// CreateResponse stores a completed response.
func (r *MemoryRepo) CreateResponse(ctx context.Context, response Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses = append(r.responses, response)
	return nil
}

// ListResponses returns all recorded responses in insertion order.
func (r *MemoryRepo) ListResponses(ctx context.Context) ([]Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Response(nil), r.responses...), nil
}

// CreateSession records a session start.
func (r *MemoryRepo) CreateSession(ctx context.Context, session SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	r.order = append(r.order, session.ID)
	return nil
}

// MarkSessionCompleted flags a session as finished.
func (r *MemoryRepo) MarkSessionCompleted(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.Completed = true
	session.AbandonedAt = nil
	r.sessions[sessionID] = session
	return nil
}

// MarkSessionAbandoned timestamps an incomplete session.
func (r *MemoryRepo) MarkSessionAbandoned(ctx context.Context, sessionID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	if !session.Completed {
		session.AbandonedAt = &at
		r.sessions[sessionID] = session
	}
	return nil
}

// ListSessions returns all session records in insertion order.
func (r *MemoryRepo) ListSessions(ctx context.Context) ([]SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SessionRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sessions[id])
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
