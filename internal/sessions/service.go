package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service manages session lifecycle on top of a Store.
type Service struct {
	Store Store
	Now   func() time.Time
}

// NewService constructs a Service.
func NewService(store Store) *Service {
	return &Service{Store: store, Now: time.Now}
}

// Start creates a new session for a tool run and returns its state.
func (s *Service) Start(ctx context.Context, toolName string) (State, error) {
	state := State{
		ID:        uuid.NewString(),
		ToolName:  toolName,
		StartedAt: s.Now().UTC(),
	}
	if err := s.Store.Put(ctx, state); err != nil {
		return State{}, err
	}
	return state, nil
}

// Abandon marks an incomplete session as abandoned. Completed sessions are
// left untouched.
func (s *Service) Abandon(ctx context.Context, id string) error {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	if state.Completed {
		return nil
	}
	now := s.Now().UTC()
	state.AbandonedAt = &now
	return s.Store.Put(ctx, state)
}

// Complete marks a session as finished. Abandonment timestamps are cleared
// since the user came back.
func (s *Service) Complete(ctx context.Context, id string) error {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	state.Completed = true
	state.AbandonedAt = nil
	return s.Store.Put(ctx, state)
}

// MarkWalkthroughSeen records that the level-guide walkthrough was shown,
// so it only appears on the first visit.
func (s *Service) MarkWalkthroughSeen(ctx context.Context, id string) (bool, error) {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return false, err
	}
	first := !state.WalkthroughSeen
	if first {
		state.WalkthroughSeen = true
		if err := s.Store.Put(ctx, state); err != nil {
			return false, err
		}
	}
	return first, nil
}

// MarkEmailCaptured records the email-capture milestone.
func (s *Service) MarkEmailCaptured(ctx context.Context, id string) error {
	state, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	state.EmailCaptured = true
	return s.Store.Put(ctx, state)
}
