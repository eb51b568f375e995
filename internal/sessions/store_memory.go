package sessions

import (
	"context"
	"sync"
)

// MemoryStore keeps session state in memory and is safe for concurrent use.
// It is the default when no Redis URL is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]State
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]State)}
}

// Get returns the session state by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.byID[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return state, nil
}

// Put stores the session state.
func (s *MemoryStore) Put(ctx context.Context, state State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[state.ID] = state
	return nil
}

// Delete removes the session state.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
