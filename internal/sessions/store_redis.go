package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long abandoned sessions linger in Redis.
const sessionTTL = 30 * time.Minute

// RedisStore keeps session state in Redis with a sliding TTL, so state
// survives process restarts but still expires with the session.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a RedisStore from a redis URL.
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func sessionKey(id string) string {
	return "session:" + id
}

// Get returns the session state by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (State, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return State{}, ErrNotFound
		}
		return State{}, err
	}
	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return State{}, err
	}
	return state, nil
}

// Put stores the session state and refreshes its TTL.
func (s *RedisStore) Put(ctx context.Context, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(state.ID), data, sessionTTL).Err()
}

// Delete removes the session state.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

var _ Store = (*RedisStore)(nil)
