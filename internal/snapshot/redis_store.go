package snapshot

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the snapshot as a single JSON value at the namespace key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) (*State, bool, error) {
	payload, err := s.client.Get(ctx, Namespace).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, false, err
	}
	return &state, true, nil
}

func (s *RedisStore) Save(ctx context.Context, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, Namespace, payload, 0).Err()
}
