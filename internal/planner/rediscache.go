package planner

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is an optional Store backend for multi-process deployments,
// where the default MemoryStore's cache wouldn't be shared across server
// instances.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to addr and returns a Store backed by it.
func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{client: client, prefix: "chatstream:plan:"}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]PlanComponent, bool) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return nil, false
		}
		return nil, false
	}
	var components []PlanComponent
	if err := json.Unmarshal(raw, &components); err != nil {
		return nil, false
	}
	return components, true
}

func (s *RedisStore) Set(ctx context.Context, key string, components []PlanComponent, ttl time.Duration) {
	raw, err := json.Marshal(components)
	if err != nil {
		return
	}
	_ = s.client.Set(ctx, s.prefix+key, raw, ttl).Err()
}

// Clear is a best-effort no-op: a shared Redis cache is not reset between
// test runs the way the in-memory store is.
func (s *RedisStore) Clear(context.Context) {}
