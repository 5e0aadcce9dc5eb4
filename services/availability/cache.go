package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// SuggestionCache stores search results keyed by store revision and duration.
type SuggestionCache interface {
	Get(ctx context.Context, revision uint64, duration int) (Suggestion, bool, error)
	Set(ctx context.Context, revision uint64, duration int, s Suggestion) error
}

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Get(context.Context, uint64, int) (Suggestion, bool, error) {
	return Suggestion{}, false, nil
}

func (NoopCache) Set(context.Context, uint64, int, Suggestion) error { return nil }

// RedisSuggestionCache keeps results in Redis. Keys carry a per-process
// namespace because revisions restart from zero with every process.
type RedisSuggestionCache struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

func NewRedisSuggestionCache(client *redis.Client, ttl time.Duration) *RedisSuggestionCache {
	return &RedisSuggestionCache{
		client:    client,
		ttl:       ttl,
		namespace: uuid.New().String(),
	}
}

func (c *RedisSuggestionCache) key(revision uint64, duration int) string {
	return suggestionKey(c.namespace, revision, duration)
}

func suggestionKey(namespace string, revision uint64, duration int) string {
	return fmt.Sprintf("suggest:%s:%d:%d", namespace, revision, duration)
}

func (c *RedisSuggestionCache) Get(ctx context.Context, revision uint64, duration int) (Suggestion, bool, error) {
	data, err := c.client.Get(ctx, c.key(revision, duration)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Suggestion{}, false, nil
	}
	if err != nil {
		return Suggestion{}, false, fmt.Errorf("redis get: %w", err)
	}
	var s Suggestion
	if err := json.Unmarshal(data, &s); err != nil {
		return Suggestion{}, false, fmt.Errorf("decode cached suggestion: %w", err)
	}
	return s, true, nil
}

func (c *RedisSuggestionCache) Set(ctx context.Context, revision uint64, duration int, s Suggestion) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode suggestion: %w", err)
	}
	if err := c.client.Set(ctx, c.key(revision, duration), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
