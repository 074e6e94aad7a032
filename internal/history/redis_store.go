package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "promptforge:history:"

	// idle histories expire after this long
	defaultTTL = 30 * 24 * time.Hour
)

// Redis-backed store. each owner is one list, newest entry at index 0.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    defaultTTL,
	}
}

func key(owner string) string {
	return keyPrefix + owner
}

func (s *RedisStore) Add(ctx context.Context, owner string, entry Entry) error {
	if owner == "" {
		return ErrInvalidOwner
	}

	data, err := json.Marshal(prepare(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key(owner), data)
	pipe.LTrim(ctx, key(owner), 0, MaxEntries-1)
	pipe.Expire(ctx, key(owner), s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add redis history entry: %w", err)
	}

	return nil
}

func (s *RedisStore) List(ctx context.Context, owner string) ([]Entry, error) {
	if owner == "" {
		return nil, ErrInvalidOwner
	}

	values, err := s.client.LRange(ctx, key(owner), 0, MaxEntries-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read redis history: %w", err)
	}

	entries := make([]Entry, 0, len(values))
	for _, value := range values {
		var entry Entry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			// skip corrupted entries
			continue
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *RedisStore) Clear(ctx context.Context, owner string) error {
	if owner == "" {
		return ErrInvalidOwner
	}

	if err := s.client.Del(ctx, key(owner)).Err(); err != nil {
		return fmt.Errorf("failed to clear redis history: %w", err)
	}

	return nil
}
