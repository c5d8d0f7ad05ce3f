package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// TransientStore holds short-lived pending state in Redis, leaning on
// native key TTLs: confirmation prompts for high-intensity actions and
// the restart two-step. Expiry needs no sweeper; a missing key is the
// expired state.
type TransientStore struct {
	client *redis.Client
	logger *slog.Logger
}

// NewTransientStore connects to Redis at the given URL
// (redis://host:port/db).
func NewTransientStore(redisURL string, logger *slog.Logger) (*TransientStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &TransientStore{
		client: redis.NewClient(opt),
		logger: logger,
	}, nil
}

// NewTransientStoreFromClient wraps an existing client (miniredis in
// tests).
func NewTransientStoreFromClient(client *redis.Client, logger *slog.Logger) *TransientStore {
	return &TransientStore{client: client, logger: logger}
}

func (t *TransientStore) Ping(ctx context.Context) error {
	if err := t.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (t *TransientStore) Close() error {
	return t.client.Close()
}

func confirmKey(key, action string) string {
	return fmt.Sprintf("confirm:%s:%s", key, action)
}

// PutPending records a pending confirmation with a TTL. Implements
// engine.ConfirmationStore.
func (t *TransientStore) PutPending(ctx context.Context, key, action string, ttl time.Duration) error {
	if err := t.client.Set(ctx, confirmKey(key, action), "1", ttl).Err(); err != nil {
		t.logger.Error("Failed to store pending confirmation", "key", key, "action", action, "error", err)
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// TakePending consumes a pending confirmation. Returns false when none
// exists (never stored, or TTL expired).
func (t *TransientStore) TakePending(ctx context.Context, key, action string) (bool, error) {
	n, err := t.client.Del(ctx, confirmKey(key, action)).Result()
	if err != nil {
		t.logger.Error("Failed to take pending confirmation", "key", key, "action", action, "error", err)
		return false, fmt.Errorf("redis del failed: %w", err)
	}
	return n > 0, nil
}
