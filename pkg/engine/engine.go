// Package engine drives the game: action resolution, day progression,
// random events and dilemmas, evolution stages and endings. It owns no
// I/O; persistence and narrative generation belong to the caller.
package engine

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/lunarbloom/courtship/pkg/catalog"
)

// ConfirmationStore tracks pending two-step confirmations for
// high-intensity actions. Implementations are expected to expire
// entries after the TTL (Redis-backed in production).
type ConfirmationStore interface {
	// PutPending records that an action awaits confirmation for a
	// character key.
	PutPending(ctx context.Context, key, action string, ttl time.Duration) error
	// TakePending consumes a pending confirmation if present and not
	// expired. Returns false when there is nothing to confirm.
	TakePending(ctx context.Context, key, action string) (bool, error)
}

// ConfirmationTTL is how long an unconfirmed high-intensity action
// remains confirmable.
const ConfirmationTTL = 60 * time.Second

// Engine evaluates game mechanics over an injected catalog, random
// source and clock. A nil Clock means time.Now; tests inject both a
// fixed clock and a seeded Rand.
type Engine struct {
	Catalog       *catalog.Catalog
	Rand          *rand.Rand
	Clock         func() time.Time
	Confirmations ConfirmationStore
	Logger        *slog.Logger
}

// New constructs an engine with the given catalog and dependencies.
func New(cat *catalog.Catalog, rng *rand.Rand, confirmations ConfirmationStore, logger *slog.Logger) *Engine {
	return &Engine{
		Catalog:       cat,
		Rand:          rng,
		Clock:         time.Now,
		Confirmations: confirmations,
		Logger:        logger,
	}
}

func (e *Engine) now() time.Time {
	if e.Clock != nil {
		return e.Clock()
	}
	return time.Now()
}
