package storage

import (
	"context"
	"errors"
	"time"

	"github.com/lunarbloom/courtship/pkg/character"
)

// ErrAlreadyExists is returned when creating a character that already
// exists for the (user, chat) key.
var ErrAlreadyExists = errors.New("character already exists")

// HealthChecker defines basic health check capabilities.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities.
type Closer interface {
	Close() error
}

// LogEntry is one row of the per-character event log.
type LogEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// CharacterStore is the durable persistence interface: one character
// row per (user, chat) key plus auxiliary per-user tables that are
// cascade-deleted together on restart.
type CharacterStore interface {
	HealthChecker
	Closer

	// GetCharacter returns nil (not an error) when no character
	// exists for the key.
	GetCharacter(ctx context.Context, userID, chatID string) (*character.Character, error)

	// CreateCharacter fails with ErrAlreadyExists for a duplicate key.
	CreateCharacter(ctx context.Context, c *character.Character) error

	// SaveCharacter persists the full aggregate (read-modify-write).
	SaveCharacter(ctx context.Context, c *character.Character) error

	// DeleteCharacter removes the character and every dependent row.
	DeleteCharacter(ctx context.Context, userID, chatID string) error

	AppendLog(ctx context.Context, userID, chatID, kind, summary string) error
	RecentLog(ctx context.Context, userID, chatID string, limit int) ([]LogEntry, error)

	AddCosmetic(ctx context.Context, userID, chatID, itemID string) error
	ListCosmetics(ctx context.Context, userID, chatID string) ([]string, error)

	AddInventoryItem(ctx context.Context, userID, chatID, item string) error
	ListInventory(ctx context.Context, userID, chatID string) ([]string, error)

	AddMemory(ctx context.Context, userID, chatID, content string) error
	ListMemories(ctx context.Context, userID, chatID string, limit int) ([]string, error)
}
