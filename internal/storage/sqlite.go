package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/lunarbloom/courtship/pkg/character"
)

const schema = `
CREATE TABLE IF NOT EXISTS characters (
	user_id         TEXT NOT NULL,
	chat_id         TEXT NOT NULL,
	personality     TEXT NOT NULL,
	game_day        INTEGER NOT NULL,
	evolution_stage INTEGER NOT NULL,
	state           TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL,
	updated_at      TIMESTAMP NOT NULL,
	PRIMARY KEY (user_id, chat_id)
);

CREATE TABLE IF NOT EXISTS inventory_items (
	id        TEXT PRIMARY KEY,
	user_id   TEXT NOT NULL,
	chat_id   TEXT NOT NULL,
	item      TEXT NOT NULL,
	added_at  TIMESTAMP NOT NULL,
	FOREIGN KEY (user_id, chat_id) REFERENCES characters (user_id, chat_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS cosmetics (
	id        TEXT PRIMARY KEY,
	user_id   TEXT NOT NULL,
	chat_id   TEXT NOT NULL,
	item_id   TEXT NOT NULL,
	bought_at TIMESTAMP NOT NULL,
	FOREIGN KEY (user_id, chat_id) REFERENCES characters (user_id, chat_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS event_log (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	chat_id    TEXT NOT NULL,
	kind       TEXT NOT NULL,
	summary    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	FOREIGN KEY (user_id, chat_id) REFERENCES characters (user_id, chat_id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS memories (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	chat_id    TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	FOREIGN KEY (user_id, chat_id) REFERENCES characters (user_id, chat_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_event_log_key ON event_log (user_id, chat_id, id);
`

// SQLStore is the sqlite-backed CharacterStore. The character row
// carries a few queryable columns plus the full aggregate as JSON;
// reads and writes are always whole-aggregate.
type SQLStore struct {
	db      *sql.DB
	logger  *slog.Logger
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

var _ CharacterStore = (*SQLStore)(nil)

// NewSQLStore opens (and migrates) the sqlite database at path. Use
// ":memory:" for tests.
func NewSQLStore(path string, logger *slog.Logger) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One writer at a time keeps modernc/sqlite happy under
	// concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLStore{
		db:      db,
		logger:  logger,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// newID issues ordered IDs so log queries can sort on the primary key.
func (s *SQLStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Now(), s.entropy).String()
}

func (s *SQLStore) GetCharacter(ctx context.Context, userID, chatID string) (*character.Character, error) {
	var state string
	err := s.db.QueryRowContext(ctx,
		"SELECT state FROM characters WHERE user_id = ? AND chat_id = ?",
		userID, chatID).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load character: %w", err)
	}

	var c character.Character
	if err := json.Unmarshal([]byte(state), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &c, nil
}

func (s *SQLStore) CreateCharacter(ctx context.Context, c *character.Character) error {
	existing, err := s.GetCharacter(ctx, c.UserID, c.ChatID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyExists
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO characters (user_id, chat_id, personality, game_day, evolution_stage, state, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.UserID, c.ChatID, c.Personality, c.GameDay, c.EvolutionStage, string(data), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert character: %w", err)
	}
	return nil
}

func (s *SQLStore) SaveCharacter(ctx context.Context, c *character.Character) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE characters SET personality = ?, game_day = ?, evolution_stage = ?, state = ?, updated_at = ?
		 WHERE user_id = ? AND chat_id = ?`,
		c.Personality, c.GameDay, c.EvolutionStage, string(data), c.UpdatedAt, c.UserID, c.ChatID)
	if err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("no character to save for %s:%s", c.UserID, c.ChatID)
	}
	return nil
}

func (s *SQLStore) DeleteCharacter(ctx context.Context, userID, chatID string) error {
	// Foreign keys cascade the dependent per-user tables.
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM characters WHERE user_id = ? AND chat_id = ?", userID, chatID)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

func (s *SQLStore) AppendLog(ctx context.Context, userID, chatID, kind, summary string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO event_log (id, user_id, chat_id, kind, summary, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		s.newID(), userID, chatID, kind, summary, time.Now())
	if err != nil {
		return fmt.Errorf("failed to append event log: %w", err)
	}
	return nil
}

func (s *SQLStore) RecentLog(ctx context.Context, userID, chatID string, limit int) ([]LogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, summary, created_at FROM event_log
		 WHERE user_id = ? AND chat_id = ? ORDER BY id DESC LIMIT ?`,
		userID, chatID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query event log: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Warn("Failed to close event log rows", "error", err)
		}
	}()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Summary, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event log row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLStore) AddCosmetic(ctx context.Context, userID, chatID, itemID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO cosmetics (id, user_id, chat_id, item_id, bought_at) VALUES (?, ?, ?, ?, ?)",
		s.newID(), userID, chatID, itemID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add cosmetic: %w", err)
	}
	return nil
}

func (s *SQLStore) ListCosmetics(ctx context.Context, userID, chatID string) ([]string, error) {
	return s.listColumn(ctx,
		"SELECT item_id FROM cosmetics WHERE user_id = ? AND chat_id = ? ORDER BY id",
		userID, chatID)
}

func (s *SQLStore) AddInventoryItem(ctx context.Context, userID, chatID, item string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO inventory_items (id, user_id, chat_id, item, added_at) VALUES (?, ?, ?, ?, ?)",
		s.newID(), userID, chatID, item, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add inventory item: %w", err)
	}
	return nil
}

func (s *SQLStore) ListInventory(ctx context.Context, userID, chatID string) ([]string, error) {
	return s.listColumn(ctx,
		"SELECT item FROM inventory_items WHERE user_id = ? AND chat_id = ? ORDER BY id",
		userID, chatID)
}

func (s *SQLStore) AddMemory(ctx context.Context, userID, chatID, content string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO memories (id, user_id, chat_id, content, created_at) VALUES (?, ?, ?, ?, ?)",
		s.newID(), userID, chatID, content, time.Now())
	if err != nil {
		return fmt.Errorf("failed to add memory: %w", err)
	}
	return nil
}

func (s *SQLStore) ListMemories(ctx context.Context, userID, chatID string, limit int) ([]string, error) {
	return s.listColumn(ctx,
		"SELECT content FROM memories WHERE user_id = ? AND chat_id = ? ORDER BY id DESC LIMIT ?",
		userID, chatID, limit)
}

func (s *SQLStore) listColumn(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Warn("Failed to close rows", "error", err)
		}
	}()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
