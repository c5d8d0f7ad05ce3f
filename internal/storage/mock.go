package storage

import (
	"context"
	"sync"
	"time"

	"github.com/lunarbloom/courtship/pkg/character"
)

// MockStore is an in-memory CharacterStore for handler tests.
type MockStore struct {
	mu         sync.Mutex
	characters map[string]*character.Character
	logs       map[string][]LogEntry
	cosmetics  map[string][]string
	inventory  map[string][]string
	memories   map[string][]string

	// Error overrides
	GetErr    error
	SaveErr   error
	CreateErr error
}

var _ CharacterStore = (*MockStore)(nil)

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{
		characters: make(map[string]*character.Character),
		logs:       make(map[string][]LogEntry),
		cosmetics:  make(map[string][]string),
		inventory:  make(map[string][]string),
		memories:   make(map[string][]string),
	}
}

func key(userID, chatID string) string {
	return userID + ":" + chatID
}

func (m *MockStore) Ping(ctx context.Context) error { return nil }
func (m *MockStore) Close() error                   { return nil }

func (m *MockStore) GetCharacter(ctx context.Context, userID, chatID string) (*character.Character, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.characters[key(userID, chatID)]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (m *MockStore) CreateCharacter(ctx context.Context, c *character.Character) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(c.UserID, c.ChatID)
	if _, exists := m.characters[k]; exists {
		return ErrAlreadyExists
	}
	clone := *c
	m.characters[k] = &clone
	return nil
}

func (m *MockStore) SaveCharacter(ctx context.Context, c *character.Character) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *c
	m.characters[key(c.UserID, c.ChatID)] = &clone
	return nil
}

func (m *MockStore) DeleteCharacter(ctx context.Context, userID, chatID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(userID, chatID)
	delete(m.characters, k)
	delete(m.logs, k)
	delete(m.cosmetics, k)
	delete(m.inventory, k)
	delete(m.memories, k)
	return nil
}

func (m *MockStore) AppendLog(ctx context.Context, userID, chatID, kind, summary string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(userID, chatID)
	m.logs[k] = append(m.logs[k], LogEntry{Kind: kind, Summary: summary, CreatedAt: time.Now()})
	return nil
}

func (m *MockStore) RecentLog(ctx context.Context, userID, chatID string, limit int) ([]LogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.logs[key(userID, chatID)]
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]LogEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *MockStore) AddCosmetic(ctx context.Context, userID, chatID, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(userID, chatID)
	m.cosmetics[k] = append(m.cosmetics[k], itemID)
	return nil
}

func (m *MockStore) ListCosmetics(ctx context.Context, userID, chatID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.cosmetics[key(userID, chatID)]))
	copy(out, m.cosmetics[key(userID, chatID)])
	return out, nil
}

func (m *MockStore) AddInventoryItem(ctx context.Context, userID, chatID, item string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(userID, chatID)
	m.inventory[k] = append(m.inventory[k], item)
	return nil
}

func (m *MockStore) ListInventory(ctx context.Context, userID, chatID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.inventory[key(userID, chatID)]))
	copy(out, m.inventory[key(userID, chatID)])
	return out, nil
}

func (m *MockStore) AddMemory(ctx context.Context, userID, chatID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(userID, chatID)
	m.memories[k] = append(m.memories[k], content)
	return nil
}

func (m *MockStore) ListMemories(ctx context.Context, userID, chatID string, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.memories[key(userID, chatID)]
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]string, len(entries))
	copy(out, entries)
	return out, nil
}
