package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarbloom/courtship/pkg/character"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	store, err := NewSQLStore(":memory:", slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func newTestCharacter(t *testing.T) *character.Character {
	t.Helper()
	c, err := character.New("u1", "c1", "innocent", time.Now().UTC())
	require.NoError(t, err)
	return c
}

func TestSQLStore_Ping(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestSQLStore_GetCharacter_Missing(t *testing.T) {
	store := newTestStore(t)

	c, err := store.GetCharacter(context.Background(), "nobody", "nowhere")
	require.NoError(t, err)
	assert.Nil(t, c, "a missing character is nil, not an error")
}

func TestSQLStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	c := newTestCharacter(t)
	c.Affection = 35
	c.Traits = []string{"at-ease"}

	require.NoError(t, store.CreateCharacter(ctx, c))

	got, err := store.GetCharacter(ctx, "u1", "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 35, got.Affection)
	assert.Equal(t, "innocent", got.Personality)
	assert.Equal(t, []string{"at-ease"}, got.Traits)
}

func TestSQLStore_CreateDuplicate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	c := newTestCharacter(t)

	require.NoError(t, store.CreateCharacter(ctx, c))
	err := store.CreateCharacter(ctx, c)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSQLStore_SaveCharacter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	c := newTestCharacter(t)
	require.NoError(t, store.CreateCharacter(ctx, c))

	c.Affection = 60
	c.GameDay = 12
	require.NoError(t, store.SaveCharacter(ctx, c))

	got, err := store.GetCharacter(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, 60, got.Affection)
	assert.Equal(t, 12, got.GameDay)
}

func TestSQLStore_SaveCharacter_NoRow(t *testing.T) {
	store := newTestStore(t)
	c := newTestCharacter(t)

	err := store.SaveCharacter(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no character to save")
}

func TestSQLStore_DeleteCascades(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	c := newTestCharacter(t)
	require.NoError(t, store.CreateCharacter(ctx, c))
	require.NoError(t, store.AppendLog(ctx, "u1", "c1", "action", "talked"))
	require.NoError(t, store.AddCosmetic(ctx, "u1", "c1", "ribbon"))
	require.NoError(t, store.AddInventoryItem(ctx, "u1", "c1", "chocolate"))
	require.NoError(t, store.AddMemory(ctx, "u1", "c1", "first walk in the park"))

	require.NoError(t, store.DeleteCharacter(ctx, "u1", "c1"))

	got, err := store.GetCharacter(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Nil(t, got)

	log, err := store.RecentLog(ctx, "u1", "c1", 10)
	require.NoError(t, err)
	assert.Empty(t, log)

	cosmetics, err := store.ListCosmetics(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Empty(t, cosmetics)

	inventory, err := store.ListInventory(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Empty(t, inventory)

	memories, err := store.ListMemories(ctx, "u1", "c1", 10)
	require.NoError(t, err)
	assert.Empty(t, memories)
}

func TestSQLStore_RecentLog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateCharacter(ctx, newTestCharacter(t)))

	for _, summary := range []string{"first", "second", "third"} {
		require.NoError(t, store.AppendLog(ctx, "u1", "c1", "action", summary))
	}

	entries, err := store.RecentLog(ctx, "u1", "c1", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Summary, "newest first")
	assert.Equal(t, "second", entries[1].Summary)
	assert.Equal(t, "action", entries[0].Kind)
}

func TestSQLStore_Cosmetics(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateCharacter(ctx, newTestCharacter(t)))

	require.NoError(t, store.AddCosmetic(ctx, "u1", "c1", "ribbon"))
	require.NoError(t, store.AddCosmetic(ctx, "u1", "c1", "hairpin"))

	items, err := store.ListCosmetics(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ribbon", "hairpin"}, items, "purchase order preserved")
}

func TestSQLStore_KeysIsolated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	a := newTestCharacter(t)
	b, err := character.New("u2", "c2", "cheerful", time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, store.CreateCharacter(ctx, a))
	require.NoError(t, store.CreateCharacter(ctx, b))
	require.NoError(t, store.AppendLog(ctx, "u1", "c1", "action", "only for u1"))

	log, err := store.RecentLog(ctx, "u2", "c2", 10)
	require.NoError(t, err)
	assert.Empty(t, log)

	got, err := store.GetCharacter(ctx, "u2", "c2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "cheerful", got.Personality)
}
