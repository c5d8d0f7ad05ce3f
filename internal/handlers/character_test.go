package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarbloom/courtship/internal/storage"
	"github.com/lunarbloom/courtship/pkg/character"
)

func TestCharacterHandler(t *testing.T) {
	store := storage.NewMockStore()
	c, err := character.New("u1", "c1", "innocent", time.Now())
	require.NoError(t, err)
	require.NoError(t, store.CreateCharacter(context.Background(), c))
	require.NoError(t, store.AddCosmetic(context.Background(), "u1", "c1", "ribbon"))
	require.NoError(t, store.AddInventoryItem(context.Background(), "u1", "c1", "chocolate"))
	require.NoError(t, store.AppendLog(context.Background(), "u1", "c1", "start", "story began"))

	h := NewCharacterHandler(store, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/v1/character?user_id=u1&chat_id=c1", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var view characterView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	require.NotNil(t, view.Character)
	assert.Equal(t, "innocent", view.Character.Personality)
	assert.Equal(t, []string{"ribbon"}, view.Cosmetics)
	assert.Equal(t, []string{"chocolate"}, view.Inventory)
	require.Len(t, view.RecentLog, 1)
	assert.Equal(t, "start", view.RecentLog[0].Kind)
}

func TestCharacterHandler_NotFound(t *testing.T) {
	h := NewCharacterHandler(storage.NewMockStore(), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/v1/character?user_id=u1&chat_id=c1", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCharacterHandler_MissingParams(t *testing.T) {
	h := NewCharacterHandler(storage.NewMockStore(), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/v1/character?user_id=u1", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCharacterHandler_MethodNotAllowed(t *testing.T) {
	h := NewCharacterHandler(storage.NewMockStore(), slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/v1/character", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
