package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lunarbloom/courtship/internal/storage"
	"github.com/lunarbloom/courtship/pkg/character"
)

// CharacterHandler exposes raw character state for debugging and
// dashboards: GET /v1/character?user_id=...&chat_id=...
type CharacterHandler struct {
	store  storage.CharacterStore
	logger *slog.Logger
}

func NewCharacterHandler(store storage.CharacterStore, logger *slog.Logger) *CharacterHandler {
	return &CharacterHandler{store: store, logger: logger}
}

type characterView struct {
	Character *character.Character `json:"character"`
	Cosmetics []string             `json:"cosmetics,omitempty"`
	Inventory []string             `json:"inventory,omitempty"`
	RecentLog []storage.LogEntry   `json:"recent_log,omitempty"`
}

func (h *CharacterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed. Only GET is supported."})
		return
	}

	userID := r.URL.Query().Get("user_id")
	chatID := r.URL.Query().Get("chat_id")
	if userID == "" || chatID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "user_id and chat_id query parameters are required"})
		return
	}

	c, err := h.store.GetCharacter(r.Context(), userID, chatID)
	if err != nil {
		h.logger.Error("Failed to load character", "error", err, "user_id", userID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "failed to load character"})
		return
	}
	if c == nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "character not found"})
		return
	}

	view := characterView{Character: c}
	if cosmetics, err := h.store.ListCosmetics(r.Context(), userID, chatID); err == nil {
		view.Cosmetics = cosmetics
	} else {
		h.logger.Warn("Failed to list cosmetics", "error", err)
	}
	if inventory, err := h.store.ListInventory(r.Context(), userID, chatID); err == nil {
		view.Inventory = inventory
	} else {
		h.logger.Warn("Failed to list inventory", "error", err)
	}
	if log, err := h.store.RecentLog(r.Context(), userID, chatID, 20); err == nil {
		view.RecentLog = log
	} else {
		h.logger.Warn("Failed to load recent log", "error", err)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		h.logger.Error("Error encoding character response", "error", err)
	}
}
