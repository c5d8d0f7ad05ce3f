package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarbloom/courtship/internal/services"
	"github.com/lunarbloom/courtship/internal/storage"
	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/character"
	"github.com/lunarbloom/courtship/pkg/chat"
	"github.com/lunarbloom/courtship/pkg/engine"
)

// handlerCatalog is a small deterministic catalog: no random events or
// dilemmas, one season, a scene pair and a single shop item.
func handlerCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Actions: []catalog.Action{
			{Name: "talk", Effects: map[character.Key]int{character.Affection: 3}, APCost: 1},
			{
				Name:     "gift",
				Effects:  map[character.Key]int{character.Affection: 5},
				APCost:   1,
				CoinCost: 30,
			},
			{
				Name:         "confess",
				Effects:      map[character.Key]int{character.Affection: 6},
				APCost:       2,
				NeedsConfirm: true,
			},
		},
		Scenes: map[string]catalog.Scene{
			"park":    {Name: "park", Description: "Ducks on the pond."},
			"bedroom": {Name: "bedroom", MinStage: 3},
		},
		Seasons: []catalog.Season{
			{Name: "spring", FirstDay: 1, LastDay: character.FinalDay},
		},
		Stages: []catalog.StageDef{
			{Stage: 1, Title: "acquaintance"},
		},
		Endings: []catalog.Ending{
			{ID: "ordinary-days", Title: "Ordinary Days", Description: "Life went on, quietly."},
		},
		ShopItems: []catalog.ShopItem{
			{ID: "ribbon", Name: "ribbon", Price: 40, Description: "A silk ribbon for her hair."},
		},
	}
}

type handlerFixture struct {
	handler *CommandHandler
	store   *storage.MockStore
	llm     *services.MockLLMService
	redis   *miniredis.Miniredis
}

func newFixture(t *testing.T) *handlerFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	transient := storage.NewTransientStoreFromClient(
		redis.NewClient(&redis.Options{Addr: mr.Addr()}), slog.Default())
	t.Cleanup(func() {
		_ = transient.Close()
	})

	store := storage.NewMockStore()
	llm := services.NewMockLLMService()
	eng := engine.New(handlerCatalog(), rand.New(rand.NewSource(1)), transient, slog.Default())
	return &handlerFixture{
		handler: NewCommandHandler(store, eng, transient, llm, slog.Default()),
		store:   store,
		llm:     llm,
		redis:   mr,
	}
}

func (f *handlerFixture) post(t *testing.T, text string) (int, chat.CommandResponse) {
	t.Helper()
	body, err := json.Marshal(chat.CommandRequest{UserID: "u1", ChatID: "c1", Text: text})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/command", bytes.NewReader(body))
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	var resp chat.CommandResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return w.Code, resp
}

func (f *handlerFixture) mustStart(t *testing.T) {
	t.Helper()
	code, resp := f.post(t, "/start innocent")
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Success, resp.Message)
}

func (f *handlerFixture) loadCharacter(t *testing.T) *character.Character {
	t.Helper()
	c, err := f.store.GetCharacter(context.Background(), "u1", "c1")
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestCommand_MethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/command", nil)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCommand_InvalidBody(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/command", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommand_MissingFields(t *testing.T) {
	f := newFixture(t)

	body, _ := json.Marshal(chat.CommandRequest{UserID: "u1", Text: "/status"})
	req := httptest.NewRequest(http.MethodPost, "/v1/command", bytes.NewReader(body))
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommand_NonCommandPassesThrough(t *testing.T) {
	f := newFixture(t)

	code, resp := f.post(t, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.False(t, resp.Intercept, "the host keeps processing ordinary messages")
}

func TestCommand_NoCharacterYet(t *testing.T) {
	f := newFixture(t)

	code, resp := f.post(t, "/status")
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, resp.Success)
	assert.True(t, resp.Intercept)
	assert.Contains(t, resp.Message, "/start")
}

func TestCommand_Start(t *testing.T) {
	f := newFixture(t)

	code, resp := f.post(t, "/start innocent")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Day 1")

	c := f.loadCharacter(t)
	assert.Equal(t, "innocent", c.Personality)
	assert.Equal(t, 1, c.GameDay)
}

func TestCommand_StartNoArgsListsPersonalities(t *testing.T) {
	f := newFixture(t)

	_, resp := f.post(t, "/start")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "innocent")
	assert.Contains(t, resp.Message, "cheerful")
}

func TestCommand_StartUnknownPersonality(t *testing.T) {
	f := newFixture(t)

	_, resp := f.post(t, "/start villain")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "villain")
}

func TestCommand_StartDuplicate(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/start cheerful")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "/restart")
}

func TestCommand_DoAction(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	code, resp := f.post(t, "/talk")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "The moment passes gently", "narrative leads the reply")
	assert.Contains(t, resp.Message, "Affection")

	c := f.loadCharacter(t)
	assert.Greater(t, c.Affection, 10)
	assert.Equal(t, 1, c.DailyInteractions)

	log, err := f.store.RecentLog(context.Background(), "u1", "c1", 10)
	require.NoError(t, err)
	require.NotEmpty(t, log)
	assert.Equal(t, "action", log[len(log)-1].Kind)
}

func TestCommand_DoRejectionDoesNotSave(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	c := f.loadCharacter(t)
	c.ActionPoints = 0
	require.NoError(t, f.store.SaveCharacter(context.Background(), c))

	_, resp := f.post(t, "/talk")
	assert.False(t, resp.Success)
	assert.True(t, resp.Intercept)
	assert.Contains(t, resp.Message, "action points")

	after := f.loadCharacter(t)
	assert.Equal(t, c.Affection, after.Affection)
	assert.Zero(t, after.DailyInteractions)
}

func TestCommand_DoSurvivesNarrativeFailure(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)
	f.llm.GenerateNarrativeFunc = func(context.Context, string, string) (string, error) {
		return "", errors.New("model unavailable")
	}

	_, resp := f.post(t, "/talk")
	assert.True(t, resp.Success, "mechanics commit even when the narrative call fails")
	assert.Contains(t, resp.Message, "Affection")

	c := f.loadCharacter(t)
	assert.Greater(t, c.Affection, 10)
}

func TestCommand_GiftLandsInInventory(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/gift chocolate")
	assert.True(t, resp.Success, resp.Message)
	assert.Equal(t, 70, f.loadCharacter(t).Coins)

	items, err := f.store.ListInventory(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"chocolate"}, items)
}

func TestCommand_GiftWithoutTargetRecordsAction(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/gift")
	assert.True(t, resp.Success, resp.Message)

	items, err := f.store.ListInventory(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"gift"}, items)
}

func TestCommand_FreeActionLeavesInventoryAlone(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/talk")
	require.True(t, resp.Success)

	items, err := f.store.ListInventory(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCommand_NarrativeBecomesMemory(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/talk")
	require.True(t, resp.Success)

	memories, err := f.store.ListMemories(context.Background(), "u1", "c1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"The moment passes gently between you."}, memories)

	// The stored moment feeds the next prompt for continuity.
	_, resp = f.post(t, "/talk")
	require.True(t, resp.Success)
	require.Len(t, f.llm.NarrativeCalls, 2)
	assert.NotContains(t, f.llm.NarrativeCalls[0].UserPrompt, "Moments she still thinks about")
	assert.Contains(t, f.llm.NarrativeCalls[1].UserPrompt, "Moments she still thinks about")
	assert.Contains(t, f.llm.NarrativeCalls[1].UserPrompt, "The moment passes gently between you.")
}

func TestCommand_FailedNarrativeStoresNoMemory(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)
	f.llm.GenerateNarrativeFunc = func(context.Context, string, string) (string, error) {
		return "", errors.New("model unavailable")
	}

	_, resp := f.post(t, "/talk")
	require.True(t, resp.Success)

	memories, err := f.store.ListMemories(context.Background(), "u1", "c1", 10)
	require.NoError(t, err)
	assert.Empty(t, memories)
}

func TestCommand_ConfirmPreviewDoesNotSave(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/confess")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "confirm")

	c := f.loadCharacter(t)
	assert.Equal(t, 10, c.Affection)
	assert.Zero(t, c.DailyInteractions)

	_, resp = f.post(t, "/confess confirm")
	assert.True(t, resp.Success)
	c = f.loadCharacter(t)
	assert.Greater(t, c.Affection, 10)
}

func TestCommand_ConfirmExpires(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/confess")
	require.True(t, resp.Success)
	f.redis.FastForward(engine.ConfirmationTTL + time.Second)

	_, resp = f.post(t, "/confess confirm")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Nothing to confirm")
}

func TestCommand_Go(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/go park")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "park")
	assert.Equal(t, "park", f.loadCharacter(t).Scene)
}

func TestCommand_GoNoArgsListsReachableScenes(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/go")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "park")
	assert.NotContains(t, resp.Message, "bedroom", "stage-gated scenes stay hidden")
}

func TestCommand_GoStageGated(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/go bedroom")
	assert.False(t, resp.Success)
	assert.Equal(t, "", f.loadCharacter(t).Scene)
}

func TestCommand_NextDay(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/next-day")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Day 2")
	assert.Equal(t, 2, f.loadCharacter(t).GameDay)
}

func TestCommand_ChoiceWithNothingOpen(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/choice 1")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "nothing waiting")
}

func TestCommand_ChoiceNotANumber(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/choice first")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "number")
}

func TestCommand_Status(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/status")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Day 1/42")
	assert.Contains(t, resp.Message, "Affection")
	assert.Contains(t, resp.Message, "Innocent")
}

func TestCommand_ShopAndBuy(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/shop")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "ribbon")
	assert.Contains(t, resp.Message, "100 coins")

	_, resp = f.post(t, "/buy ribbon")
	assert.True(t, resp.Success)

	c := f.loadCharacter(t)
	assert.Equal(t, 60, c.Coins)

	owned, err := f.store.ListCosmetics(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ribbon"}, owned)

	_, resp = f.post(t, "/shop")
	assert.Contains(t, resp.Message, "(owned)")
}

func TestCommand_BuyInsufficientCoins(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	c := f.loadCharacter(t)
	c.Coins = 5
	require.NoError(t, f.store.SaveCharacter(context.Background(), c))

	_, resp := f.post(t, "/buy ribbon")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Not enough coins")
}

func TestCommand_BuyUnknownItem(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/buy tiara")
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "/shop")
}

func TestCommand_Ending(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/ending")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "If the story ended today")
	assert.Contains(t, resp.Message, "Ordinary Days")
}

func TestCommand_Endings(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/endings")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "Ordinary Days")
}

func TestCommand_RestartTwoStep(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/restart")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "confirm")
	require.NotNil(t, f.loadCharacter(t), "nothing deleted yet")

	_, resp = f.post(t, "/restart confirm")
	assert.True(t, resp.Success)

	c, err := f.store.GetCharacter(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCommand_RestartConfirmWithoutPending(t *testing.T) {
	f := newFixture(t)
	f.mustStart(t)

	_, resp := f.post(t, "/restart confirm")
	assert.False(t, resp.Success)
	assert.NotNil(t, f.loadCharacter(t))
}

func TestCommand_Help(t *testing.T) {
	f := newFixture(t)

	_, resp := f.post(t, "/help")
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "/start")
	assert.Contains(t, resp.Message, "/next-day")
}

func TestCommand_StoreErrorIs500(t *testing.T) {
	f := newFixture(t)
	f.store.GetErr = errors.New("disk on fire")

	code, resp := f.post(t, "/status")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.NotEmpty(t, resp.Error)
}
