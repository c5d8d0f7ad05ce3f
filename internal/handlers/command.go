package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lunarbloom/courtship/internal/services"
	"github.com/lunarbloom/courtship/internal/storage"
	"github.com/lunarbloom/courtship/pkg/character"
	"github.com/lunarbloom/courtship/pkg/chat"
	"github.com/lunarbloom/courtship/pkg/engine"
	"github.com/lunarbloom/courtship/pkg/prompts"
)

const narrativeTimeout = 15 * time.Second

// CommandHandler is the single entry point for the bot host: it parses
// slash commands, serializes per-character access, runs the engine, and
// persists the result before any narrative call.
type CommandHandler struct {
	store         storage.CharacterStore
	engine        *engine.Engine
	confirmations engine.ConfirmationStore
	llm           services.LLMService
	logger        *slog.Logger
	locks         *keyedMutex
}

// NewCommandHandler creates the command handler.
func NewCommandHandler(store storage.CharacterStore, eng *engine.Engine, confirmations engine.ConfirmationStore, llm services.LLMService, logger *slog.Logger) *CommandHandler {
	return &CommandHandler{
		store:         store,
		engine:        eng,
		confirmations: confirmations,
		llm:           llm,
		logger:        logger,
		locks:         newKeyedMutex(),
	}
}

// ServeHTTP handles POST /v1/command.
func (h *CommandHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		h.write(w, chat.CommandResponse{Error: "Method not allowed. Only POST is supported."})
		return
	}

	var req chat.CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid command request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		h.write(w, chat.CommandResponse{Error: "Invalid request body. Expected JSON with user_id, chat_id and text."})
		return
	}
	if err := req.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.write(w, chat.CommandResponse{Error: err.Error()})
		return
	}

	cmd := chat.Parse(req.Text)
	if cmd.Type == chat.CmdNone {
		h.write(w, chat.CommandResponse{Success: true, Intercept: false})
		return
	}

	// One command at a time per character. Commands for other
	// characters proceed concurrently.
	unlock := h.locks.Lock(req.UserID + ":" + req.ChatID)
	defer unlock()

	resp, err := h.dispatch(r.Context(), &req, cmd)
	if err != nil {
		h.logger.Error("Command failed", "error", err, "text", req.Text, "user_id", req.UserID)
		w.WriteHeader(http.StatusInternalServerError)
		h.write(w, chat.CommandResponse{Error: "Something went wrong. Please try again.", Intercept: true})
		return
	}
	h.write(w, resp)
}

func (h *CommandHandler) write(w http.ResponseWriter, resp chat.CommandResponse) {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Error encoding command response", "error", err)
	}
}

func (h *CommandHandler) dispatch(ctx context.Context, req *chat.CommandRequest, cmd chat.Command) (chat.CommandResponse, error) {
	switch cmd.Type {
	case chat.CmdStart:
		return h.handleStart(ctx, req, cmd)
	case chat.CmdDo:
		return h.handleDo(ctx, req, cmd)
	case chat.CmdGo:
		return h.handleGo(ctx, req, cmd)
	case chat.CmdNextDay:
		return h.handleNextDay(ctx, req)
	case chat.CmdChoice:
		return h.handleChoice(ctx, req, cmd)
	case chat.CmdStatus:
		return h.handleStatus(ctx, req)
	case chat.CmdEnding:
		return h.handleEnding(ctx, req)
	case chat.CmdEndings:
		return h.handleEndings(ctx, req)
	case chat.CmdShop:
		return h.handleShop(ctx, req)
	case chat.CmdBuy:
		return h.handleBuy(ctx, req, cmd)
	case chat.CmdRestart:
		return h.handleRestart(ctx, req, cmd)
	case chat.CmdHelp:
		return h.handleHelp(), nil
	}
	return chat.CommandResponse{Success: true, Intercept: false}, nil
}

// load fetches the character or produces the standard "no character"
// response. A nil response pointer means the character was found.
func (h *CommandHandler) load(ctx context.Context, req *chat.CommandRequest) (*character.Character, *chat.CommandResponse, error) {
	c, err := h.store.GetCharacter(ctx, req.UserID, req.ChatID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load character: %w", err)
	}
	if c == nil {
		resp := rejectResponse("No companion here yet. Use /start <personality> to begin. Personalities: " +
			strings.Join(character.PersonalityNames(), ", ") + ".")
		return nil, &resp, nil
	}
	return c, nil, nil
}

func rejectResponse(message string) chat.CommandResponse {
	return chat.CommandResponse{Success: false, Message: message, Intercept: true}
}

func okResponse(message string) chat.CommandResponse {
	return chat.CommandResponse{Success: true, Message: message, Intercept: true}
}

func (h *CommandHandler) handleStart(ctx context.Context, req *chat.CommandRequest, cmd chat.Command) (chat.CommandResponse, error) {
	if len(cmd.Args) == 0 {
		var sb strings.Builder
		sb.WriteString("Pick a personality with /start <name>:\n")
		for _, name := range character.PersonalityNames() {
			fmt.Fprintf(&sb, "  %s: %s\n", name, character.Personalities[name].Description)
		}
		return rejectResponse(sb.String()), nil
	}

	c, err := character.New(req.UserID, req.ChatID, cmd.Args[0], time.Now())
	if err != nil {
		return rejectResponse(fmt.Sprintf("Unknown personality %q. Personalities: %s.",
			cmd.Args[0], strings.Join(character.PersonalityNames(), ", "))), nil
	}

	if err := h.store.CreateCharacter(ctx, c); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return rejectResponse("You already have a companion in this chat. Use /restart to start over."), nil
		}
		return chat.CommandResponse{}, fmt.Errorf("failed to create character: %w", err)
	}

	if err := h.store.AppendLog(ctx, req.UserID, req.ChatID, "start", "story began ("+c.Personality+")"); err != nil {
		h.logger.Warn("Failed to append start log", "error", err)
	}

	p := character.Personalities[c.Personality]
	msg := fmt.Sprintf("Day 1 of %d. She's %s: %s\nYou have %d interactions today. Try /talk, or /help for everything else.",
		character.FinalDay, chat.DisplayName(p.Name), p.Description, c.DailyLimit())
	return okResponse(msg), nil
}

func (h *CommandHandler) handleDo(ctx context.Context, req *chat.CommandRequest, cmd chat.Command) (chat.CommandResponse, error) {
	if len(cmd.Args) == 0 {
		return rejectResponse("Do what? Try /do talk, or just /talk."), nil
	}

	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	in := engine.ActionInput{Name: cmd.Args[0], Confirm: cmd.Confirm}
	if len(cmd.Args) > 1 {
		in.Param = cmd.Args[1]
	}

	res, err := h.engine.ResolveAction(ctx, c, in)
	if err != nil {
		if r, ok := engine.AsRejection(err); ok {
			return rejectResponse(r.Message), nil
		}
		return chat.CommandResponse{}, err
	}

	// A confirmation preview mutates nothing; no save, no narrative.
	if res.Preview != "" {
		return okResponse(res.Preview), nil
	}

	if err := h.store.SaveCharacter(ctx, c); err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to save character: %w", err)
	}
	if err := h.store.AppendLog(ctx, req.UserID, req.ChatID, "action", res.Action); err != nil {
		h.logger.Warn("Failed to append action log", "error", err)
	}

	// Things bought and given stay with her.
	if action, ok := h.engine.Catalog.FindAction(res.Action); ok && action.CoinCost > 0 {
		item := res.Action
		if in.Param != "" {
			item = in.Param
		}
		if err := h.store.AddInventoryItem(ctx, req.UserID, req.ChatID, item); err != nil {
			h.logger.Warn("Failed to record inventory item", "error", err)
		}
	}

	return okResponse(h.actionMessage(ctx, c, res)), nil
}

// actionMessage assembles the user-facing result: narrative first when
// the LLM cooperates, mechanical summary always.
func (h *CommandHandler) actionMessage(ctx context.Context, c *character.Character, res *engine.ActionResult) string {
	var sb strings.Builder

	if narrative := h.narrate(ctx, c, res); narrative != "" {
		sb.WriteString(narrative)
		sb.WriteString("\n\n")
	}

	if res.AutoAdvanced != nil {
		fmt.Fprintf(&sb, "(A new day: day %d.)\n", res.AutoAdvanced.Day)
	}
	if res.RiskOutcome != nil {
		if *res.RiskOutcome {
			sb.WriteString("It worked.\n")
		} else {
			sb.WriteString("It backfired.\n")
		}
	}
	if len(res.Applied) > 0 {
		fmt.Fprintf(&sb, "%s\n", describeApplied(res.Applied))
	}
	for _, n := range res.Notes {
		fmt.Fprintf(&sb, "%s\n", n)
	}
	if res.SpecialDialogue {
		sb.WriteString("Her mood is radiant; she says something she's never said before.\n")
	}
	if res.StageAdvanced != nil {
		fmt.Fprintf(&sb, "Something shifted between you. She is now: %s.\n", res.StageAdvanced.Title)
	}
	if res.FlavorText != "" {
		fmt.Fprintf(&sb, "%s\n", res.FlavorText)
	}
	if res.DelayedNote != "" {
		fmt.Fprintf(&sb, "%s\n", res.DelayedNote)
	}
	if res.DilemmaOffered != nil {
		sb.WriteString("\n")
		sb.WriteString(formatPending(res.DilemmaOffered))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// narrate asks the LLM for flavor text, feeding back the last few
// remembered moments for continuity. Mechanics are already saved;
// failure here degrades to the mechanical summary only.
func (h *CommandHandler) narrate(ctx context.Context, c *character.Character, res *engine.ActionResult) string {
	if h.llm == nil {
		return ""
	}
	nctx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	memories, err := h.store.ListMemories(nctx, c.UserID, c.ChatID, 3)
	if err != nil {
		h.logger.Warn("Failed to load memories for prompt", "error", err)
	}

	prompt := prompts.New().
		WithCharacter(c).
		WithAction(res.Action).
		WithApplied(res.Applied).
		WithNotes(res.Notes).
		WithRiskOutcome(res.RiskOutcome).
		WithMemories(memories).
		Build()

	narrative, err := h.llm.GenerateNarrative(nctx, prompts.SystemPrompt, prompt)
	if err != nil {
		h.logger.Warn("Narrative generation failed", "error", err, "action", res.Action)
		return ""
	}

	narrative = strings.TrimSpace(narrative)
	if narrative != "" {
		if err := h.store.AddMemory(ctx, c.UserID, c.ChatID, narrative); err != nil {
			h.logger.Warn("Failed to store memory", "error", err)
		}
	}
	return narrative
}

func (h *CommandHandler) handleGo(ctx context.Context, req *chat.CommandRequest, cmd chat.Command) (chat.CommandResponse, error) {
	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	if len(cmd.Args) == 0 {
		names := make([]string, 0, len(h.engine.Catalog.Scenes))
		for name, scene := range h.engine.Catalog.Scenes {
			if c.EvolutionStage >= scene.MinStage {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		return rejectResponse("Go where? Places you can visit: " + strings.Join(names, ", ") + "."), nil
	}

	name := cmd.Args[0]
	scene, ok := h.engine.Catalog.Scenes[name]
	if !ok {
		return rejectResponse(fmt.Sprintf("There's no %q around here.", name)), nil
	}
	if c.EvolutionStage < scene.MinStage {
		return rejectResponse(fmt.Sprintf("She won't go to the %s with you yet.", name)), nil
	}

	c.Scene = name
	c.UpdatedAt = time.Now()
	if err := h.store.SaveCharacter(ctx, c); err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to save character: %w", err)
	}
	return okResponse(fmt.Sprintf("You head to the %s. %s", name, scene.Description)), nil
}

func (h *CommandHandler) handleNextDay(ctx context.Context, req *chat.CommandRequest) (chat.CommandResponse, error) {
	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	res, err := h.engine.AdvanceDay(ctx, c)
	if err != nil {
		if r, ok := engine.AsRejection(err); ok {
			return rejectResponse(r.Message), nil
		}
		return chat.CommandResponse{}, err
	}

	if err := h.store.SaveCharacter(ctx, c); err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to save character: %w", err)
	}
	if err := h.store.AppendLog(ctx, req.UserID, req.ChatID, "day", fmt.Sprintf("day %d", res.Day)); err != nil {
		h.logger.Warn("Failed to append day log", "error", err)
	}

	if res.Ended {
		return okResponse(fmt.Sprintf("Day %d was the last. The story has reached its end. Use /ending to see how it turned out.", res.Day)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Day %d of %d (%s).\n", res.Day, character.FinalDay, res.Season)
	if res.SeasonFlavor != "" {
		fmt.Fprintf(&sb, "%s\n", res.SeasonFlavor)
	}
	if res.Festival != "" {
		fmt.Fprintf(&sb, "Today is the %s!\n", chat.DisplayName(res.Festival))
	}
	if res.BudgetWarning != "" {
		fmt.Fprintf(&sb, "%s\n", res.BudgetWarning)
	}
	if res.WeeklySummary != "" {
		fmt.Fprintf(&sb, "%s\n", res.WeeklySummary)
	}
	if res.Income > 0 {
		fmt.Fprintf(&sb, "She earned %d coins at work.\n", res.Income)
	}
	if res.Promotion != "" {
		fmt.Fprintf(&sb, "She got promoted: %s!\n", res.Promotion)
	}
	for _, con := range res.Consequences {
		fmt.Fprintf(&sb, "%s\n", con)
	}
	if res.StageAdvanced != nil {
		fmt.Fprintf(&sb, "Something shifted between you. She is now: %s.\n", res.StageAdvanced.Title)
	}
	if res.Event != nil {
		sb.WriteString("\n")
		sb.WriteString(formatPending(res.Event))
	}
	return okResponse(strings.TrimRight(sb.String(), "\n")), nil
}

func (h *CommandHandler) handleChoice(ctx context.Context, req *chat.CommandRequest, cmd chat.Command) (chat.CommandResponse, error) {
	if len(cmd.Args) == 0 {
		return rejectResponse("Choose which option? Use /choice <number>."), nil
	}
	n, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return rejectResponse("That's not a number. Use /choice <number>."), nil
	}

	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	res, err := h.engine.ResolveChoice(ctx, c, n)
	if err != nil {
		if r, ok := engine.AsRejection(err); ok {
			return rejectResponse(r.Message), nil
		}
		return chat.CommandResponse{}, err
	}

	if err := h.store.SaveCharacter(ctx, c); err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to save character: %w", err)
	}

	if res.Expired {
		return okResponse("The moment has passed; she's already moved on."), nil
	}

	var sb strings.Builder
	if res.ResultText != "" {
		fmt.Fprintf(&sb, "%s\n", res.ResultText)
	}
	if len(res.Applied) > 0 {
		fmt.Fprintf(&sb, "%s\n", describeApplied(res.Applied))
	}
	if err := h.store.AppendLog(ctx, req.UserID, req.ChatID, res.Source, res.Choice); err != nil {
		h.logger.Warn("Failed to append choice log", "error", err)
	}
	return okResponse(strings.TrimRight(sb.String(), "\n")), nil
}

func (h *CommandHandler) handleStatus(ctx context.Context, req *chat.CommandRequest) (chat.CommandResponse, error) {
	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}
	return okResponse(statusView(c, h.engine)), nil
}

// statusView renders the player-facing scoreboard. Hidden drive axes
// stay hidden; only the relationship axes get meters.
func statusView(c *character.Character, eng *engine.Engine) string {
	var sb strings.Builder

	season := eng.Catalog.SeasonFor(c.GameDay)
	fmt.Fprintf(&sb, "Day %d/%d (%s)", c.GameDay, character.FinalDay, season.Name)
	if c.Scene != "" {
		fmt.Fprintf(&sb, " at the %s", c.Scene)
	}
	sb.WriteString("\n")

	stageTitle := fmt.Sprintf("stage %d", c.EvolutionStage)
	if stage, ok := eng.Catalog.FindStage(c.EvolutionStage); ok {
		stageTitle = stage.Title
	}
	fmt.Fprintf(&sb, "%s (%s), %s\n", stageTitle, c.RelationshipStage(), chat.DisplayName(c.Personality))

	for _, k := range []character.Key{character.Affection, character.Intimacy, character.Trust, character.Desire} {
		v, _ := c.Get(k)
		fmt.Fprintf(&sb, "%-10s %s %d\n", chat.DisplayName(string(k)), chat.Bar(v), v)
	}
	fmt.Fprintf(&sb, "%-10s %s %d\n", "Mood", chat.Bar(c.MoodGauge), c.MoodGauge)

	career := c.Career
	if tier, ok := eng.Catalog.Careers[c.Career]; ok {
		career = tier.Title
	}
	fmt.Fprintf(&sb, "Career: %s (day %d). Coins: %d. AP: %d/%d. Interactions: %d/%d.",
		career, c.CareerDay, c.Coins, c.ActionPoints, character.MaxActionPoints,
		c.DailyInteractions, c.DailyLimit())

	if c.ActiveEvent != nil {
		sb.WriteString("\n\nSomething is waiting on your choice:\n")
		sb.WriteString(formatPending(c.ActiveEvent))
	} else if c.PendingDilemma != nil {
		sb.WriteString("\n\nShe's waiting on your answer:\n")
		sb.WriteString(formatPending(c.PendingDilemma))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (h *CommandHandler) handleEnding(ctx context.Context, req *chat.CommandRequest) (chat.CommandResponse, error) {
	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	end := h.engine.EvaluateEnding(c)
	if c.Ended {
		return okResponse(fmt.Sprintf("Ending: %s\n%s", end.Title, end.Description)), nil
	}
	return okResponse(fmt.Sprintf("If the story ended today: %s\n%s\n(Day %d of %d. The real ending comes on the final day.)",
		end.Title, end.Description, c.GameDay, character.FinalDay)), nil
}

func (h *CommandHandler) handleEndings(ctx context.Context, req *chat.CommandRequest) (chat.CommandResponse, error) {
	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	matches := h.engine.PreviewEndings(c)
	var sb strings.Builder
	sb.WriteString("Endings within reach right now:\n")
	for _, end := range matches {
		fmt.Fprintf(&sb, "  %s: %s\n", end.Title, end.Description)
	}
	return okResponse(strings.TrimRight(sb.String(), "\n")), nil
}

func (h *CommandHandler) handleShop(ctx context.Context, req *chat.CommandRequest) (chat.CommandResponse, error) {
	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	owned, err := h.store.ListCosmetics(ctx, req.UserID, req.ChatID)
	if err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to list cosmetics: %w", err)
	}
	ownedSet := make(map[string]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Shop (you have %d coins):\n", c.Coins)
	for _, item := range h.engine.Catalog.ShopItems {
		marker := ""
		if ownedSet[item.ID] {
			marker = " (owned)"
		}
		fmt.Fprintf(&sb, "  %s, %d coins%s: %s\n", item.Name, item.Price, marker, item.Description)
	}
	sb.WriteString("Use /buy <item> to buy a gift for her.")
	return okResponse(sb.String()), nil
}

func (h *CommandHandler) handleBuy(ctx context.Context, req *chat.CommandRequest, cmd chat.Command) (chat.CommandResponse, error) {
	if len(cmd.Args) == 0 {
		return rejectResponse("Buy what? Use /shop to see what's for sale."), nil
	}

	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	item, ok := h.engine.Catalog.FindShopItem(cmd.Args[0])
	if !ok {
		return rejectResponse(fmt.Sprintf("Nothing called %q for sale. Use /shop to browse.", cmd.Args[0])), nil
	}
	if c.Coins < item.Price {
		return rejectResponse(fmt.Sprintf("Not enough coins: %s costs %d, you have %d.", item.Name, item.Price, c.Coins)), nil
	}

	c.Coins -= item.Price
	c.ApplyDeltas(map[character.Key]int{character.Affection: 2, character.Mood: 5})
	c.UpdatedAt = time.Now()

	if err := h.store.SaveCharacter(ctx, c); err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to save character: %w", err)
	}
	if err := h.store.AddCosmetic(ctx, req.UserID, req.ChatID, item.ID); err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to record purchase: %w", err)
	}

	return okResponse(fmt.Sprintf("You bought the %s for %d coins. She loves it.", item.Name, item.Price)), nil
}

func (h *CommandHandler) handleRestart(ctx context.Context, req *chat.CommandRequest, cmd chat.Command) (chat.CommandResponse, error) {
	c, resp, err := h.load(ctx, req)
	if err != nil || resp != nil {
		if resp != nil {
			return *resp, nil
		}
		return chat.CommandResponse{}, err
	}

	key := c.StorageKey()
	if !cmd.Confirm {
		if err := h.confirmations.PutPending(ctx, key, "restart", engine.ConfirmationTTL); err != nil {
			return chat.CommandResponse{}, fmt.Errorf("failed to store restart confirmation: %w", err)
		}
		return okResponse(fmt.Sprintf(
			"This erases everything: her, your %d days together, all of it. Send /restart confirm within %s if you're sure.",
			c.GameDay, engine.ConfirmationTTL)), nil
	}

	pending, err := h.confirmations.TakePending(ctx, key, "restart")
	if err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to check restart confirmation: %w", err)
	}
	if !pending {
		return rejectResponse("Nothing to confirm. Use /restart first, then confirm within the window."), nil
	}

	if err := h.store.DeleteCharacter(ctx, req.UserID, req.ChatID); err != nil {
		return chat.CommandResponse{}, fmt.Errorf("failed to delete character: %w", err)
	}
	return okResponse("It's done. Use /start <personality> when you're ready to begin again."), nil
}

func (h *CommandHandler) handleHelp() chat.CommandResponse {
	return okResponse(strings.TrimSpace(`
Commands:
  /start <personality>  begin a new story
  /<action> [target]    interact (try /talk, /compliment, /gift, /hug)
  /go <place>           change scenes
  /next-day             end the day
  /choice <n>           answer an event or dilemma
  /status               see how things stand
  /shop, /buy <item>    spend coins on gifts
  /ending, /endings     where this is heading
  /restart              wipe everything and start over
  /help                 this text`))
}

// formatPending renders an event or dilemma with numbered choices.
func formatPending(pe *character.PendingEvent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", pe.Description)
	for i, ch := range pe.Choices {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, ch.Text)
	}
	sb.WriteString("Answer with /choice <number>.")
	return sb.String()
}

// describeApplied renders final deltas in stable order.
func describeApplied(deltas map[character.Key]int) string {
	keys := make([]string, 0, len(deltas))
	for k := range deltas {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %+d", chat.DisplayName(k), deltas[character.Key(k)]))
	}
	return strings.Join(parts, ", ")
}
