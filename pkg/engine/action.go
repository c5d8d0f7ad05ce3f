package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/character"
	"github.com/lunarbloom/courtship/pkg/rules"
)

// ActionInput is a parsed "do action" command.
type ActionInput struct {
	Name    string // action name or alias
	Param   string // optional target part or modifier keyword
	Confirm bool   // "confirm" keyword present
}

// ActionResult reports what an accepted action did.
type ActionResult struct {
	Action          string
	Applied         map[character.Key]int
	Decayed         map[character.Key]int
	Notes           []string
	RiskOutcome     *bool
	SpecialDialogue bool
	StageAdvanced   *catalog.StageDef
	FlavorText      string
	DelayedNote     string
	DilemmaOffered  *character.PendingEvent
	AutoAdvanced    *DayResult

	// Preview is set when a confirmation-gated action was invoked
	// without the confirm keyword: nothing was applied and the
	// would-be effects are described instead.
	Preview string
}

// ResolveAction runs the full action state machine: preconditions
// fail fast with no mutation; on acceptance the effects run through
// the modifier pipeline, budgets are consumed, and post-action hooks
// (evolution, flavor moments, delayed consequences, dilemma roll)
// fire.
func (e *Engine) ResolveAction(ctx context.Context, c *character.Character, in ActionInput) (*ActionResult, error) {
	if c.Ended {
		return nil, reject(RejectEnded, "The story is over. Use /ending to see how it turned out, or /restart to begin again.")
	}

	action, ok := e.Catalog.FindAction(strings.ToLower(in.Name))
	if !ok {
		return nil, reject(RejectUnknown, fmt.Sprintf("No such interaction: %q. Try /help.", in.Name))
	}

	result := &ActionResult{Action: action.Name}
	now := e.now()

	// Idle auto-advance: a fresh interaction after a long absence on
	// an exhausted budget silently rolls the day forward first.
	if c.DailyInteractions >= c.DailyLimit() && now.Sub(c.LastInteraction) >= 20*time.Hour {
		day, err := e.AdvanceDay(ctx, c)
		if err == nil {
			result.AutoAdvanced = day
		}
	}

	// Precondition chain, in fixed order. Every rejection leaves the
	// character untouched.
	if c.EvolutionStage < action.MinStage {
		stage, _ := e.Catalog.FindStage(action.MinStage)
		title := fmt.Sprintf("stage %d", action.MinStage)
		if stage != nil {
			title = stage.Title
		}
		return nil, reject(RejectStageGate,
			fmt.Sprintf("She's not ready for that. %q unlocks once you're %s.", action.Name, title))
	}

	for _, req := range action.Requirements {
		if !req.Met(c) {
			return nil, reject(RejectRequirements,
				fmt.Sprintf("Not yet: %q needs %s.", action.Name, req.String()))
		}
	}

	if remaining, cooling := c.OnCooldown(action.Name, action.Cooldown, now); cooling {
		return nil, reject(RejectCooldown,
			fmt.Sprintf("Too soon to %q again. Wait %s.", action.Name, remaining.Round(time.Second)))
	}

	if action.NeedsConfirm && !in.Confirm {
		if e.Confirmations != nil {
			if err := e.Confirmations.PutPending(ctx, c.StorageKey(), action.Name, ConfirmationTTL); err != nil {
				return nil, fmt.Errorf("failed to store pending confirmation: %w", err)
			}
		}
		result.Preview = e.previewAction(c, action)
		return result, nil
	}
	if action.NeedsConfirm && in.Confirm && e.Confirmations != nil {
		pending, err := e.Confirmations.TakePending(ctx, c.StorageKey(), action.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check pending confirmation: %w", err)
		}
		if !pending {
			return nil, reject(RejectExpired,
				fmt.Sprintf("Nothing to confirm. Use %q first, then confirm within %s.", action.Name, ConfirmationTTL))
		}
	}

	if c.DailyInteractions >= c.DailyLimit() {
		return nil, reject(RejectDailyBudget,
			fmt.Sprintf("She's had enough for today (%d/%d). Use /next-day to move on.", c.DailyInteractions, c.DailyLimit()))
	}

	if c.ActionPoints < action.APCost {
		return nil, reject(RejectActionPoints,
			fmt.Sprintf("Not enough action points (%d needed, %d left).", action.APCost, c.ActionPoints))
	}

	if action.CoinCost > 0 && c.Coins < action.CoinCost {
		return nil, reject(RejectCoins,
			fmt.Sprintf("Not enough coins (%d needed, %d held).", action.CoinCost, c.Coins))
	}

	// Preconditions passed. Passive decay ticks before effects.
	result.Decayed = c.ApplyDecay(now)

	raw, noteFromParam := e.baseEffects(c, action, in.Param)
	if noteFromParam != "" {
		result.Notes = append(result.Notes, noteFromParam)
	}

	pipelineResult := rules.Run(c, raw, rules.Context{
		Action:   action,
		Catalog:  e.Catalog,
		Rand:     e.Rand,
		Progress: c.TrainingProgress(action.Name),
	})
	result.Notes = append(result.Notes, pipelineResult.Notes...)
	result.RiskOutcome = pipelineResult.RiskOutcome
	result.SpecialDialogue = pipelineResult.SpecialDialogue
	result.Applied = pipelineResult.Effects

	if dropped := c.ApplyDeltas(pipelineResult.Effects); dropped > 0 && e.Logger != nil {
		e.Logger.Debug("Filtered unknown attribute keys from action effects",
			"action", action.Name, "dropped", dropped)
	}

	// Budgets and bookkeeping.
	c.DailyInteractions++
	c.ActionPoints -= action.APCost
	if action.CoinCost > 0 {
		c.Coins -= action.CoinCost
	}
	if action.Cooldown > 0 {
		c.SetCooldown(action.Name, now)
	}
	if action.Training != nil {
		c.AddTrainingProgress(action.Name, action.Training.Step)
	}
	c.LastAction = action.Name
	c.LastInteraction = now
	c.UpdatedAt = now

	if stage := e.checkEvolution(c); stage != nil {
		result.StageAdvanced = stage
	}

	if moment := e.rollFlavorMoment(c); moment != nil {
		result.FlavorText = moment.Text
		if len(moment.Effects) > 0 {
			c.ApplyDeltas(moment.Effects)
		}
	}

	if action.Delayed != nil {
		c.Delayed = append(c.Delayed, character.DelayedConsequence{
			DueDay:      c.GameDay + action.Delayed.AfterDays,
			Description: action.Delayed.Description,
			Effects:     action.Delayed.Effects,
		})
		result.DelayedNote = "Something about this will linger."
	}

	if dilemma := e.maybeTriggerDilemma(c, now); dilemma != nil {
		result.DilemmaOffered = dilemma
	}

	return result, nil
}

// baseEffects computes the raw delta map for an action, resolving an
// optional target-part or modifier-keyword refinement. A gated
// sub-effect whose gate fails contributes nothing but does not reject
// the action.
func (e *Engine) baseEffects(c *character.Character, action *catalog.Action, param string) (map[character.Key]int, string) {
	out := make(map[character.Key]int, len(action.Effects))
	for k, v := range action.Effects {
		out[k] = v
	}
	if param == "" {
		return out, ""
	}

	param = strings.ToLower(param)
	sub, ok := action.Parts[param]
	if !ok {
		sub, ok = action.Keywords[param]
	}
	if !ok {
		return out, fmt.Sprintf("(%q isn't something %q knows; using the plain version)", param, action.Name)
	}
	if sub.Gate != nil && !sub.Gate.Met(c) {
		return out, fmt.Sprintf("(not ready for %q yet; using the plain version)", param)
	}
	for k, v := range sub.Effects {
		out[k] += v
	}
	return out, ""
}

// previewAction describes the would-be effects of a confirmation-gated
// action without applying anything.
func (e *Engine) previewAction(c *character.Character, action *catalog.Action) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q is a big step. Repeat with 'confirm' within %s to go through with it.\n",
		action.Name, ConfirmationTTL)

	if action.Risk != nil {
		chance := rules.SuccessChance(c, action.Risk)
		fmt.Fprintf(&sb, "Estimated odds: %.0f%%.\n", chance*100)
		fmt.Fprintf(&sb, "If it lands: %s\n", formatDeltas(action.Risk.SuccessEffects))
		fmt.Fprintf(&sb, "If it doesn't: %s", formatDeltas(action.Risk.FailureEffects))
		return sb.String()
	}

	fmt.Fprintf(&sb, "Expected: %s", formatDeltas(action.Effects))
	return sb.String()
}

// rollFlavorMoment picks at most one post-action flavor moment whose
// conditions hold and whose probability roll passes.
func (e *Engine) rollFlavorMoment(c *character.Character) *catalog.FlavorMoment {
	for i := range e.Catalog.FlavorMoments {
		m := &e.Catalog.FlavorMoments[i]
		eligible := true
		for _, req := range m.When {
			if !req.Met(c) {
				eligible = false
				break
			}
		}
		if eligible && e.Rand.Float64() < m.Probability {
			return m
		}
	}
	return nil
}

// formatDeltas renders a delta map in stable attribute order.
func formatDeltas(deltas map[character.Key]int) string {
	if len(deltas) == 0 {
		return "nothing measurable"
	}
	keys := make([]string, 0, len(deltas))
	for k := range deltas {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %+d", k, deltas[character.Key(k)]))
	}
	return strings.Join(parts, ", ")
}
