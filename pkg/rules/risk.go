package rules

import (
	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/character"
)

const (
	minRiskChance = 0.05
	maxRiskChance = 0.95
)

// SuccessChance folds a risky action's modifier bonuses over its base
// chance and clamps the result to [0.05, 0.95]. Both the actual roll
// and the confirmation preview read their odds from here.
func SuccessChance(c *character.Character, risk *catalog.RiskConfig) float64 {
	chance := risk.BaseChance
	for _, m := range risk.Modifiers {
		if m.When.Met(c) {
			chance += m.Bonus
		}
	}
	if chance < minRiskChance {
		chance = minRiskChance
	}
	if chance > maxRiskChance {
		chance = maxRiskChance
	}
	return chance
}

// applyRisk draws a success/failure outcome for risky actions. The
// outcome REPLACES the effect map entirely: a risky action's final
// effects come only from its success or failure set, never from the
// base effects.
func applyRisk(c *character.Character, res *Result, ctx Context) {
	if ctx.Action == nil || ctx.Action.Risk == nil {
		return
	}
	risk := ctx.Action.Risk

	success := ctx.Rand.Float64() < SuccessChance(c, risk)
	res.RiskOutcome = &success
	if success {
		res.Effects = copyDeltas(risk.SuccessEffects)
		return
	}
	res.Effects = copyDeltas(risk.FailureEffects)
	if risk.FailureWarning != "" {
		res.Notes = append(res.Notes, risk.FailureWarning)
	}
}
