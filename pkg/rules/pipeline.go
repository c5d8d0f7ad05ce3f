// Package rules implements the ordered modifier pipeline that
// transforms an action's raw effect map before it is applied to a
// character. The pipeline is a pure function of the pre-action
// character state; mutation happens exactly once afterward, via
// character.ApplyDeltas.
package rules

import (
	"math/rand"

	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/character"
)

// Context carries the per-invocation inputs the pipeline stages need.
type Context struct {
	Action   *catalog.Action
	Catalog  *catalog.Catalog
	Rand     *rand.Rand
	// Progress is the character's pre-action training progress for
	// this action (0..100), already bumped by the resolver after the
	// pipeline runs, never inside it.
	Progress int
}

// Result is the pipeline output: the final delta map plus any
// user-facing notes the stages surfaced along the way.
type Result struct {
	Effects map[character.Key]int
	Notes   []string
	// RiskOutcome is set only for risky actions: true on success.
	RiskOutcome *bool
	// SpecialDialogue is set when the mood gauge is in its top band.
	SpecialDialogue bool
}

// Run threads the raw effect map through every stage in fixed order:
// training, risk, scene, mood, season/festival, conflict/synergy.
// Order matters: every stage reads the pre-action character state but
// only the delta map is threaded through. Stages that cannot apply
// are no-ops.
func Run(c *character.Character, raw map[character.Key]int, ctx Context) Result {
	res := Result{Effects: copyDeltas(raw)}

	applyTraining(c, &res, ctx)
	applyRisk(c, &res, ctx)
	applyScene(c, &res, ctx)
	applyMood(c, &res, ctx)
	applySeason(c, &res, ctx)
	applyAdjustRules(c, &res, ctx)
	applyGainBonuses(c, &res)

	return res
}

func copyDeltas(m map[character.Key]int) map[character.Key]int {
	out := make(map[character.Key]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// applyGainBonuses applies the persistent evolution-stage multipliers
// to positive deltas. Runs last so stage rewards compound on the fully
// modified value.
func applyGainBonuses(c *character.Character, res *Result) {
	if len(c.GainBonuses) == 0 {
		return
	}
	for k, d := range res.Effects {
		if d <= 0 {
			continue
		}
		if f, ok := c.GainBonuses[k]; ok && f > 0 {
			res.Effects[k] = scale(d, f)
		}
	}
}

// scale multiplies a delta by a factor, rounding toward zero but
// never rounding a non-zero positive delta down to zero.
func scale(d int, f float64) int {
	out := int(float64(d) * f)
	if out == 0 && d > 0 && f > 0 {
		out = 1
	}
	return out
}
