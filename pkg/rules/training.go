package rules

import (
	"fmt"

	"github.com/lunarbloom/courtship/pkg/character"
)

// applyTraining scales a trainable action's positive effects upward
// with accumulated per-action progress: +1% effect per point of
// progress, up to double at 100. Milestone thresholds crossed by the
// *next* use emit their one-time unlock note.
func applyTraining(c *character.Character, res *Result, ctx Context) {
	if ctx.Action == nil || ctx.Action.Training == nil {
		return
	}

	factor := 1.0 + float64(ctx.Progress)/100.0
	for k, d := range res.Effects {
		if d > 0 {
			res.Effects[k] = scale(d, factor)
		}
	}

	// Milestones fire when this use pushes progress across the
	// threshold for the first time.
	next := character.Clamp(ctx.Progress+ctx.Action.Training.Step, 0, 100)
	for threshold, note := range ctx.Action.Training.Milestones {
		if ctx.Progress < threshold && next >= threshold {
			res.Notes = append(res.Notes, fmt.Sprintf("Training milestone: %s", note))
		}
	}
}
