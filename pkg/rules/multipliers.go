package rules

import "github.com/lunarbloom/courtship/pkg/character"

// applyScene applies the current scene's per-attribute multipliers.
// No scene set, or a scene missing from the catalog, is a no-op.
func applyScene(c *character.Character, res *Result, ctx Context) {
	if c.Scene == "" || ctx.Catalog == nil {
		return
	}
	scene, ok := ctx.Catalog.Scenes[c.Scene]
	if !ok {
		return
	}
	for k, f := range scene.Multipliers {
		if d, present := res.Effects[k]; present && d > 0 {
			res.Effects[k] = scale(d, f)
		}
	}
}

// Mood bands and their multipliers. Applied to positive deltas only:
// a bad mood dampens gains but never deepens losses.
func moodFactor(gauge int) float64 {
	switch {
	case gauge < 20:
		return 0.7
	case gauge < 40:
		return 1.0
	case gauge < 70:
		return 1.2
	case gauge < 90:
		return 1.5
	default:
		return 2.0
	}
}

func applyMood(c *character.Character, res *Result, ctx Context) {
	f := moodFactor(c.MoodGauge)
	if c.MoodGauge >= 90 {
		res.SpecialDialogue = true
	}
	if f == 1.0 {
		return
	}
	for k, d := range res.Effects {
		if k == character.Mood || d <= 0 {
			continue
		}
		res.Effects[k] = scale(d, f)
	}
}

// applySeason applies the current season's multiplier table, then the
// festival bonus: on the eight festival days, each seasoned positive
// delta gains a further 20%, and attributes the season boosts that
// had no delta receive a flat +2.
func applySeason(c *character.Character, res *Result, ctx Context) {
	if ctx.Catalog == nil {
		return
	}
	season := ctx.Catalog.SeasonFor(c.GameDay)
	for k, f := range season.Multipliers {
		if d, present := res.Effects[k]; present && d > 0 {
			res.Effects[k] = scale(d, f)
		}
	}

	if _, festival := ctx.Catalog.FestivalFor(c.GameDay); !festival {
		return
	}
	for k, d := range res.Effects {
		if d > 0 {
			res.Effects[k] = scale(d, 1.2)
		}
	}
	for k := range season.Multipliers {
		if _, present := res.Effects[k]; !present {
			res.Effects[k] = 2
		}
	}
}
