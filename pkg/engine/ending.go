package engine

import (
	"sort"

	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/character"
)

// endingMatches checks every listed attribute range plus the optional
// career and season conditions.
func (e *Engine) endingMatches(c *character.Character, end *catalog.Ending) bool {
	for k, rng := range end.Ranges {
		v, ok := c.Get(k)
		if !ok || !rng.Contains(v) {
			return false
		}
	}
	if end.Career != "" && c.Career != end.Career {
		return false
	}
	if end.Season != "" && e.Catalog.SeasonFor(c.GameDay).Name != end.Season {
		return false
	}
	return true
}

// EvaluateEnding selects exactly one ending: the highest-priority
// catalog entry whose predicate fully holds. The catalog guarantees a
// universally true fallback, so this never fails.
func (e *Engine) EvaluateEnding(c *character.Character) catalog.Ending {
	endings := make([]catalog.Ending, len(e.Catalog.Endings))
	copy(endings, e.Catalog.Endings)
	sort.SliceStable(endings, func(i, j int) bool {
		return endings[i].Priority > endings[j].Priority
	})
	for _, end := range endings {
		if e.endingMatches(c, &end) {
			return end
		}
	}
	// Unreachable with a validated catalog; return the lowest
	// priority entry as a last resort.
	return endings[len(endings)-1]
}

// PreviewEndings returns every ending the current state matches,
// sorted by descending priority, for player-facing exploration.
func (e *Engine) PreviewEndings(c *character.Character) []catalog.Ending {
	var matches []catalog.Ending
	for _, end := range e.Catalog.Endings {
		if e.endingMatches(c, &end) {
			matches = append(matches, end)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority > matches[j].Priority
	})
	return matches
}
