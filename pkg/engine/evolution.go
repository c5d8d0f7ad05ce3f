package engine

import (
	"strings"

	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/character"
)

// checkEvolution advances the relationship stage by exactly one step
// when every threshold of the next stage holds. Stages never regress
// and never skip. On advancement the stage's gain bonuses persist on
// the character and its rewards (scenes, traits) unlock.
func (e *Engine) checkEvolution(c *character.Character) *catalog.StageDef {
	next, ok := e.Catalog.FindStage(c.EvolutionStage + 1)
	if !ok {
		return nil // terminal stage
	}
	for _, req := range next.Thresholds {
		if !req.Met(c) {
			return nil
		}
	}

	c.EvolutionStage = next.Stage
	for k, f := range next.GainBonus {
		if c.GainBonuses == nil {
			c.GainBonuses = make(map[character.Key]float64)
		}
		// Later stages compound on earlier bonuses.
		if prev, exists := c.GainBonuses[k]; exists {
			c.GainBonuses[k] = prev * f
		} else {
			c.GainBonuses[k] = f
		}
	}
	for _, reward := range next.Rewards {
		if name, found := strings.CutPrefix(reward, "trait:"); found {
			c.AddTrait(name)
		}
		// scene: rewards need no state; scene gating reads MinStage.
	}
	return next
}
