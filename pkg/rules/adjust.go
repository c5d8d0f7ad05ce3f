package rules

import (
	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/character"
)

// applyAdjustRules evaluates the declarative conflict/synergy table.
// Every matching rule multiplies the current delta of each of its
// target attributes by its factor; multiple rules stack.
func applyAdjustRules(c *character.Character, res *Result, ctx Context) {
	if ctx.Catalog == nil {
		return
	}
	for _, rule := range ctx.Catalog.Rules {
		if !rule.Applies(c) {
			continue
		}
		touched := false
		for _, target := range rule.Targets {
			d, present := res.Effects[target]
			if !present || d <= 0 {
				continue
			}
			res.Effects[target] = scale(d, rule.Factor)
			touched = true
		}
		if touched && rule.Note != "" && rule.Kind == catalog.RuleSynergy {
			res.Notes = append(res.Notes, rule.Note)
		}
	}
}
