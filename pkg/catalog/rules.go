package catalog

import "github.com/lunarbloom/courtship/pkg/character"

// RuleKind distinguishes the three forms of conflict/synergy
// adjustment.
type RuleKind string

const (
	// RuleSuppress dampens the target attribute's delta when the
	// condition holds (factor < 1).
	RuleSuppress RuleKind = "suppress"
	// RuleSynergy boosts the target attribute's delta when every
	// condition holds (factor > 1).
	RuleSynergy RuleKind = "synergy"
	// RulePassive is an absolute-threshold dampener that may cover
	// several target attributes at once.
	RulePassive RuleKind = "passive"
)

// AdjustRule is a declarative conflict/synergy rule. Conditions are
// requirements over the pre-action character state; Factor is a
// percentage multiplier applied to the current delta of each target
// attribute. Multiple matching rules stack multiplicatively.
type AdjustRule struct {
	ID      string          `json:"id"`
	Kind    RuleKind        `json:"kind"`
	When    []Requirement   `json:"when"`
	Targets []character.Key `json:"targets"`
	Factor  float64         `json:"factor"`
	Note    string          `json:"note,omitempty"`
}

// Applies reports whether every condition of the rule holds.
func (r AdjustRule) Applies(c *character.Character) bool {
	for _, req := range r.When {
		if !req.Met(c) {
			return false
		}
	}
	return len(r.When) > 0
}
