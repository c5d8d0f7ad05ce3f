package catalog

import (
	"fmt"
	"time"

	"github.com/lunarbloom/courtship/pkg/character"
)

// CmpOp is a comparison operator used by requirement and rule
// conditions.
type CmpOp string

const (
	CmpGTE CmpOp = "gte"
	CmpLT  CmpOp = "lt"
)

// Requirement is a single attribute precondition on an action or
// career promotion: attribute OP value.
type Requirement struct {
	Attr  character.Key `json:"attr"`
	Op    CmpOp         `json:"op"`
	Value int           `json:"value"`
}

// Met evaluates the requirement against the character.
func (r Requirement) Met(c *character.Character) bool {
	v, ok := c.Get(r.Attr)
	if !ok {
		return false
	}
	switch r.Op {
	case CmpLT:
		return v < r.Value
	default:
		return v >= r.Value
	}
}

func (r Requirement) String() string {
	op := ">="
	if r.Op == CmpLT {
		op = "<"
	}
	return fmt.Sprintf("%s %s %d", r.Attr, op, r.Value)
}

// SubEffect is an optional target-part or modifier-keyword refinement
// of an action ("kiss cheek", "hug tightly"). A sub-effect may carry
// its own secondary gate.
type SubEffect struct {
	Effects map[character.Key]int `json:"effects"`
	Gate    *Requirement          `json:"gate,omitempty"`
}

// RiskConfig marks an action as risky. When present, the risk roll
// REPLACES the base effect map entirely with success or failure
// effects.
type RiskConfig struct {
	BaseChance     float64               `json:"base_chance"`
	Modifiers      []RiskModifier        `json:"modifiers,omitempty"`
	SuccessEffects map[character.Key]int `json:"success_effects"`
	FailureEffects map[character.Key]int `json:"failure_effects"`
	FailureWarning string                `json:"failure_warning,omitempty"`
}

// RiskModifier adjusts the success chance when its condition holds.
type RiskModifier struct {
	When  Requirement `json:"when"`
	Bonus float64     `json:"bonus"` // added to success chance, may be negative
}

// TrainingConfig marks an action as trainable: repeated use builds
// per-action progress that scales the effect upward.
type TrainingConfig struct {
	Step       int            `json:"step"`       // progress gained per use
	Milestones map[int]string `json:"milestones"` // one-time unlock messages by threshold
}

// DelayedConfig schedules a future negative consequence when the
// action is used.
type DelayedConfig struct {
	AfterDays   int                   `json:"after_days"`
	Description string                `json:"description"`
	Effects     map[character.Key]int `json:"effects"`
}

// Action is a player-invoked interaction definition. Effects are raw
// deltas fed to the modifier pipeline; Parts and Keywords refine them.
type Action struct {
	Name         string                `json:"name"`
	Aliases      []string              `json:"aliases,omitempty"`
	Description  string                `json:"description,omitempty"`
	MinStage     int                   `json:"min_stage,omitempty"` // evolution stage gate
	Requirements []Requirement         `json:"requirements,omitempty"`
	Effects      map[character.Key]int `json:"effects,omitempty"`
	Parts        map[string]SubEffect  `json:"parts,omitempty"`
	Keywords     map[string]SubEffect  `json:"keywords,omitempty"`
	APCost       int                   `json:"ap_cost"`
	CoinCost     int                   `json:"coin_cost,omitempty"`
	Cooldown     time.Duration         `json:"cooldown,omitempty"`
	NeedsConfirm bool                  `json:"needs_confirm,omitempty"` // two-step confirmation gate
	Risk         *RiskConfig           `json:"risk,omitempty"`
	Training     *TrainingConfig       `json:"training,omitempty"`
	Delayed      *DelayedConfig        `json:"delayed,omitempty"`
}

// Scene is a location with per-attribute gain multipliers.
type Scene struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	MinStage    int                       `json:"min_stage,omitempty"`
	Multipliers map[character.Key]float64 `json:"multipliers,omitempty"`
}

// ConditionRange is a closed attribute range used by event triggers
// and ending predicates.
type ConditionRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v falls inside the range.
func (cr ConditionRange) Contains(v int) bool {
	return v >= cr.Min && v <= cr.Max
}

// EventChoice is one branch of an event or dilemma template.
type EventChoice struct {
	Text       string                `json:"text"`
	Effects    map[character.Key]int `json:"effects,omitempty"`
	Requires   map[character.Key]int `json:"requires,omitempty"`
	ResultText string                `json:"result_text,omitempty"`
}

// Event is a random-event or choice-dilemma template. Triggers are
// closed attribute ranges plus an optional game-day window; each
// eligible template independently rolls Probability.
type Event struct {
	ID          string                           `json:"id"`
	Description string                           `json:"description"`
	Triggers    map[character.Key]ConditionRange `json:"triggers,omitempty"`
	DayMin      int                              `json:"day_min,omitempty"`
	DayMax      int                              `json:"day_max,omitempty"`
	Probability float64                          `json:"probability"`
	Choices     []EventChoice                    `json:"choices"`
}

// Eligible reports whether the template's trigger conditions hold.
func (e Event) Eligible(c *character.Character) bool {
	if e.DayMin > 0 && c.GameDay < e.DayMin {
		return false
	}
	if e.DayMax > 0 && c.GameDay > e.DayMax {
		return false
	}
	for k, rng := range e.Triggers {
		v, ok := c.Get(k)
		if !ok || !rng.Contains(v) {
			return false
		}
	}
	return true
}

// Instantiate converts the template into a pending event instance on
// a character.
func (e Event) Instantiate() *character.PendingEvent {
	pe := &character.PendingEvent{
		ID:          e.ID,
		Description: e.Description,
		Choices:     make([]character.PendingChoice, 0, len(e.Choices)),
	}
	for _, ch := range e.Choices {
		pc := character.PendingChoice{
			Text:       ch.Text,
			ResultText: ch.ResultText,
		}
		if len(ch.Effects) > 0 {
			pc.Effects = make(map[character.Key]int, len(ch.Effects))
			for k, v := range ch.Effects {
				pc.Effects[k] = v
			}
		}
		if len(ch.Requires) > 0 {
			pc.Requires = make(map[character.Key]int, len(ch.Requires))
			for k, v := range ch.Requires {
				pc.Requires[k] = v
			}
		}
		pe.Choices = append(pe.Choices, pc)
	}
	return pe
}

// FlavorMoment is a post-action narrative beat with a small direct
// side effect, rolled after an action resolves.
type FlavorMoment struct {
	ID          string                `json:"id"`
	When        []Requirement         `json:"when,omitempty"`
	Probability float64               `json:"probability"`
	Text        string                `json:"text"`
	Effects     map[character.Key]int `json:"effects,omitempty"`
}

// StageDef is one rung of the evolution ladder.
type StageDef struct {
	Stage      int                       `json:"stage"`
	Title      string                    `json:"title"`
	Thresholds []Requirement             `json:"thresholds,omitempty"` // empty only for stage 1
	GainBonus  map[character.Key]float64 `json:"gain_bonus,omitempty"`
	Rewards    []string                  `json:"rewards,omitempty"`
}

// CareerTier is one node of a career track.
type CareerTier struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	BaseIncome int               `json:"base_income"`
	Promotions []CareerPromotion `json:"promotions,omitempty"`
}

// CareerPromotion names a next-tier candidate and its thresholds.
// The first satisfied candidate wins when several exist.
type CareerPromotion struct {
	To         string        `json:"to"`
	MinTenure  int           `json:"min_tenure"` // days in the current tier
	Thresholds []Requirement `json:"thresholds,omitempty"`
}

// Ending is a named terminal outcome matched by priority-ordered
// closed attribute ranges. An ending with no ranges always matches
// (the fallback).
type Ending struct {
	ID          string                           `json:"id"`
	Title       string                           `json:"title"`
	Priority    int                              `json:"priority"`
	Ranges      map[character.Key]ConditionRange `json:"ranges,omitempty"`
	Career      string                           `json:"career,omitempty"` // required career tier, if any
	Season      string                           `json:"season,omitempty"` // required final season, if any
	Description string                           `json:"description"`
}

// ShopItem is a purchasable cosmetic.
type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description,omitempty"`
}

// Catalog bundles every data-driven definition the engine consumes.
type Catalog struct {
	Actions       []Action       `json:"actions"`
	Scenes        map[string]Scene `json:"scenes"`
	Seasons       []Season       `json:"seasons"`
	Festivals     map[int]string `json:"festivals"`
	Rules         []AdjustRule   `json:"rules"`
	Events        []Event        `json:"events"`
	Dilemmas      []Event        `json:"dilemmas"`
	FlavorMoments []FlavorMoment `json:"flavor_moments"`
	Stages        []StageDef     `json:"stages"`
	Careers       map[string]CareerTier `json:"careers"`
	Endings       []Ending       `json:"endings"`
	ShopItems     []ShopItem     `json:"shop_items"`

	// DilemmaChance is the independent roll applied after each action
	// before an eligible dilemma is offered.
	DilemmaChance float64 `json:"dilemma_chance"`
}

// FindAction resolves an action by name or alias.
func (cat *Catalog) FindAction(name string) (*Action, bool) {
	for i := range cat.Actions {
		a := &cat.Actions[i]
		if a.Name == name {
			return a, true
		}
		for _, alias := range a.Aliases {
			if alias == name {
				return a, true
			}
		}
	}
	return nil, false
}

// FindStage returns the definition for a stage number.
func (cat *Catalog) FindStage(n int) (*StageDef, bool) {
	for i := range cat.Stages {
		if cat.Stages[i].Stage == n {
			return &cat.Stages[i], true
		}
	}
	return nil, false
}

// FindShopItem resolves a shop item by id or name.
func (cat *Catalog) FindShopItem(name string) (*ShopItem, bool) {
	for i := range cat.ShopItems {
		if cat.ShopItems[i].ID == name || cat.ShopItems[i].Name == name {
			return &cat.ShopItems[i], true
		}
	}
	return nil, false
}
