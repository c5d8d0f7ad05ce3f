package character

import (
	"fmt"
	"time"
)

// Key identifies a tracked numeric attribute on a Character.
// Delta maps are always keyed by Key, never by free-form strings,
// so that unknown keys can be filtered explicitly.
type Key string

const (
	// Relationship axes
	Affection Key = "affection"
	Intimacy  Key = "intimacy"
	Trust     Key = "trust"

	// Hidden drive axes
	Submission Key = "submission"
	Desire     Key = "desire"
	Corruption Key = "corruption"

	// Volatile state axes
	Arousal    Key = "arousal"
	Resistance Key = "resistance"
	Shame      Key = "shame"

	// Mood gauge participates in delta maps so events can shift it,
	// but it resets daily and never feeds the pipeline multipliers.
	Mood Key = "mood"
)

// Keys lists every attribute key in display order.
var Keys = []Key{
	Affection, Intimacy, Trust,
	Submission, Desire, Corruption,
	Arousal, Resistance, Shame,
	Mood,
}

// MaxActionPoints is the per-day action point budget.
const MaxActionPoints = 10

// FinalDay is the last playable in-game day.
const FinalDay = 42

// PendingChoice is one selectable branch of a pending event or dilemma.
type PendingChoice struct {
	Text       string      `json:"text"`
	Effects    map[Key]int `json:"effects,omitempty"`
	Requires   map[Key]int `json:"requires,omitempty"` // attribute minimums to pick this choice
	ResultText string      `json:"result_text,omitempty"`
}

// PendingEvent is an in-flight random event or choice dilemma awaiting
// a numbered choice from the player. At most one of each may be
// outstanding on a character.
type PendingEvent struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Choices     []PendingChoice `json:"choices"`
}

// DelayedConsequence is a negative effect scheduled by an action to
// fire on a future game day.
type DelayedConsequence struct {
	DueDay      int         `json:"due_day"`
	Description string      `json:"description"`
	Effects     map[Key]int `json:"effects"`
}

// Character is the per-(user, chat) game state aggregate. It is always
// read, modified and written in full; partial updates are not supported.
type Character struct {
	UserID string `json:"user_id"`
	ChatID string `json:"chat_id"`

	Affection  int `json:"affection"`
	Intimacy   int `json:"intimacy"`
	Trust      int `json:"trust"`
	Submission int `json:"submission"`
	Desire     int `json:"desire"`
	Corruption int `json:"corruption"`
	Arousal    int `json:"arousal"`
	Resistance int `json:"resistance"`
	Shame      int `json:"shame"`

	Personality    string   `json:"personality"`
	Traits         []string `json:"traits,omitempty"`
	EvolutionStage int      `json:"evolution_stage"`
	MoodGauge      int      `json:"mood_gauge"`
	ActionPoints   int      `json:"action_points"`
	Coins          int      `json:"coins"`

	GameDay           int    `json:"game_day"`
	Ended             bool   `json:"ended"`
	DailyInteractions int    `json:"daily_interactions"`
	Career            string `json:"career"`
	CareerDay         int    `json:"career_day"`

	Scene string `json:"scene,omitempty"`

	// GainBonuses are persistent multipliers earned at evolution
	// stage transitions, applied to positive deltas of the keyed
	// attribute.
	GainBonuses map[Key]float64 `json:"gain_bonuses,omitempty"`

	// Training tracks per-action training progress (0..100).
	Training map[string]int `json:"training,omitempty"`

	// Cooldowns records the last use time of cooldown-bearing actions.
	Cooldowns map[string]time.Time `json:"cooldowns,omitempty"`

	ActiveEvent        *PendingEvent `json:"active_event,omitempty"`
	PendingDilemma     *PendingEvent `json:"pending_dilemma,omitempty"`
	DilemmaTriggeredAt time.Time     `json:"dilemma_triggered_at,omitempty"`

	Delayed []DelayedConsequence `json:"delayed,omitempty"`

	// WeekSnapshot holds the attribute values captured at the last
	// weekly summary, for week-over-week comparison.
	WeekSnapshot map[Key]int `json:"week_snapshot,omitempty"`

	LastAction      string    `json:"last_action,omitempty"`
	LastDecay       time.Time `json:"last_decay"`
	LastInteraction time.Time `json:"last_interaction"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DilemmaTTL is how long a pending dilemma remains resolvable.
const DilemmaTTL = 300 * time.Second

// Clamp constrains v to [lo, hi]. Every attribute mutation goes
// through this primitive.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Get returns the current value of a tracked attribute.
func (c *Character) Get(k Key) (int, bool) {
	switch k {
	case Affection:
		return c.Affection, true
	case Intimacy:
		return c.Intimacy, true
	case Trust:
		return c.Trust, true
	case Submission:
		return c.Submission, true
	case Desire:
		return c.Desire, true
	case Corruption:
		return c.Corruption, true
	case Arousal:
		return c.Arousal, true
	case Resistance:
		return c.Resistance, true
	case Shame:
		return c.Shame, true
	case Mood:
		return c.MoodGauge, true
	}
	return 0, false
}

func (c *Character) set(k Key, v int) {
	switch k {
	case Affection:
		c.Affection = v
	case Intimacy:
		c.Intimacy = v
	case Trust:
		c.Trust = v
	case Submission:
		c.Submission = v
	case Desire:
		c.Desire = v
	case Corruption:
		c.Corruption = v
	case Arousal:
		c.Arousal = v
	case Resistance:
		c.Resistance = v
	case Shame:
		c.Shame = v
	case Mood:
		c.MoodGauge = v
	}
}

// ApplyDeltas adds each delta to its attribute and clamps the result to
// [0,100]. Keys the aggregate does not track are dropped; the returned
// count reports how many were filtered, so callers can log it.
func (c *Character) ApplyDeltas(deltas map[Key]int) (dropped int) {
	for k, d := range deltas {
		cur, ok := c.Get(k)
		if !ok {
			dropped++
			continue
		}
		c.set(k, Clamp(cur+d, 0, 100))
	}
	return dropped
}

// DailyLimit returns the interaction budget for the current day, a
// pure function of intimacy banding.
func (c *Character) DailyLimit() int {
	switch {
	case c.Intimacy < 20:
		return 2
	case c.Intimacy < 50:
		return 3
	case c.Intimacy < 80:
		return 4
	default:
		return 5
	}
}

// RelationshipStage names the intimacy band used for gating and the
// daily budget.
func (c *Character) RelationshipStage() string {
	switch {
	case c.Intimacy < 20:
		return "stranger"
	case c.Intimacy < 50:
		return "friend"
	case c.Intimacy < 80:
		return "close"
	default:
		return "lover"
	}
}

// OnCooldown reports whether the named action is still cooling down.
func (c *Character) OnCooldown(action string, cooldown time.Duration, now time.Time) (time.Duration, bool) {
	if cooldown <= 0 || c.Cooldowns == nil {
		return 0, false
	}
	last, ok := c.Cooldowns[action]
	if !ok {
		return 0, false
	}
	remaining := cooldown - now.Sub(last)
	if remaining <= 0 {
		return 0, false
	}
	return remaining, true
}

// SetCooldown records an action use for cooldown tracking.
func (c *Character) SetCooldown(action string, now time.Time) {
	if c.Cooldowns == nil {
		c.Cooldowns = make(map[string]time.Time)
	}
	c.Cooldowns[action] = now
}

// TrainingProgress returns the training progress for an action.
func (c *Character) TrainingProgress(action string) int {
	if c.Training == nil {
		return 0
	}
	return c.Training[action]
}

// AddTrainingProgress bumps training progress for an action, capped at
// 100, and returns the new value.
func (c *Character) AddTrainingProgress(action string, step int) int {
	if c.Training == nil {
		c.Training = make(map[string]int)
	}
	c.Training[action] = Clamp(c.Training[action]+step, 0, 100)
	return c.Training[action]
}

// HasTrait reports whether a personality trait has been unlocked.
func (c *Character) HasTrait(name string) bool {
	for _, t := range c.Traits {
		if t == name {
			return true
		}
	}
	return false
}

// AddTrait unlocks a trait if not already present.
func (c *Character) AddTrait(name string) {
	if !c.HasTrait(name) {
		c.Traits = append(c.Traits, name)
	}
}

// DilemmaExpired reports whether the pending dilemma (if any) has
// passed its resolution window. Expiry is evaluated lazily at the next
// relevant read, never by a background timer.
func (c *Character) DilemmaExpired(now time.Time) bool {
	return c.PendingDilemma != nil && now.Sub(c.DilemmaTriggeredAt) > DilemmaTTL
}

// ClearDilemma drops the pending dilemma slot.
func (c *Character) ClearDilemma() {
	c.PendingDilemma = nil
	c.DilemmaTriggeredAt = time.Time{}
}

// Snapshot captures the five headline attributes for weekly
// comparison.
func (c *Character) Snapshot() map[Key]int {
	return map[Key]int{
		Affection:  c.Affection,
		Intimacy:   c.Intimacy,
		Trust:      c.Trust,
		Desire:     c.Desire,
		Corruption: c.Corruption,
	}
}

// StorageKey returns the canonical composite key for persistence.
func (c *Character) StorageKey() string {
	return fmt.Sprintf("%s:%s", c.UserID, c.ChatID)
}
