package character

import (
	"fmt"
	"sort"
	"time"
)

// Personality fixes a character's starting resistance/shame profile and
// the baseline its mood gauge resets to each morning.
type Personality struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	BaseResistance int    `json:"base_resistance"`
	BaseShame      int    `json:"base_shame"`
	MoodBaseline   int    `json:"mood_baseline"`
}

// Personalities is the closed set of personality types selectable at
// character creation.
var Personalities = map[string]Personality{
	"innocent": {
		Name:           "innocent",
		Description:    "Sheltered and easily flustered. High resistance, high shame.",
		BaseResistance: 70,
		BaseShame:      80,
		MoodBaseline:   60,
	},
	"cheerful": {
		Name:           "cheerful",
		Description:    "Sunny and open. Warms up quickly.",
		BaseResistance: 50,
		BaseShame:      50,
		MoodBaseline:   70,
	},
	"timid": {
		Name:           "timid",
		Description:    "Quiet and cautious. Trust is earned slowly.",
		BaseResistance: 60,
		BaseShame:      70,
		MoodBaseline:   50,
	},
	"mature": {
		Name:           "mature",
		Description:    "Composed and self-assured. Hard to rattle.",
		BaseResistance: 40,
		BaseShame:      40,
		MoodBaseline:   55,
	},
}

// PersonalityNames returns the selectable personality names sorted.
func PersonalityNames() []string {
	names := make([]string, 0, len(Personalities))
	for n := range Personalities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New creates a fresh character for the given personality type.
// Returns an error for unknown personality names.
func New(userID, chatID, personality string, now time.Time) (*Character, error) {
	p, ok := Personalities[personality]
	if !ok {
		return nil, fmt.Errorf("unknown personality %q", personality)
	}
	return &Character{
		UserID: userID,
		ChatID: chatID,

		Affection:  10,
		Intimacy:   0,
		Trust:      50,
		Submission: 50,
		Desire:     10,
		Corruption: 0,
		Arousal:    0,
		Resistance: p.BaseResistance,
		Shame:      p.BaseShame,

		Personality:    p.Name,
		EvolutionStage: 1,
		MoodGauge:      p.MoodBaseline,
		ActionPoints:   MaxActionPoints,
		Coins:          100,

		GameDay: 1,
		Career:  "unemployed",

		LastDecay:       now,
		LastInteraction: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// MoodBaseline computes the gauge value the character wakes up with:
// the personality baseline nudged by current affection.
func (c *Character) MoodBaseline() int {
	base := 50
	if p, ok := Personalities[c.Personality]; ok {
		base = p.MoodBaseline
	}
	return Clamp(base+(c.Affection-50)/5, 0, 100)
}
