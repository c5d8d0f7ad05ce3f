package catalog

import ch "github.com/lunarbloom/courtship/pkg/character"

func defaultScenes() map[string]Scene {
	return map[string]Scene{
		"park": {
			Name:        "park",
			Description: "Open air and unhurried paths.",
			Multipliers: map[ch.Key]float64{ch.Affection: 1.2},
		},
		"cafe": {
			Name:        "cafe",
			Description: "Her usual table, by the window.",
			Multipliers: map[ch.Key]float64{ch.Trust: 1.2, ch.Affection: 1.1},
		},
		"beach": {
			Name:        "beach",
			Description: "Off-season, mostly empty.",
			MinStage:    2,
			Multipliers: map[ch.Key]float64{ch.Desire: 1.2, ch.Mood: 1.2},
		},
		"bedroom": {
			Name:        "bedroom",
			Description: "Hers. An earned invitation.",
			MinStage:    3,
			Multipliers: map[ch.Key]float64{ch.Intimacy: 1.5, ch.Arousal: 1.3},
		},
	}
}

func defaultSeasons() []Season {
	return []Season{
		{
			Name:        "spring",
			FirstDay:    1,
			LastDay:     10,
			Multipliers: map[ch.Key]float64{ch.Affection: 1.2},
			Flavor:      "Cherry petals drift past the school gate.",
		},
		{
			Name:        "summer",
			FirstDay:    11,
			LastDay:     21,
			Multipliers: map[ch.Key]float64{ch.Desire: 1.3, ch.Arousal: 1.2},
			Flavor:      "Cicadas, shaved ice, shirts sticking to backs.",
		},
		{
			Name:        "autumn",
			FirstDay:    22,
			LastDay:     31,
			Multipliers: map[ch.Key]float64{ch.Trust: 1.2, ch.Intimacy: 1.1},
			Flavor:      "The light goes gold early and the evenings turn honest.",
		},
		{
			Name:        "winter",
			FirstDay:    32,
			LastDay:     42,
			Multipliers: map[ch.Key]float64{ch.Intimacy: 1.3, ch.Affection: 1.1},
			Flavor:      "Shared scarves and breath you can see.",
		},
	}
}

// Eight fixed festival days across the calendar.
func defaultFestivals() map[int]string {
	return map[int]string{
		7:  "flower-viewing",
		14: "fireworks",
		18: "summer-festival",
		21: "beach-day",
		25: "harvest-moon",
		31: "culture-festival",
		38: "first-snow",
		42: "year-end-eve",
	}
}

func defaultRules() []AdjustRule {
	return []AdjustRule{
		{
			ID:   "shame-suppresses-corruption",
			Kind: RuleSuppress,
			When: []Requirement{
				{Attr: ch.Shame, Op: CmpGTE, Value: 60},
			},
			Targets: []ch.Key{ch.Corruption},
			Factor:  0.5,
			Note:    "Her shame pushes back against what you're cultivating.",
		},
		{
			ID:   "resistance-suppresses-submission",
			Kind: RuleSuppress,
			When: []Requirement{
				{Attr: ch.Resistance, Op: CmpGTE, Value: 70},
			},
			Targets: []ch.Key{ch.Submission},
			Factor:  0.6,
		},
		{
			ID:   "corruption-suppresses-trust",
			Kind: RuleSuppress,
			When: []Requirement{
				{Attr: ch.Corruption, Op: CmpGTE, Value: 80},
			},
			Targets: []ch.Key{ch.Trust},
			Factor:  0.7,
		},
		{
			ID:   "affection-trust-synergy",
			Kind: RuleSynergy,
			When: []Requirement{
				{Attr: ch.Affection, Op: CmpGTE, Value: 70},
				{Attr: ch.Trust, Op: CmpGTE, Value: 70},
			},
			Targets: []ch.Key{ch.Intimacy},
			Factor:  1.3,
			Note:    "Closeness comes easily now.",
		},
		{
			ID:   "desire-arousal-synergy",
			Kind: RuleSynergy,
			When: []Requirement{
				{Attr: ch.Desire, Op: CmpGTE, Value: 60},
				{Attr: ch.Arousal, Op: CmpGTE, Value: 60},
			},
			Targets: []ch.Key{ch.Corruption},
			Factor:  1.2,
		},
		{
			ID:   "overwhelming-shame",
			Kind: RulePassive,
			When: []Requirement{
				{Attr: ch.Shame, Op: CmpGTE, Value: 86},
			},
			Targets: []ch.Key{ch.Desire, ch.Arousal, ch.Corruption},
			Factor:  0.7,
		},
	}
}
