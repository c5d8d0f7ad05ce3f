package catalog

import (
	"time"

	ch "github.com/lunarbloom/courtship/pkg/character"
)

// defaultActions is the built-in playable action set. The engine takes
// any catalog; this set exercises every mechanic (gates, parts,
// keywords, risk, training, confirmation, delayed consequences).
func defaultActions() []Action {
	return []Action{
		{
			Name:        "talk",
			Aliases:     []string{"chat"},
			Description: "Small talk about the day.",
			Effects:     map[ch.Key]int{ch.Affection: 2, ch.Trust: 1},
			APCost:      1,
		},
		{
			Name:        "compliment",
			Description: "Say something nice.",
			Effects:     map[ch.Key]int{ch.Affection: 3, ch.Mood: 5},
			APCost:      1,
			Cooldown:    30 * time.Minute,
		},
		{
			Name:        "gift",
			Description: "Buy a small present.",
			Effects:     map[ch.Key]int{ch.Affection: 5, ch.Trust: 2},
			APCost:      1,
			CoinCost:    20,
		},
		{
			Name:        "comfort",
			Description: "Offer reassurance.",
			Effects:     map[ch.Key]int{ch.Trust: 3, ch.Resistance: -3, ch.Shame: -2},
			APCost:      1,
		},
		{
			Name:        "hold-hands",
			Description: "Reach for her hand.",
			MinStage:    2,
			Effects:     map[ch.Key]int{ch.Intimacy: 3, ch.Affection: 2},
			APCost:      1,
		},
		{
			Name:        "hug",
			Description: "A hug. Add 'tightly' for a closer one.",
			MinStage:    2,
			Effects:     map[ch.Key]int{ch.Affection: 3, ch.Intimacy: 2},
			Keywords: map[string]SubEffect{
				"tightly": {
					Effects: map[ch.Key]int{ch.Intimacy: 3, ch.Arousal: 2},
					Gate:    &Requirement{Attr: ch.Affection, Op: CmpGTE, Value: 40},
				},
			},
			APCost: 1,
		},
		{
			Name:        "kiss",
			Description: "A kiss on the cheek, forehead or lips.",
			MinStage:    3,
			Requirements: []Requirement{
				{Attr: ch.Affection, Op: CmpGTE, Value: 40},
			},
			Effects: map[ch.Key]int{ch.Intimacy: 3, ch.Affection: 2},
			Parts: map[string]SubEffect{
				"cheek":    {Effects: map[ch.Key]int{ch.Affection: 2}},
				"forehead": {Effects: map[ch.Key]int{ch.Trust: 2}},
				"lips": {
					Effects: map[ch.Key]int{ch.Intimacy: 4, ch.Arousal: 3},
					Gate:    &Requirement{Attr: ch.Affection, Op: CmpGTE, Value: 55},
				},
			},
			Training: &TrainingConfig{
				Step: 10,
				Milestones: map[int]string{
					30: "She no longer turns away first.",
					60: "She leans in before you do.",
					90: "Kissing her feels like coming home.",
				},
			},
			APCost:   1,
			Cooldown: time.Hour,
		},
		{
			Name:        "massage",
			Description: "Shoulders or back.",
			MinStage:    2,
			Requirements: []Requirement{
				{Attr: ch.Trust, Op: CmpGTE, Value: 40},
			},
			Effects: map[ch.Key]int{ch.Intimacy: 2, ch.Arousal: 2},
			Parts: map[string]SubEffect{
				"shoulders": {Effects: map[ch.Key]int{ch.Trust: 2}},
				"back": {
					Effects: map[ch.Key]int{ch.Arousal: 3, ch.Desire: 2},
					Gate:    &Requirement{Attr: ch.Intimacy, Op: CmpGTE, Value: 30},
				},
			},
			Training: &TrainingConfig{
				Step: 15,
				Milestones: map[int]string{
					45: "Her shoulders drop the moment you touch them.",
					90: "She asks for this now.",
				},
			},
			APCost: 1,
		},
		{
			Name:        "date",
			Description: "Take her out for the afternoon.",
			MinStage:    2,
			Effects:     map[ch.Key]int{ch.Affection: 6, ch.Intimacy: 4, ch.Mood: 10},
			APCost:      2,
			CoinCost:    30,
			Cooldown:    4 * time.Hour,
		},
		{
			Name:        "confess",
			Description: "Tell her how you feel. No taking it back.",
			MinStage:    2,
			NeedsConfirm: true,
			Risk: &RiskConfig{
				BaseChance: 0.5,
				Modifiers: []RiskModifier{
					{When: Requirement{Attr: ch.Affection, Op: CmpGTE, Value: 70}, Bonus: 0.25},
					{When: Requirement{Attr: ch.Trust, Op: CmpGTE, Value: 60}, Bonus: 0.10},
					{When: Requirement{Attr: ch.Resistance, Op: CmpGTE, Value: 70}, Bonus: -0.15},
				},
				SuccessEffects: map[ch.Key]int{ch.Affection: 10, ch.Trust: 8, ch.Intimacy: 5},
				FailureEffects: map[ch.Key]int{ch.Affection: -5, ch.Resistance: 5, ch.Shame: 3},
				FailureWarning: "That stung. Give her some space before trying again.",
			},
			APCost:   2,
			Cooldown: 24 * time.Hour,
		},
		{
			Name:        "tease",
			Description: "Push your luck a little.",
			MinStage:    3,
			Risk: &RiskConfig{
				BaseChance: 0.6,
				Modifiers: []RiskModifier{
					{When: Requirement{Attr: ch.Desire, Op: CmpGTE, Value: 50}, Bonus: 0.15},
					{When: Requirement{Attr: ch.Shame, Op: CmpGTE, Value: 70}, Bonus: -0.20},
				},
				SuccessEffects: map[ch.Key]int{ch.Desire: 5, ch.Arousal: 4},
				FailureEffects: map[ch.Key]int{ch.Shame: 4, ch.Resistance: 3},
				FailureWarning: "She went quiet. Too far, too fast.",
			},
			APCost: 1,
		},
		{
			Name:        "whisper",
			Description: "Something just for her.",
			MinStage:    4,
			Requirements: []Requirement{
				{Attr: ch.Intimacy, Op: CmpGTE, Value: 50},
			},
			Effects: map[ch.Key]int{ch.Desire: 4, ch.Submission: 2, ch.Arousal: 3},
			APCost:  1,
		},
		{
			Name:        "train-obedience",
			Aliases:     []string{"train"},
			Description: "A quiet exercise in following your lead.",
			MinStage:    4,
			Requirements: []Requirement{
				{Attr: ch.Trust, Op: CmpGTE, Value: 60},
				{Attr: ch.Resistance, Op: CmpLT, Value: 60},
			},
			Effects: map[ch.Key]int{ch.Submission: 5, ch.Corruption: 2},
			Training: &TrainingConfig{
				Step: 10,
				Milestones: map[int]string{
					30: "She waits for your word now.",
					60: "Obedience has stopped feeling like a game to her.",
					90: "She anticipates what you want before you say it.",
				},
			},
			APCost:   2,
			Cooldown: 2 * time.Hour,
		},
		{
			Name:         "punish",
			Description:  "Discipline. She will remember it.",
			MinStage:     4,
			NeedsConfirm: true,
			Requirements: []Requirement{
				{Attr: ch.Submission, Op: CmpGTE, Value: 50},
			},
			Risk: &RiskConfig{
				BaseChance: 0.45,
				Modifiers: []RiskModifier{
					{When: Requirement{Attr: ch.Submission, Op: CmpGTE, Value: 70}, Bonus: 0.20},
					{When: Requirement{Attr: ch.Trust, Op: CmpLT, Value: 40}, Bonus: -0.20},
				},
				SuccessEffects: map[ch.Key]int{ch.Submission: 6, ch.Corruption: 4, ch.Resistance: -4},
				FailureEffects: map[ch.Key]int{ch.Trust: -6, ch.Resistance: 6, ch.Affection: -3},
				FailureWarning: "Trust took real damage there.",
			},
			Delayed: &DelayedConfig{
				AfterDays:   2,
				Description: "She has been quieter since that night.",
				Effects:     map[ch.Key]int{ch.Trust: -3},
			},
			APCost:   2,
			Cooldown: 12 * time.Hour,
		},
		{
			Name:        "gaze",
			Description: "Hold her eyes a beat too long.",
			Effects:     map[ch.Key]int{ch.Arousal: 2, ch.Desire: 1},
			APCost:      1,
		},
	}
}
