package catalog

import ch "github.com/lunarbloom/courtship/pkg/character"

func defaultStages() []StageDef {
	return []StageDef{
		{Stage: 1, Title: "acquaintance"},
		{
			Stage: 2,
			Title: "friend",
			Thresholds: []Requirement{
				{Attr: ch.Affection, Op: CmpGTE, Value: 30},
				{Attr: ch.Trust, Op: CmpGTE, Value: 25},
			},
			GainBonus: map[ch.Key]float64{ch.Affection: 1.1},
			Rewards:   []string{"scene:beach", "trait:at-ease"},
		},
		{
			Stage: 3,
			Title: "close",
			Thresholds: []Requirement{
				{Attr: ch.Affection, Op: CmpGTE, Value: 50},
				{Attr: ch.Intimacy, Op: CmpGTE, Value: 40},
				{Attr: ch.Trust, Op: CmpGTE, Value: 40},
			},
			GainBonus: map[ch.Key]float64{ch.Intimacy: 1.1},
			Rewards:   []string{"scene:bedroom", "trait:openhearted"},
		},
		{
			Stage: 4,
			Title: "lover",
			Thresholds: []Requirement{
				{Attr: ch.Affection, Op: CmpGTE, Value: 70},
				{Attr: ch.Intimacy, Op: CmpGTE, Value: 60},
				{Attr: ch.Desire, Op: CmpGTE, Value: 50},
				{Attr: ch.Resistance, Op: CmpLT, Value: 50},
			},
			GainBonus: map[ch.Key]float64{ch.Arousal: 1.2},
			Rewards:   []string{"trait:devoted"},
		},
		{
			Stage: 5,
			Title: "inseparable",
			Thresholds: []Requirement{
				{Attr: ch.Affection, Op: CmpGTE, Value: 85},
				{Attr: ch.Intimacy, Op: CmpGTE, Value: 80},
				{Attr: ch.Trust, Op: CmpGTE, Value: 70},
				{Attr: ch.Submission, Op: CmpGTE, Value: 60},
			},
			GainBonus: map[ch.Key]float64{ch.Desire: 1.2, ch.Intimacy: 1.1},
			Rewards:   []string{"trait:yours"},
		},
	}
}

func defaultCareers() map[string]CareerTier {
	return map[string]CareerTier{
		"unemployed": {
			ID:         "unemployed",
			Title:      "Between things",
			BaseIncome: 0,
			Promotions: []CareerPromotion{
				{To: "barista", MinTenure: 3, Thresholds: []Requirement{
					{Attr: ch.Trust, Op: CmpGTE, Value: 40},
				}},
				{To: "model", MinTenure: 3, Thresholds: []Requirement{
					{Attr: ch.Desire, Op: CmpGTE, Value: 50},
					{Attr: ch.Shame, Op: CmpLT, Value: 50},
				}},
			},
		},
		"barista": {
			ID:         "barista",
			Title:      "Cafe barista",
			BaseIncome: 15,
			Promotions: []CareerPromotion{
				{To: "cafe-manager", MinTenure: 7, Thresholds: []Requirement{
					{Attr: ch.Trust, Op: CmpGTE, Value: 60},
					{Attr: ch.Affection, Op: CmpGTE, Value: 50},
				}},
			},
		},
		"cafe-manager": {
			ID:         "cafe-manager",
			Title:      "Cafe manager",
			BaseIncome: 35,
		},
		"model": {
			ID:         "model",
			Title:      "Part-time model",
			BaseIncome: 25,
			Promotions: []CareerPromotion{
				{To: "cover-model", MinTenure: 7, Thresholds: []Requirement{
					{Attr: ch.Desire, Op: CmpGTE, Value: 70},
					{Attr: ch.Shame, Op: CmpLT, Value: 35},
				}},
			},
		},
		"cover-model": {
			ID:         "cover-model",
			Title:      "Cover model",
			BaseIncome: 50,
		},
	}
}

func defaultEndings() []Ending {
	return []Ending{
		{
			ID:       "eternal-love",
			Title:    "Eternal Love",
			Priority: 100,
			Ranges: map[ch.Key]ConditionRange{
				ch.Affection: {Min: 85, Max: 100},
				ch.Trust:     {Min: 80, Max: 100},
				ch.Intimacy:  {Min: 80, Max: 100},
			},
			Description: "Forty-two days became the rest of your lives.",
		},
		{
			ID:       "power-couple",
			Title:    "Power Couple",
			Priority: 95,
			Career:   "cafe-manager",
			Ranges: map[ch.Key]ConditionRange{
				ch.Affection: {Min: 70, Max: 100},
			},
			Description: "Her career took off and she took you with her.",
		},
		{
			ID:       "dark-paradise",
			Title:    "Dark Paradise",
			Priority: 90,
			Ranges: map[ch.Key]ConditionRange{
				ch.Corruption: {Min: 80, Max: 100},
				ch.Submission: {Min: 70, Max: 100},
			},
			Description: "What the two of you built has no name you'd say aloud.",
		},
		{
			ID:       "perfect-devotion",
			Title:    "Perfect Devotion",
			Priority: 85,
			Ranges: map[ch.Key]ConditionRange{
				ch.Submission: {Min: 85, Max: 100},
				ch.Resistance: {Min: 0, Max: 20},
			},
			Description: "She stopped asking where you end and she begins.",
		},
		{
			ID:       "gentle-companions",
			Title:    "Gentle Companions",
			Priority: 70,
			Ranges: map[ch.Key]ConditionRange{
				ch.Affection: {Min: 60, Max: 100},
				ch.Trust:     {Min: 60, Max: 100},
			},
			Description: "Nothing dramatic. Just two people who choose each other daily.",
		},
		{
			ID:       "distant-warmth",
			Title:    "Distant Warmth",
			Priority: 50,
			Ranges: map[ch.Key]ConditionRange{
				ch.Affection: {Min: 30, Max: 100},
			},
			Description: "Friends, mostly. Sometimes the word feels too small.",
		},
		{
			ID:       "strangers-again",
			Title:    "Strangers Again",
			Priority: 20,
			Ranges: map[ch.Key]ConditionRange{
				ch.Resistance: {Min: 60, Max: 100},
			},
			Description: "Some doors close quietly. This one barely made a sound.",
		},
		{
			ID:          "ordinary-days",
			Title:       "Ordinary Days",
			Priority:    0,
			Description: "The season ended the way most do: unremarkably, and not unkindly.",
		},
	}
}

func defaultShopItems() []ShopItem {
	return []ShopItem{
		{ID: "hairpin", Name: "Silver hairpin", Price: 40, Description: "She wears it the next day."},
		{ID: "scarf", Name: "Knit scarf", Price: 60, Description: "Handmade, allegedly."},
		{ID: "ring", Name: "Plain ring", Price: 200, Description: "Plain, and not plain at all."},
		{ID: "polaroid", Name: "Polaroid camera", Price: 90, Description: "For the days worth keeping."},
	}
}
