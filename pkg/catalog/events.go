package catalog

import ch "github.com/lunarbloom/courtship/pkg/character"

func defaultEvents() []Event {
	return []Event{
		{
			ID:          "rainy-encounter",
			Description: "A sudden downpour catches you both outside the station. She only has one umbrella.",
			DayMin:      1,
			DayMax:      21,
			Triggers: map[ch.Key]ConditionRange{
				ch.Affection: {Min: 15, Max: 70},
			},
			Probability: 0.25,
			Choices: []EventChoice{
				{
					Text:       "Share the umbrella",
					Effects:    map[ch.Key]int{ch.Affection: 5, ch.Intimacy: 3},
					ResultText: "Shoulder to shoulder under the rain, neither of you hurries.",
				},
				{
					Text:       "Run for it",
					Effects:    map[ch.Key]int{ch.Mood: -5},
					ResultText: "You arrive soaked and laughing, mostly soaked.",
				},
				{
					Text:       "Give her your jacket",
					Requires:   map[ch.Key]int{ch.Affection: 30},
					Effects:    map[ch.Key]int{ch.Affection: 4, ch.Trust: 4},
					ResultText: "She pulls it tight around her shoulders and doesn't give it back.",
				},
			},
		},
		{
			ID:          "jealous-question",
			Description: "She saw you talking with someone after class and has been quiet all evening.",
			Triggers: map[ch.Key]ConditionRange{
				ch.Affection: {Min: 50, Max: 100},
				ch.Trust:     {Min: 0, Max: 60},
			},
			Probability: 0.2,
			Choices: []EventChoice{
				{
					Text:       "Reassure her honestly",
					Requires:   map[ch.Key]int{ch.Trust: 30},
					Effects:    map[ch.Key]int{ch.Trust: 6, ch.Affection: 2},
					ResultText: "She listens, then nods, and the evening thaws.",
				},
				{
					Text:       "Laugh it off",
					Effects:    map[ch.Key]int{ch.Trust: -4, ch.Mood: -5},
					ResultText: "The laugh lands wrong. She changes the subject.",
				},
			},
		},
		{
			ID:          "stray-cat",
			Description: "A scrawny cat follows her home and sits outside the door, yowling.",
			Probability: 0.15,
			Choices: []EventChoice{
				{
					Text:       "Take it in for the night",
					Effects:    map[ch.Key]int{ch.Affection: 3, ch.Mood: 8},
					ResultText: "The cat claims the sofa. She claims the cat.",
				},
				{
					Text:       "Leave food outside",
					Effects:    map[ch.Key]int{ch.Trust: 2},
					ResultText: "A compromise. The cat disapproves but eats.",
				},
			},
		},
		{
			ID:          "old-photograph",
			Description: "Sorting a drawer, she finds a photograph she clearly didn't mean for you to see.",
			DayMin:      14,
			Triggers: map[ch.Key]ConditionRange{
				ch.Intimacy: {Min: 40, Max: 100},
			},
			Probability: 0.18,
			Choices: []EventChoice{
				{
					Text:       "Ask about it gently",
					Requires:   map[ch.Key]int{ch.Trust: 50},
					Effects:    map[ch.Key]int{ch.Trust: 5, ch.Intimacy: 4},
					ResultText: "The story takes an hour and costs her something to tell.",
				},
				{
					Text:       "Pretend you didn't see",
					Effects:    map[ch.Key]int{ch.Intimacy: -2},
					ResultText: "The drawer closes. So does something else, a little.",
				},
			},
		},
	}
}

func defaultDilemmas() []Event {
	return []Event{
		{
			ID:          "late-night-text",
			Description: "Close to midnight, your phone lights up: \"are you awake?\"",
			Triggers: map[ch.Key]ConditionRange{
				ch.Desire: {Min: 40, Max: 100},
			},
			Probability: 0.12,
			Choices: []EventChoice{
				{
					Text:       "Call her",
					Effects:    map[ch.Key]int{ch.Intimacy: 4, ch.Desire: 3},
					ResultText: "You talk until the birds start. Neither of you mentions it after.",
				},
				{
					Text:       "Reply and sleep",
					Effects:    map[ch.Key]int{ch.Affection: 1},
					ResultText: "A goodnight, and the small warmth of being thought of.",
				},
				{
					Text:       "Ignore it",
					Effects:    map[ch.Key]int{ch.Affection: -3, ch.Trust: -2},
					ResultText: "By morning the message reads differently. Too late now.",
				},
			},
		},
		{
			ID:          "overheard-gossip",
			Description: "You overhear classmates speculating about the two of you. She heard it too.",
			Triggers: map[ch.Key]ConditionRange{
				ch.Affection: {Min: 40, Max: 85},
			},
			Probability: 0.1,
			Choices: []EventChoice{
				{
					Text:       "Own it in front of everyone",
					Requires:   map[ch.Key]int{ch.Affection: 55},
					Effects:    map[ch.Key]int{ch.Affection: 6, ch.Shame: -4},
					ResultText: "The speculating stops. Her ears stay red for an hour.",
				},
				{
					Text:       "Shrug it off",
					Effects:    map[ch.Key]int{ch.Shame: 2},
					ResultText: "Deniability preserved. Nothing else is.",
				},
			},
		},
		{
			ID:          "ex-appears",
			Description: "Someone from her past stops her on the street. The conversation runs long.",
			Triggers: map[ch.Key]ConditionRange{
				ch.Trust: {Min: 30, Max: 75},
			},
			Probability: 0.08,
			Choices: []EventChoice{
				{
					Text:       "Wait at a distance",
					Effects:    map[ch.Key]int{ch.Trust: 4},
					ResultText: "She finds you afterward and takes your arm without a word.",
				},
				{
					Text:       "Walk over and introduce yourself",
					Requires:   map[ch.Key]int{ch.Affection: 50},
					Effects:    map[ch.Key]int{ch.Affection: 3, ch.Resistance: -2},
					ResultText: "Brief, civil, decisive. She seems relieved.",
				},
				{
					Text:       "Leave",
					Effects:    map[ch.Key]int{ch.Affection: -4, ch.Trust: -3},
					ResultText: "She notices the empty space where you were.",
				},
			},
		},
	}
}

func defaultFlavorMoments() []FlavorMoment {
	return []FlavorMoment{
		{
			ID:          "hummed-song",
			Probability: 0.1,
			Text:        "She hums the song you played her last week, off key, unaware.",
			Effects:     map[ch.Key]int{ch.Mood: 3},
		},
		{
			ID: "caught-staring",
			When: []Requirement{
				{Attr: ch.Desire, Op: CmpGTE, Value: 30},
			},
			Probability: 0.08,
			Text:        "You catch her looking. She does not look away first.",
			Effects:     map[ch.Key]int{ch.Arousal: 2},
		},
		{
			ID: "small-jealousy",
			When: []Requirement{
				{Attr: ch.Affection, Op: CmpGTE, Value: 60},
				{Attr: ch.Trust, Op: CmpLT, Value: 50},
			},
			Probability: 0.07,
			Text:        "A pause before she answers, as if weighing something she decides not to say.",
			Effects:     map[ch.Key]int{ch.Trust: -1},
		},
	}
}
