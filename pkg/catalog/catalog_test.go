package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarbloom/courtship/pkg/character"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestRequirementMet(t *testing.T) {
	c := &character.Character{Affection: 50, Resistance: 30}

	tests := []struct {
		name     string
		req      Requirement
		expected bool
	}{
		{"gte met", Requirement{Attr: character.Affection, Op: CmpGTE, Value: 50}, true},
		{"gte not met", Requirement{Attr: character.Affection, Op: CmpGTE, Value: 51}, false},
		{"lt met", Requirement{Attr: character.Resistance, Op: CmpLT, Value: 40}, true},
		{"lt not met", Requirement{Attr: character.Resistance, Op: CmpLT, Value: 30}, false},
		{"unknown attr", Requirement{Attr: character.Key("luck"), Op: CmpGTE, Value: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.Met(c))
		})
	}
}

func TestFindAction(t *testing.T) {
	cat := Default()

	a, ok := cat.FindAction("talk")
	require.True(t, ok)
	assert.Equal(t, "talk", a.Name)

	_, ok = cat.FindAction("juggle")
	assert.False(t, ok)
}

func TestFindAction_Alias(t *testing.T) {
	cat := &Catalog{Actions: []Action{
		{Name: "compliment", Aliases: []string{"praise"}},
	}}
	a, ok := cat.FindAction("praise")
	require.True(t, ok)
	assert.Equal(t, "compliment", a.Name)
}

func TestSeasonFor(t *testing.T) {
	cat := Default()

	tests := []struct {
		day      int
		expected string
	}{
		{1, "spring"},
		{10, "spring"},
		{11, "summer"},
		{21, "summer"},
		{22, "autumn"},
		{31, "autumn"},
		{32, "winter"},
		{42, "winter"},
		{99, "winter"}, // overflow clamps to the last season
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, cat.SeasonFor(tt.day).Name, "day %d", tt.day)
	}
}

func TestFestivalFor(t *testing.T) {
	cat := Default()

	_, ok := cat.FestivalFor(7)
	assert.True(t, ok)
	_, ok = cat.FestivalFor(8)
	assert.False(t, ok)
}

func TestEventEligible(t *testing.T) {
	ev := Event{
		ID: "jealous-question",
		Triggers: map[character.Key]ConditionRange{
			character.Affection: {Min: 30, Max: 100},
		},
		DayMin: 5,
	}

	assert.True(t, ev.Eligible(&character.Character{Affection: 30, GameDay: 5}))
	assert.False(t, ev.Eligible(&character.Character{Affection: 29, GameDay: 5}))
	assert.False(t, ev.Eligible(&character.Character{Affection: 50, GameDay: 4}))
}

func TestEventInstantiate(t *testing.T) {
	ev := Event{
		ID:          "stray-cat",
		Description: "A stray cat follows you both.",
		Choices: []EventChoice{
			{Text: "Adopt it", Effects: map[character.Key]int{character.Affection: 3}},
			{Text: "Walk on", Requires: map[character.Key]int{character.Trust: 40}},
		},
	}

	pe := ev.Instantiate()
	require.Len(t, pe.Choices, 2)
	assert.Equal(t, "stray-cat", pe.ID)
	assert.Equal(t, 3, pe.Choices[0].Effects[character.Affection])
	assert.Equal(t, 40, pe.Choices[1].Requires[character.Trust])

	// Instances carry copies, not shared maps.
	pe.Choices[0].Effects[character.Affection] = 99
	assert.Equal(t, 3, ev.Choices[0].Effects[character.Affection])
}

func TestValidate_Errors(t *testing.T) {
	fallback := Ending{ID: "ordinary-days", Title: "Ordinary Days", Description: "d"}

	tests := []struct {
		name    string
		cat     *Catalog
		wantErr string
	}{
		{
			"duplicate action",
			&Catalog{
				Actions: []Action{{Name: "talk"}, {Name: "talk"}},
				Endings: []Ending{fallback},
			},
			"duplicate action",
		},
		{
			"bad risk chance",
			&Catalog{
				Actions: []Action{{Name: "confess", Risk: &RiskConfig{BaseChance: 1.5}}},
				Endings: []Ending{fallback},
			},
			"base chance",
		},
		{
			"non-contiguous stages",
			&Catalog{
				Stages:  []StageDef{{Stage: 1}, {Stage: 3}},
				Endings: []Ending{fallback},
			},
			"contiguous",
		},
		{
			"dangling promotion",
			&Catalog{
				Careers: map[string]CareerTier{
					"unemployed": {ID: "unemployed", Promotions: []CareerPromotion{{To: "astronaut"}}},
				},
				Endings: []Ending{fallback},
			},
			"unknown tier",
		},
		{
			"event with one choice",
			&Catalog{
				Events:  []Event{{ID: "e", Probability: 0.5, Choices: []EventChoice{{Text: "only"}}}},
				Endings: []Ending{fallback},
			},
			"2-4 choices",
		},
		{
			"no fallback ending",
			&Catalog{
				Endings: []Ending{{ID: "x", Ranges: map[character.Key]ConditionRange{character.Trust: {Min: 0, Max: 100}}}},
			},
			"fallback",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStageLadderShape(t *testing.T) {
	cat := Default()
	require.NotEmpty(t, cat.Stages)
	assert.Equal(t, 1, cat.Stages[0].Stage)
	assert.Empty(t, cat.Stages[0].Thresholds, "stage 1 is the starting rung")
	for _, s := range cat.Stages[1:] {
		assert.NotEmpty(t, s.Thresholds, "stage %d", s.Stage)
	}
}
