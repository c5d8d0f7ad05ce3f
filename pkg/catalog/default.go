package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Actions:       defaultActions(),
		Scenes:        defaultScenes(),
		Seasons:       defaultSeasons(),
		Festivals:     defaultFestivals(),
		Rules:         defaultRules(),
		Events:        defaultEvents(),
		Dilemmas:      defaultDilemmas(),
		FlavorMoments: defaultFlavorMoments(),
		Stages:        defaultStages(),
		Careers:       defaultCareers(),
		Endings:       defaultEndings(),
		ShopItems:     defaultShopItems(),
		DilemmaChance: 0.15,
	}
}

// Load reads a catalog of the same shape from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &cat, nil
}

// Validate checks catalog integrity: action references, stage ladder
// shape, career links, event choice shape, and the guaranteed ending
// fallback.
func (cat *Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, a := range cat.Actions {
		if a.Name == "" {
			return fmt.Errorf("action with empty name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate action name %q", a.Name)
		}
		seen[a.Name] = true
		if a.Risk != nil {
			if a.Risk.BaseChance <= 0 || a.Risk.BaseChance >= 1 {
				return fmt.Errorf("action %q: risk base chance must be in (0,1)", a.Name)
			}
			if len(a.Risk.SuccessEffects) == 0 || len(a.Risk.FailureEffects) == 0 {
				return fmt.Errorf("action %q: risky actions need success and failure effects", a.Name)
			}
		}
		if a.Training != nil && a.Training.Step <= 0 {
			return fmt.Errorf("action %q: training step must be positive", a.Name)
		}
	}

	for i, s := range cat.Stages {
		if s.Stage != i+1 {
			return fmt.Errorf("stages must be contiguous from 1, got %d at index %d", s.Stage, i)
		}
		if s.Stage > 1 && len(s.Thresholds) == 0 {
			return fmt.Errorf("stage %d has no thresholds", s.Stage)
		}
	}

	for id, tier := range cat.Careers {
		for _, p := range tier.Promotions {
			if _, ok := cat.Careers[p.To]; !ok {
				return fmt.Errorf("career %q promotes to unknown tier %q", id, p.To)
			}
		}
	}

	for _, ev := range append(append([]Event{}, cat.Events...), cat.Dilemmas...) {
		if len(ev.Choices) < 2 || len(ev.Choices) > 4 {
			return fmt.Errorf("event %q must have 2-4 choices, has %d", ev.ID, len(ev.Choices))
		}
		if ev.Probability <= 0 || ev.Probability > 1 {
			return fmt.Errorf("event %q: probability must be in (0,1]", ev.ID)
		}
	}

	fallback := false
	for _, e := range cat.Endings {
		if len(e.Ranges) == 0 && e.Career == "" && e.Season == "" {
			fallback = true
		}
	}
	if !fallback {
		return fmt.Errorf("ending catalog has no unconditional fallback")
	}
	return nil
}
