package engine

import (
	"context"
	"fmt"

	"github.com/lunarbloom/courtship/pkg/catalog"
	"github.com/lunarbloom/courtship/pkg/character"
)

// DayResult reports everything a day advance did.
type DayResult struct {
	Day           int
	Ended         bool
	BudgetWarning string
	WeeklySummary string
	Income        int
	Promotion     string
	Consequences  []string
	StageAdvanced *catalog.StageDef
	Event         *character.PendingEvent
	Season        string
	SeasonFlavor  string
	Festival      string
}

// AdvanceDay runs the day-advance state machine: budget warning,
// day increment (terminal at the final day), budget/mood resets,
// weekly snapshot, career income and promotion, due delayed
// consequences, the random event roll, and season flavor.
func (e *Engine) AdvanceDay(ctx context.Context, c *character.Character) (*DayResult, error) {
	_ = ctx
	if c.Ended {
		return nil, reject(RejectEnded, "The story is over. Use /ending to see how it turned out.")
	}

	res := &DayResult{}

	if c.DailyInteractions < c.DailyLimit() {
		res.BudgetWarning = fmt.Sprintf(
			"You still had %d interaction(s) left today.", c.DailyLimit()-c.DailyInteractions)
	}

	if c.GameDay >= character.FinalDay {
		// The increment is reverted to terminal messaging; the day
		// counter never exceeds the final day.
		c.Ended = true
		res.Day = c.GameDay
		res.Ended = true
		return res, nil
	}

	now := e.now()
	c.GameDay++
	c.CareerDay++
	res.Day = c.GameDay

	// Daily resets. The interaction ceiling is recomputed from
	// current intimacy on the next action, not stored.
	c.DailyInteractions = 0
	c.ActionPoints = character.MaxActionPoints
	c.MoodGauge = c.MoodBaseline()

	if c.GameDay%7 == 1 && c.GameDay > 1 {
		res.WeeklySummary = e.weeklySummary(c)
		c.WeekSnapshot = c.Snapshot()
	}

	res.Income = e.applyCareer(c, res)

	res.Consequences = e.fireDelayed(c)

	// Delayed consequences can move attributes past a stage threshold;
	// notice it now rather than on the next action.
	if stage := e.checkEvolution(c); stage != nil {
		res.StageAdvanced = stage
	}

	// A single outstanding random event at a time: the roll is
	// skipped while one is still unresolved.
	if c.ActiveEvent == nil {
		if ev := e.rollRandomEvent(c); ev != nil {
			c.ActiveEvent = ev
			res.Event = ev
		}
	}

	season := e.Catalog.SeasonFor(c.GameDay)
	res.Season = season.Name
	res.SeasonFlavor = season.Flavor
	if name, ok := e.Catalog.FestivalFor(c.GameDay); ok {
		res.Festival = name
	}

	c.LastInteraction = now
	c.UpdatedAt = now
	return res, nil
}

// weeklySummary compares the headline attributes against the last
// weekly snapshot.
func (e *Engine) weeklySummary(c *character.Character) string {
	current := c.Snapshot()
	if len(c.WeekSnapshot) == 0 {
		return fmt.Sprintf("Week %d begins.", (c.GameDay/7)+1)
	}
	diffs := make(map[character.Key]int, len(current))
	for k, v := range current {
		diffs[k] = v - c.WeekSnapshot[k]
	}
	return fmt.Sprintf("Week %d begins. This week: %s.", (c.GameDay/7)+1, formatDeltas(diffs))
}

// applyCareer pays daily income and evaluates promotion candidates in
// order; the first satisfied candidate wins.
func (e *Engine) applyCareer(c *character.Character, res *DayResult) int {
	tier, ok := e.Catalog.Careers[c.Career]
	if !ok {
		return 0
	}

	// Income scales with the relationship she can lean on.
	income := tier.BaseIncome
	if income > 0 {
		income += c.Trust/20 + c.Affection/25
	}
	c.Coins += income

	for _, p := range tier.Promotions {
		if c.CareerDay < p.MinTenure {
			continue
		}
		met := true
		for _, req := range p.Thresholds {
			if !req.Met(c) {
				met = false
				break
			}
		}
		if met {
			next := e.Catalog.Careers[p.To]
			c.Career = p.To
			c.CareerDay = 0
			res.Promotion = next.Title
			break
		}
	}
	return income
}

// fireDelayed applies delayed consequences that have come due.
func (e *Engine) fireDelayed(c *character.Character) []string {
	if len(c.Delayed) == 0 {
		return nil
	}
	var fired []string
	var remaining []character.DelayedConsequence
	for _, d := range c.Delayed {
		if d.DueDay <= c.GameDay {
			c.ApplyDeltas(d.Effects)
			fired = append(fired, d.Description)
		} else {
			remaining = append(remaining, d)
		}
	}
	c.Delayed = remaining
	return fired
}
