package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lunarbloom/courtship/pkg/character"
)

// rollRandomEvent collects event templates whose trigger conditions
// hold, rolls each one's probability independently, and picks one of
// the passing templates uniformly at random.
func (e *Engine) rollRandomEvent(c *character.Character) *character.PendingEvent {
	var passed []int
	for i := range e.Catalog.Events {
		ev := &e.Catalog.Events[i]
		if ev.Eligible(c) && e.Rand.Float64() < ev.Probability {
			passed = append(passed, i)
		}
	}
	if len(passed) == 0 {
		return nil
	}
	chosen := passed[e.Rand.Intn(len(passed))]
	return e.Catalog.Events[chosen].Instantiate()
}

// maybeTriggerDilemma opportunistically offers a choice dilemma after
// an action: a global roll, then per-template trigger conditions and
// independent probability rolls. Single slot; an unresolved dilemma
// blocks new ones until it resolves or expires.
func (e *Engine) maybeTriggerDilemma(c *character.Character, now time.Time) *character.PendingEvent {
	if c.PendingDilemma != nil {
		if !c.DilemmaExpired(now) {
			return nil
		}
		// Lazy expiry: a stale dilemma is silently dropped.
		c.ClearDilemma()
	}
	if e.Rand.Float64() >= e.Catalog.DilemmaChance {
		return nil
	}

	var passed []int
	for i := range e.Catalog.Dilemmas {
		d := &e.Catalog.Dilemmas[i]
		if d.Eligible(c) && e.Rand.Float64() < d.Probability {
			passed = append(passed, i)
		}
	}
	if len(passed) == 0 {
		return nil
	}
	chosen := passed[e.Rand.Intn(len(passed))]
	pending := e.Catalog.Dilemmas[chosen].Instantiate()
	c.PendingDilemma = pending
	c.DilemmaTriggeredAt = now
	return pending
}

// OfferDynamicEvent accepts an externally authored event payload (for
// LLM-generated events) of the same shape as catalog templates and
// installs it in the appropriate single slot.
func (e *Engine) OfferDynamicEvent(c *character.Character, pe *character.PendingEvent, asDilemma bool) error {
	if pe == nil || len(pe.Choices) == 0 {
		return fmt.Errorf("dynamic event must have at least one choice")
	}
	if asDilemma {
		if c.PendingDilemma != nil && !c.DilemmaExpired(e.now()) {
			return fmt.Errorf("a dilemma is already pending")
		}
		c.PendingDilemma = pe
		c.DilemmaTriggeredAt = e.now()
		return nil
	}
	if c.ActiveEvent != nil {
		return fmt.Errorf("an event is already active")
	}
	c.ActiveEvent = pe
	return nil
}

// ChoiceResult reports a resolved event or dilemma choice.
type ChoiceResult struct {
	Source     string // "event" or "dilemma"
	Choice     string
	Applied    map[character.Key]int
	ResultText string
	// Expired is set when the pending dilemma had passed its window:
	// it was cleared with no effect, regardless of the index given.
	Expired bool
}

// ResolveChoice resolves a numbered choice against the outstanding
// pending state. Precedence is fixed: active random event first, then
// pending dilemma. Choice effects are direct deltas and do not run
// through the modifier pipeline.
func (e *Engine) ResolveChoice(ctx context.Context, c *character.Character, n int) (*ChoiceResult, error) {
	_ = ctx
	now := e.now()

	if c.ActiveEvent != nil {
		res, err := e.resolvePending(c, c.ActiveEvent, "event", n)
		if err != nil {
			return nil, err
		}
		c.ActiveEvent = nil
		c.UpdatedAt = now
		return res, nil
	}

	if c.PendingDilemma != nil {
		if c.DilemmaExpired(now) {
			c.ClearDilemma()
			c.UpdatedAt = now
			return &ChoiceResult{Source: "dilemma", Expired: true}, nil
		}
		res, err := e.resolvePending(c, c.PendingDilemma, "dilemma", n)
		if err != nil {
			return nil, err
		}
		c.ClearDilemma()
		c.UpdatedAt = now
		return res, nil
	}

	return nil, reject(RejectNothingOpen, "There's nothing waiting on a choice right now.")
}

func (e *Engine) resolvePending(c *character.Character, pe *character.PendingEvent, source string, n int) (*ChoiceResult, error) {
	if n < 1 || n > len(pe.Choices) {
		return nil, reject(RejectBadChoice,
			fmt.Sprintf("Pick a number between 1 and %d.", len(pe.Choices)))
	}
	choice := pe.Choices[n-1]

	for attr, min := range choice.Requires {
		v, ok := c.Get(attr)
		if !ok || v < min {
			return nil, reject(RejectChoiceLocked,
				fmt.Sprintf("That option needs %s >= %d.", attr, min))
		}
	}

	if dropped := c.ApplyDeltas(choice.Effects); dropped > 0 && e.Logger != nil {
		e.Logger.Debug("Filtered unknown attribute keys from choice effects",
			"event", pe.ID, "dropped", dropped)
	}

	return &ChoiceResult{
		Source:     source,
		Choice:     choice.Text,
		Applied:    choice.Effects,
		ResultText: choice.ResultText,
	}, nil
}
