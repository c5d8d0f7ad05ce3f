package character

import "time"

// Passive decay: neglected relationships cool off. Only these four
// attributes decay, each at its own rate relative to the base tier.
var decayRates = map[Key]float64{
	Affection: 1.0,
	Intimacy:  0.8,
	Desire:    1.2,
	Arousal:   1.5,
}

const (
	decayGrace = 24 * time.Hour
	decayFloor = 20 // decay never pushes an attribute below this
)

// DecayDeltas computes passive decay deltas based on time elapsed since
// the last decay tick. Within the 24-hour grace period the result is
// empty. Beyond it, an escalating hourly percentage applies: 1%/h for
// the first two further days, 2%/h up to a week, 3%/h after that. Past
// grace every decayable attribute above the floor loses at least 1, so
// the first hour of neglect is never rounded away.
// The result is a delta map suitable for ApplyDeltas; each delta is
// limited so the attribute never drops below the floor of 20.
func (c *Character) DecayDeltas(now time.Time) map[Key]int {
	elapsed := now.Sub(c.LastDecay)
	if elapsed <= decayGrace {
		return map[Key]int{}
	}

	var rate float64
	switch {
	case elapsed <= 72*time.Hour:
		rate = 0.01
	case elapsed <= 168*time.Hour:
		rate = 0.02
	default:
		rate = 0.03
	}
	hours := (elapsed - decayGrace).Hours()

	deltas := make(map[Key]int)
	for k, mult := range decayRates {
		cur, _ := c.Get(k)
		if cur <= decayFloor {
			continue
		}
		loss := int(float64(cur) * rate * hours * mult)
		if loss < 1 {
			loss = 1
		}
		if cur-loss < decayFloor {
			loss = cur - decayFloor
		}
		deltas[k] = -loss
	}
	return deltas
}

// ApplyDecay applies passive decay if at least one hour has elapsed
// since the last tick, and advances the tick. Returns the applied
// deltas (empty when nothing decayed).
func (c *Character) ApplyDecay(now time.Time) map[Key]int {
	if now.Sub(c.LastDecay) < time.Hour {
		return map[Key]int{}
	}
	deltas := c.DecayDeltas(now)
	if len(deltas) > 0 {
		c.ApplyDeltas(deltas)
	}
	c.LastDecay = now
	return deltas
}
