package character

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecayDeltas_WithinGrace(t *testing.T) {
	now := time.Now()
	c := &Character{Affection: 80, Intimacy: 60, Desire: 70, Arousal: 50, LastDecay: now.Add(-23 * time.Hour)}

	assert.Empty(t, c.DecayDeltas(now))
}

func TestDecayDeltas_FirstHourPastGrace(t *testing.T) {
	now := time.Now()
	c := &Character{Affection: 80, Intimacy: 60, Desire: 70, Arousal: 50, LastDecay: now.Add(-25 * time.Hour)}

	deltas := c.DecayDeltas(now)
	// One hour of 1%/h truncates to zero for every realistic value;
	// the minimum loss keeps the first neglected hour visible.
	assert.Equal(t, -1, deltas[Affection])
	assert.Equal(t, -1, deltas[Intimacy])
	assert.Equal(t, -1, deltas[Desire])
	assert.Equal(t, -1, deltas[Arousal])
}

func TestDecayDeltas_PastGrace(t *testing.T) {
	now := time.Now()
	c := &Character{Affection: 80, Intimacy: 60, Desire: 70, Arousal: 50, LastDecay: now.Add(-30 * time.Hour)}

	deltas := c.DecayDeltas(now)
	assert.NotEmpty(t, deltas)
	for k, d := range deltas {
		assert.Negative(t, d, "decay delta for %s must be negative", k)
	}
}

func TestDecayDeltas_NeverBelowFloor(t *testing.T) {
	now := time.Now()
	c := &Character{Affection: 25, Intimacy: 18, Desire: 90, Arousal: 90, LastDecay: now.Add(-10 * 24 * time.Hour)}

	deltas := c.DecayDeltas(now)
	// Already under the floor: untouched.
	assert.NotContains(t, deltas, Intimacy)
	// Deep decay is capped exactly at the floor.
	assert.Equal(t, -5, deltas[Affection])
	assert.Equal(t, -70, deltas[Desire])
}

func TestDecayDeltas_RateTiers(t *testing.T) {
	mk := func(age time.Duration) *Character {
		return &Character{Affection: 100, LastDecay: time.Now().Add(-age)}
	}
	now := time.Now()

	slow := mk(48 * time.Hour).DecayDeltas(now)[Affection]
	medium := mk(100 * time.Hour).DecayDeltas(now)[Affection]
	assert.Less(t, medium, slow, "longer neglect decays faster per hour")
}

func TestApplyDecay(t *testing.T) {
	now := time.Now()
	c := &Character{Affection: 80, LastDecay: now.Add(-30 * time.Minute)}

	assert.Empty(t, c.ApplyDecay(now), "no tick within an hour")
	assert.Equal(t, now.Add(-30*time.Minute), c.LastDecay, "tick not advanced")

	c.LastDecay = now.Add(-48 * time.Hour)
	deltas := c.ApplyDecay(now)
	assert.NotEmpty(t, deltas)
	assert.Less(t, c.Affection, 80)
	assert.Equal(t, now, c.LastDecay)
}
