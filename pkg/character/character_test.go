package character

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        int
		expected int
	}{
		{"below floor", -5, 0},
		{"at floor", 0, 0},
		{"in range", 42, 42},
		{"at ceiling", 100, 100},
		{"above ceiling", 130, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, 0, 100))
		})
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c, err := New("user1", "chat1", "innocent", now)
	require.NoError(t, err)

	assert.Equal(t, 10, c.Affection)
	assert.Equal(t, 0, c.Intimacy)
	assert.Equal(t, 50, c.Trust)
	assert.Equal(t, 50, c.Submission)
	assert.Equal(t, 10, c.Desire)
	assert.Equal(t, 70, c.Resistance)
	assert.Equal(t, 80, c.Shame)
	assert.Equal(t, 1, c.EvolutionStage)
	assert.Equal(t, 1, c.GameDay)
	assert.Equal(t, 100, c.Coins)
	assert.Equal(t, MaxActionPoints, c.ActionPoints)
	assert.Equal(t, "unemployed", c.Career)
	assert.Equal(t, 60, c.MoodGauge)
}

func TestNew_UnknownPersonality(t *testing.T) {
	_, err := New("user1", "chat1", "villain", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "villain")
}

func TestApplyDeltas(t *testing.T) {
	c := &Character{Affection: 50, Trust: 95, Shame: 3}

	dropped := c.ApplyDeltas(map[Key]int{
		Affection:    5,
		Trust:        10, // clamps at 100
		Shame:        -8, // clamps at 0
		Key("charm"): 4,  // unknown, filtered
	})

	assert.Equal(t, 1, dropped)
	assert.Equal(t, 55, c.Affection)
	assert.Equal(t, 100, c.Trust)
	assert.Equal(t, 0, c.Shame)
}

func TestApplyDeltas_MoodKey(t *testing.T) {
	c := &Character{MoodGauge: 50}
	dropped := c.ApplyDeltas(map[Key]int{Mood: 15})
	assert.Zero(t, dropped)
	assert.Equal(t, 65, c.MoodGauge)
}

func TestDailyLimit(t *testing.T) {
	tests := []struct {
		intimacy int
		expected int
	}{
		{0, 2},
		{19, 2},
		{20, 3},
		{49, 3},
		{50, 4},
		{79, 4},
		{80, 5},
		{100, 5},
	}
	for _, tt := range tests {
		c := &Character{Intimacy: tt.intimacy}
		assert.Equal(t, tt.expected, c.DailyLimit(), "intimacy %d", tt.intimacy)
	}
}

func TestRelationshipStage(t *testing.T) {
	assert.Equal(t, "stranger", (&Character{Intimacy: 5}).RelationshipStage())
	assert.Equal(t, "friend", (&Character{Intimacy: 30}).RelationshipStage())
	assert.Equal(t, "close", (&Character{Intimacy: 60}).RelationshipStage())
	assert.Equal(t, "lover", (&Character{Intimacy: 90}).RelationshipStage())
}

func TestCooldowns(t *testing.T) {
	now := time.Now()
	c := &Character{}

	_, cooling := c.OnCooldown("gift", time.Hour, now)
	assert.False(t, cooling, "no prior use means no cooldown")

	c.SetCooldown("gift", now)
	remaining, cooling := c.OnCooldown("gift", time.Hour, now.Add(30*time.Minute))
	assert.True(t, cooling)
	assert.Equal(t, 30*time.Minute, remaining)

	_, cooling = c.OnCooldown("gift", time.Hour, now.Add(2*time.Hour))
	assert.False(t, cooling)
}

func TestTrainingProgress(t *testing.T) {
	c := &Character{}
	assert.Zero(t, c.TrainingProgress("kiss"))

	assert.Equal(t, 10, c.AddTrainingProgress("kiss", 10))
	assert.Equal(t, 20, c.AddTrainingProgress("kiss", 10))
	assert.Equal(t, 20, c.TrainingProgress("kiss"))

	c.Training["kiss"] = 95
	assert.Equal(t, 100, c.AddTrainingProgress("kiss", 10), "progress caps at 100")
}

func TestTraits(t *testing.T) {
	c := &Character{}
	assert.False(t, c.HasTrait("at-ease"))

	c.AddTrait("at-ease")
	c.AddTrait("at-ease")
	assert.True(t, c.HasTrait("at-ease"))
	assert.Len(t, c.Traits, 1)
}

func TestDilemmaExpiry(t *testing.T) {
	now := time.Now()
	c := &Character{
		PendingDilemma:     &PendingEvent{ID: "late-night-text"},
		DilemmaTriggeredAt: now,
	}

	assert.False(t, c.DilemmaExpired(now.Add(299*time.Second)))
	assert.True(t, c.DilemmaExpired(now.Add(301*time.Second)))

	c.ClearDilemma()
	assert.Nil(t, c.PendingDilemma)
	assert.False(t, c.DilemmaExpired(now.Add(time.Hour)))
}

func TestMoodBaseline(t *testing.T) {
	c := &Character{Personality: "cheerful", Affection: 50}
	assert.Equal(t, 70, c.MoodBaseline())

	c.Affection = 100
	assert.Equal(t, 80, c.MoodBaseline())

	c.Affection = 0
	assert.Equal(t, 60, c.MoodBaseline())
}

func TestStorageKey(t *testing.T) {
	c := &Character{UserID: "u1", ChatID: "c1"}
	assert.Equal(t, "u1:c1", c.StorageKey())
}
