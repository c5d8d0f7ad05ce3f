// Package prompts builds the narrative-generation prompt sent to the
// LLM after a mechanical outcome has been committed. Prompt content is
// flavor: mechanics never depend on what comes back.
package prompts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lunarbloom/courtship/pkg/character"
)

// SystemPrompt frames the narrator role.
const SystemPrompt = `You are the narrator of a slice-of-life dating sim. You describe what just happened between the player and their companion in warm, grounded prose. Second person, past tense, 2-4 sentences. Never mention numbers, stats, game mechanics, or that you are an AI. Never speak for the player.`

// Builder assembles the narrative prompt from the character state and
// the mechanical outcome, using a fluent interface.
type Builder struct {
	c        *character.Character
	action   string
	applied  map[character.Key]int
	notes    []string
	outcome  *bool
	memories []string
}

// New creates an empty prompt builder.
func New() *Builder {
	return &Builder{}
}

// WithCharacter sets the post-action character state.
func (b *Builder) WithCharacter(c *character.Character) *Builder {
	b.c = c
	return b
}

// WithAction names the resolved action.
func (b *Builder) WithAction(name string) *Builder {
	b.action = name
	return b
}

// WithApplied sets the final applied deltas.
func (b *Builder) WithApplied(deltas map[character.Key]int) *Builder {
	b.applied = deltas
	return b
}

// WithNotes appends mechanical notes (milestones, warnings).
func (b *Builder) WithNotes(notes []string) *Builder {
	b.notes = append(b.notes, notes...)
	return b
}

// WithRiskOutcome records a risky action's success flag.
func (b *Builder) WithRiskOutcome(success *bool) *Builder {
	b.outcome = success
	return b
}

// WithMemories adds earlier narrative moments for continuity.
func (b *Builder) WithMemories(memories []string) *Builder {
	b.memories = append(b.memories, memories...)
	return b
}

// Build renders the user-turn prompt.
func (b *Builder) Build() string {
	var sb strings.Builder
	if b.c != nil {
		fmt.Fprintf(&sb, "Day %d of %d. She is %s (personality: %s), currently at the %s.\n",
			b.c.GameDay, character.FinalDay, b.c.RelationshipStage(), b.c.Personality, sceneOrDefault(b.c.Scene))
		fmt.Fprintf(&sb, "Her mood gauge reads %d/100.\n", b.c.MoodGauge)
	}
	if b.action != "" {
		fmt.Fprintf(&sb, "The player chose to: %s.\n", b.action)
	}
	if b.outcome != nil {
		if *b.outcome {
			sb.WriteString("It went well.\n")
		} else {
			sb.WriteString("It did not go well.\n")
		}
	}
	if len(b.applied) > 0 {
		fmt.Fprintf(&sb, "Shifts in her feelings (internal, never stated): %s.\n", describeShifts(b.applied))
	}
	for _, n := range b.notes {
		fmt.Fprintf(&sb, "Context: %s\n", n)
	}
	if len(b.memories) > 0 {
		sb.WriteString("Moments she still thinks about:\n")
		for _, m := range b.memories {
			fmt.Fprintf(&sb, "- %s\n", m)
		}
	}
	sb.WriteString("Narrate the moment.")
	return sb.String()
}

func sceneOrDefault(scene string) string {
	if scene == "" {
		return "usual spot"
	}
	return scene
}

// describeShifts renders deltas as loose direction words rather than
// numbers, in stable order.
func describeShifts(deltas map[character.Key]int) string {
	keys := make([]string, 0, len(deltas))
	for k := range deltas {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		d := deltas[character.Key(k)]
		switch {
		case d > 5:
			parts = append(parts, k+" rose sharply")
		case d > 0:
			parts = append(parts, k+" rose")
		case d < -5:
			parts = append(parts, k+" fell sharply")
		case d < 0:
			parts = append(parts, k+" fell")
		}
	}
	if len(parts) == 0 {
		return "nothing noticeable"
	}
	return strings.Join(parts, ", ")
}
