package services

import "context"

// LLMService is the narrative-generation interface. Mechanical
// outcomes are committed before any call here; a narrative failure is
// presentation-only and never rolled back.
type LLMService interface {
	// InitModel prepares the model on startup.
	InitModel(ctx context.Context, modelName string) error

	// GenerateNarrative produces flavor text for a committed outcome.
	GenerateNarrative(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
