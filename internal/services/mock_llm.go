package services

import (
	"context"
	"sync"
)

// MockLLMService is a test double for LLMService.
type MockLLMService struct {
	InitModelFunc         func(ctx context.Context, modelName string) error
	GenerateNarrativeFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Call tracking
	InitModelCalls []string
	NarrativeCalls []NarrativeCall

	mu sync.Mutex
}

// NarrativeCall records one GenerateNarrative invocation.
type NarrativeCall struct {
	SystemPrompt string
	UserPrompt   string
}

// NewMockLLMService creates a mock that returns a fixed narrative by
// default.
func NewMockLLMService() *MockLLMService {
	return &MockLLMService{}
}

func (m *MockLLMService) InitModel(ctx context.Context, modelName string) error {
	m.mu.Lock()
	m.InitModelCalls = append(m.InitModelCalls, modelName)
	m.mu.Unlock()
	if m.InitModelFunc != nil {
		return m.InitModelFunc(ctx, modelName)
	}
	return nil
}

func (m *MockLLMService) GenerateNarrative(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	m.NarrativeCalls = append(m.NarrativeCalls, NarrativeCall{SystemPrompt: systemPrompt, UserPrompt: userPrompt})
	m.mu.Unlock()
	if m.GenerateNarrativeFunc != nil {
		return m.GenerateNarrativeFunc(ctx, systemPrompt, userPrompt)
	}
	return "The moment passes gently between you.", nil
}
