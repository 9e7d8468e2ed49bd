package services

import (
	"context"

	"github.com/mshogin/aibackend/internal/domain/models"
)

// Engine defines the interface for the classifier+responder core.
// The engine classifies prompts into a fixed set of categories and
// produces category-specific canned responses; it performs no real model
// inference and no real code execution.
type Engine interface {
	// GenerateText classifies the prompt and returns the canned response
	// for its category. Prompt must be non-empty; the optional context is
	// accepted but does not influence the response.
	GenerateText(ctx context.Context, prompt string, contextMessages []models.Message) (*models.EngineResponse, error)

	// ExecuteCode simulates executing the given code. The code and
	// language are accepted but never interpreted; the call either fails
	// immediately with the disabled-feature error or waits a fixed delay
	// and returns the fixed success payload.
	ExecuteCode(ctx context.Context, code, language string) (*models.ExecutionResult, error)

	// AnalyzeSentiment scores the text against fixed positive/negative
	// lexicons and returns a sentiment label with a score in [0,1].
	AnalyzeSentiment(ctx context.Context, text string) (*models.SentimentResult, error)
}
