package workflows

import (
	"context"

	"github.com/mshogin/aibackend/internal/domain/models"
	"github.com/mshogin/aibackend/internal/domain/services"
)

// TextGenerationWorkflow scores the prompt's sentiment and then generates
// a response for it. Two engine calls, strictly in that order.
type TextGenerationWorkflow struct {
	engine services.Engine
}

// NewTextGenerationWorkflow creates a new TextGenerationWorkflow instance.
func NewTextGenerationWorkflow(engine services.Engine) services.Workflow {
	return &TextGenerationWorkflow{engine: engine}
}

// Kind returns the workflow identifier.
func (w *TextGenerationWorkflow) Kind() models.WorkflowKind {
	return models.WorkflowTextGeneration
}

// Execute runs the workflow steps.
func (w *TextGenerationWorkflow) Execute(ctx context.Context, inputs models.WorkflowInputs) (models.WorkflowPayload, error) {
	if inputs.Prompt == "" {
		return nil, &models.WorkflowInputError{Workflow: string(w.Kind()), Field: "prompt"}
	}

	// Step 1: Analyze sentiment of prompt
	sentiment, err := w.engine.AnalyzeSentiment(ctx, inputs.Prompt)
	if err != nil {
		return nil, err
	}

	// Step 2: Generate text based on prompt and context
	response, err := w.engine.GenerateText(ctx, inputs.Prompt, inputs.Context)
	if err != nil {
		return nil, err
	}

	return &models.TextGenerationPayload{
		GeneratedText:     response,
		SentimentAnalysis: sentiment,
	}, nil
}
