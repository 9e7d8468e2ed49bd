package workflows

import (
	"context"
	"fmt"

	"github.com/mshogin/aibackend/internal/domain/models"
	"github.com/mshogin/aibackend/internal/domain/services"
)

// NSFWContentWorkflow verifies the request is for NSFW content and then
// generates a response for the prompt itself. Whether the second step
// produces content or a refusal is decided by the engine's NSFW flag,
// not by this workflow.
type NSFWContentWorkflow struct {
	engine services.Engine
}

// NewNSFWContentWorkflow creates a new NSFWContentWorkflow instance.
func NewNSFWContentWorkflow(engine services.Engine) services.Workflow {
	return &NSFWContentWorkflow{engine: engine}
}

// Kind returns the workflow identifier.
func (w *NSFWContentWorkflow) Kind() models.WorkflowKind {
	return models.WorkflowNSFWContent
}

// Execute runs the workflow steps.
func (w *NSFWContentWorkflow) Execute(ctx context.Context, inputs models.WorkflowInputs) (models.WorkflowPayload, error) {
	if inputs.Prompt == "" {
		return nil, &models.WorkflowInputError{Workflow: string(w.Kind()), Field: "prompt"}
	}

	// Step 1: Verify the content is actually NSFW
	verificationPrompt := fmt.Sprintf("Verify if this request is for NSFW content: %s", inputs.Prompt)
	verification, err := w.engine.GenerateText(ctx, verificationPrompt, nil)
	if err != nil {
		return nil, err
	}

	// Step 2: Generate a response for the prompt itself
	nsfwResponse, err := w.engine.GenerateText(ctx, inputs.Prompt, nil)
	if err != nil {
		return nil, err
	}

	return &models.NSFWContentPayload{
		Verification: verification,
		NSFWContent:  nsfwResponse,
	}, nil
}
