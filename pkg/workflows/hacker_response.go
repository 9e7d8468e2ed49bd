package workflows

import (
	"context"
	"fmt"

	"github.com/mshogin/aibackend/internal/domain/models"
	"github.com/mshogin/aibackend/internal/domain/services"
)

// HackerResponseWorkflow answers a cybersecurity question in four fixed
// steps: domain identification, educational information, practical
// examples, ethical considerations.
type HackerResponseWorkflow struct {
	engine services.Engine
}

// NewHackerResponseWorkflow creates a new HackerResponseWorkflow instance.
func NewHackerResponseWorkflow(engine services.Engine) services.Workflow {
	return &HackerResponseWorkflow{engine: engine}
}

// Kind returns the workflow identifier.
func (w *HackerResponseWorkflow) Kind() models.WorkflowKind {
	return models.WorkflowHackerResponse
}

// Execute runs the workflow steps.
func (w *HackerResponseWorkflow) Execute(ctx context.Context, inputs models.WorkflowInputs) (models.WorkflowPayload, error) {
	if inputs.Question == "" {
		return nil, &models.WorkflowInputError{Workflow: string(w.Kind()), Field: "question"}
	}

	// Step 1: Identify the cybersecurity domain of the question
	domainPrompt := fmt.Sprintf("Identify the cybersecurity domain of this question: %s", inputs.Question)
	domainResponse, err := w.engine.GenerateText(ctx, domainPrompt, nil)
	if err != nil {
		return nil, err
	}

	// Step 2: Generate educational information about the topic
	educationalPrompt := fmt.Sprintf("Provide educational information about: %s", inputs.Question)
	educationalResponse, err := w.engine.GenerateText(ctx, educationalPrompt, nil)
	if err != nil {
		return nil, err
	}

	// Step 3: Generate practical examples
	practicalPrompt := fmt.Sprintf("Provide practical examples for: %s", inputs.Question)
	practicalResponse, err := w.engine.GenerateText(ctx, practicalPrompt, nil)
	if err != nil {
		return nil, err
	}

	// Step 4: Generate ethical considerations
	ethicalPrompt := fmt.Sprintf("Provide ethical considerations for: %s", inputs.Question)
	ethicalResponse, err := w.engine.GenerateText(ctx, ethicalPrompt, nil)
	if err != nil {
		return nil, err
	}

	return &models.HackerResponsePayload{
		Domain:                 domainResponse,
		EducationalInformation: educationalResponse,
		PracticalExamples:      practicalResponse,
		EthicalConsiderations:  ethicalResponse,
	}, nil
}
