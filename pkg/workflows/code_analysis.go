package workflows

import (
	"context"
	"fmt"

	"github.com/mshogin/aibackend/internal/domain/models"
	"github.com/mshogin/aibackend/internal/domain/services"
)

// CodeAnalysisWorkflow explains the submitted code, runs the simulated
// execution, and suggests optimizations. Three engine calls, strictly
// sequential.
type CodeAnalysisWorkflow struct {
	engine services.Engine
}

// NewCodeAnalysisWorkflow creates a new CodeAnalysisWorkflow instance.
func NewCodeAnalysisWorkflow(engine services.Engine) services.Workflow {
	return &CodeAnalysisWorkflow{engine: engine}
}

// Kind returns the workflow identifier.
func (w *CodeAnalysisWorkflow) Kind() models.WorkflowKind {
	return models.WorkflowCodeAnalysis
}

// Execute runs the workflow steps.
func (w *CodeAnalysisWorkflow) Execute(ctx context.Context, inputs models.WorkflowInputs) (models.WorkflowPayload, error) {
	if inputs.Code == "" {
		return nil, &models.WorkflowInputError{Workflow: string(w.Kind()), Field: "code"}
	}
	language := inputs.GetLanguage()

	// Step 1: Generate explanation of the code
	explanationPrompt := fmt.Sprintf("Explain the following %s code:\n\n%s", language, inputs.Code)
	explanation, err := w.engine.GenerateText(ctx, explanationPrompt, nil)
	if err != nil {
		return nil, err
	}

	// Step 2: Execute the code if enabled
	executionResult, err := w.engine.ExecuteCode(ctx, inputs.Code, language)
	if err != nil {
		return nil, err
	}

	// Step 3: Generate optimization suggestions
	optimizationPrompt := fmt.Sprintf("Suggest optimizations for the following %s code:\n\n%s", language, inputs.Code)
	optimization, err := w.engine.GenerateText(ctx, optimizationPrompt, nil)
	if err != nil {
		return nil, err
	}

	return &models.CodeAnalysisPayload{
		Explanation:             explanation,
		ExecutionResult:         executionResult,
		OptimizationSuggestions: optimization,
	}, nil
}
