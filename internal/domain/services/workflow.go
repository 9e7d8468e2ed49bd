package services

import (
	"context"

	"github.com/mshogin/aibackend/internal/domain/models"
)

// Workflow defines the interface for multi-step workflow implementations.
// A workflow runs a fixed, unconditional sequence of Engine calls and
// assembles their outputs into one aggregate payload. Steps always run
// sequentially; later steps never branch on the content of earlier
// results (the financial analysis workflow's optional execution step is
// gated only by the structural presence of generated code).
//
// Available workflow implementations live in pkg/workflows:
// text_generation, code_analysis, hacker_response, nsfw_content,
// financial_analysis.
type Workflow interface {
	// Kind returns the workflow's registered identifier.
	Kind() models.WorkflowKind

	// Execute validates the workflow's required inputs and runs its step
	// sequence. Missing required inputs fail with a
	// *models.WorkflowInputError naming the workflow.
	Execute(ctx context.Context, inputs models.WorkflowInputs) (models.WorkflowPayload, error)
}
