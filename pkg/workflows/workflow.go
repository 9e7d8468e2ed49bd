// Package workflows contains the fixed multi-step workflow
// implementations. Each workflow runs a hardcoded sequence of engine
// calls and merges their outputs into one aggregate payload; there is no
// data-dependent branching between steps.
package workflows

import (
	"github.com/mshogin/aibackend/internal/domain/models"
	"github.com/mshogin/aibackend/internal/domain/services"
)

// New returns the workflow implementation for the given kind. The switch
// is exhaustive over the registered kinds; an unrecognized kind yields
// nil and must be rejected by ParseWorkflowKind before reaching here.
func New(kind models.WorkflowKind, engine services.Engine) services.Workflow {
	switch kind {
	case models.WorkflowTextGeneration:
		return NewTextGenerationWorkflow(engine)
	case models.WorkflowCodeAnalysis:
		return NewCodeAnalysisWorkflow(engine)
	case models.WorkflowHackerResponse:
		return NewHackerResponseWorkflow(engine)
	case models.WorkflowNSFWContent:
		return NewNSFWContentWorkflow(engine)
	case models.WorkflowFinancialAnalysis:
		return NewFinancialAnalysisWorkflow(engine)
	default:
		return nil
	}
}
