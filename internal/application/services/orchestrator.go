package services

import (
	"context"

	"github.com/mshogin/aibackend/internal/domain/models"
	domainServices "github.com/mshogin/aibackend/internal/domain/services"
	"github.com/mshogin/aibackend/internal/infrastructure/logging"
	"github.com/mshogin/aibackend/pkg/workflows"
)

// Orchestrator coordinates workflow execution over the engine.
//
// Design principles:
// - Single Responsibility: maps a workflow type to its handler and wraps
//   the handler's payload in the aggregate result
// - Dependency Injection: depends on the domain Engine interface
// - Dispatch by tagged kind, not by runtime string lookup
type Orchestrator struct {
	engine domainServices.Engine
}

// NewOrchestrator creates a new Orchestrator instance.
func NewOrchestrator(engine domainServices.Engine) *Orchestrator {
	logging.Info("Initializing Workflow Orchestrator")
	return &Orchestrator{engine: engine}
}

// RunWorkflow parses the workflow type, validates the inputs against the
// selected workflow, runs its fixed step sequence, and wraps the payload.
// Unrecognized workflow types fail with ErrUnknownWorkflow; missing
// required inputs fail with a *models.WorkflowInputError naming the
// workflow.
func (o *Orchestrator) RunWorkflow(ctx context.Context, workflowType string, inputs models.WorkflowInputs) (*models.WorkflowResult, error) {
	logging.Info("Running workflow", map[string]interface{}{
		"workflow": workflowType,
	})

	kind, err := models.ParseWorkflowKind(workflowType)
	if err != nil {
		return nil, err
	}

	workflow := workflows.New(kind, o.engine)

	payload, err := workflow.Execute(ctx, inputs)
	if err != nil {
		return nil, err
	}

	return &models.WorkflowResult{
		WorkflowType: string(kind),
		Result:       payload,
		Timestamp:    models.Timestamp(),
	}, nil
}

// Workflows returns the list of registered workflow types.
func (o *Orchestrator) Workflows() []string {
	kinds := models.AllWorkflowKinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return names
}
