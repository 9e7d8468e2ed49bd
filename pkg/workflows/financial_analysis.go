package workflows

import (
	"context"
	"fmt"

	"github.com/mshogin/aibackend/internal/domain/models"
	"github.com/mshogin/aibackend/internal/domain/services"
)

// FinancialAnalysisWorkflow produces an investment strategy, generates
// profit-calculation code, optionally runs the simulated execution, and
// produces a risk assessment. The execution step is the only conditional
// step across all workflows and it is gated purely on the structural
// presence of generated code in the prior response, never on its value.
type FinancialAnalysisWorkflow struct {
	engine services.Engine
}

// NewFinancialAnalysisWorkflow creates a new FinancialAnalysisWorkflow instance.
func NewFinancialAnalysisWorkflow(engine services.Engine) services.Workflow {
	return &FinancialAnalysisWorkflow{engine: engine}
}

// Kind returns the workflow identifier.
func (w *FinancialAnalysisWorkflow) Kind() models.WorkflowKind {
	return models.WorkflowFinancialAnalysis
}

// Execute runs the workflow steps.
func (w *FinancialAnalysisWorkflow) Execute(ctx context.Context, inputs models.WorkflowInputs) (models.WorkflowPayload, error) {
	if inputs.InvestmentAmount == 0 {
		return nil, &models.WorkflowInputError{Workflow: string(w.Kind()), Field: "investment_amount"}
	}
	riskLevel := inputs.GetRiskLevel()

	// Step 1: Generate investment strategy
	strategyPrompt := fmt.Sprintf("Generate an investment strategy for $%v with risk level %d/5", inputs.InvestmentAmount, riskLevel)
	strategy, err := w.engine.GenerateText(ctx, strategyPrompt, nil)
	if err != nil {
		return nil, err
	}

	// Step 2: Generate code for profit calculation
	codePrompt := fmt.Sprintf("Generate Python code for calculating potential profits from $%v investment with risk level %d/5", inputs.InvestmentAmount, riskLevel)
	codeResponse, err := w.engine.GenerateText(ctx, codePrompt, nil)
	if err != nil {
		return nil, err
	}

	// Step 3: Execute the generated code if present
	var executionResult *models.ExecutionResult
	if codeResponse.HasCode() {
		executionResult, err = w.engine.ExecuteCode(ctx, codeResponse.Code, "python")
		if err != nil {
			return nil, err
		}
	}

	// Step 4: Generate risk assessment
	riskPrompt := fmt.Sprintf("Provide a risk assessment for investing $%v with risk level %d/5", inputs.InvestmentAmount, riskLevel)
	riskAssessment, err := w.engine.GenerateText(ctx, riskPrompt, nil)
	if err != nil {
		return nil, err
	}

	return &models.FinancialAnalysisPayload{
		InvestmentStrategy:    strategy,
		ProfitCalculationCode: codeResponse,
		ExecutionResult:       executionResult,
		RiskAssessment:        riskAssessment,
	}, nil
}
