package models

import "fmt"

// WorkflowKind identifies one of the registered workflow types. Dispatch
// happens via exhaustive switch over these constants rather than a
// runtime string-keyed lookup, so the compiler keeps coverage honest when
// a kind is added.
type WorkflowKind string

const (
	WorkflowTextGeneration    WorkflowKind = "text_generation"
	WorkflowCodeAnalysis      WorkflowKind = "code_analysis"
	WorkflowHackerResponse    WorkflowKind = "hacker_response"
	WorkflowNSFWContent       WorkflowKind = "nsfw_content"
	WorkflowFinancialAnalysis WorkflowKind = "financial_analysis"
)

// AllWorkflowKinds lists every registered workflow kind.
func AllWorkflowKinds() []WorkflowKind {
	return []WorkflowKind{
		WorkflowTextGeneration,
		WorkflowCodeAnalysis,
		WorkflowHackerResponse,
		WorkflowNSFWContent,
		WorkflowFinancialAnalysis,
	}
}

// ParseWorkflowKind maps a request's workflow_type string to a
// WorkflowKind. Unrecognized names fail with ErrUnknownWorkflow.
func ParseWorkflowKind(s string) (WorkflowKind, error) {
	switch WorkflowKind(s) {
	case WorkflowTextGeneration, WorkflowCodeAnalysis, WorkflowHackerResponse,
		WorkflowNSFWContent, WorkflowFinancialAnalysis:
		return WorkflowKind(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownWorkflow, s)
	}
}

// WorkflowPayload is the tagged union of per-workflow result shapes.
// Each workflow returns exactly one of the implementations below; the
// shape is fixed per workflow kind.
type WorkflowPayload interface {
	workflowPayload()
}

// TextGenerationPayload is the result of the text_generation workflow.
type TextGenerationPayload struct {
	GeneratedText     *EngineResponse  `json:"generated_text"`
	SentimentAnalysis *SentimentResult `json:"sentiment_analysis"`
}

func (*TextGenerationPayload) workflowPayload() {}

// CodeAnalysisPayload is the result of the code_analysis workflow.
type CodeAnalysisPayload struct {
	Explanation             *EngineResponse  `json:"explanation"`
	ExecutionResult         *ExecutionResult `json:"execution_result"`
	OptimizationSuggestions *EngineResponse  `json:"optimization_suggestions"`
}

func (*CodeAnalysisPayload) workflowPayload() {}

// HackerResponsePayload is the result of the hacker_response workflow.
type HackerResponsePayload struct {
	Domain                 *EngineResponse `json:"domain"`
	EducationalInformation *EngineResponse `json:"educational_information"`
	PracticalExamples      *EngineResponse `json:"practical_examples"`
	EthicalConsiderations  *EngineResponse `json:"ethical_considerations"`
}

func (*HackerResponsePayload) workflowPayload() {}

// NSFWContentPayload is the result of the nsfw_content workflow.
type NSFWContentPayload struct {
	Verification *EngineResponse `json:"verification"`
	NSFWContent  *EngineResponse `json:"nsfw_content"`
}

func (*NSFWContentPayload) workflowPayload() {}

// FinancialAnalysisPayload is the result of the financial_analysis
// workflow. ExecutionResult is nil when the code-generation step produced
// a response without a code field.
type FinancialAnalysisPayload struct {
	InvestmentStrategy    *EngineResponse  `json:"investment_strategy"`
	ProfitCalculationCode *EngineResponse  `json:"profit_calculation_code"`
	ExecutionResult       *ExecutionResult `json:"execution_result"`
	RiskAssessment        *EngineResponse  `json:"risk_assessment"`
}

func (*FinancialAnalysisPayload) workflowPayload() {}
