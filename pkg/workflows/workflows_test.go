package workflows

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshogin/aibackend/internal/domain/models"
)

// fakeEngine records engine calls in order so tests can assert each
// workflow's fixed step sequence and prompt construction.
type fakeEngine struct {
	calls        []string
	generateCode bool // when true, GenerateText responses carry a code field
	execDisabled bool
}

func (e *fakeEngine) GenerateText(ctx context.Context, prompt string, contextMessages []models.Message) (*models.EngineResponse, error) {
	e.calls = append(e.calls, "generate:"+prompt)
	resp := &models.EngineResponse{
		Text:      "response to: " + prompt,
		Category:  "general",
		Timestamp: models.Timestamp(),
	}
	if e.generateCode {
		resp.Code = "def f(): pass"
		resp.Language = "python"
	}
	return resp, nil
}

func (e *fakeEngine) ExecuteCode(ctx context.Context, code, language string) (*models.ExecutionResult, error) {
	e.calls = append(e.calls, fmt.Sprintf("execute:%s", language))
	if e.execDisabled {
		return &models.ExecutionResult{
			Success:   false,
			Error:     "Code execution is disabled",
			Timestamp: models.Timestamp(),
		}, nil
	}
	return &models.ExecutionResult{
		Success:       true,
		Output:        "ok",
		ExecutionTime: 0.45,
		Timestamp:     models.Timestamp(),
	}, nil
}

func (e *fakeEngine) AnalyzeSentiment(ctx context.Context, text string) (*models.SentimentResult, error) {
	e.calls = append(e.calls, "sentiment:"+text)
	return &models.SentimentResult{
		Sentiment:  "neutral",
		Score:      0.5,
		Confidence: 0.8,
		Timestamp:  models.Timestamp(),
	}, nil
}

// TestNew_CoversAllKinds tests that every registered kind has a handler.
func TestNew_CoversAllKinds(t *testing.T) {
	engine := &fakeEngine{}

	for _, kind := range models.AllWorkflowKinds() {
		wf := New(kind, engine)
		require.NotNil(t, wf, "no workflow for kind %s", kind)
		assert.Equal(t, kind, wf.Kind())
	}
}

// TestTextGeneration_StepOrder tests sentiment-then-generate ordering.
func TestTextGeneration_StepOrder(t *testing.T) {
	engine := &fakeEngine{}
	wf := NewTextGenerationWorkflow(engine)

	payload, err := wf.Execute(context.Background(), models.WorkflowInputs{Prompt: "hello"})

	require.NoError(t, err)
	result := payload.(*models.TextGenerationPayload)
	assert.NotNil(t, result.GeneratedText)
	assert.NotNil(t, result.SentimentAnalysis)
	assert.Equal(t, []string{
		"sentiment:hello",
		"generate:hello",
	}, engine.calls)
}

// TestTextGeneration_MissingPrompt tests required input validation.
func TestTextGeneration_MissingPrompt(t *testing.T) {
	wf := NewTextGenerationWorkflow(&fakeEngine{})

	payload, err := wf.Execute(context.Background(), models.WorkflowInputs{})

	assert.Nil(t, payload)
	var inputErr *models.WorkflowInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "text_generation", inputErr.Workflow)
	assert.Equal(t, "prompt", inputErr.Field)
}

// TestCodeAnalysis_StepOrder tests explain-execute-optimize ordering and
// the language default.
func TestCodeAnalysis_StepOrder(t *testing.T) {
	engine := &fakeEngine{}
	wf := NewCodeAnalysisWorkflow(engine)

	payload, err := wf.Execute(context.Background(), models.WorkflowInputs{Code: "print(1)"})

	require.NoError(t, err)
	result := payload.(*models.CodeAnalysisPayload)
	assert.NotNil(t, result.Explanation)
	assert.NotNil(t, result.ExecutionResult)
	assert.NotNil(t, result.OptimizationSuggestions)

	require.Len(t, engine.calls, 3)
	assert.Equal(t, "generate:Explain the following python code:\n\nprint(1)", engine.calls[0])
	assert.Equal(t, "execute:python", engine.calls[1])
	assert.Equal(t, "generate:Suggest optimizations for the following python code:\n\nprint(1)", engine.calls[2])
}

// TestCodeAnalysis_MissingCode tests required input validation.
func TestCodeAnalysis_MissingCode(t *testing.T) {
	wf := NewCodeAnalysisWorkflow(&fakeEngine{})

	_, err := wf.Execute(context.Background(), models.WorkflowInputs{Language: "javascript"})

	var inputErr *models.WorkflowInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "code_analysis", inputErr.Workflow)
	assert.Equal(t, "code", inputErr.Field)
}

// TestHackerResponse_StepOrder tests the four fixed generation steps.
func TestHackerResponse_StepOrder(t *testing.T) {
	engine := &fakeEngine{}
	wf := NewHackerResponseWorkflow(engine)

	payload, err := wf.Execute(context.Background(), models.WorkflowInputs{Question: "what is xss?"})

	require.NoError(t, err)
	result := payload.(*models.HackerResponsePayload)
	assert.NotNil(t, result.Domain)
	assert.NotNil(t, result.EducationalInformation)
	assert.NotNil(t, result.PracticalExamples)
	assert.NotNil(t, result.EthicalConsiderations)

	assert.Equal(t, []string{
		"generate:Identify the cybersecurity domain of this question: what is xss?",
		"generate:Provide educational information about: what is xss?",
		"generate:Provide practical examples for: what is xss?",
		"generate:Provide ethical considerations for: what is xss?",
	}, engine.calls)
}

// TestNSFWContent_StepOrder tests verification-then-generation ordering.
func TestNSFWContent_StepOrder(t *testing.T) {
	engine := &fakeEngine{}
	wf := NewNSFWContentWorkflow(engine)

	payload, err := wf.Execute(context.Background(), models.WorkflowInputs{Prompt: "a story"})

	require.NoError(t, err)
	result := payload.(*models.NSFWContentPayload)
	assert.NotNil(t, result.Verification)
	assert.NotNil(t, result.NSFWContent)

	assert.Equal(t, []string{
		"generate:Verify if this request is for NSFW content: a story",
		"generate:a story",
	}, engine.calls)
}

// TestFinancialAnalysis_ExecutesWhenCodePresent tests the conditional
// execution step firing on structural code presence.
func TestFinancialAnalysis_ExecutesWhenCodePresent(t *testing.T) {
	engine := &fakeEngine{generateCode: true}
	wf := NewFinancialAnalysisWorkflow(engine)

	payload, err := wf.Execute(context.Background(), models.WorkflowInputs{
		InvestmentAmount: 1000,
		RiskLevel:        4,
	})

	require.NoError(t, err)
	result := payload.(*models.FinancialAnalysisPayload)
	assert.NotNil(t, result.InvestmentStrategy)
	assert.NotNil(t, result.ProfitCalculationCode)
	assert.NotNil(t, result.ExecutionResult)
	assert.NotNil(t, result.RiskAssessment)

	require.Len(t, engine.calls, 4)
	assert.Equal(t, "generate:Generate an investment strategy for $1000 with risk level 4/5", engine.calls[0])
	assert.Equal(t, "generate:Generate Python code for calculating potential profits from $1000 investment with risk level 4/5", engine.calls[1])
	assert.Equal(t, "execute:python", engine.calls[2])
	assert.Equal(t, "generate:Provide a risk assessment for investing $1000 with risk level 4/5", engine.calls[3])
}

// TestFinancialAnalysis_SkipsExecutionWithoutCode tests that the
// execution step is skipped when the generated response carries no code.
func TestFinancialAnalysis_SkipsExecutionWithoutCode(t *testing.T) {
	engine := &fakeEngine{generateCode: false}
	wf := NewFinancialAnalysisWorkflow(engine)

	payload, err := wf.Execute(context.Background(), models.WorkflowInputs{InvestmentAmount: 500})

	require.NoError(t, err)
	result := payload.(*models.FinancialAnalysisPayload)
	assert.Nil(t, result.ExecutionResult)
	assert.NotNil(t, result.ProfitCalculationCode)

	// Three generation calls, no execution call, default risk level 3
	assert.Equal(t, []string{
		"generate:Generate an investment strategy for $500 with risk level 3/5",
		"generate:Generate Python code for calculating potential profits from $500 investment with risk level 3/5",
		"generate:Provide a risk assessment for investing $500 with risk level 3/5",
	}, engine.calls)
}

// TestFinancialAnalysis_MissingAmount tests required input validation.
func TestFinancialAnalysis_MissingAmount(t *testing.T) {
	wf := NewFinancialAnalysisWorkflow(&fakeEngine{})

	_, err := wf.Execute(context.Background(), models.WorkflowInputs{RiskLevel: 2})

	var inputErr *models.WorkflowInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "financial_analysis", inputErr.Workflow)
	assert.Equal(t, "investment_amount", inputErr.Field)
}
