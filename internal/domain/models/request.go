package models

// Message represents a single message in a conversation context.
// Context messages are accepted on generate requests for API compatibility;
// the engine does not currently condition its output on them.
type Message struct {
	Role    string `json:"role"`    // "system", "user", "assistant"
	Content string `json:"content"` // Message content
}

// GenerateRequest is the body of POST /generate.
//
// Design principles:
// - Explicit named fields instead of a loose string-keyed map
// - Required fields validated before dispatch
// - JSON serialization ready
type GenerateRequest struct {
	// Prompt is the user prompt to classify and respond to
	Prompt string `json:"prompt"`

	// Context is the optional conversation context
	Context []Message `json:"context,omitempty"`
}

// Validate checks if the request is valid.
func (r *GenerateRequest) Validate() error {
	if r.Prompt == "" {
		return ErrMissingPrompt
	}
	return nil
}

// ExecuteCodeRequest is the body of POST /execute-code.
type ExecuteCodeRequest struct {
	// Code is the source to "execute" (never actually interpreted)
	Code string `json:"code"`

	// Language is the programming language label (defaults to "python")
	Language string `json:"language,omitempty"`
}

// Validate checks if the request is valid.
func (r *ExecuteCodeRequest) Validate() error {
	if r.Code == "" {
		return ErrMissingCode
	}
	return nil
}

// GetLanguage returns the language or the default ("python").
func (r *ExecuteCodeRequest) GetLanguage() string {
	if r.Language == "" {
		return "python"
	}
	return r.Language
}

// SentimentRequest is the body of POST /analyze-sentiment.
type SentimentRequest struct {
	// Text is the text to score
	Text string `json:"text"`
}

// Validate checks if the request is valid.
func (r *SentimentRequest) Validate() error {
	if r.Text == "" {
		return ErrMissingText
	}
	return nil
}

// WorkflowRequest is the body of POST /workflow.
type WorkflowRequest struct {
	// WorkflowType selects one of the registered workflow kinds
	WorkflowType string `json:"workflow_type"`

	// Inputs carries the workflow-specific inputs
	Inputs WorkflowInputs `json:"inputs"`
}

// Validate checks if the request is valid. Workflow-specific required
// inputs are validated by the selected workflow, not here.
func (r *WorkflowRequest) Validate() error {
	if r.WorkflowType == "" {
		return ErrMissingWorkflowType
	}
	return nil
}

// WorkflowInputs is the union of inputs accepted across all workflow
// kinds. Each workflow validates the presence of the fields it requires
// and ignores the rest.
type WorkflowInputs struct {
	// Prompt is required by text_generation and nsfw_content
	Prompt string `json:"prompt,omitempty"`

	// Context is optional conversation context for text_generation
	Context []Message `json:"context,omitempty"`

	// Code is required by code_analysis
	Code string `json:"code,omitempty"`

	// Language is optional for code_analysis (defaults to "python")
	Language string `json:"language,omitempty"`

	// Question is required by hacker_response
	Question string `json:"question,omitempty"`

	// InvestmentAmount is required by financial_analysis
	InvestmentAmount float64 `json:"investment_amount,omitempty"`

	// RiskLevel is optional for financial_analysis (defaults to 3)
	RiskLevel int `json:"risk_level,omitempty"`
}

// GetLanguage returns the code-analysis language or the default.
func (in *WorkflowInputs) GetLanguage() string {
	if in.Language == "" {
		return "python"
	}
	return in.Language
}

// GetRiskLevel returns the financial-analysis risk level or the default (3).
func (in *WorkflowInputs) GetRiskLevel() int {
	if in.RiskLevel == 0 {
		return 3
	}
	return in.RiskLevel
}
