package models

import "time"

// Timestamp returns the current time formatted the way every response
// object carries it. All results are stamped once at construction and
// never mutated afterwards.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// EngineResponse is the result of a text generation call. Exactly one
// category of fields is populated depending on how the prompt classified:
// code responses carry Code+Language, NSFW responses carry
// NSFW+ContentRating, hacker responses carry Category+EducationalNotice,
// general responses carry Category, refusals carry Restricted.
type EngineResponse struct {
	Text              string `json:"text"`
	Restricted        bool   `json:"restricted,omitempty"`
	Code              string `json:"code,omitempty"`
	Language          string `json:"language,omitempty"`
	NSFW              bool   `json:"nsfw,omitempty"`
	ContentRating     string `json:"content_rating,omitempty"`
	Category          string `json:"category,omitempty"`
	EducationalNotice bool   `json:"educational_notice,omitempty"`
	Timestamp         string `json:"timestamp"`
}

// HasCode reports whether the response structurally carries generated
// code. The financial analysis workflow gates its execution step on this,
// not on the code's content.
func (r *EngineResponse) HasCode() bool {
	return r.Code != ""
}

// SentimentResult is the result of a sentiment analysis call.
type SentimentResult struct {
	Sentiment  string  `json:"sentiment"` // "positive", "negative" or "neutral"
	Score      float64 `json:"score"`     // 0.0 .. 1.0, 0.5 is neutral
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

// ExecutionResult is the result of a (simulated) code execution call.
// Execution never touches a real interpreter; the result is either the
// fixed disabled-feature failure or the fixed success payload.
type ExecutionResult struct {
	Success       bool    `json:"success"`
	Output        string  `json:"output,omitempty"`
	Error         string  `json:"error,omitempty"`
	ExecutionTime float64 `json:"execution_time,omitempty"`
	Timestamp     string  `json:"timestamp"`
}

// WorkflowResult is the aggregate result of a workflow run.
type WorkflowResult struct {
	WorkflowType string          `json:"workflow_type"`
	Result       WorkflowPayload `json:"result"`
	Timestamp    string          `json:"timestamp"`
}
