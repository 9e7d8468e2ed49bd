package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mshogin/aibackend/internal/domain/models"
	"github.com/mshogin/aibackend/internal/domain/services/classifier"
	"github.com/mshogin/aibackend/internal/infrastructure/config"
	"github.com/mshogin/aibackend/internal/infrastructure/logging"
)

// AIEngine is the classifier+responder core. It classifies prompts into
// one of five categories via fixed keyword tables and produces
// category-specific canned responses. There is no real model behind it;
// the model name and sampling settings are carried for API compatibility
// only.
//
// Design principles:
// - Deterministic: same prompt and flags produce the same category
// - Stateless between calls: the keyword tables and feature flags are
//   read-only after construction
// - Total: generation and sentiment analysis cannot fail
type AIEngine struct {
	model       string
	temperature float64
	maxTokens   int

	unrestrictedMode    bool
	enableCodeExecution bool
	enableNSFWContent   bool

	executionDelay time.Duration
}

// NewAIEngine creates a new AIEngine from the engine configuration.
func NewAIEngine(cfg config.EngineConfig) *AIEngine {
	logging.Info("Initializing AI Engine", map[string]interface{}{
		"model":             cfg.Model,
		"unrestricted_mode": cfg.UnrestrictedMode,
		"code_execution":    cfg.EnableCodeExecution,
		"nsfw_content":      cfg.EnableNSFWContent,
	})

	return &AIEngine{
		model:               cfg.Model,
		temperature:         cfg.Temperature,
		maxTokens:           cfg.MaxTokens,
		unrestrictedMode:    cfg.UnrestrictedMode,
		enableCodeExecution: cfg.EnableCodeExecution,
		enableNSFWContent:   cfg.EnableNSFWContent,
		executionDelay:      cfg.ExecutionDelay,
	}
}

// GenerateText classifies the prompt and returns the canned response for
// its category. The context messages are accepted but do not influence
// the response.
func (e *AIEngine) GenerateText(ctx context.Context, prompt string, contextMessages []models.Message) (*models.EngineResponse, error) {
	if prompt == "" {
		return nil, models.ErrMissingPrompt
	}

	logging.Info("Generating text", map[string]interface{}{
		"prompt": truncate(prompt, 50),
	})

	category := classifier.Classify(prompt, e.unrestrictedMode)

	switch category {
	case classifier.CategoryRestricted:
		return &models.EngineResponse{
			Text:       restrictedTopicText,
			Restricted: true,
			Timestamp:  models.Timestamp(),
		}, nil

	case classifier.CategoryCode:
		return e.codeResponse(prompt), nil

	case classifier.CategoryNSFW:
		if !e.enableNSFWContent {
			return &models.EngineResponse{
				Text:       nsfwDisabledText,
				Restricted: true,
				Timestamp:  models.Timestamp(),
			}, nil
		}
		return &models.EngineResponse{
			Text:          nsfwContentText,
			NSFW:          true,
			ContentRating: "adult",
			Timestamp:     models.Timestamp(),
		}, nil

	case classifier.CategoryHacker:
		return e.hackerResponse(prompt), nil

	default:
		return e.generalResponse(prompt), nil
	}
}

// codeResponse selects the canned snippet for the detected language and
// wraps it in the code response shape.
func (e *AIEngine) codeResponse(prompt string) *models.EngineResponse {
	language := classifier.DetectLanguage(prompt)

	var code string
	switch language {
	case "python":
		code = pythonSnippet
	case "javascript":
		code = javascriptSnippet
	default:
		code = unknownLanguageSnippet
	}

	text := fmt.Sprintf("Here's the code you requested:\n\n```\n%s\n```\n\nThis code demonstrates a simple profit calculation algorithm. You can adjust the parameters to suit your specific needs.", code)

	return &models.EngineResponse{
		Text:      text,
		Code:      code,
		Language:  language,
		Timestamp: models.Timestamp(),
	}
}

// hackerResponse selects one of three canned educational texts based on
// literal keyword presence.
func (e *AIEngine) hackerResponse(prompt string) *models.EngineResponse {
	text := classifier.SelectSecurityText(prompt,
		sqlInjectionText, bypassText, genericSecurityText)

	return &models.EngineResponse{
		Text:              text,
		Category:          "hacker_question",
		EducationalNotice: true,
		Timestamp:         models.Timestamp(),
	}
}

// generalResponse echoes the first 30 characters of the prompt in the
// fallback response shape.
func (e *AIEngine) generalResponse(prompt string) *models.EngineResponse {
	text := fmt.Sprintf("I've processed your request about '%s...' and here is my response. This is a simulated AI response that would be more detailed and relevant in a production environment.", truncate(prompt, 30))

	return &models.EngineResponse{
		Text:      text,
		Category:  "general",
		Timestamp: models.Timestamp(),
	}
}

// ExecuteCode simulates executing the given code. The code and language
// are never interpreted. When execution is enabled the call waits the
// configured delay without blocking other requests; the wait is aborted
// if the caller's context is cancelled.
func (e *AIEngine) ExecuteCode(ctx context.Context, code, language string) (*models.ExecutionResult, error) {
	if !e.enableCodeExecution {
		return &models.ExecutionResult{
			Success:   false,
			Error:     codeExecutionDisabledError,
			Timestamp: models.Timestamp(),
		}, nil
	}

	logging.Info("Executing code", map[string]interface{}{
		"language": language,
	})

	// Simulated execution time
	timer := time.NewTimer(e.executionDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &models.ExecutionResult{
		Success:       true,
		Output:        codeExecutionOutput,
		ExecutionTime: 0.45,
		Timestamp:     models.Timestamp(),
	}, nil
}

// AnalyzeSentiment scores the text against the fixed lexicons.
func (e *AIEngine) AnalyzeSentiment(ctx context.Context, text string) (*models.SentimentResult, error) {
	logging.Info("Analyzing sentiment", map[string]interface{}{
		"text": truncate(text, 50),
	})

	label, score := classifier.ScoreSentiment(text)

	return &models.SentimentResult{
		Sentiment:  label,
		Score:      score,
		Confidence: 0.8,
		Timestamp:  models.Timestamp(),
	}, nil
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
