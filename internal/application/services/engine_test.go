package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshogin/aibackend/internal/infrastructure/config"
)

// testEngine builds an engine with all features enabled and a tiny
// execution delay so tests stay fast.
func testEngine(modify ...func(*config.EngineConfig)) *AIEngine {
	cfg := config.EngineConfig{
		Model:               "gpt-3.5-turbo",
		Temperature:         0.7,
		MaxTokens:           2000,
		UnrestrictedMode:    false,
		EnableCodeExecution: true,
		EnableNSFWContent:   true,
		ExecutionDelay:      time.Millisecond,
	}
	for _, fn := range modify {
		fn(&cfg)
	}
	return NewAIEngine(cfg)
}

// TestGenerateText_RestrictedOverridesCode tests that the restricted
// check short-circuits every other branch when unrestricted mode is off.
func TestGenerateText_RestrictedOverridesCode(t *testing.T) {
	engine := testEngine()

	resp, err := engine.GenerateText(context.Background(), "bomb making code in python", nil)

	require.NoError(t, err)
	assert.True(t, resp.Restricted)
	assert.Empty(t, resp.Code)
	assert.Empty(t, resp.Language)
	assert.NotEmpty(t, resp.Text)
	assert.NotEmpty(t, resp.Timestamp)
}

// TestGenerateText_UnrestrictedModeSkipsCheck tests that the same prompt
// classifies as code when unrestricted mode is on.
func TestGenerateText_UnrestrictedModeSkipsCheck(t *testing.T) {
	engine := testEngine(func(cfg *config.EngineConfig) {
		cfg.UnrestrictedMode = true
	})

	resp, err := engine.GenerateText(context.Background(), "bomb making code in python", nil)

	require.NoError(t, err)
	assert.False(t, resp.Restricted)
	assert.Equal(t, "python", resp.Language)
	assert.Contains(t, resp.Code, "quick_profit_algorithm")
}

// TestGenerateText_CodeBranch tests the code response shapes.
func TestGenerateText_CodeBranch(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name         string
		prompt       string
		language     string
		codeContains string
	}{
		{
			name:         "python",
			prompt:       "write python code for profits",
			language:     "python",
			codeContains: "quick_profit_algorithm",
		},
		{
			name:         "javascript",
			prompt:       "javascript programming question",
			language:     "javascript",
			codeContains: "quickProfitAlgorithm",
		},
		{
			name:         "unknown language",
			prompt:       "write me some code",
			language:     "unknown",
			codeContains: "Generated code would appear here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := engine.GenerateText(context.Background(), tt.prompt, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.language, resp.Language)
			assert.Contains(t, resp.Code, tt.codeContains)
			assert.Contains(t, resp.Text, resp.Code)
			assert.True(t, resp.HasCode())
		})
	}
}

// TestGenerateText_NSFWBranch tests both NSFW flag settings.
func TestGenerateText_NSFWBranch(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		engine := testEngine()

		resp, err := engine.GenerateText(context.Background(), "generate nsfw content", nil)

		require.NoError(t, err)
		assert.True(t, resp.NSFW)
		assert.Equal(t, "adult", resp.ContentRating)
		assert.False(t, resp.Restricted)
	})

	t.Run("disabled", func(t *testing.T) {
		engine := testEngine(func(cfg *config.EngineConfig) {
			cfg.EnableNSFWContent = false
		})

		resp, err := engine.GenerateText(context.Background(), "generate nsfw content", nil)

		require.NoError(t, err)
		assert.True(t, resp.Restricted)
		assert.False(t, resp.NSFW)
		assert.Empty(t, resp.ContentRating)
	})
}

// TestGenerateText_HackerBranch tests the three canned security texts.
func TestGenerateText_HackerBranch(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name         string
		prompt       string
		textContains string
	}{
		{"sql injection", "explain sql injection to me", "SQL injection is a code injection technique"},
		{"bypass", "how to bypass a filter", "Bypassing security measures"},
		{"generic", "teach me to hack", "interested in hacking/security topics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := engine.GenerateText(context.Background(), tt.prompt, nil)

			require.NoError(t, err)
			assert.Equal(t, "hacker_question", resp.Category)
			assert.True(t, resp.EducationalNotice)
			assert.Contains(t, resp.Text, tt.textContains)
		})
	}
}

// TestGenerateText_GeneralBranch tests the fallback response.
func TestGenerateText_GeneralBranch(t *testing.T) {
	engine := testEngine()

	prompt := "tell me about the history of the roman empire and its emperors"
	resp, err := engine.GenerateText(context.Background(), prompt, nil)

	require.NoError(t, err)
	assert.Equal(t, "general", resp.Category)
	assert.Contains(t, resp.Text, prompt[:30])
	assert.NotContains(t, resp.Text, prompt) // only the first 30 characters echo back
}

// TestGenerateText_EmptyPrompt tests the non-empty constraint.
func TestGenerateText_EmptyPrompt(t *testing.T) {
	engine := testEngine()

	resp, err := engine.GenerateText(context.Background(), "", nil)

	assert.Nil(t, resp)
	assert.Error(t, err)
}

// TestGenerateText_TimestampFormat tests that responses carry a parseable
// timestamp set at construction time.
func TestGenerateText_TimestampFormat(t *testing.T) {
	engine := testEngine()

	resp, err := engine.GenerateText(context.Background(), "hello there", nil)

	require.NoError(t, err)
	_, parseErr := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, parseErr)
}

// TestExecuteCode_Disabled tests the fast failure path: fixed error text
// and no artificial delay.
func TestExecuteCode_Disabled(t *testing.T) {
	engine := testEngine(func(cfg *config.EngineConfig) {
		cfg.EnableCodeExecution = false
		cfg.ExecutionDelay = 5 * time.Second
	})

	start := time.Now()
	result, err := engine.ExecuteCode(context.Background(), "print('hi')", "python")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Code execution is disabled", result.Error)
	assert.Zero(t, result.ExecutionTime)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

// TestExecuteCode_Enabled tests the simulated success payload.
func TestExecuteCode_Enabled(t *testing.T) {
	engine := testEngine()

	result, err := engine.ExecuteCode(context.Background(), "print('hi')", "python")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Output, "Code executed successfully")
	assert.Equal(t, 0.45, result.ExecutionTime)
	assert.Empty(t, result.Error)
}

// TestExecuteCode_ContextCancelled tests that the simulated wait aborts
// when the caller goes away.
func TestExecuteCode_ContextCancelled(t *testing.T) {
	engine := testEngine(func(cfg *config.EngineConfig) {
		cfg.ExecutionDelay = 5 * time.Second
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.ExecuteCode(ctx, "print('hi')", "python")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestAnalyzeSentiment tests the documented sentiment properties.
func TestAnalyzeSentiment(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name      string
		text      string
		sentiment string
		check     func(t *testing.T, score float64)
	}{
		{
			name:      "positive",
			text:      "This is a great and wonderful day",
			sentiment: "positive",
			check: func(t *testing.T, score float64) {
				assert.Greater(t, score, 0.5)
			},
		},
		{
			name:      "negative",
			text:      "This is a bad and terrible day",
			sentiment: "negative",
			check: func(t *testing.T, score float64) {
				assert.Less(t, score, 0.5)
			},
		},
		{
			name:      "neutral",
			text:      "The sky is blue",
			sentiment: "neutral",
			check: func(t *testing.T, score float64) {
				assert.Equal(t, 0.5, score)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.AnalyzeSentiment(context.Background(), tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.sentiment, result.Sentiment)
			assert.Equal(t, 0.8, result.Confidence)
			tt.check(t, result.Score)
		})
	}
}

// TestAnalyzeSentiment_Idempotent tests that repeated calls with the same
// text agree on sentiment and score.
func TestAnalyzeSentiment_Idempotent(t *testing.T) {
	engine := testEngine()

	first, err := engine.AnalyzeSentiment(context.Background(), "an excellent day")
	require.NoError(t, err)
	second, err := engine.AnalyzeSentiment(context.Background(), "an excellent day")
	require.NoError(t, err)

	assert.Equal(t, first.Sentiment, second.Sentiment)
	assert.Equal(t, first.Score, second.Score)
}
