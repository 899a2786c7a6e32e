package cmd

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/oralexam/internal/console"
)

func TestAskRequest_PromptsForMissingFields(t *testing.T) {
	v := viper.New()
	v.Set("questions", 3)
	con := console.NewScript("  ", "Ada", "Networking")

	req, err := askRequest(context.Background(), con, v)
	require.NoError(t, err)
	assert.Equal(t, "Ada", req.StudentName)
	assert.Equal(t, "Networking", req.Domain)
	assert.Equal(t, 3, req.QuestionCount)
	assert.Len(t, con.Prompts, 3)
	assert.Contains(t, con.Prompts[2], "Hello Ada")
}

func TestAskRequest_FlagsSkipPrompts(t *testing.T) {
	v := viper.New()
	v.Set("student", "Ada")
	v.Set("domain", "Go")
	v.Set("questions", 0)
	con := console.NewScript()

	_, err := askRequest(context.Background(), con, v)
	assert.Error(t, err, "zero questions is invalid")
	assert.Empty(t, con.Prompts)
}

func TestAskRequest_EOF(t *testing.T) {
	v := viper.New()
	v.Set("questions", 1)
	_, err := askRequest(context.Background(), console.NewScript(), v)
	require.ErrorIs(t, err, io.EOF)
	assert.True(t, isInterrupt(context.Background(), err))
	assert.False(t, isInterrupt(context.Background(), errors.New("boom")))
}

func clearLLMEnv(t *testing.T) {
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"ORALEXAM_LLM_PROVIDER", "ORALEXAM_GEMINI_API_KEY", "ORALEXAM_OPENAI_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLLMConfig(t *testing.T) {
	clearLLMEnv(t)

	v := viper.New()
	v.Set("llm-provider", "mock")
	v.Set("llm-timeout", 10*time.Second)
	v.Set("llm-retries", 2)

	cfg, err := llmConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.Provider)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestLLMConfig_Discovery(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	v := viper.New()
	v.Set("llm-model", "gpt-4.1-mini")

	cfg, err := llmConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4.1-mini", cfg.OpenAI.Model)
}

func TestLLMConfig_MissingKey(t *testing.T) {
	clearLLMEnv(t)
	_, err := llmConfig(viper.New())
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "прив…", truncate("приветствие", 5))
}
