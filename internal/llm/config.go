package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects the backend: "gemini", "openai", "anthropic",
	// "openrouter", "ollama" or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Ollama     OllamaConfig
	Retry      RetryConfig

	// Timeout bounds every attempt of a single call. Zero disables it.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for compatible APIs
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OllamaConfig targets a local OpenAI-compatible Ollama server.
type OllamaConfig struct {
	Model   string
	BaseURL string
}

// RetryConfig configures retries of transient failures. MaxAttempts of
// 1 or less means a single attempt.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with the exam defaults: Gemini flash,
// a 45 second bound per call and no retries.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Ollama: OllamaConfig{
			Model:   "llama3.2",
			BaseURL: defaultOllamaBaseURL,
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
}

// envVars lists the ORALEXAM_ variables read by ConfigFromEnv, in the
// order they are applied.
var envVars = []struct {
	name  string
	apply func(*Config, string)
}{
	{"ORALEXAM_LLM_PROVIDER", func(c *Config, v string) { c.Provider = v }},
	{"ORALEXAM_GEMINI_API_KEY", func(c *Config, v string) { c.Gemini.APIKey = v }},
	{"ORALEXAM_GEMINI_MODEL", func(c *Config, v string) { c.Gemini.Model = v }},
	{"ORALEXAM_OPENAI_API_KEY", func(c *Config, v string) { c.OpenAI.APIKey = v }},
	{"ORALEXAM_OPENAI_MODEL", func(c *Config, v string) { c.OpenAI.Model = v }},
	{"ORALEXAM_OPENAI_BASE_URL", func(c *Config, v string) { c.OpenAI.BaseURL = v }},
	{"ORALEXAM_ANTHROPIC_API_KEY", func(c *Config, v string) { c.Anthropic.APIKey = v }},
	{"ORALEXAM_ANTHROPIC_MODEL", func(c *Config, v string) { c.Anthropic.Model = v }},
	{"ORALEXAM_OPENROUTER_API_KEY", func(c *Config, v string) { c.OpenRouter.APIKey = v }},
	{"ORALEXAM_OPENROUTER_MODEL", func(c *Config, v string) { c.OpenRouter.Model = v }},
	{"ORALEXAM_OLLAMA_MODEL", func(c *Config, v string) { c.Ollama.Model = v }},
	{"ORALEXAM_OLLAMA_BASE_URL", func(c *Config, v string) { c.Ollama.BaseURL = v }},
}

// ConfigFromEnv builds a Config from ORALEXAM_ environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for _, ev := range envVars {
		if v := os.Getenv(ev.name); v != "" {
			ev.apply(&cfg, v)
		}
	}
	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables in
// priority order (Gemini, OpenAI, Anthropic, OpenRouter) and selects the
// first provider whose key is set.
func DiscoverConfig(base Config) (Config, bool) {
	cfg := base
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}
	return base, false
}

// HasCredentials reports whether the selected provider can be built
// without further configuration.
func (c Config) HasCredentials() bool {
	return c.Validate() == nil
}

// SetModel overrides the model of the selected provider.
func (c *Config) SetModel(model string) {
	if model == "" {
		return
	}
	switch c.Provider {
	case "anthropic":
		c.Anthropic.Model = model
	case "openai":
		c.OpenAI.Model = model
	case "gemini":
		c.Gemini.Model = model
	case "openrouter":
		c.OpenRouter.Model = model
	case "ollama":
		c.Ollama.Model = model
	}
}

// SetBaseURL overrides the endpoint of the selected provider, where the
// provider supports one.
func (c *Config) SetBaseURL(url string) {
	if url == "" {
		return
	}
	switch c.Provider {
	case "openai":
		c.OpenAI.BaseURL = url
	case "openrouter":
		c.OpenRouter.BaseURL = url
	case "ollama":
		c.Ollama.BaseURL = url
	}
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ORALEXAM_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("ORALEXAM_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("ORALEXAM_GEMINI_API_KEY (or GEMINI_API_KEY) is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("ORALEXAM_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "ollama":
		if c.Ollama.BaseURL == "" {
			return fmt.Errorf("ORALEXAM_OLLAMA_BASE_URL is required for the ollama provider")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("LLM timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
