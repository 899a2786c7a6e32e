package llm

import "fmt"

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOllamaBaseURL     = "http://localhost:11434/v1"
)

// OpenRouterProvider targets the OpenRouter API. OpenRouter speaks the
// OpenAI protocol, so the OpenAI client is reused.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// OllamaProvider targets a local Ollama server through its
// OpenAI-compatible endpoint. Ollama has no strict schema mode, so JSON
// mode is used and the schema goes into the system prompt.
type OllamaProvider struct {
	*OpenAIProvider
}

// NewOllamaProvider creates a provider for a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	// Ollama ignores the key but the client insists on one.
	inner := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:  "ollama",
		Model:   cfg.Model,
		BaseURL: baseURL,
	})
	inner.jsonObject = true
	return &OllamaProvider{OpenAIProvider: inner}, nil
}
