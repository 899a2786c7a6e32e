package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider is the boundary to a text-generation service. Every exam
// component that talks to a model goes through it.
type Provider interface {
	// Generate sends one request and returns the model output. When the
	// request carries a Schema, Content holds JSON already validated
	// against it; otherwise Content holds the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier requests are sent to.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and rules for the call.
	System string

	// Messages is the conversation. Exam calls are single-turn, so this
	// usually holds one user message.
	Messages []Message

	// Schema, when set, asks for structured JSON output conforming to it.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero means the provider default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserMessage is shorthand for a single-turn conversation.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema is the JSON Schema a structured response must satisfy.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "exam-question". It doubles
	// as the cache key for the compiled validator.
	Name string

	Description string

	Definition map[string]any
}

// Response is the model output for one request.
type Response struct {
	// Content is validated JSON for schema requests and raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns the content of a free-text response, trimmed.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(string(r.Content))
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
