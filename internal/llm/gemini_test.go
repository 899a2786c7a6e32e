package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"evaluation": map[string]any{"type": "string", "enum": []any{"correct", "partially_correct", "incorrect"}},
			"feedback":   map[string]any{"type": "string"},
			"score":      map[string]any{"type": "number"},
			"keywords": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"evaluation", "feedback", "score"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["score"].Type != genai.TypeNumber {
		t.Fatalf("expected NUMBER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["evaluation"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["evaluation"].Enum))
	}
	if schema.Properties["keywords"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items, got %s", schema.Properties["keywords"].Items.Type)
	}
	if len(schema.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Required))
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
