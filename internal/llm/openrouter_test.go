package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "google/gemini-2.0-flash-exp",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-2.0-flash-exp" {
			t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-2.0-flash-exp")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("friendly names are not mapped", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "gpt-4o"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "gpt-4o" {
			t.Errorf("model = %q", p.ModelID())
		}
	})
}

func TestNewOllamaProvider(t *testing.T) {
	if _, err := NewOllamaProvider(OllamaConfig{}); err == nil {
		t.Fatal("expected error for missing model")
	}
	p, err := NewOllamaProvider(OllamaConfig{Model: "llama3.2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.jsonObject {
		t.Error("expected JSON object mode")
	}
	if providerName(p) != "ollama" {
		t.Errorf("providerName = %q", providerName(p))
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model   string
		wantNil bool
		input   float64
	}{
		{"gpt-4o-mini", false, 0.15},
		{"gpt-4o-mini-2024-07-18", false, 0.15},
		{"gpt-4o-2024-08-06", false, 2.5},
		{"google/gemini-2.0-flash-exp", false, 0.1},
		{"claude-haiku-4-5-20251001", false, 1},
		{"mystery-model", true, 0},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if (c == nil) != tt.wantNil {
			t.Errorf("LookupCost(%q) nil = %v, want %v", tt.model, c == nil, tt.wantNil)
			continue
		}
		if c != nil && c.InputPerMTok != tt.input {
			t.Errorf("LookupCost(%q).InputPerMTok = %v, want %v", tt.model, c.InputPerMTok, tt.input)
		}
	}

	if got := (ModelCost{InputPerMTok: 1, OutputPerMTok: 2}).Cost(1_000_000, 500_000); got != 2 {
		t.Errorf("Cost() = %v, want 2", got)
	}
}
