package llm

import "strings"

// ModelCost is USD pricing per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// OpenRouter-style "vendor/model" IDs and dated snapshots fall back to
// the base model's price.
func LookupCost(modelID string) *ModelCost {
	id := strings.ToLower(modelID)
	if _, after, ok := strings.Cut(id, "/"); ok {
		id = after
	}
	id = strings.TrimSuffix(id, ":free")

	// Longest matching prefix wins, so "gpt-4o-mini-2024-07-18" prices as
	// gpt-4o-mini rather than gpt-4o.
	var best string
	for name := range modelCosts {
		if (id == name || strings.HasPrefix(id, name+"-")) && len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return nil
	}
	c := modelCosts[best]
	return &c
}

// modelCosts lists base model prices. Dated snapshots and suffixes
// resolve through LookupCost's prefix match.
var modelCosts = map[string]ModelCost{
	"gemini-1.5-flash":      {0.075, 0.3},
	"gemini-1.5-pro":        {1.25, 5},
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},
	"o3-mini":      {1.1, 4.4},
	"o4-mini":      {1.1, 4.4},

	"claude-3-5-haiku": {0.8, 4},
	"claude-haiku-4-5": {1, 5},
	"claude-sonnet-4":  {3, 15},
	"claude-opus-4":    {15, 75},

	// Local models cost nothing.
	"llama3.2": {0, 0},
	"mock":     {0, 0},
}
