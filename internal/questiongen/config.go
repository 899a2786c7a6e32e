package questiongen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated question; the first
	// failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAvoid is the maximum number of avoid-list entries included in
	// the prompt. The most recent entries are kept.
	MaxAvoid int

	// Language is a BCP-47 tag for the question language. Empty means
	// English.
	Language string
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AvoidValidator{},
		},
		MaxTokens:   1024,
		Temperature: 0.7,
		MaxAvoid:    50,
	}
}
