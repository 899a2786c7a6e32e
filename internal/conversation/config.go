package conversation

// Config controls the conversation turn handler and its service calls.
type Config struct {
	// MaxClarifications caps rephrase, hint and definition turns per
	// question. Once reached, the next reply is taken as the answer
	// without classification. Zero means unbounded.
	MaxClarifications int

	ClassifyMaxTokens   int
	ClassifyTemperature float64

	AssistMaxTokens   int
	AssistTemperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxClarifications:   8,
		ClassifyMaxTokens:   128,
		ClassifyTemperature: 0,
		AssistMaxTokens:     512,
		AssistTemperature:   0.5,
	}
}
