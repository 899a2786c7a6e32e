package evaluation

import "fmt"

// Variant selects how strictly answers are graded.
type Variant string

const (
	VariantStrict   Variant = "strict"
	VariantStandard Variant = "standard"
	VariantLenient  Variant = "lenient"
)

// ParseVariant validates a grading variant name. Empty means standard.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case "":
		return VariantStandard, nil
	case VariantStrict, VariantStandard, VariantLenient:
		return v, nil
	}
	return VariantStandard, fmt.Errorf("unknown grading variant %q (want strict, standard or lenient)", s)
}

// Config holds configuration for the LLM evaluator.
type Config struct {
	Variant     Variant
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Variant:     VariantStandard,
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}
