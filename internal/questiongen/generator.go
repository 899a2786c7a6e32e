// Package questiongen produces exam questions for a study domain at a
// requested difficulty, avoiding questions the student has already seen.
package questiongen

import (
	"context"

	"github.com/abhisek/oralexam/internal/exam"
)

// Generator produces exam questions.
type Generator interface {
	// Generate produces a single question for the given input. All
	// configured validators run before returning. Failures are reported
	// as *GenerationError.
	Generate(ctx context.Context, input GenerateInput) (*exam.Question, error)
}

// GenerateInput carries everything needed to ask for one question.
type GenerateInput struct {
	Domain     string
	Difficulty exam.Difficulty

	// Avoid lists question texts that must not be repeated, oldest first.
	Avoid []string
}
