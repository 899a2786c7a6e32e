package questiongen

import "github.com/abhisek/oralexam/internal/exam"

// AvoidValidator rejects a question whose normalized text matches an
// avoid-list entry. It only catches verbatim repeats; the prompt carries
// the real de-duplication burden.
type AvoidValidator struct{}

func (v *AvoidValidator) Name() string { return "avoid" }

func (v *AvoidValidator) Validate(q *exam.Question, input GenerateInput) *ValidationError {
	text := normalizeQuestion(q.Text)
	for _, prior := range input.Avoid {
		if normalizeQuestion(prior) == text {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "question repeats a previously asked question",
				Retryable: true,
			}
		}
	}
	return nil
}
