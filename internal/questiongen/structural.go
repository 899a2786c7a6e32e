package questiongen

import (
	"unicode/utf8"

	"github.com/abhisek/oralexam/internal/exam"
)

const (
	maxQuestionRunes = 1000
	maxAnswerRunes   = 5000
)

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *exam.Question, _ GenerateInput) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	switch {
	case q.Text == "":
		return fail("question is empty")
	case utf8.RuneCountInString(q.Text) > maxQuestionRunes:
		return fail("question exceeds 1000 characters")
	case q.ReferenceAnswer == "":
		return fail("answer is empty")
	case utf8.RuneCountInString(q.ReferenceAnswer) > maxAnswerRunes:
		return fail("answer exceeds 5000 characters")
	case len(q.Keywords) == 0:
		return fail("keywords are empty")
	}
	return nil
}
