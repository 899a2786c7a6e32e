package session

import (
	"errors"
	"strings"

	"github.com/abhisek/oralexam/internal/exam"
)

// Request names the exam to run.
type Request struct {
	StudentName   string
	Domain        string
	QuestionCount int
}

// Validate checks the request before any collaborator is touched.
func (r Request) Validate() error {
	var errs []error
	if strings.TrimSpace(r.StudentName) == "" {
		errs = append(errs, errors.New("student name is required"))
	}
	if strings.TrimSpace(r.Domain) == "" {
		errs = append(errs, errors.New("domain is required"))
	}
	if r.QuestionCount < 1 {
		errs = append(errs, errors.New("question count must be at least 1"))
	}
	return errors.Join(errs...)
}

// State tracks an exam session in progress.
type State struct {
	// Difficulty of the next question.
	Difficulty exam.Difficulty

	// Avoid holds every question text the student has seen: profile
	// history first, then this session's questions. It only grows.
	Avoid []string

	// Records of answered questions in order.
	Records []exam.QuestionRecord

	// Round is the 1-based number of the current question.
	Round int
}

// NewState creates the initial state, seeding the avoid-list from history.
func NewState(history []string) *State {
	return &State{
		Difficulty: exam.Medium,
		Avoid:      append([]string(nil), history...),
	}
}

// Policy moves difficulty by one level per answer: up when the score is
// above RaiseAbove, down when below LowerBelow. Scores on a threshold
// leave difficulty unchanged.
type Policy struct {
	RaiseAbove float64
	LowerBelow float64
}

// DefaultPolicy returns the standard thresholds.
func DefaultPolicy() Policy {
	return Policy{RaiseAbove: 0.75, LowerBelow: 0.4}
}

// Next returns the difficulty after an answer scored score, clamped to
// [Easy, Hard].
func (p Policy) Next(d exam.Difficulty, score float64) exam.Difficulty {
	switch {
	case score > p.RaiseAbove:
		d++
	case score < p.LowerBelow:
		d--
	}
	return d.Clamp()
}
