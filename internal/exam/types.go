// Package exam holds the value types shared by the exam components:
// questions, evaluations, per-question records and session transcripts.
package exam

import (
	"math"
	"strings"
	"time"
)

// Question is a generated exam question. It is not modified after creation.
type Question struct {
	Text            string
	ReferenceAnswer string
	Keywords        []string
	Difficulty      Difficulty
}

// Category is the qualitative verdict for an answer.
type Category string

const (
	CategoryCorrect          Category = "correct"
	CategoryPartiallyCorrect Category = "partially_correct"
	CategoryIncorrect        Category = "incorrect"
	CategoryError            Category = "error"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCorrect, CategoryPartiallyCorrect, CategoryIncorrect, CategoryError:
		return true
	}
	return false
}

// Title renders the category for display, e.g. "Partially Correct".
func (c Category) Title() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ParseCategory normalizes a category label: case-insensitive, with
// spaces and hyphens treated as underscores. The boolean is false for
// labels that are not a known category.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	c := Category(s)
	return c, c.Valid()
}

// Evaluation is the verdict on one answer. Score is always within [0, 1].
type Evaluation struct {
	Category Category
	Feedback string
	Score    float64
}

// NewEvaluation builds an Evaluation with the score clamped into [0, 1].
func NewEvaluation(c Category, feedback string, score float64) Evaluation {
	return Evaluation{Category: c, Feedback: feedback, Score: ClampScore(score)}
}

// ErrorEvaluation is the synthetic verdict used when scoring failed.
func ErrorEvaluation(diagnostic string) Evaluation {
	return Evaluation{Category: CategoryError, Feedback: diagnostic, Score: 0}
}

// ClampScore pins a score into [0, 1]. NaN becomes 0.
func ClampScore(s float64) float64 {
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// QuestionRecord is one answered question as stored in a profile.
type QuestionRecord struct {
	Question      string      `json:"question"`
	StudentAnswer string      `json:"student_answer"`
	Evaluation    Category    `json:"evaluation"`
	Feedback      string      `json:"feedback"`
	Score         float64     `json:"score"`
	Difficulty    *Difficulty `json:"difficulty,omitempty"`
}

// NewRecord builds the record for an answered question.
func NewRecord(q *Question, answer string, ev Evaluation) QuestionRecord {
	d := q.Difficulty
	return QuestionRecord{
		Question:      q.Text,
		StudentAnswer: answer,
		Evaluation:    ev.Category,
		Feedback:      ev.Feedback,
		Score:         ev.Score,
		Difficulty:    &d,
	}
}

// Transcript is the ordered record list of one session, tagged with the
// session identity. It is what results sinks receive.
type Transcript struct {
	SessionID   string
	StudentName string
	Domain      string
	StartedAt   time.Time
	Records     []QuestionRecord
}
