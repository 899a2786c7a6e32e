// Package console is the interactive text channel between the examiner
// and the student.
package console

import (
	"context"
	"errors"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oralexam/internal/ui/theme"
)

// ErrInterrupted is returned by Ask when the student aborts input.
var ErrInterrupted = errors.New("input interrupted")

// Kind selects how a printed line is styled.
type Kind int

const (
	Plain Kind = iota
	Title
	Question
	Assist
	Success
	Warning
	Error
	Dim
)

// Console reads student input and prints examiner output.
type Console interface {
	// Ask shows prompt and returns one line of input without the
	// trailing newline. It fails with ErrInterrupted, io.EOF or the
	// context error.
	Ask(ctx context.Context, prompt string) (string, error)

	// Print writes one message.
	Print(kind Kind, text string)
}

var kindStyles = map[Kind]lipgloss.Style{
	Title:    theme.Title,
	Question: theme.Question,
	Assist:   theme.Hint,
	Success:  theme.Correct,
	Warning:  theme.Caution,
	Error:    theme.Incorrect,
	Dim:      theme.Dim,
}

// style renders text for kind, or returns it unchanged when color is off.
func style(kind Kind, text string, color bool) string {
	if !color {
		return text
	}
	if s, ok := kindStyles[kind]; ok {
		return s.Render(text)
	}
	return text
}
