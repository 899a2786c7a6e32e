package console

import (
	"context"
	"io"
	"strings"
	"sync"
)

// Line is one printed message captured by Script.
type Line struct {
	Kind Kind
	Text string
}

// Script is a Console that answers from a fixed list of inputs and
// records everything printed. Once the inputs run out, Ask returns Err
// (io.EOF when nil).
type Script struct {
	mu      sync.Mutex
	inputs  []string
	Err     error
	Prompts []string
	Output  []Line
}

// NewScript creates a Script with the given inputs.
func NewScript(inputs ...string) *Script {
	return &Script{inputs: inputs}
}

func (s *Script) Ask(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Prompts = append(s.Prompts, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.inputs) == 0 {
		if s.Err != nil {
			return "", s.Err
		}
		return "", io.EOF
	}
	next := s.inputs[0]
	s.inputs = s.inputs[1:]
	return next, nil
}

func (s *Script) Print(kind Kind, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Output = append(s.Output, Line{Kind: kind, Text: text})
}

// Text returns all printed messages joined by newlines.
func (s *Script) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	for _, l := range s.Output {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Remaining returns the number of unread inputs.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inputs)
}
