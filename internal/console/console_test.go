package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestLineConsole_ReadsLines(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader("first answer\r\nsecond"), &out, false)
	ctx := context.Background()

	got, err := c.Ask(ctx, "Your response: ")
	if err != nil || got != "first answer" {
		t.Fatalf("Ask #1 = %q, %v", got, err)
	}
	got, err = c.Ask(ctx, "Your response: ")
	if err != nil || got != "second" {
		t.Fatalf("Ask #2 = %q, %v (unterminated last line)", got, err)
	}
	if _, err := c.Ask(ctx, "> "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if _, err := c.Ask(ctx, "> "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF on repeated ask, got %v", err)
	}
	if !strings.HasPrefix(out.String(), "Your response: Your response: ") {
		t.Errorf("prompts not written: %q", out.String())
	}
}

func TestLineConsole_Cancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := NewLineConsole(r, io.Discard, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Ask(ctx, "> "); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLineConsole_PrintPlain(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader(""), &out, false)
	c.Print(Success, "Evaluation: Correct")
	c.Print(Dim, "(Difficulty will increase)")

	want := "Evaluation: Correct\n(Difficulty will increase)\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestLineConsole_PrintColor(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader(""), &out, true)
	c.Print(Error, "boom")
	if !strings.Contains(out.String(), "boom") {
		t.Errorf("text missing: %q", out.String())
	}
}

func TestScript(t *testing.T) {
	s := NewScript("a", "b")
	ctx := context.Background()

	for _, want := range []string{"a", "b"} {
		got, err := s.Ask(ctx, "?")
		if err != nil || got != want {
			t.Fatalf("Ask = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := s.Ask(ctx, "?"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}

	s.Err = ErrInterrupted
	if _, err := s.Ask(ctx, "?"); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}

	s.Print(Title, "hello")
	if s.Text() != "hello\n" || s.Output[0].Kind != Title {
		t.Errorf("output = %+v", s.Output)
	}
	if len(s.Prompts) != 4 {
		t.Errorf("prompts = %v", s.Prompts)
	}
}

func TestInputModel_TypeAndSubmit(t *testing.T) {
	var m tea.Model = newInputModel("Your response: ", false)
	for _, r := range "tcp" {
		m, _ = m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	im := m.(inputModel)
	if !im.submitted || im.interrupted {
		t.Fatalf("expected submitted state: %+v", im)
	}
	if im.input.Value() != "tcp" {
		t.Errorf("value = %q", im.input.Value())
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestInputModel_Interrupt(t *testing.T) {
	tests := []tea.KeyPressMsg{
		{Code: 'c', Mod: tea.ModCtrl},
		{Code: tea.KeyEscape},
	}
	for _, key := range tests {
		m, cmd := newInputModel("> ", false).Update(key)
		if !m.(inputModel).interrupted || cmd == nil {
			t.Errorf("%s: expected interrupt", key.String())
		}
	}
}
