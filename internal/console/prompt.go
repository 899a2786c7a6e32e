package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/oralexam/internal/ui/theme"
)

// PromptConsole reads each answer with a small Bubble Tea program around
// a text input. Output goes straight to out.
type PromptConsole struct {
	out   io.Writer
	color bool
	opts  []tea.ProgramOption
	mu    sync.Mutex
}

// NewPromptConsole creates a console writing to out. Program options are
// passed to every input program.
func NewPromptConsole(out io.Writer, color bool, opts ...tea.ProgramOption) *PromptConsole {
	return &PromptConsole{out: out, color: color, opts: opts}
}

func (c *PromptConsole) Ask(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := tea.NewProgram(newInputModel(prompt, c.color), c.opts...)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m := final.(inputModel)
	if m.interrupted {
		return "", ErrInterrupted
	}

	echo := prompt + m.input.Value()
	if c.color {
		echo = theme.Prompt.Render(prompt) + m.input.Value()
	}
	fmt.Fprintln(c.out, echo)
	return m.input.Value(), nil
}

func (c *PromptConsole) Print(kind Kind, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, style(kind, text, c.color))
}

// inputModel is a single-line answer field. Enter submits; Ctrl+C and
// Esc abort.
type inputModel struct {
	prompt      string
	color       bool
	input       textinput.Model
	submitted   bool
	interrupted bool
}

func newInputModel(prompt string, color bool) inputModel {
	ti := textinput.New()
	ti.Placeholder = "type your answer, or ask for a hint"
	ti.CharLimit = 10000
	ti.Focus()
	return inputModel{prompt: prompt, color: color, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() tea.View {
	v := tea.NewView("")
	if m.submitted || m.interrupted {
		return v
	}
	prompt := m.prompt
	if m.color {
		prompt = theme.Prompt.Render(prompt)
	}
	v.SetContent(prompt + "\n" + m.input.View() + "\n")
	return v
}
