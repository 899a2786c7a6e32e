package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/abhisek/oralexam/internal/ui/theme"
)

type lineResult struct {
	text string
	err  error
}

// LineConsole reads whole lines from an io.Reader. A single background
// reader feeds lines to Ask, so a cancelled Ask never loses input.
type LineConsole struct {
	in    io.Reader
	out   io.Writer
	color bool

	once  sync.Once
	lines chan lineResult
	mu    sync.Mutex
}

// NewLineConsole creates a console over in and out.
func NewLineConsole(in io.Reader, out io.Writer, color bool) *LineConsole {
	return &LineConsole{in: in, out: out, color: color}
}

func (c *LineConsole) start() {
	c.lines = make(chan lineResult)
	go func() {
		r := bufio.NewReader(c.in)
		for {
			text, err := r.ReadString('\n')
			if err != nil && text == "" {
				c.lines <- lineResult{err: err}
				close(c.lines)
				return
			}
			c.lines <- lineResult{text: strings.TrimRight(text, "\r\n")}
		}
	}()
}

func (c *LineConsole) Ask(ctx context.Context, prompt string) (string, error) {
	c.once.Do(c.start)

	c.mu.Lock()
	if c.color {
		prompt = theme.Prompt.Render(prompt)
	}
	fmt.Fprint(c.out, prompt)
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

func (c *LineConsole) Print(kind Kind, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, style(kind, text, c.color))
}
