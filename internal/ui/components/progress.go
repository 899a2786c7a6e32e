package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/oralexam/internal/ui/theme"
)

// ScoreBar renders a score fraction as a horizontal bar, e.g. for a
// session percentage.
type ScoreBar struct {
	Label   string
	Percent float64 // 0.0-1.0
	Width   int

	// Plain renders with block characters instead of colored cells.
	Plain bool
}

// View renders the bar followed by the percentage.
func (p ScoreBar) View() string {
	var result string
	if p.Label != "" {
		result = p.Label + "  "
	}

	barWidth := p.Width - lipgloss.Width(result) - 6 // "  100%"
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))
	empty := barWidth - filled

	if p.Plain {
		result += strings.Repeat("█", filled) + strings.Repeat("░", empty)
		return result + fmt.Sprintf("  %d%%", int(p.Percent*100))
	}

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	return result + theme.Dim.Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
}
