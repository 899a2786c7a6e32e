package session

import (
	"context"
	"fmt"

	"github.com/abhisek/oralexam/internal/console"
	"github.com/abhisek/oralexam/internal/exam"
	"github.com/abhisek/oralexam/internal/i18n"
	"github.com/abhisek/oralexam/internal/ui/components"
)

// report prints the session summary.
func (o *Orchestrator) report(ctx context.Context, student string, s Summary) {
	con := o.deps.Console
	con.Print(console.Title, "\n"+i18n.Td(ctx, "ResultsHeader", map[string]any{"Name": student}))

	if !s.Processed() {
		con.Print(console.Plain, i18n.T(ctx, "NoQuestionsProcessed"))
		return
	}

	con.Print(console.Plain, i18n.Td(ctx, "SessionScore", map[string]any{
		"Score":    fmt.Sprintf("%.2f", s.TotalScore),
		"Possible": fmt.Sprintf("%.2f", s.Possible),
	}))
	con.Print(console.Plain, i18n.Td(ctx, "SessionPercentage", map[string]any{
		"Percentage": fmt.Sprintf("%.2f", s.Percentage),
	}))
	con.Print(console.Dim, components.ScoreBar{Percent: s.Percentage / 100, Width: 40, Plain: true}.View())
	con.Print(gradeKind(s.Grade), i18n.Td(ctx, "SessionGrade", map[string]any{
		"Grade": GradeName(ctx, s.Grade),
	}))
}

func gradeKind(g Grade) console.Kind {
	switch g {
	case GradeA, GradeB:
		return console.Success
	case GradeF:
		return console.Error
	}
	return console.Plain
}

// GradeName renders a grade with its localized label.
func GradeName(ctx context.Context, g Grade) string {
	return i18n.T(ctx, "Grade"+string(g))
}

var categoryMessages = map[exam.Category]string{
	exam.CategoryCorrect:          "CategoryCorrect",
	exam.CategoryPartiallyCorrect: "CategoryPartiallyCorrect",
	exam.CategoryIncorrect:        "CategoryIncorrect",
	exam.CategoryError:            "CategoryError",
}

func categoryName(ctx context.Context, c exam.Category) string {
	if id, ok := categoryMessages[c]; ok {
		return i18n.T(ctx, id)
	}
	return c.Title()
}

var difficultyMessages = map[exam.Difficulty]string{
	exam.Easy:   "DifficultyEasy",
	exam.Medium: "DifficultyMedium",
	exam.Hard:   "DifficultyHard",
}

func difficultyName(ctx context.Context, d exam.Difficulty) string {
	if id, ok := difficultyMessages[d]; ok {
		return i18n.T(ctx, id)
	}
	return d.String()
}
