package session

import "github.com/abhisek/oralexam/internal/exam"

// Grade is a letter grade for a session percentage.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

var gradeLabels = map[Grade]string{
	GradeA: "Excellent",
	GradeB: "Good",
	GradeC: "Average",
	GradeD: "Pass",
	GradeF: "Fail",
}

// String renders the grade with its label, e.g. "A (Excellent)".
func (g Grade) String() string {
	return string(g) + " (" + gradeLabels[g] + ")"
}

// GradeFor maps a percentage to a grade. Bands are closed at the bottom:
// 90 is an A, 89.999 a B.
func GradeFor(percentage float64) Grade {
	switch {
	case percentage >= 90:
		return GradeA
	case percentage >= 80:
		return GradeB
	case percentage >= 70:
		return GradeC
	case percentage >= 60:
		return GradeD
	}
	return GradeF
}

// Summary is the aggregate result of one session.
type Summary struct {
	TotalScore float64
	Possible   float64
	Percentage float64
	Grade      Grade
}

// Processed reports whether any question was answered.
func (s Summary) Processed() bool {
	return s.Possible > 0
}

// Summarize computes the session summary. With no records the summary is
// empty and Processed is false.
func Summarize(records []exam.QuestionRecord) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	var total float64
	for _, r := range records {
		total += r.Score
	}
	possible := float64(len(records))
	pct := total / possible * 100

	return Summary{
		TotalScore: total,
		Possible:   possible,
		Percentage: pct,
		Grade:      GradeFor(pct),
	}
}
