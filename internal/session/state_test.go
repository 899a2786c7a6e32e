package session

import (
	"testing"

	"github.com/abhisek/oralexam/internal/exam"
)

func TestPolicyNext(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		name  string
		from  exam.Difficulty
		score float64
		want  exam.Difficulty
	}{
		{"raise from medium", exam.Medium, 0.9, exam.Hard},
		{"threshold high is steady", exam.Medium, 0.75, exam.Medium},
		{"threshold low is steady", exam.Medium, 0.4, exam.Medium},
		{"lower from medium", exam.Medium, 0.39, exam.Easy},
		{"clamp at hard", exam.Hard, 1, exam.Hard},
		{"clamp at easy", exam.Easy, 0, exam.Easy},
		{"middle band", exam.Easy, 0.5, exam.Easy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Next(tt.from, tt.score); got != tt.want {
				t.Errorf("Next(%v, %v) = %v, want %v", tt.from, tt.score, got, tt.want)
			}
		})
	}
}

func TestNewStateCopiesHistory(t *testing.T) {
	history := []string{"q1", "q2"}
	s := NewState(history)
	if s.Difficulty != exam.Medium {
		t.Errorf("difficulty = %v, want medium", s.Difficulty)
	}
	s.Avoid[0] = "changed"
	if history[0] != "q1" {
		t.Error("state shares backing array with history")
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"ok", Request{StudentName: "Ada", Domain: "Go", QuestionCount: 1}, false},
		{"blank name", Request{StudentName: "  ", Domain: "Go", QuestionCount: 1}, true},
		{"blank domain", Request{StudentName: "Ada", QuestionCount: 1}, true},
		{"zero questions", Request{StudentName: "Ada", Domain: "Go"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want Grade
	}{
		{100, GradeA},
		{90, GradeA},
		{89.999, GradeB},
		{80, GradeB},
		{70, GradeC},
		{60, GradeD},
		{59.99, GradeF},
		{0, GradeF},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.pct); got != tt.want {
			t.Errorf("GradeFor(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
	if GradeA.String() != "A (Excellent)" {
		t.Errorf("GradeA.String() = %q", GradeA.String())
	}
}

func TestSummarize(t *testing.T) {
	if s := Summarize(nil); s.Processed() {
		t.Errorf("empty summary processed: %+v", s)
	}

	recs := []exam.QuestionRecord{{Score: 1}, {Score: 0.5}, {Score: 0.9}, {Score: 0.6}}
	s := Summarize(recs)
	if !s.Processed() || s.Possible != 4 {
		t.Fatalf("summary = %+v", s)
	}
	if s.TotalScore != 3 || s.Percentage != 75 || s.Grade != GradeC {
		t.Errorf("summary = %+v", s)
	}
}
