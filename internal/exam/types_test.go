package exam

import (
	"encoding/json"
	"math"
	"testing"
)

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.1, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Errorf("ClampScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"correct", CategoryCorrect, true},
		{"Partially Correct", CategoryPartiallyCorrect, true},
		{"partially-correct", CategoryPartiallyCorrect, true},
		{" INCORRECT ", CategoryIncorrect, true},
		{"excellent", Category("excellent"), false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCategoryTitle(t *testing.T) {
	if got := CategoryPartiallyCorrect.Title(); got != "Partially Correct" {
		t.Errorf("Title() = %q", got)
	}
	if got := CategoryError.Title(); got != "Error" {
		t.Errorf("Title() = %q", got)
	}
}

func TestErrorEvaluation(t *testing.T) {
	ev := ErrorEvaluation("service down")
	if ev.Category != CategoryError || ev.Score != 0 || ev.Feedback != "service down" {
		t.Errorf("unexpected evaluation: %+v", ev)
	}
}

func TestDifficultyClampAndParse(t *testing.T) {
	if got := Difficulty(-1).Clamp(); got != Easy {
		t.Errorf("Clamp(-1) = %v", got)
	}
	if got := Difficulty(7).Clamp(); got != Hard {
		t.Errorf("Clamp(7) = %v", got)
	}
	d, err := ParseDifficulty("Hard")
	if err != nil || d != Hard {
		t.Errorf("ParseDifficulty(Hard) = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("extreme"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestRecordJSONKeys(t *testing.T) {
	q := &Question{Text: "What is a mutex?", Difficulty: Hard}
	rec := NewRecord(q, "a lock", NewEvaluation(CategoryPartiallyCorrect, "close", 0.6))

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"question", "student_answer", "evaluation", "feedback", "score", "difficulty"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if m["difficulty"] != "hard" {
		t.Errorf("difficulty = %v, want hard", m["difficulty"])
	}
}

func TestRecordWithoutDifficulty(t *testing.T) {
	var rec QuestionRecord
	data := []byte(`{"question":"q","student_answer":"a","evaluation":"correct","feedback":"f","score":1.0}`)
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Difficulty != nil {
		t.Errorf("expected nil difficulty, got %v", *rec.Difficulty)
	}
	if rec.Evaluation != CategoryCorrect {
		t.Errorf("evaluation = %q", rec.Evaluation)
	}
}
