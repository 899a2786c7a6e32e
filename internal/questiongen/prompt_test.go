package questiongen

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/oralexam/internal/exam"
)

func TestBuildUserMessage_NoAvoid(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Domain: "Operating Systems", Difficulty: exam.Hard}, DefaultConfig())

	if !strings.Contains(msg, "Difficulty: hard") {
		t.Errorf("missing difficulty:\n%s", msg)
	}
	if !strings.HasSuffix(msg, "Previously asked questions:\nNone") {
		t.Errorf("expected None for empty avoid-list:\n%s", msg)
	}
	if strings.Contains(msg, "Language:") {
		t.Errorf("no language line expected by default:\n%s", msg)
	}
}

func TestBuildUserMessage_TruncatesAvoid(t *testing.T) {
	var avoid []string
	for i := 1; i <= 60; i++ {
		avoid = append(avoid, fmt.Sprintf("Question %d", i))
	}
	msg := buildUserMessage(GenerateInput{Domain: "d", Avoid: avoid}, DefaultConfig())

	if strings.Contains(msg, "Question 10\n") {
		t.Error("oldest entries should be dropped")
	}
	if !strings.Contains(msg, "1. Question 11\n") || !strings.HasSuffix(msg, "50. Question 60") {
		t.Errorf("expected the 50 most recent entries:\n%s", msg)
	}
}

func TestBuildUserMessage_Language(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = "ru"
	msg := buildUserMessage(GenerateInput{Domain: "d"}, cfg)
	if !strings.Contains(msg, "in Russian") {
		t.Errorf("expected Russian language line:\n%s", msg)
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"", ""},
		{"en", ""},
		{"en-GB", ""},
		{"not a tag!", ""},
		{"de", "German"},
	}
	for _, tt := range tests {
		if got := languageName(tt.tag); got != tt.want {
			t.Errorf("languageName(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"What is TCP?", "what is tcp"},
		{"  What   is\tTCP ? ", "what is tcp"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeQuestion(tt.in); got != tt.want {
			t.Errorf("normalizeQuestion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
