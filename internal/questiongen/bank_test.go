package questiongen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/oralexam/internal/exam"
	"github.com/abhisek/oralexam/internal/llm"
)

const bankJSON = `{
	"Networking": [
		{"question": "What is a subnet mask?", "answer": "It splits an address into network and host parts.", "keywords": ["network", "host"], "difficulty": "easy"},
		{"question": "Explain TCP congestion control.", "answer": "Slow start, congestion avoidance, fast retransmit.", "keywords": ["cwnd"], "difficulty": "hard"},
		{"question": "What is NAT?", "answer": "Address translation at a router.", "keywords": ["translation"]}
	]
}`

func TestBank_PrefersRequestedDifficulty(t *testing.T) {
	bank, err := ParseBank([]byte(bankJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if bank.Size() != 3 {
		t.Fatalf("size = %d", bank.Size())
	}

	q, err := bank.Generate(context.Background(), GenerateInput{Domain: "networking", Difficulty: exam.Hard})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if q.Text != "Explain TCP congestion control." {
		t.Errorf("got %q", q.Text)
	}
}

func TestBank_FallsBackToAnyDifficultyAndExhausts(t *testing.T) {
	bank, _ := ParseBank([]byte(bankJSON))
	ctx := context.Background()
	input := GenerateInput{Domain: "Networking", Difficulty: exam.Medium, Avoid: []string{"What is NAT?"}}

	seen := map[string]bool{}
	for range 2 {
		q, err := bank.Generate(ctx, input)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if q.Difficulty != exam.Medium {
			t.Errorf("expected requested difficulty, got %v", q.Difficulty)
		}
		seen[q.Text] = true
	}
	if len(seen) != 2 || seen["What is NAT?"] {
		t.Errorf("unexpected questions served: %v", seen)
	}

	_, err := bank.Generate(ctx, input)
	if !errors.Is(err, ErrBankExhausted) {
		t.Fatalf("expected ErrBankExhausted, got %v", err)
	}
}

func TestBank_UnknownDomain(t *testing.T) {
	bank, _ := ParseBank([]byte(bankJSON))
	if _, err := bank.Generate(context.Background(), GenerateInput{Domain: "Biology"}); !errors.Is(err, ErrBankExhausted) {
		t.Fatalf("expected ErrBankExhausted, got %v", err)
	}
}

func TestLoadBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(bankJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBank(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := LoadBank(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := ParseBank([]byte("[1,2]")); err == nil {
		t.Error("expected error for wrong shape")
	}
}

func TestFallbackGenerator(t *testing.T) {
	bank, _ := ParseBank([]byte(bankJSON))
	mock := llm.NewMockProvider(llm.MockError(&llm.ErrProviderUnavailable{}))
	gen := &FallbackGenerator{Primary: New(mock, DefaultConfig()), Fallback: bank}

	q, err := gen.Generate(context.Background(), GenerateInput{Domain: "Networking", Difficulty: exam.Easy})
	if err != nil {
		t.Fatalf("expected bank question, got %v", err)
	}
	if q.Text != "What is a subnet mask?" {
		t.Errorf("got %q", q.Text)
	}
}

func TestFallbackGenerator_BothFail(t *testing.T) {
	bank, _ := ParseBank([]byte(`{}`))
	mock := llm.NewMockProvider(llm.MockJSON(`nope`))
	gen := &FallbackGenerator{Primary: New(mock, DefaultConfig()), Fallback: bank}

	_, err := gen.Generate(context.Background(), GenerateInput{Domain: "Networking"})
	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Cause != CauseMalformed {
		t.Fatalf("expected primary error, got %v", err)
	}
}
