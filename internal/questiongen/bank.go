package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/abhisek/oralexam/internal/exam"
)

// ErrBankExhausted is returned when the bank has no unused question for
// the requested domain.
var ErrBankExhausted = errors.New("question bank has no unused question for this domain")

// bankEntry is one question as stored in a bank file.
type bankEntry struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Keywords   []string `json:"keywords"`
	Difficulty string   `json:"difficulty"`
}

// BankGenerator serves questions from a static question bank keyed by
// domain. Each question is served at most once per generator.
type BankGenerator struct {
	mu      sync.Mutex
	domains map[string][]exam.Question
	served  map[string]bool
}

// LoadBank reads a bank file of the form
//
//	{"Networking": [{"question": "...", "answer": "...", "keywords": [...], "difficulty": "easy"}]}
//
// Entries without a known difficulty are filed as medium.
func LoadBank(path string) (*BankGenerator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data)
}

// ParseBank builds a BankGenerator from bank JSON.
func ParseBank(data []byte) (*BankGenerator, error) {
	var raw map[string][]bankEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	b := &BankGenerator{
		domains: make(map[string][]exam.Question, len(raw)),
		served:  make(map[string]bool),
	}
	for domain, entries := range raw {
		key := domainKey(domain)
		for _, e := range entries {
			d, _ := exam.ParseDifficulty(e.Difficulty)
			b.domains[key] = append(b.domains[key], exam.Question{
				Text:            strings.TrimSpace(e.Question),
				ReferenceAnswer: strings.TrimSpace(e.Answer),
				Keywords:        cleanKeywords(e.Keywords),
				Difficulty:      d,
			})
		}
	}
	return b, nil
}

// Size returns the total number of questions in the bank.
func (b *BankGenerator) Size() int {
	n := 0
	for _, qs := range b.domains {
		n += len(qs)
	}
	return n
}

// Generate returns the first unused question for the domain at the
// requested difficulty, falling back to any difficulty. The returned
// question carries the requested difficulty.
func (b *BankGenerator) Generate(_ context.Context, input GenerateInput) (*exam.Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	avoid := make(map[string]bool, len(input.Avoid))
	for _, a := range input.Avoid {
		avoid[normalizeQuestion(a)] = true
	}

	candidates := b.domains[domainKey(input.Domain)]
	usable := func(q exam.Question) bool {
		key := normalizeQuestion(q.Text)
		return q.Text != "" && !b.served[key] && !avoid[key]
	}

	pick := -1
	for i, q := range candidates {
		if q.Difficulty == input.Difficulty && usable(q) {
			pick = i
			break
		}
	}
	if pick < 0 {
		for i, q := range candidates {
			if usable(q) {
				pick = i
				break
			}
		}
	}
	if pick < 0 {
		return nil, &GenerationError{Cause: CauseTransport, Err: ErrBankExhausted}
	}

	q := candidates[pick]
	b.served[normalizeQuestion(q.Text)] = true
	q.Keywords = append([]string(nil), q.Keywords...)
	q.Difficulty = input.Difficulty
	return &q, nil
}

func domainKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
