package questiongen

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abhisek/oralexam/internal/exam"
	"github.com/abhisek/oralexam/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
}

// Generate produces a single question for the given input. It makes
// exactly one service call; retrying is left to the caller.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*exam.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	req := llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(input, g.config)),
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Cause: causeOf(err), Err: err}
	}

	var raw questionOutput
	if err := llm.Decode(resp, &raw); err != nil {
		return nil, &GenerationError{Cause: CauseMalformed, Err: err}
	}

	q := &exam.Question{
		Text:            strings.TrimSpace(raw.Question),
		ReferenceAnswer: strings.TrimSpace(raw.Answer),
		Keywords:        cleanKeywords(raw.Keywords),
		Difficulty:      input.Difficulty,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			slog.Debug("generated question rejected", "validator", verr.Validator, "reason", verr.Message)
			return nil, &GenerationError{Cause: CauseSchema, Err: verr}
		}
	}

	return q, nil
}

func cleanKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
