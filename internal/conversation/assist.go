package conversation

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/oralexam/internal/llm"
)

// errEmptyAssist is returned when the service answers with no text.
var errEmptyAssist = errors.New("empty assistance response")

// Assistant produces help for a student who is stuck. Each method makes
// one free-text service call.
type Assistant interface {
	Rephrase(ctx context.Context, question string) (string, error)
	Hint(ctx context.Context, question string) (string, error)
	Define(ctx context.Context, term, domain string) (string, error)
}

// LLMAssistant implements Assistant with an LLM provider.
type LLMAssistant struct {
	provider llm.Provider
	cfg      Config
}

// NewAssistant creates an LLM-based assistant.
func NewAssistant(provider llm.Provider, cfg Config) *LLMAssistant {
	return &LLMAssistant{provider: provider, cfg: cfg}
}

const assistSystemPrompt = `You help a student during a university oral exam. Never reveal the answer to the exam question. Reply with plain text only, in at most a few sentences.`

func (a *LLMAssistant) Rephrase(ctx context.Context, question string) (string, error) {
	return a.ask(llm.WithPurpose(ctx, llm.PurposeRephrase), fmt.Sprintf(
		"The student is confused by this question: %q. Rephrase it to be clearer or simpler, without giving away the answer.", question))
}

func (a *LLMAssistant) Hint(ctx context.Context, question string) (string, error) {
	return a.ask(llm.WithPurpose(ctx, llm.PurposeHint), fmt.Sprintf(
		"The student needs a hint for the question: %q. Provide a conceptual hint that guides them toward the answer without giving it away directly.", question))
}

func (a *LLMAssistant) Define(ctx context.Context, term, domain string) (string, error) {
	return a.ask(llm.WithPurpose(ctx, llm.PurposeDefinition), fmt.Sprintf(
		"In the context of %s, briefly define the term %q for a student.", domain, term))
}

func (a *LLMAssistant) ask(ctx context.Context, prompt string) (string, error) {
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      assistSystemPrompt,
		Messages:    llm.UserMessage(prompt),
		MaxTokens:   a.cfg.AssistMaxTokens,
		Temperature: a.cfg.AssistTemperature,
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errEmptyAssist
	}
	return text, nil
}
