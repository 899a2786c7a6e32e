// Package conversation runs the dialogue for a single exam question
// until the student gives an answer.
package conversation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abhisek/oralexam/internal/console"
	"github.com/abhisek/oralexam/internal/i18n"
	"github.com/abhisek/oralexam/internal/llm"
)

// Handler resolves one question into the student's final answer,
// serving rephrase, hint and definition requests along the way.
type Handler struct {
	console    console.Console
	classifier Classifier
	assistant  Assistant
	cfg        Config
}

// NewHandler wires a Handler with LLM-backed classification and
// assistance.
func NewHandler(con console.Console, provider llm.Provider, cfg Config) *Handler {
	return &Handler{
		console:    con,
		classifier: NewClassifier(provider, cfg),
		assistant:  NewAssistant(provider, cfg),
		cfg:        cfg,
	}
}

// NewHandlerWith wires a Handler from explicit collaborators.
func NewHandlerWith(con console.Console, c Classifier, a Assistant, cfg Config) *Handler {
	return &Handler{console: con, classifier: c, assistant: a, cfg: cfg}
}

// Resolve presents the question and returns the first utterance
// classified as an answer. It fails only when the console does or ctx
// is done.
func (h *Handler) Resolve(ctx context.Context, question, domain string) (string, error) {
	h.console.Print(console.Question, i18n.Td(ctx, "QuestionLine", map[string]any{"Question": question}))

	clarifications := 0
	for {
		capped := h.cfg.MaxClarifications > 0 && clarifications >= h.cfg.MaxClarifications

		utterance, err := h.console.Ask(ctx, i18n.T(ctx, "AnswerPrompt"))
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(utterance) == "" {
			continue
		}
		if capped {
			return utterance, nil
		}

		// Classification falls back to an answer on any failure, so a
		// cancel during the call must be checked before trusting it.
		c := h.classifier.Classify(ctx, question, domain, utterance)
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if c.Intent == IntentAnswer {
			return utterance, nil
		}

		h.assist(ctx, c, question, domain)
		clarifications++

		if h.cfg.MaxClarifications > 0 && clarifications >= h.cfg.MaxClarifications {
			h.console.Print(console.Warning, i18n.T(ctx, "NoMoreHelp"))
		} else {
			h.console.Print(console.Dim, i18n.T(ctx, "TryAgain"))
		}
	}
}

func (h *Handler) assist(ctx context.Context, c Classification, question, domain string) {
	var (
		text  string
		err   error
		msgID string
	)
	switch c.Intent {
	case IntentRephrase:
		text, err = h.assistant.Rephrase(ctx, question)
		msgID = "Rephrased"
	case IntentHint:
		text, err = h.assistant.Hint(ctx, question)
		msgID = "Hint"
	case IntentDefinition:
		term := c.Term
		if term == "" {
			term = DefaultTerm
		}
		text, err = h.assistant.Define(ctx, term, domain)
		msgID = "Definition"
	}

	if err != nil {
		slog.Warn("assistance request failed", "intent", c.Intent, "error", err)
		h.console.Print(console.Warning, i18n.T(ctx, "AssistFailed"))
		return
	}
	h.console.Print(console.Assist, i18n.Td(ctx, msgID, map[string]any{"Text": text}))
}
