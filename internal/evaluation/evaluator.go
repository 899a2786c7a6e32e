// Package evaluation scores a student's answer against a reference answer.
// Evaluation never fails: service faults become an "error" verdict with a
// score of zero.
package evaluation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abhisek/oralexam/internal/exam"
	"github.com/abhisek/oralexam/internal/llm"
)

// Diagnostics used as feedback for synthetic error verdicts.
const (
	DiagTimeout   = "The evaluation service timed out."
	DiagTransport = "An error occurred while contacting the evaluation service."
	DiagInvalid   = "The evaluation service returned an invalid response."
	DiagCanceled  = "The evaluation was cancelled."
)

// Evaluator scores answers.
type Evaluator interface {
	Evaluate(ctx context.Context, question, reference, answer string) exam.Evaluation
}

// LLMEvaluator implements Evaluator with an LLM provider.
type LLMEvaluator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-based evaluator.
func New(provider llm.Provider, cfg Config) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, cfg: cfg}
}

// evaluationOutput is the raw LLM response. Pointers detect missing keys.
type evaluationOutput struct {
	Evaluation *string  `json:"evaluation"`
	Feedback   *string  `json:"feedback"`
	Score      *float64 `json:"score"`
}

// Evaluate makes one service call and returns the verdict. The score is
// always clamped into [0, 1].
func (e *LLMEvaluator) Evaluate(ctx context.Context, question, reference, answer string) exam.Evaluation {
	ctx = llm.WithPurpose(ctx, llm.PurposeEvaluation)

	userMsg, err := buildUserMessage(question, reference, answer)
	if err != nil {
		slog.Warn("build evaluation prompt", "error", err)
		return exam.ErrorEvaluation(DiagInvalid)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(e.cfg.Variant),
		Messages:    llm.UserMessage(userMsg),
		Schema:      EvaluationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		slog.Warn("evaluation failed", "error", err)
		return exam.ErrorEvaluation(diagnostic(llm.Classify(err)))
	}

	var raw evaluationOutput
	if err := llm.Decode(resp, &raw); err != nil {
		slog.Warn("evaluation response undecodable", "error", err)
		return exam.ErrorEvaluation(DiagInvalid)
	}
	if raw.Evaluation == nil || raw.Feedback == nil || raw.Score == nil {
		slog.Warn("evaluation response missing keys", "content", string(resp.Content))
		return exam.ErrorEvaluation(DiagInvalid)
	}

	category, ok := exam.ParseCategory(*raw.Evaluation)
	if !ok || category == exam.CategoryError {
		slog.Warn("evaluation response has unknown category", "category", *raw.Evaluation)
		return exam.ErrorEvaluation(DiagInvalid)
	}

	return exam.NewEvaluation(category, strings.TrimSpace(*raw.Feedback), *raw.Score)
}

func diagnostic(kind llm.FaultKind) string {
	switch kind {
	case llm.FaultTimeout:
		return DiagTimeout
	case llm.FaultSchema:
		return DiagInvalid
	case llm.FaultCanceled:
		return DiagCanceled
	}
	return DiagTransport
}
