package conversation

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"text/template"

	"github.com/abhisek/oralexam/internal/llm"
)

// Intent is what the student meant by an utterance.
type Intent string

const (
	IntentAnswer     Intent = "providing_answer"
	IntentRephrase   Intent = "request_rephrase"
	IntentHint       Intent = "request_hint"
	IntentDefinition Intent = "request_definition"
)

// DefaultTerm is used when a definition request names no term.
const DefaultTerm = "that term"

// Valid reports whether i is a known intent.
func (i Intent) Valid() bool {
	switch i {
	case IntentAnswer, IntentRephrase, IntentHint, IntentDefinition:
		return true
	}
	return false
}

// Classification is the classified intent of one utterance. Term is set
// only for definition requests.
type Classification struct {
	Intent Intent
	Term   string
}

// Classifier decides what an utterance is. It never fails: anything it
// cannot classify is an answer.
type Classifier interface {
	Classify(ctx context.Context, question, domain, utterance string) Classification
}

// IntentSchema defines the JSON schema for intent classification.
var IntentSchema = &llm.Schema{
	Name:        "student-intent",
	Description: "The intent behind a student's reply during an oral exam",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type": "string",
				"enum": []any{
					string(IntentAnswer), string(IntentRephrase),
					string(IntentHint), string(IntentDefinition),
				},
			},
			"term": map[string]any{
				"type":        "string",
				"description": "The term to define for request_definition, otherwise empty",
			},
		},
		"required":             []any{"intent", "term"},
		"additionalProperties": false,
	},
}

const intentSystemPrompt = `You analyze a student's reply during an oral exam to determine their intent.

Classify the reply into exactly one of these categories:
- "providing_answer": the student is attempting to answer the question, even partially or wrongly.
- "request_rephrase": the student asks for the question to be rephrased or clarified.
- "request_definition": the student asks what a term means. Put that term in "term".
- "request_hint": the student asks for a hint.

For every category other than "request_definition", "term" is an empty string.
When unsure, choose "providing_answer".`

var intentUserTemplate = template.Must(template.New("intent").Parse(`The question was about "{{.Domain}}".
Question: {{.Question}}
Student's reply: "{{.Utterance}}"`))

// LLMClassifier implements Classifier with an LLM provider.
type LLMClassifier struct {
	provider llm.Provider
	cfg      Config
}

// NewClassifier creates an LLM-based intent classifier.
func NewClassifier(provider llm.Provider, cfg Config) *LLMClassifier {
	return &LLMClassifier{provider: provider, cfg: cfg}
}

type intentOutput struct {
	Intent *string `json:"intent"`
	Term   *string `json:"term"`
}

// Classify makes one service call. Any failure, including an unknown
// intent, yields IntentAnswer.
func (c *LLMClassifier) Classify(ctx context.Context, question, domain, utterance string) Classification {
	ctx = llm.WithPurpose(ctx, llm.PurposeIntent)
	fallback := Classification{Intent: IntentAnswer}

	var buf bytes.Buffer
	if err := intentUserTemplate.Execute(&buf, map[string]string{
		"Domain": domain, "Question": question, "Utterance": utterance,
	}); err != nil {
		slog.Warn("build intent prompt", "error", err)
		return fallback
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      intentSystemPrompt,
		Messages:    llm.UserMessage(buf.String()),
		Schema:      IntentSchema,
		MaxTokens:   c.cfg.ClassifyMaxTokens,
		Temperature: c.cfg.ClassifyTemperature,
	})
	if err != nil {
		slog.Debug("intent classification failed, treating as answer", "error", err)
		return fallback
	}

	var raw intentOutput
	if err := llm.Decode(resp, &raw); err != nil || raw.Intent == nil {
		slog.Debug("intent response unusable, treating as answer", "content", string(resp.Content))
		return fallback
	}

	intent := Intent(strings.ToLower(strings.TrimSpace(*raw.Intent)))
	if !intent.Valid() {
		return fallback
	}

	out := Classification{Intent: intent}
	if intent == IntentDefinition {
		out.Term = DefaultTerm
		if raw.Term != nil && strings.TrimSpace(*raw.Term) != "" {
			out.Term = strings.TrimSpace(*raw.Term)
		}
	}
	return out
}
