package conversation

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/oralexam/internal/llm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
		want Classification
	}{
		{"answer", intentJSON("providing_answer", ""), Classification{Intent: IntentAnswer}},
		{"rephrase", intentJSON("request_rephrase", ""), Classification{Intent: IntentRephrase}},
		{"hint fenced", llm.MockJSON("```json\n{\"intent\":\"request_hint\",\"term\":\"\"}\n```"), Classification{Intent: IntentHint}},
		{"definition", intentJSON("request_definition", " congestion window "), Classification{Intent: IntentDefinition, Term: "congestion window"}},
		{"definition no term", intentJSON("request_definition", ""), Classification{Intent: IntentDefinition, Term: DefaultTerm}},
		{"missing term key", llm.MockJSON(`{"intent":"request_hint"}`), Classification{Intent: IntentAnswer}},
		{"timeout", llm.MockError(&llm.ErrTimeout{}), Classification{Intent: IntentAnswer}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(llm.NewMockProvider(tt.resp), DefaultConfig())
			if got := c.Classify(context.Background(), question, "Networking", "hmm"); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassify_Prompt(t *testing.T) {
	mock := llm.NewMockProvider(intentJSON("providing_answer", ""))
	NewClassifier(mock, DefaultConfig()).Classify(context.Background(), question, "Networking", "it is a setup step")

	req := mock.Calls[0]
	if req.Schema != IntentSchema {
		t.Error("expected IntentSchema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{`about "Networking"`, "Question: " + question, `reply: "it is a setup step"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestAssistant_EmptyResponseIsError(t *testing.T) {
	a := NewAssistant(llm.NewMockProvider(llm.MockText("   ")), DefaultConfig())
	if _, err := a.Hint(context.Background(), question); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestIntentPromptListsOnlyCategories(t *testing.T) {
	intents := []Intent{IntentAnswer, IntentRephrase, IntentDefinition, IntentHint}
	var bullets int
	for _, line := range strings.Split(intentSystemPrompt, "\n") {
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		bullets++
		known := false
		for _, in := range intents {
			if strings.HasPrefix(line, `- "`+string(in)+`"`) {
				known = true
			}
		}
		if !known {
			t.Errorf("bullet is not a category: %q", line)
		}
	}
	if bullets != len(intents) {
		t.Errorf("got %d category bullets, want %d", bullets, len(intents))
	}
}
