package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/oralexam/internal/console"
	"github.com/abhisek/oralexam/internal/llm"
)

const question = "What is a TCP handshake?"

func intentJSON(intent, term string) llm.MockResponse {
	return llm.MockJSON(`{"intent":"` + intent + `","term":"` + term + `"}`)
}

func TestResolve_DirectAnswer(t *testing.T) {
	con := console.NewScript("SYN, SYN-ACK, ACK")
	mock := llm.NewMockProvider(intentJSON("providing_answer", ""))
	h := NewHandler(con, mock, DefaultConfig())

	got, err := h.Resolve(context.Background(), question, "Networking")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SYN, SYN-ACK, ACK" {
		t.Errorf("answer = %q", got)
	}
	if !strings.Contains(con.Text(), "Question: "+question) {
		t.Errorf("question not presented:\n%s", con.Text())
	}
	if p := mock.Purposes(); len(p) != 1 || p[0] != llm.PurposeIntent {
		t.Errorf("purposes = %v", p)
	}
}

func TestResolve_MalformedClassificationIsAnswer(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"not json", llm.MockJSON(`the student is answering`)},
		{"unknown intent", intentJSON("request_pizza", "")},
		{"transport", llm.MockError(&llm.ErrProviderUnavailable{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			con := console.NewScript("can you rephrase that?")
			h := NewHandler(con, llm.NewMockProvider(tt.resp), DefaultConfig())

			got, err := h.Resolve(context.Background(), question, "Networking")
			if err != nil || got != "can you rephrase that?" {
				t.Fatalf("Resolve = %q, %v", got, err)
			}
		})
	}
}

func TestResolve_RephraseLoops(t *testing.T) {
	con := console.NewScript("can you rephrase that?", "it opens a connection")
	mock := llm.NewMockProvider(
		intentJSON("request_rephrase", ""),
		llm.MockText("How does TCP set up a connection?"),
		intentJSON("providing_answer", ""),
	)
	h := NewHandler(con, mock, DefaultConfig())

	got, err := h.Resolve(context.Background(), question, "Networking")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "it opens a connection" {
		t.Errorf("answer = %q", got)
	}

	out := con.Text()
	for _, want := range []string{
		"Of course, let me rephrase: How does TCP set up a connection?",
		"Let's try the question again.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	want := []string{llm.PurposeIntent, llm.PurposeRephrase, llm.PurposeIntent}
	got2 := mock.Purposes()
	if strings.Join(got2, ",") != strings.Join(want, ",") {
		t.Errorf("purposes = %v, want %v", got2, want)
	}
	if mock.Calls[1].Schema != nil {
		t.Error("rephrase should be a free-text request")
	}
}

func TestResolve_HintAndDefinition(t *testing.T) {
	con := console.NewScript("hint please", "what does SYN mean?", "what's that?", "final")
	mock := llm.NewMockProvider(
		intentJSON("request_hint", ""),
		llm.MockText("Think about acknowledgements."),
		intentJSON("request_definition", "SYN"),
		llm.MockText("SYN is the synchronize flag."),
		intentJSON("request_definition", ""),
		llm.MockText("It is a term."),
		intentJSON("providing_answer", ""),
	)
	h := NewHandler(con, mock, DefaultConfig())

	if _, err := h.Resolve(context.Background(), question, "Networking"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := con.Text()
	if !strings.Contains(out, "Here's a hint for you: Think about acknowledgements.") {
		t.Errorf("hint missing:\n%s", out)
	}
	if !strings.Contains(out, "Certainly. SYN is the synchronize flag.") {
		t.Errorf("definition missing:\n%s", out)
	}
	if msg := mock.Calls[3].Messages[0].Content; !strings.Contains(msg, `"SYN"`) || !strings.Contains(msg, "Networking") {
		t.Errorf("definition prompt = %q", msg)
	}
	if msg := mock.Calls[5].Messages[0].Content; !strings.Contains(msg, `"that term"`) {
		t.Errorf("default term not used: %q", msg)
	}
}

func TestResolve_AssistFailureApologizes(t *testing.T) {
	con := console.NewScript("hint?", "answer")
	mock := llm.NewMockProvider(
		intentJSON("request_hint", ""),
		llm.MockError(&llm.ErrTimeout{}),
		intentJSON("providing_answer", ""),
	)
	h := NewHandler(con, mock, DefaultConfig())

	got, err := h.Resolve(context.Background(), question, "Networking")
	if err != nil || got != "answer" {
		t.Fatalf("Resolve = %q, %v", got, err)
	}
	if !strings.Contains(con.Text(), "Sorry, I couldn't help with that right now.") {
		t.Errorf("apology missing:\n%s", con.Text())
	}
}

func TestResolve_BlankInputReprompts(t *testing.T) {
	con := console.NewScript("", "   ", "answer")
	mock := llm.NewMockProvider(intentJSON("providing_answer", ""))
	h := NewHandler(con, mock, DefaultConfig())

	got, err := h.Resolve(context.Background(), question, "Networking")
	if err != nil || got != "answer" {
		t.Fatalf("Resolve = %q, %v", got, err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("blank input should not be classified, got %d calls", mock.CallCount())
	}
	if len(con.Prompts) != 3 {
		t.Errorf("expected 3 prompts, got %d", len(con.Prompts))
	}
}

func TestResolve_ClarificationCap(t *testing.T) {
	con := console.NewScript("hint?", "hint again?", "another hint?")
	mock := llm.NewMockProvider(
		intentJSON("request_hint", ""),
		llm.MockText("h1"),
		intentJSON("request_hint", ""),
		llm.MockText("h2"),
	)
	cfg := DefaultConfig()
	cfg.MaxClarifications = 2
	h := NewHandler(con, mock, cfg)

	got, err := h.Resolve(context.Background(), question, "Networking")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "another hint?" {
		t.Errorf("expected third reply accepted as answer, got %q", got)
	}
	if mock.CallCount() != 4 {
		t.Errorf("expected no classification after cap, got %d calls", mock.CallCount())
	}
	if !strings.Contains(con.Text(), "No more help is available") {
		t.Errorf("cap notice missing:\n%s", con.Text())
	}
}

func TestResolve_ConsoleErrors(t *testing.T) {
	con := console.NewScript()
	con.Err = console.ErrInterrupted
	h := NewHandler(con, llm.NewMockProvider(), DefaultConfig())

	if _, err := h.Resolve(context.Background(), question, "Networking"); !errors.Is(err, console.ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h = NewHandler(console.NewScript("x"), llm.NewMockProvider(), DefaultConfig())
	if _, err := h.Resolve(ctx, question, "Networking"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type stubClassifier struct{ c Classification }

func (s stubClassifier) Classify(context.Context, string, string, string) Classification {
	return s.c
}

type stubAssistant struct{ calls []string }

func (s *stubAssistant) Rephrase(context.Context, string) (string, error) {
	s.calls = append(s.calls, "rephrase")
	return "r", nil
}

func (s *stubAssistant) Hint(context.Context, string) (string, error) {
	s.calls = append(s.calls, "hint")
	return "h", nil
}

func (s *stubAssistant) Define(_ context.Context, term, _ string) (string, error) {
	s.calls = append(s.calls, "define:"+term)
	return "d", nil
}

func TestResolve_UnboundedWithZeroCap(t *testing.T) {
	inputs := make([]string, 12)
	for i := range inputs {
		inputs[i] = "what?"
	}
	con := console.NewScript(inputs...)
	asst := &stubAssistant{}
	cfg := DefaultConfig()
	cfg.MaxClarifications = 0
	h := NewHandlerWith(con, stubClassifier{Classification{Intent: IntentDefinition}}, asst, cfg)

	_, err := h.Resolve(context.Background(), question, "Networking")
	if err == nil {
		t.Fatal("expected EOF once the script runs out")
	}
	if len(asst.calls) != 12 || asst.calls[0] != "define:that term" {
		t.Errorf("calls = %v", asst.calls)
	}
}

// cancellingClassifier cancels the session mid-call and, like the LLM
// classifier, falls back to an answer.
type cancellingClassifier struct{ cancel context.CancelFunc }

func (c cancellingClassifier) Classify(context.Context, string, string, string) Classification {
	c.cancel()
	return Classification{Intent: IntentAnswer}
}

func TestResolve_CancelDuringClassification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHandlerWith(console.NewScript("SYN then ACK"), cancellingClassifier{cancel}, &stubAssistant{}, DefaultConfig())

	got, err := h.Resolve(ctx, question, "Networking")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %q, %v", got, err)
	}
}
