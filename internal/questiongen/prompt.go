package questiongen

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const systemPrompt = `You are an expert question creator for a university-level oral exam.

Rules:
- Generate a single, unique exam question for the given domain and difficulty.
- The question must be answerable orally in a few sentences.
- "answer" is the ideal, comprehensive answer used as the grading reference.
- "keywords" lists 5-7 essential terms taken from the answer.
- Do not repeat or closely paraphrase any question from the "previously asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Domain: %q\n", input.Domain)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	if name := languageName(cfg.Language); name != "" {
		fmt.Fprintf(&b, "Language: write the question, answer and keywords in %s\n", name)
	}

	b.WriteString("\nPreviously asked questions:\n")
	b.WriteString(buildDedup(input.Avoid, cfg.MaxAvoid))

	return b.String()
}

// languageName returns the English display name for a BCP-47 tag, or ""
// for English and unparseable tags.
func languageName(tag string) string {
	if tag == "" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	if base, _ := t.Base(); base.String() == "en" {
		return ""
	}
	return display.English.Tags().Name(t)
}
