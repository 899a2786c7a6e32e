package questiongen

import (
	"fmt"
	"strings"
	"unicode"
)

// buildDedup formats the avoid-list for the prompt, respecting the max limit.
// Returns "None" if there is nothing to avoid.
func buildDedup(avoid []string, max int) string {
	if len(avoid) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(avoid) > max {
		avoid = avoid[len(avoid)-max:]
	}

	var b strings.Builder
	for i, q := range avoid {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

// normalizeQuestion lowercases and drops punctuation and extra spaces so
// trivially different phrasings compare equal.
func normalizeQuestion(s string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			space = true
		}
	}
	return b.String()
}
