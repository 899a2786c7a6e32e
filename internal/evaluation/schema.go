package evaluation

import "github.com/abhisek/oralexam/internal/llm"

// EvaluationSchema defines the JSON schema for evaluation responses.
// The score carries no bounds so out-of-range values reach the client
// and are clamped there.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Verdict on a student's answer with feedback and a score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"evaluation": map[string]any{
				"type":        "string",
				"enum":        []any{"correct", "partially_correct", "incorrect"},
				"description": "Overall verdict on the answer",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Concise explanation; for imperfect answers, what is missing or wrong and the correct information",
			},
			"score": map[string]any{
				"type":        "number",
				"description": "From 0.0 (completely wrong) to 1.0 (perfectly correct)",
			},
		},
		"required":             []any{"evaluation", "feedback", "score"},
		"additionalProperties": false,
	},
}
