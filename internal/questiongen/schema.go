package questiongen

import "github.com/abhisek/oralexam/internal/llm"

// QuestionSchema defines the JSON schema for question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "exam-question",
	Description: "A single oral exam question with a reference answer and keywords",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question asked to the student",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The ideal, comprehensive answer used as the grading reference",
			},
			"keywords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "5-7 essential keywords taken from the answer",
			},
		},
		"required":             []any{"question", "answer", "keywords"},
		"additionalProperties": false,
	},
}
