package questiongen

import "github.com/mightyhq/prepcore/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "practice-question",
	Description: "A single multiple-choice practice question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner, in plain ASCII text",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options where exactly one is correct",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, matching one of the choices exactly",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution explaining why the answer is correct",
			},
		},
		"required":             []any{"question_text", "choices", "answer", "explanation"},
		"additionalProperties": false,
	},
}
