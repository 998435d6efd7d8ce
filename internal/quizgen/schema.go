package quizgen

import "github.com/lessonlab/quizforge/internal/llm"

// mcQuestionSchema describes one multiple-choice question.
var mcQuestionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question prompt shown to the student",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 4 answer options",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "The full text of the correct option",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the answer is correct, referencing the lesson",
		},
	},
	"required":             []any{"question", "options", "answer", "explanation"},
	"additionalProperties": false,
}

// shortAnswerSchema describes one free-response question.
var shortAnswerSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question prompt shown to the student",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "A reference answer for grading by hand",
		},
	},
	"required":             []any{"question", "answer"},
	"additionalProperties": false,
}

// QuizSchema defines the JSON schema for quiz generation responses.
// Only the title is required. Category arrays the model omits are
// normalized to empty by the generator.
var QuizSchema = &llm.Schema{
	Name:        "lesson-quiz",
	Description: "A structured quiz generated from lesson text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A concise quiz title",
			},
			"comprehensionQuestions": map[string]any{
				"type":  "array",
				"items": mcQuestionSchema,
			},
			"literacyMCQuestions": map[string]any{
				"type":  "array",
				"items": mcQuestionSchema,
			},
			"shortAnswerQuestions": map[string]any{
				"type":  "array",
				"items": shortAnswerSchema,
			},
		},
		"required":             []any{"title"},
		"additionalProperties": false,
	},
}
