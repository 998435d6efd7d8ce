package quizgen

import (
	"context"

	"github.com/lessonlab/quizforge/internal/quiz"
)

// Generator produces a quiz from lesson content using an LLM provider.
type Generator interface {
	// Generate produces a quiz for the given lesson content and
	// settings. The result is structurally complete (non-nil category
	// slices, non-empty title) or an error.
	Generate(ctx context.Context, content string, settings quiz.QuizSettings) (*quiz.GeneratedQuiz, error)
}
