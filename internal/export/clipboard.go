package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/lessonlab/quizforge/internal/quiz"
)

// CopyToClipboard writes the quiz transcript to the system clipboard.
func CopyToClipboard(q *quiz.GeneratedQuiz) error {
	if err := clipboard.WriteAll(Transcript(q)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
