package input

import "github.com/lessonlab/quizforge/internal/quiz"

// quizReadyMsg is sent when the generation gateway call completes.
type quizReadyMsg struct {
	Quiz *quiz.GeneratedQuiz
	Err  error
}

// ocrDoneMsg is sent when the text extraction gateway call completes.
type ocrDoneMsg struct {
	Text string
	Err  error
}
