package export

import (
	"fmt"
	"strings"

	"github.com/lessonlab/quizforge/internal/quiz"
)

// Section headings in display order.
var sectionHeadings = [3]string{
	"I. Comprehension",
	"II. Literacy (Multiple Choice)",
	"III. Literacy (Short Answer)",
}

// answerHeadings label the answer-key sections.
var answerHeadings = [3]string{
	"Comprehension",
	"Literacy (Multiple Choice)",
	"Literacy (Short Answer)",
}

// Transcript renders the full quiz as plain text: the title, every
// section's questions with lettered options, a divider, then each
// section's answers and explanations. Question numbers run continuously
// across sections.
func Transcript(q *quiz.GeneratedQuiz) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", q.Title)

	num := 1
	for c := quiz.CategoryComprehension; c <= quiz.CategoryShortAnswer; c++ {
		num = writeQuestionSection(&b, sectionHeadings[c], q.Category(c), num)
	}

	b.WriteString("---\n\n")

	num = 1
	for c := quiz.CategoryComprehension; c <= quiz.CategoryShortAnswer; c++ {
		num = writeAnswerSection(&b, answerHeadings[c], q.Category(c), num)
	}

	return b.String()
}

func writeQuestionSection(b *strings.Builder, heading string, questions []quiz.Question, num int) int {
	if len(questions) == 0 {
		return num
	}

	fmt.Fprintf(b, "%s\n\n", heading)
	for _, q := range questions {
		fmt.Fprintf(b, "%d. %s\n", num, q.Text)
		for i, opt := range q.Options {
			fmt.Fprintf(b, "(%c) %s\n", 'A'+i, opt)
		}
		b.WriteString("\n")
		num++
	}
	return num
}

func writeAnswerSection(b *strings.Builder, heading string, questions []quiz.Question, num int) int {
	if len(questions) == 0 {
		return num
	}

	fmt.Fprintf(b, "%s Answers & Explanations\n\n", heading)
	for _, q := range questions {
		fmt.Fprintf(b, "%d. %s\n", num, q.Answer)
		if q.Explanation != "" {
			fmt.Fprintf(b, "   Explanation: %s\n", q.Explanation)
		}
		b.WriteString("\n")
		num++
	}
	return num
}
