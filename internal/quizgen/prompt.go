package quizgen

import (
	"fmt"
	"strings"

	"github.com/lessonlab/quizforge/internal/quiz"
)

const systemPrompt = `You are an experienced educator who designs quizzes from lesson texts.

Rules:
- Base every question strictly on the lesson content provided. Do not invent facts.
- Write questions, options, answers, and explanations in the same language as the lesson text.
- Match the vocabulary and sentence complexity to the requested difficulty level of each section.
- For multiple-choice questions, provide exactly 4 options where exactly one is correct. The "answer" field must be the full text of the correct option. Distractors should reflect plausible misreadings, not random filler.
- Comprehension questions test direct understanding of the text.
- Literacy multiple-choice questions go beyond the text: critical thinking, integrating information, or applying ideas.
- Short-answer questions invite deeper reflection, personal viewpoints, or connections to lived experience. Their "answer" is a reference answer, not the only correct one.
- Only generate the sections requested. Omit or leave empty any section that is not requested.`

// buildUserMessage lists the requested sections with their counts and
// difficulty levels, followed by the lesson content.
func buildUserMessage(content string, settings quiz.QuizSettings) string {
	var b strings.Builder

	b.WriteString("Generate a quiz from the lesson text below.\n\nSections requested:\n")

	if s := settings.Comprehension; s.Enabled && s.Count > 0 {
		fmt.Fprintf(&b, "- \"comprehensionQuestions\": %d multiple-choice comprehension questions, difficulty %q. Each has 'question', 'options' (4 strings), 'answer' (correct option text), 'explanation'.\n", s.Count, s.Difficulty)
	}
	if s := settings.LiteracyMC; s.Enabled && s.Count > 0 {
		fmt.Fprintf(&b, "- \"literacyMCQuestions\": %d multiple-choice literacy questions, difficulty %q. Each has 'question', 'options' (4 strings), 'answer' (correct option text), 'explanation'.\n", s.Count, s.Difficulty)
	}
	if s := settings.ShortAnswer; s.Enabled && s.Count > 0 {
		fmt.Fprintf(&b, "- \"shortAnswerQuestions\": %d short-answer questions, difficulty %q. Each has 'question' and 'answer' (a reference answer).\n", s.Count, s.Difficulty)
	}

	b.WriteString("- \"title\": a concise title for the quiz, around ten words or fewer.\n")

	b.WriteString("\nLesson text:\n\"\"\"\n")
	b.WriteString(content)
	b.WriteString("\n\"\"\"\n")

	return b.String()
}
