package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessonlab/quizforge/internal/quiz"
)

func sampleQuiz() *quiz.GeneratedQuiz {
	return &quiz.GeneratedQuiz{
		ID:    "q-1",
		Title: "River Deltas",
		Comprehension: []quiz.Question{
			{
				Text:        "Where do deltas form?",
				Options:     []string{"River mouths", "Mountain tops", "Deserts", "Glaciers"},
				Answer:      "River mouths",
				Explanation: "Sediment settles where the river meets still water.",
			},
		},
		LiteracyMC: []quiz.Question{
			{
				Text:        "Which statement is best supported?",
				Options:     []string{"W", "X", "Y", "Z"},
				Answer:      "X",
				Explanation: "See paragraph three.",
			},
		},
		ShortAnswer: []quiz.Question{
			{
				Text:   "Why might people farm on a delta?",
				Answer: "The soil is rich in nutrients deposited by the river.",
			},
		},
	}
}

func TestTranscriptStructure(t *testing.T) {
	text := Transcript(sampleQuiz())

	assert.True(t, strings.HasPrefix(text, "River Deltas\n\n"))

	// All three sections present with continuous numbering.
	assert.Contains(t, text, "I. Comprehension\n\n1. Where do deltas form?")
	assert.Contains(t, text, "II. Literacy (Multiple Choice)\n\n2. Which statement is best supported?")
	assert.Contains(t, text, "III. Literacy (Short Answer)\n\n3. Why might people farm on a delta?")

	// Lettered options.
	assert.Contains(t, text, "(A) River mouths")
	assert.Contains(t, text, "(D) Glaciers")

	// Divider separates questions from the answer key.
	parts := strings.Split(text, "---\n")
	require.Len(t, parts, 2)
	assert.NotContains(t, parts[0], "Answers & Explanations")
	assert.Contains(t, parts[1], "Comprehension Answers & Explanations")
	assert.Contains(t, parts[1], "1. River mouths")
	assert.Contains(t, parts[1], "Explanation: Sediment settles where the river meets still water.")

	// Short answers have a reference answer but no explanation line.
	assert.Contains(t, parts[1], "3. The soil is rich in nutrients deposited by the river.")
}

func TestTranscriptSkipsEmptySections(t *testing.T) {
	q := sampleQuiz()
	q.LiteracyMC = nil
	text := Transcript(q)

	assert.NotContains(t, text, "II. Literacy (Multiple Choice)")
	// Numbering stays continuous over the gap.
	assert.Contains(t, text, "2. Why might people farm on a delta?")
}

func TestTranscriptEmptyQuiz(t *testing.T) {
	q := &quiz.GeneratedQuiz{Title: "Empty"}
	text := Transcript(q)

	assert.Contains(t, text, "Empty")
	assert.Contains(t, text, "---")
	assert.NotContains(t, text, "1.")
}
