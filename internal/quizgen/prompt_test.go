package quizgen

import (
	"strings"
	"testing"

	"github.com/lessonlab/quizforge/internal/quiz"
)

func TestBuildUserMessageSections(t *testing.T) {
	tests := []struct {
		name       string
		settings   quiz.QuizSettings
		wantKeys   []string
		absentKeys []string
	}{
		{
			name:       "defaults omit disabled literacy MC",
			settings:   quiz.DefaultSettings(),
			wantKeys:   []string{"comprehensionQuestions", "shortAnswerQuestions", "title"},
			absentKeys: []string{"literacyMCQuestions"},
		},
		{
			name: "all enabled",
			settings: quiz.QuizSettings{
				Comprehension: quiz.QuestionSetting{Enabled: true, Count: 5, Difficulty: "Grade 7"},
				LiteracyMC:    quiz.QuestionSetting{Enabled: true, Count: 3, Difficulty: "Grade 9"},
				ShortAnswer:   quiz.QuestionSetting{Enabled: true, Count: 3, Difficulty: "Grade 7"},
			},
			wantKeys: []string{"comprehensionQuestions", "literacyMCQuestions", "shortAnswerQuestions"},
		},
		{
			name: "enabled with zero count is omitted",
			settings: quiz.QuizSettings{
				Comprehension: quiz.QuestionSetting{Enabled: true, Count: 0, Difficulty: "Grade 7"},
				ShortAnswer:   quiz.QuestionSetting{Enabled: true, Count: 2, Difficulty: "Grade 7"},
			},
			wantKeys:   []string{"shortAnswerQuestions"},
			absentKeys: []string{"comprehensionQuestions", "literacyMCQuestions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := buildUserMessage("the lesson text", tt.settings)

			for _, key := range tt.wantKeys {
				if !strings.Contains(msg, key) {
					t.Errorf("missing %q in prompt", key)
				}
			}
			for _, key := range tt.absentKeys {
				if strings.Contains(msg, key) {
					t.Errorf("unexpected %q in prompt", key)
				}
			}
			if !strings.Contains(msg, "the lesson text") {
				t.Error("prompt must embed the lesson content")
			}
		})
	}
}

func TestBuildUserMessageCountsAndDifficulty(t *testing.T) {
	settings := quiz.QuizSettings{
		Comprehension: quiz.QuestionSetting{Enabled: true, Count: 7, Difficulty: "Advanced"},
	}
	msg := buildUserMessage("content", settings)

	if !strings.Contains(msg, "7 multiple-choice comprehension questions") {
		t.Errorf("count not in prompt:\n%s", msg)
	}
	if !strings.Contains(msg, `"Advanced"`) {
		t.Errorf("difficulty not in prompt:\n%s", msg)
	}
}
