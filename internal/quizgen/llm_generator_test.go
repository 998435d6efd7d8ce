package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lessonlab/quizforge/internal/llm"
	"github.com/lessonlab/quizforge/internal/quiz"
)

const fullResponse = `{
	"title": "Water Cycle Review",
	"comprehensionQuestions": [
		{"question": "What drives evaporation?", "options": ["The sun", "The wind", "The moon", "The tides"], "answer": "The sun", "explanation": "Solar energy heats surface water."}
	],
	"literacyMCQuestions": [
		{"question": "Which claim does the text best support?", "options": ["A", "B", "C", "D"], "answer": "B", "explanation": "Paragraph two."}
	],
	"shortAnswerQuestions": [
		{"question": "Describe a place you have seen condensation.", "answer": "Any reasonable example, such as a cold glass on a warm day."}
	]
}`

func TestGenerateFullQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fullResponse)})
	gen := New(mock, DefaultConfig())

	g, err := gen.Generate(context.Background(), "lesson about the water cycle", quiz.DefaultSettings())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if g.ID == "" {
		t.Error("expected a quiz ID")
	}
	if g.Title != "Water Cycle Review" {
		t.Errorf("title = %q", g.Title)
	}
	if len(g.Comprehension) != 1 || len(g.LiteracyMC) != 1 || len(g.ShortAnswer) != 1 {
		t.Fatalf("lengths = %d/%d/%d", len(g.Comprehension), len(g.LiteracyMC), len(g.ShortAnswer))
	}
	q := g.Comprehension[0]
	if q.Answer != "The sun" || len(q.Options) != 4 {
		t.Errorf("comprehension question not mapped: %+v", q)
	}
	if g.ShortAnswer[0].Options != nil && len(g.ShortAnswer[0].Options) != 0 {
		t.Errorf("short answer should have no options: %+v", g.ShortAnswer[0])
	}
}

func TestGenerateNormalizesMissingPieces(t *testing.T) {
	tests := []struct {
		name      string
		response  string
		wantTitle string
	}{
		{
			name:      "missing arrays become empty",
			response:  `{"title": "Short Quiz"}`,
			wantTitle: "Short Quiz",
		},
		{
			name:      "empty title gets the default",
			response:  `{"title": "", "comprehensionQuestions": []}`,
			wantTitle: quiz.DefaultTitle,
		},
		{
			name:      "whitespace-only title gets the default",
			response:  `{"title": "  \n ", "comprehensionQuestions": []}`,
			wantTitle: quiz.DefaultTitle,
		},
		{
			name:      "null arrays become empty",
			response:  `{"title": "T", "comprehensionQuestions": null, "literacyMCQuestions": null, "shortAnswerQuestions": null}`,
			wantTitle: "T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.response)})
			gen := New(mock, DefaultConfig())

			g, err := gen.Generate(context.Background(), "content", quiz.DefaultSettings())
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if g.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", g.Title, tt.wantTitle)
			}
			if g.Comprehension == nil || g.LiteracyMC == nil || g.ShortAnswer == nil {
				t.Error("category slices must be non-nil")
			}
			if g.Len() != 0 {
				t.Errorf("expected empty quiz, got %d questions", g.Len())
			}
		})
	}
}

func TestGenerateHardFailures(t *testing.T) {
	tests := []struct {
		name     string
		response llm.MockResponse
	}{
		{"empty body", llm.MockResponse{Content: json.RawMessage("")}},
		{"unparseable body", llm.MockResponse{Content: json.RawMessage("here is your quiz!")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.response)
			gen := New(mock, DefaultConfig())

			_, err := gen.Generate(context.Background(), "content", quiz.DefaultSettings())
			var invalid *llm.ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "content", quiz.DefaultSettings())
	var rate *llm.ErrRateLimit
	if !errors.As(err, &rate) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestGenerateRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title": "T"}`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "content", quiz.DefaultSettings())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("expected the quiz schema on the request")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
	if len(req.Attachments) != 0 {
		t.Error("generation sends no attachments")
	}
}
