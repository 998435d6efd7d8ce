package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lessonlab/quizforge/internal/llm"
	"github.com/lessonlab/quizforge/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is one raw question from the model.
type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// quizOutput is the raw LLM response before normalization.
type quizOutput struct {
	Title                  string           `json:"title"`
	ComprehensionQuestions []questionOutput `json:"comprehensionQuestions"`
	LiteracyMCQuestions    []questionOutput `json:"literacyMCQuestions"`
	ShortAnswerQuestions   []questionOutput `json:"shortAnswerQuestions"`
}

// Generate produces a quiz for the given lesson content and settings.
// An unparseable or empty response is a hard failure. A parseable
// response with missing pieces is normalized: absent category arrays
// become empty slices and an absent title gets the default.
func (g *LLMGenerator) Generate(ctx context.Context, content string, settings quiz.QuizSettings) (*quiz.GeneratedQuiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(content, settings)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, &llm.ErrInvalidResponse{Err: errors.New("empty response body")}
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("unparseable response body: %w", err)}
	}

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		title = quiz.DefaultTitle
	}

	return &quiz.GeneratedQuiz{
		ID:            uuid.New().String(),
		Title:         title,
		Comprehension: convertQuestions(raw.ComprehensionQuestions),
		LiteracyMC:    convertQuestions(raw.LiteracyMCQuestions),
		ShortAnswer:   convertQuestions(raw.ShortAnswerQuestions),
	}, nil
}

// convertQuestions maps raw model questions onto the domain type.
// Always returns a non-nil slice.
func convertQuestions(in []questionOutput) []quiz.Question {
	out := make([]quiz.Question, 0, len(in))
	for _, q := range in {
		out = append(out, quiz.Question{
			Text:        q.Question,
			Options:     q.Options,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	return out
}
