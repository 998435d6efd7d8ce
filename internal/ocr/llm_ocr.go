package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lessonlab/quizforge/internal/llm"
)

const extractPrompt = "Recognize and return all text in this image. " +
	"Preserve the original line breaks as closely as possible. " +
	"Return only the text, with no commentary."

// LLMExtractor implements Extractor using a vision-capable provider.
type LLMExtractor struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMExtractor with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMExtractor {
	return &LLMExtractor{provider: provider, config: cfg}
}

// Extract sends the image as an inline attachment and returns the
// recognized text. Whitespace-only output is an error: a blank page is
// indistinguishable from a failed read, and appending nothing to the
// lesson content would look like silent success.
func (e *LLMExtractor) Extract(ctx context.Context, img Image) (string, error) {
	ctx = llm.WithPurpose(ctx, "ocr")
	ctx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: extractPrompt},
		},
		Attachments: []llm.Attachment{
			{MIMEType: img.MIMEType, Data: img.Data},
		},
		MaxTokens: e.config.MaxTokens,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}

	text := string(resp.Content)
	if strings.TrimSpace(text) == "" {
		return "", &llm.ErrInvalidResponse{Err: errors.New("no text recognized in image")}
	}
	return text, nil
}
