package ocr

import (
	"context"
	"time"
)

// Image is a staged lesson-page image to extract text from.
type Image struct {
	MIMEType string
	Data     []byte
}

// Extractor pulls plain text out of a lesson-page image.
type Extractor interface {
	// Extract returns the recognized text with original line breaks
	// preserved where possible.
	Extract(ctx context.Context, img Image) (string, error)
}

// Config controls the behavior of the LLM extractor.
type Config struct {
	// MaxTokens caps the extracted text length.
	MaxTokens int

	// Timeout bounds a single extraction call.
	Timeout time.Duration
}

// DefaultConfig returns the recommended extraction defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 4096,
		Timeout:   30 * time.Second,
	}
}
