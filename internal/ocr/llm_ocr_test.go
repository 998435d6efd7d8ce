package ocr

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lessonlab/quizforge/internal/llm"
)

func TestExtractReturnsRecognizedText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Line one.\nLine two."),
	})
	ex := New(mock, DefaultConfig())

	text, err := ex.Extract(context.Background(), Image{
		MIMEType: "image/png",
		Data:     []byte{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "Line one.\nLine two." {
		t.Errorf("text = %q", text)
	}
}

func TestExtractSendsAttachment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("text")})
	ex := New(mock, DefaultConfig())

	_, err := ex.Extract(context.Background(), Image{MIMEType: "image/jpeg", Data: []byte{0xFF}})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if len(req.Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(req.Attachments))
	}
	if req.Attachments[0].MIMEType != "image/jpeg" {
		t.Errorf("mime = %q", req.Attachments[0].MIMEType)
	}
	if req.Schema != nil {
		t.Error("extraction requests no schema")
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name     string
		response llm.MockResponse
	}{
		{"provider failure", llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}},
		{"empty text", llm.MockResponse{Content: json.RawMessage("")}},
		{"whitespace only", llm.MockResponse{Content: json.RawMessage("  \n\t ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.response)
			ex := New(mock, DefaultConfig())

			_, err := ex.Extract(context.Background(), Image{MIMEType: "image/png", Data: []byte{1}})
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestExtractBlankPageIsInvalidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("   ")})
	ex := New(mock, DefaultConfig())

	_, err := ex.Extract(context.Background(), Image{MIMEType: "image/png", Data: []byte{1}})
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
