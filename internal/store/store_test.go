package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID:    "req-1",
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "quiz-gen",
		InputTokens:  1200,
		OutputTokens: 800,
		LatencyMs:    2300,
		Success:      true,
		RequestBody:  "[user]\nsome lesson text",
		ResponseBody: `{"title":"Generated Practice Quiz"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID:    "req-2",
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "ocr",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].RequestID != "req-2" || events[1].RequestID != "req-1" {
		t.Errorf("wrong order: %s, %s", events[0].RequestID, events[1].RequestID)
	}
	if events[1].InputTokens != 1200 || events[1].OutputTokens != 800 {
		t.Errorf("tokens not round-tripped: %+v", events[1])
	}
	if events[0].Success || !events[1].Success {
		t.Errorf("success flags not round-tripped")
	}
	if events[0].Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestQueryLLMEventsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		purpose := "quiz-gen"
		if i%2 == 1 {
			purpose = "ocr"
		}
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			RequestID: "req",
			Provider:  "mock",
			Model:     "mock",
			Purpose:   purpose,
			Success:   true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "ocr"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 ocr events, got %d", len(events))
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(events) != 3 {
		t.Errorf("expected 3 events with limit, got %d", len(events))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	e, err := repo.GetLLMEvent(ctx, 99)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if e != nil {
		t.Fatal("expected nil for missing event")
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID:    "req-1",
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "quiz-gen",
		Success:      true,
		RequestBody:  "body",
		ResponseBody: "resp",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err = repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.RequestBody != "body" || e.ResponseBody != "resp" {
		t.Errorf("bodies not round-tripped: %+v", e)
	}
}
