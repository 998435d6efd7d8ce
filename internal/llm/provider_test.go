package llm

import "testing"

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiContents_AttachmentsOnLastUserMessage(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "read this page"},
		},
		Attachments: []Attachment{
			{MIMEType: "image/png", Data: []byte{1, 2, 3}},
		},
	}

	contents := buildGeminiContents(req)
	if len(contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(contents))
	}
	if len(contents[0].Parts) != 2 {
		t.Fatalf("expected text + image parts, got %d", len(contents[0].Parts))
	}
	blob := contents[0].Parts[1].InlineData
	if blob == nil || blob.MIMEType != "image/png" {
		t.Fatalf("expected inline image/png blob, got %+v", contents[0].Parts[1])
	}
}

func TestBuildOpenAIMessages_AttachmentsBecomeDataURLs(t *testing.T) {
	req := Request{
		System: "sys",
		Messages: []Message{
			{Role: RoleUser, Content: "read this page"},
		},
		Attachments: []Attachment{
			{MIMEType: "image/jpeg", Data: []byte{0xFF}},
		},
	}

	messages := buildOpenAIMessages(req)
	if len(messages) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(messages))
	}
	user := messages[1]
	if len(user.MultiContent) != 2 {
		t.Fatalf("expected text + image parts, got %d", len(user.MultiContent))
	}
	img := user.MultiContent[1]
	if img.ImageURL == nil || img.ImageURL.URL[:len("data:image/jpeg;base64,")] != "data:image/jpeg;base64," {
		t.Fatalf("expected data URL, got %+v", img)
	}
}

func TestBuildAnthropicMessages_AttachmentsAppended(t *testing.T) {
	req := Request{
		Messages: []Message{
			{Role: RoleUser, Content: "read this page"},
		},
		Attachments: []Attachment{
			{MIMEType: "image/png", Data: []byte{1}},
		},
	}

	out := buildAnthropicMessages(req)
	if len(out) != 1 {
		t.Fatalf("expected 1 message, got %d", len(out))
	}
	if len(out[0].Content) != 2 {
		t.Fatalf("expected text + image blocks, got %d", len(out[0].Content))
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"gemini with key", func(c *Config) { c.Gemini.APIKey = "k" }, false},
		{"gemini without key", func(c *Config) {}, true},
		{"openai without key", func(c *Config) { c.Provider = "openai" }, true},
		{"mock never needs a key", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "carrier-pigeon" }, true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %t", tt.name, err, tt.wantErr)
		}
	}
}
