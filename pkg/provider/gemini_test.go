package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiComplete_TextResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The key travels as a query parameter, not a header.
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key query param = %q, want %q", got, "test-key")
		}
		if got := r.URL.Path; got != "/models/gemini-2.0-flash:generateContent" {
			t.Errorf("path = %q, want %q", got, "/models/gemini-2.0-flash:generateContent")
		}

		var reqBody generateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if len(reqBody.Contents) != 1 {
			t.Fatalf("contents length = %d, want 1", len(reqBody.Contents))
		}
		if reqBody.Contents[0].Role != "user" {
			t.Errorf("contents[0].role = %q, want %q", reqBody.Contents[0].Role, "user")
		}
		if len(reqBody.Contents[0].Parts) != 1 || reqBody.Contents[0].Parts[0].Text != "Hi" {
			t.Errorf("contents[0].parts = %+v, want one part with text %q", reqBody.Contents[0].Parts, "Hi")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Hello "}, {"text": "back."}]}}],
			"usageMetadata": {"promptTokenCount": 4, "candidatesTokenCount": 3}
		}`))
	}))
	defer server.Close()

	p := NewGeminiProvider("test-key", WithGeminiBaseURL(server.URL))

	got, err := p.Complete(context.Background(), &Request{
		Model:    "gemini-2.0-flash",
		Messages: UserPrompt("Hi"),
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if got.Content != "Hello back." {
		t.Errorf("Content = %q, want %q", got.Content, "Hello back.")
	}
	if got.Usage.InputTokens != 4 {
		t.Errorf("InputTokens = %d, want %d", got.Usage.InputTokens, 4)
	}
	if got.Usage.OutputTokens != 3 {
		t.Errorf("OutputTokens = %d, want %d", got.Usage.OutputTokens, 3)
	}
}

func TestGeminiComplete_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	p := NewGeminiProvider("test-key", WithGeminiBaseURL(server.URL))

	got, err := p.Complete(context.Background(), &Request{
		Model:    "gemini-2.0-flash",
		Messages: UserPrompt("Hi"),
	})
	if err != nil {
		t.Fatalf("Complete() error = %v, want nil for empty candidates", err)
	}
	if got.Content != "" {
		t.Errorf("Content = %q, want empty string", got.Content)
	}
}

func TestGeminiComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	p := NewGeminiProvider("bad-key", WithGeminiBaseURL(server.URL))

	_, err := p.Complete(context.Background(), &Request{
		Model:    "gemini-2.0-flash",
		Messages: UserPrompt("Hi"),
	})
	if err == nil {
		t.Fatal("Complete() expected error, got nil")
	}
}

func TestGeminiProviderName(t *testing.T) {
	p := NewGeminiProvider("key")
	if got := p.Name(); got != "gemini" {
		t.Errorf("Name() = %q, want %q", got, "gemini")
	}
}
