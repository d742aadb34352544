package provider

import "context"

// Provider defines the interface for LLM API backends.
type Provider interface {
	// Complete sends a completion request and returns the model response.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider identifier (e.g. "openai").
	Name() string
}

// Request represents a completion request to an LLM provider.
type Request struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// Message represents a single message in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserPrompt builds the single-message conversation used for one-shot prompts.
func UserPrompt(text string) []Message {
	return []Message{{Role: "user", Content: text}}
}

// Response represents a completion response from an LLM provider.
type Response struct {
	Content    string `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      Usage  `json:"usage"`
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
