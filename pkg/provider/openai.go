package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultTimeout       = 60 * time.Second
)

// OpenAIOption configures an OpenAIProvider.
type OpenAIOption func(*OpenAIProvider)

// WithOpenAIHTTPClient sets a custom HTTP client (useful for testing).
func WithOpenAIHTTPClient(c *http.Client) OpenAIOption {
	return func(p *OpenAIProvider) { p.client = c }
}

// WithOpenAIBaseURL overrides the API base URL. Vendors that mirror the
// OpenAI chat completions schema (Perplexity, DeepSeek, xAI) are reached by
// pointing the same client at their own base.
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(p *OpenAIProvider) { p.baseURL = strings.TrimRight(url, "/") }
}

// WithOpenAIName overrides the provider identifier reported by Name.
func WithOpenAIName(name string) OpenAIOption {
	return func(p *OpenAIProvider) { p.name = name }
}

// OpenAIProvider implements Provider for the OpenAI Chat Completions API and
// for vendors exposing an OpenAI-compatible endpoint.
type OpenAIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenAIProvider creates a new OpenAI-compatible provider with the given API key.
func NewOpenAIProvider(apiKey string, opts ...OpenAIOption) *OpenAIProvider {
	p := &OpenAIProvider{
		name:    "openai",
		apiKey:  apiKey,
		baseURL: defaultOpenAIBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider identifier ("openai" unless overridden).
func (p *OpenAIProvider) Name() string { return p.name }

// openaiRequest is the Chat Completions API request body.
type openaiRequest struct {
	Model     string          `json:"model"`
	Messages  []openaiMessage `json:"messages"`
	MaxTokens *int            `json:"max_tokens,omitempty"`
}

type openaiMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

// openaiResponse is the Chat Completions API response body.
type openaiResponse struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Choices []openaiChoice `json:"choices"`
	Usage   struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

type openaiChoice struct {
	Index        int           `json:"index"`
	Message      openaiMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openaiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete sends a single request to the chat completions endpoint. There is
// no retry; a transport or API failure is returned to the caller as-is.
func (p *OpenAIProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	body, err := p.buildRequestBody(req)
	if err != nil {
		return nil, fmt.Errorf("building request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending HTTP request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr openaiErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("%s: HTTP %d: %s", p.name, httpResp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("%s: HTTP %d: %s", p.name, httpResp.StatusCode, string(respBody))
	}

	var or openaiResponse
	if err := json.Unmarshal(respBody, &or); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return parseOpenAIResponse(&or), nil
}

func (p *OpenAIProvider) buildRequestBody(req *Request) ([]byte, error) {
	or := openaiRequest{
		Model:    req.Model,
		Messages: make([]openaiMessage, 0, len(req.Messages)),
	}

	for _, m := range req.Messages {
		c := m.Content
		or.Messages = append(or.Messages, openaiMessage{Role: m.Role, Content: &c})
	}

	if req.MaxTokens != 0 {
		n := req.MaxTokens
		or.MaxTokens = &n
	}

	return json.Marshal(or)
}

// parseOpenAIResponse extracts choices[0].message.content. An absent or empty
// choices array yields an empty Content, not an error.
func parseOpenAIResponse(or *openaiResponse) *Response {
	resp := &Response{
		Usage: Usage{
			InputTokens:  or.Usage.PromptTokens,
			OutputTokens: or.Usage.CompletionTokens,
		},
	}

	if len(or.Choices) == 0 {
		return resp
	}

	choice := or.Choices[0]
	resp.StopReason = choice.FinishReason

	if choice.Message.Content != nil {
		resp.Content = *choice.Message.Content
	}

	return resp
}
