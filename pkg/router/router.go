// Package router maps provider key strings to configured LLM clients and
// dispatches a single prompt to the selected backend.
package router

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/promptline/promptline/pkg/config"
	"github.com/promptline/promptline/pkg/provider"
)

// kind selects which request builder a provider key uses.
type kind int

const (
	kindOpenAI kind = iota
	kindGemini
	kindAnthropic
)

// kinds is the closed set of supported backends. Keys not present here
// resolve to "openai" via Resolve.
var kinds = map[string]kind{
	"openai":     kindOpenAI,
	"perplexity": kindOpenAI,
	"deepseek":   kindOpenAI,
	"grok":       kindOpenAI,
	"gemini":     kindGemini,
	"claude":     kindAnthropic,
}

// aliases maps alternate spellings to canonical provider keys.
var aliases = map[string]string{
	"chatgpt": "openai",
}

// Resolve returns the canonical provider key for an input key. Matching is
// case-insensitive; unrecognized keys (including the empty string) fall back
// to "openai".
func Resolve(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := aliases[k]; ok {
		return canonical
	}
	if _, ok := kinds[k]; ok {
		return k
	}
	return "openai"
}

// Known returns the canonical provider keys in sorted order.
func Known() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Option configures a Router.
type Option func(*Router)

// WithHTTPClient sets the HTTP client shared by every provider the router
// builds (useful for testing and for applying a configured timeout).
func WithHTTPClient(c *http.Client) Option {
	return func(r *Router) { r.client = c }
}

// Router resolves provider keys against an injected configuration and
// dispatches prompts. It holds no state beyond the config and HTTP client.
type Router struct {
	cfg    *config.Config
	client *http.Client
}

// New creates a Router backed by the given configuration.
func New(cfg *config.Config, opts ...Option) *Router {
	r := &Router{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result carries the normalized answer plus metadata about the call.
type Result struct {
	Provider string
	Model    string
	Text     string
	Usage    provider.Usage
}

// Do resolves the provider key, applies the default model when no override
// is given, and sends the prompt. A missing credential fails with
// provider.MissingCredentialError before any network call.
func (r *Router) Do(ctx context.Context, providerKey, model, prompt string) (*Result, error) {
	key := Resolve(providerKey)

	pc, ok := r.cfg.Providers[key]
	if !ok {
		return nil, fmt.Errorf("provider %q not configured", key)
	}

	apiKey, err := r.cfg.ResolveAPIKey(key)
	if err != nil {
		return nil, &provider.MissingCredentialError{Provider: key, EnvVar: pc.APIKeyEnv}
	}

	if model == "" {
		model = pc.Model
	}

	p := r.build(key, pc, apiKey)

	resp, err := p.Complete(ctx, &provider.Request{
		Model:    model,
		Messages: provider.UserPrompt(prompt),
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Provider: key,
		Model:    model,
		Text:     resp.Content,
		Usage:    resp.Usage,
	}, nil
}

// Dispatch is the plain-text form of Do: one prompt in, one answer out.
func (r *Router) Dispatch(ctx context.Context, providerKey, model, prompt string) (string, error) {
	res, err := r.Do(ctx, providerKey, model, prompt)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// build constructs the provider client for a canonical key. The switch is
// exhaustive over the kinds table.
func (r *Router) build(key string, pc config.ProviderConfig, apiKey string) provider.Provider {
	switch kinds[key] {
	case kindGemini:
		opts := []provider.GeminiOption{}
		if pc.BaseURL != "" {
			opts = append(opts, provider.WithGeminiBaseURL(pc.BaseURL))
		}
		if r.client != nil {
			opts = append(opts, provider.WithGeminiHTTPClient(r.client))
		}
		return provider.NewGeminiProvider(apiKey, opts...)

	case kindAnthropic:
		opts := []provider.AnthropicOption{}
		if pc.BaseURL != "" {
			opts = append(opts, provider.WithBaseURL(pc.BaseURL))
		}
		if r.client != nil {
			opts = append(opts, provider.WithHTTPClient(r.client))
		}
		return provider.NewAnthropicProvider(apiKey, opts...)

	default:
		opts := []provider.OpenAIOption{provider.WithOpenAIName(key)}
		if pc.BaseURL != "" {
			opts = append(opts, provider.WithOpenAIBaseURL(pc.BaseURL))
		}
		if r.client != nil {
			opts = append(opts, provider.WithOpenAIHTTPClient(r.client))
		}
		return provider.NewOpenAIProvider(apiKey, opts...)
	}
}
