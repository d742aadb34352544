// Package provider defines the LLM provider interface and implementations
// for communicating with hosted language model APIs (OpenAI and
// OpenAI-compatible vendors, Anthropic, Gemini).
package provider
