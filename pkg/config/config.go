// Package config loads promptline configuration: the built-in provider
// table, an optional YAML overlay, and API keys from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the top-level promptline configuration.
type Config struct {
	DefaultProvider string                    `yaml:"default_provider"`
	Timeout         Duration                  `yaml:"timeout"`
	Providers       map[string]ProviderConfig `yaml:"providers"`
}

// Duration wraps time.Duration so "30s"-style values parse from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// ProviderConfig holds configuration for a single LLM provider. An empty
// BaseURL means the provider client's built-in endpoint.
type ProviderConfig struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// Default returns a Config seeded with every built-in provider and its
// default model and credential environment variable.
func Default() *Config {
	return &Config{
		DefaultProvider: "gemini",
		Timeout:         Duration(60 * time.Second),
		Providers: map[string]ProviderConfig{
			"openai": {
				Model:     "gpt-4o-mini",
				APIKeyEnv: "OPENAI_API_KEY",
			},
			"gemini": {
				Model:     "gemini-2.0-flash",
				APIKeyEnv: "GOOGLE_API_KEY",
			},
			"claude": {
				Model:     "claude-3-5-sonnet-20241022",
				APIKeyEnv: "ANTHROPIC_API_KEY",
			},
			"perplexity": {
				Model:     "sonar",
				BaseURL:   "https://api.perplexity.ai",
				APIKeyEnv: "PPLX_API_KEY",
			},
			"deepseek": {
				Model:     "deepseek-chat",
				BaseURL:   "https://api.deepseek.com/v1",
				APIKeyEnv: "DEEPSEEK_API_KEY",
			},
			"grok": {
				Model:     "grok-2-latest",
				BaseURL:   "https://api.x.ai/v1",
				APIKeyEnv: "XAI_API_KEY",
			},
		},
	}
}

// fileConfig mirrors Config for overlay parsing. Decoding a provider entry
// straight into the seeded map would replace the whole struct, so the file
// is parsed into this shape and merged field by field: a field the file
// omits keeps its default.
type fileConfig struct {
	DefaultProvider string                      `yaml:"default_provider"`
	Timeout         Duration                    `yaml:"timeout"`
	Providers       map[string]fileProviderConf `yaml:"providers"`
}

type fileProviderConf struct {
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

func (f *fileConfig) apply(cfg *Config) {
	if f.DefaultProvider != "" {
		cfg.DefaultProvider = f.DefaultProvider
	}
	if f.Timeout != 0 {
		cfg.Timeout = f.Timeout
	}
	for name, o := range f.Providers {
		p := cfg.Providers[name]
		if o.Model != "" {
			p.Model = o.Model
		}
		if o.BaseURL != "" {
			p.BaseURL = o.BaseURL
		}
		if o.APIKeyEnv != "" {
			p.APIKeyEnv = o.APIKeyEnv
		}
		cfg.Providers[name] = p
	}
}

// Load reads a YAML config file at the given path and overlays it on the
// defaults. It returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay fileConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg := Default()
	overlay.apply(cfg)
	return cfg, nil
}

// LoadOrDefault loads config from the given path. If the file does not exist,
// it returns the default configuration. Other errors (e.g. parse failures)
// are still returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ResolveAPIKey reads the API key for the named provider from the environment
// variable specified in that provider's APIKeyEnv field.
func (c *Config) ResolveAPIKey(providerName string) (string, error) {
	p, ok := c.Providers[providerName]
	if !ok {
		return "", fmt.Errorf("provider %q not found in config", providerName)
	}
	if p.APIKeyEnv == "" {
		return "", fmt.Errorf("provider %q has no api_key_env configured", providerName)
	}
	key := os.Getenv(p.APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("environment variable %s for provider %q is not set", p.APIKeyEnv, providerName)
	}
	return key, nil
}

// Validate checks the config for required fields and returns a descriptive
// error if any are missing or invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.DefaultProvider == "" {
		errs = append(errs, errors.New("default_provider must not be empty"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be > 0, got %s", time.Duration(c.Timeout)))
	}

	for name, p := range c.Providers {
		if p.Model == "" {
			errs = append(errs, fmt.Errorf("provider %q: model is required", name))
		}
		if p.APIKeyEnv == "" {
			errs = append(errs, fmt.Errorf("provider %q: api_key_env is required", name))
		}
	}

	return errors.Join(errs...)
}
