package llm

import (
	"fmt"
	"time"
)

// Provider identifies a completion backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderZAI       Provider = "zai"
)

// zaiBaseURL is an OpenAI-compatible gateway; requests go through the
// OpenAI client with a different base URL.
const zaiBaseURL = "https://api.zukijourney.com/v1"

// ProviderConfig holds the resolved provider settings the factory needs.
type ProviderConfig struct {
	Provider    Provider
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// NewClient creates a completion client from a provider config.
func NewClient(cfg ProviderConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key not configured for provider %q", cfg.Provider)
	}

	opts := Options{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		c := DefaultOpenAIConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			c.BaseURL = cfg.BaseURL
		}
		if opts.Model == "" {
			opts.Model = c.Options.Model
		}
		c.Options = opts
		return NewOpenAIClientWithConfig(c), nil

	case ProviderZAI:
		c := DefaultOpenAIConfig(cfg.APIKey)
		c.BaseURL = zaiBaseURL
		if cfg.BaseURL != "" {
			c.BaseURL = cfg.BaseURL
		}
		if opts.Model == "" {
			opts.Model = "GLM-4.6"
		}
		c.Options = opts
		return NewOpenAIClientWithConfig(c), nil

	case ProviderAnthropic:
		c := DefaultAnthropicConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			c.BaseURL = cfg.BaseURL
		}
		if opts.Model == "" {
			opts.Model = c.Options.Model
		}
		c.Options = opts
		return NewAnthropicClientWithConfig(c), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (valid: openai, anthropic, zai)", cfg.Provider)
	}
}
