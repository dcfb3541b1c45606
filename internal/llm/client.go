// Package llm provides the chat-completion clients the workflow runner
// calls into. Any completion-style API is interchangeable behind the
// Client interface; providers are selected by the factory in
// client_factory.go. Requests are never retried: a failed completion
// fails the whole run.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for completion providers.
type Client interface {
	// Complete sends a prompt and returns the completion.
	Complete(ctx context.Context, prompt string) (string, error)
	// CompleteWithSystem sends a prompt with a system message.
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// GetModel returns the model identifier requests are sent with.
	GetModel() string
}

// Options holds the opaque generation settings every provider passes
// through unchanged: model, sampling temperature, and completion cap.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Message is a role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7
	defaultTimeout     = 120 * time.Second
)

// withDefaults fills zero-valued options.
func (o Options) withDefaults() Options {
	if o.MaxTokens == 0 {
		o.MaxTokens = defaultMaxTokens
	}
	if o.Temperature == 0 {
		o.Temperature = defaultTemperature
	}
	if o.Timeout == 0 {
		o.Timeout = defaultTimeout
	}
	return o
}
