// Package llm provides thin clients for the chat providers the API can
// proxy to, plus a Service that routes requests between them. Providers
// without an API key stay registered but report themselves unavailable
// instead of erroring, so the rest of the application works offline.
package llm

import "context"

// Default models used when a request does not name one.
const (
	DefaultClaudeModel = "claude-3-5-sonnet-20241022"
	DefaultOpenAIModel = "gpt-3.5-turbo"
)

// DefaultMaxTokens caps the response length when a request does not set one.
const DefaultMaxTokens = 1000

// Client is an abstraction over a single LLM provider.
type Client interface {
	// Complete sends one user message and returns the text response.
	Complete(ctx context.Context, message, model string, maxTokens int) (string, error)
	// Available reports whether the provider is configured with an API key.
	Available() bool
	// DefaultModel returns the model used when a request does not name one.
	DefaultModel() string
	// Models lists the models this provider supports.
	Models() []string
}
