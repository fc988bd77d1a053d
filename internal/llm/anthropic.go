package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var claudeModels = []string{
	"claude-3-5-sonnet-20241022",
	"claude-3-opus-20240229",
	"claude-3-haiku-20240307",
}

// ClaudeClient implements Client for the Anthropic Messages API.
type ClaudeClient struct {
	client    anthropic.Client
	available bool
}

// NewClaudeClient creates a Claude client. An empty API key yields a client
// that reports itself unavailable.
func NewClaudeClient(apiKey string) *ClaudeClient {
	return &ClaudeClient{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		available: apiKey != "",
	}
}

// Complete sends one user message and returns the text response.
func (c *ClaudeClient) Complete(ctx context.Context, message, model string, maxTokens int) (string, error) {
	if !c.available {
		return "", fmt.Errorf("Claude API not available. Check your API key.")
	}
	if model == "" {
		model = DefaultClaudeModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	var parts []string
	for _, block := range resp.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text content in response")
	}
	return strings.Join(parts, ""), nil
}

// Available reports whether an API key is configured.
func (c *ClaudeClient) Available() bool {
	return c.available
}

// DefaultModel returns the model used when a request does not name one.
func (c *ClaudeClient) DefaultModel() string {
	return DefaultClaudeModel
}

// Models lists the supported Claude models.
func (c *ClaudeClient) Models() []string {
	return append([]string(nil), claudeModels...)
}
