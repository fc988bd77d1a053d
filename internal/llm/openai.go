package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

var openaiModels = []string{
	"gpt-4",
	"gpt-4-turbo-preview",
	"gpt-3.5-turbo",
}

// OpenAIClient implements Client for the OpenAI chat completions API.
type OpenAIClient struct {
	client    *openai.Client
	available bool
}

// NewOpenAIClient creates an OpenAI client. An empty API key yields a client
// that reports itself unavailable.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(apiKey),
		available: apiKey != "",
	}
}

// Complete sends one user message and returns the text response.
func (c *OpenAIClient) Complete(ctx context.Context, message, model string, maxTokens int) (string, error) {
	if !c.available {
		return "", fmt.Errorf("OpenAI API not available. Check your API key.")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Available reports whether an API key is configured.
func (c *OpenAIClient) Available() bool {
	return c.available
}

// DefaultModel returns the model used when a request does not name one.
func (c *OpenAIClient) DefaultModel() string {
	return DefaultOpenAIModel
}

// Models lists the supported OpenAI models.
func (c *OpenAIClient) Models() []string {
	return append([]string(nil), openaiModels...)
}
