package llm

import (
	"context"
	"fmt"
)

// Provider names accepted by the chat router.
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
)

// ChatResult is the outcome of a routed chat request. Provider failures are
// reported in Response rather than as errors so the endpoint always answers.
type ChatResult struct {
	Response  string `json:"response"`
	Provider  string `json:"provider"`
	Available bool   `json:"available"`
}

// Service routes chat requests to the configured providers.
type Service struct {
	claude Client
	openai Client
}

// NewService creates a router over the given provider clients.
func NewService(claude, openai Client) *Service {
	return &Service{claude: claude, openai: openai}
}

// Chat sends the message to the named provider. Unknown providers and
// provider failures produce an explanatory response, never an error.
func (s *Service) Chat(ctx context.Context, provider, message, model string, maxTokens int) ChatResult {
	switch provider {
	case ProviderClaude:
		return ChatResult{
			Response:  s.complete(ctx, s.claude, "Claude", message, model, maxTokens),
			Provider:  ProviderClaude,
			Available: s.claude.Available(),
		}
	case ProviderOpenAI:
		return ChatResult{
			Response:  s.complete(ctx, s.openai, "OpenAI", message, model, maxTokens),
			Provider:  ProviderOpenAI,
			Available: s.openai.Available(),
		}
	default:
		return ChatResult{
			Response:  "Invalid provider. Choose 'claude' or 'openai'",
			Provider:  provider,
			Available: false,
		}
	}
}

// Claude sends the message to Claude directly.
func (s *Service) Claude(ctx context.Context, message, model string, maxTokens int) string {
	return s.complete(ctx, s.claude, "Claude", message, model, maxTokens)
}

// OpenAI sends the message to OpenAI directly.
func (s *Service) OpenAI(ctx context.Context, message, model string, maxTokens int) string {
	return s.complete(ctx, s.openai, "OpenAI", message, model, maxTokens)
}

// Providers reports which providers have API keys configured.
func (s *Service) Providers() map[string]bool {
	return map[string]bool{
		ProviderClaude: s.claude.Available(),
		ProviderOpenAI: s.openai.Available(),
	}
}

// Models lists the supported models per provider.
func (s *Service) Models() map[string][]string {
	return map[string][]string{
		ProviderClaude: s.claude.Models(),
		ProviderOpenAI: s.openai.Models(),
	}
}

func (s *Service) complete(ctx context.Context, client Client, name, message, model string, maxTokens int) string {
	if !client.Available() {
		return fmt.Sprintf("%s API not available. Check your API key.", name)
	}
	resp, err := client.Complete(ctx, message, model, maxTokens)
	if err != nil {
		return fmt.Sprintf("%s Error: %s", name, err)
	}
	return resp
}
