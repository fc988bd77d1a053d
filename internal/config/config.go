package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// defaultAllowedOrigins are the CORS origins used when ALLOWED_ORIGINS is
// not set: the local frontend dev servers.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3000",
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port           int
	APIPrefix      string
	AllowedOrigins []string
}

// NewServerConfig reads PORT (default 8000) and ALLOWED_ORIGINS
// (comma-separated, optional).
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8000"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", port)
	}

	origins := defaultAllowedOrigins
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = nil
		for _, o := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return &ServerConfig{
		Port:           port,
		APIPrefix:      "/api/v1",
		AllowedOrigins: origins,
	}, nil
}

// LLMConfig holds the provider API keys for the chat pass-through. Either
// key may be empty; the matching provider then reports itself unavailable.
type LLMConfig struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string
}

// NewLLMConfig reads ANTHROPIC_API_KEY and OPENAI_API_KEY.
func NewLLMConfig() *LLMConfig {
	return &LLMConfig{
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
	}
}
