package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/llm"
)

// testAIHandler wires real provider clients with no API keys, so every
// provider reports itself unavailable.
func testAIHandler() *AIHandler {
	return NewAIHandler(llm.NewService(llm.NewClaudeClient(""), llm.NewOpenAIClient("")))
}

func TestChatDefaultsToClaude(t *testing.T) {
	h := testAIHandler()

	rec := postJSON(t, h.Chat, "/api/v1/ai/chat", ChatRequest{Message: "hello"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp llm.ChatResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "claude", resp.Provider)
	assert.False(t, resp.Available)
	assert.Equal(t, "Claude API not available. Check your API key.", resp.Response)
}

func TestChatExplicitProvider(t *testing.T) {
	h := testAIHandler()

	rec := postJSON(t, h.Chat, "/api/v1/ai/chat", ChatRequest{Message: "hello", Provider: "openai"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp llm.ChatResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "openai", resp.Provider)
	assert.Equal(t, "OpenAI API not available. Check your API key.", resp.Response)
}

func TestChatInvalidProviderEndpoint(t *testing.T) {
	h := testAIHandler()

	rec := postJSON(t, h.Chat, "/api/v1/ai/chat", ChatRequest{Message: "hello", Provider: "gemini"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid provider")
}

func TestChatRequiresMessage(t *testing.T) {
	h := testAIHandler()

	rec := postJSON(t, h.Chat, "/api/v1/ai/chat", ChatRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}

func TestProviderSpecificEndpoints(t *testing.T) {
	h := testAIHandler()

	rec := postJSON(t, h.Claude, "/api/v1/ai/claude", ChatRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"provider":"claude"`)

	rec = postJSON(t, h.OpenAI, "/api/v1/ai/openai", ChatRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"provider":"openai"`)
}

func TestProvidersEndpoint(t *testing.T) {
	h := testAIHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai/providers", nil)
	rec := httptest.NewRecorder()
	h.Providers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]bool{"claude": false, "openai": false}, resp)
}

func TestModelsEndpoint(t *testing.T) {
	h := testAIHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai/models", nil)
	rec := httptest.NewRecorder()
	h.Models(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["claude"], "claude-3-5-sonnet-20241022")
	assert.Contains(t, resp["openai"], "gpt-4")
}
