package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-compass/internal/llm"
)

// ChatRequest is the body of the AI chat endpoints.
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
}

// AIHandler handles chat pass-through requests.
type AIHandler struct {
	service   *llm.Service
	validator *validator.Validate
}

// NewAIHandler creates an AIHandler around the chat router.
func NewAIHandler(service *llm.Service) *AIHandler {
	return &AIHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Chat routes a message to the requested provider, defaulting to Claude.
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if req.Provider == "" {
		req.Provider = llm.ProviderClaude
	}

	result := h.service.Chat(r.Context(), req.Provider, req.Message, req.Model, req.MaxTokens)
	writeJSON(w, http.StatusOK, result)
}

// Claude sends a message to Claude directly.
func (h *AIHandler) Claude(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"response": h.service.Claude(r.Context(), req.Message, req.Model, req.MaxTokens),
		"provider": llm.ProviderClaude,
	})
}

// OpenAI sends a message to OpenAI directly.
func (h *AIHandler) OpenAI(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"response": h.service.OpenAI(r.Context(), req.Message, req.Model, req.MaxTokens),
		"provider": llm.ProviderOpenAI,
	})
}

// Providers reports which chat providers are configured.
func (h *AIHandler) Providers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Providers())
}

// Models lists the supported models per provider.
func (h *AIHandler) Models(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Models())
}

func (h *AIHandler) decode(w http.ResponseWriter, r *http.Request) (*ChatRequest, bool) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := h.validator.Struct(req); err != nil {
		errorJSON(w, http.StatusBadRequest, extractValidationError(err))
		return nil, false
	}
	return &req, true
}
