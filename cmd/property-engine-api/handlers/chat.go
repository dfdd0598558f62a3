package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/findy-ai/property-engine/internal/finder"
	"github.com/findy-ai/property-engine/internal/observability"
	"github.com/findy-ai/property-engine/pkg/engine"
)

// ChatHandler answers conversational property queries.
type ChatHandler struct {
	logger *observability.Logger
	engine *engine.Engine
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger *observability.Logger, eng *engine.Engine) *ChatHandler {
	return &ChatHandler{
		logger: logger.WithComponent("chat-handler"),
		engine: eng,
	}
}

// ChatRequestDTO represents the chat API request.
type ChatRequestDTO struct {
	Message             string           `json:"message"`
	Context             string           `json:"context,omitempty"`
	ConversationHistory []finder.Message `json:"conversationHistory,omitempty"`
}

// Chat handles POST /api/v1/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var reqDTO ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if reqDTO.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required", "")
		return
	}

	result := h.engine.Chat(r.Context(), reqDTO.Message, reqDTO.Context, reqDTO.ConversationHistory)

	h.logger.Info().
		Str("source", result.Source).
		Bool("fallback", result.Fallback).
		Int("matches", result.TotalMatches).
		Msg("chat answered")

	writeJSON(w, http.StatusOK, result)
}
