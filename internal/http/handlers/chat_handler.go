// README: Chat handler (conversational restaurant search endpoint).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"scout/internal/modules/chat"
)

const chatTimeout = 30 * time.Second

// ChatHandler serves POST /api/chat.
type ChatHandler struct {
	svc              *chat.Service
	aiConfigured bool
	placesConfigured bool
}

func NewChatHandler(svc *chat.Service, aiConfigured, placesConfigured bool) *ChatHandler {
	return &ChatHandler{
		svc:              svc,
		aiConfigured: aiConfigured,
		placesConfigured: placesConfigured,
	}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	if !h.aiConfigured {
		writeError(c, http.StatusInternalServerError, "AI provider API key is not configured")
		return
	}
	if !h.placesConfigured {
		writeError(c, http.StatusInternalServerError, "Google Maps API key is not configured")
		return
	}

	var req chat.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	resp := h.svc.Respond(ctx, req.Message, req.ConversationHistory)
	writeJSON(c, http.StatusOK, resp)
}
