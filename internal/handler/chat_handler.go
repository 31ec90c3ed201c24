package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/school-api/internal/pkg/errors"
	"github.com/yourusername/school-api/internal/service"
)

// ChatHandler relays visitor questions to the AI support assistant.
type ChatHandler struct {
	supportService *service.SupportService
}

func NewChatHandler(supportService *service.SupportService) *ChatHandler {
	return &ChatHandler{supportService: supportService}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Ask forwards one message to the assistant.
// POST /api/ai-chat/
func (h *ChatHandler) Ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"reply": "Please type a message."})
		return
	}

	reply, err := h.supportService.Ask(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"reply": "Please type a message."})
		case errors.Is(err, service.ErrChatNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"reply": "Server error: AI assistant not configured."})
		default:
			log.Printf("[ChatHandler] completion failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"reply": "AI service unavailable. Check server logs."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// History returns recent exchanges, newest first.
// GET /api/ai-chat/history/
func (h *ChatHandler) History(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	messages, err := h.supportService.History(limit)
	if err != nil {
		log.Printf("[ChatHandler] history failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
