// Package handler exposes the HTTP surface of the service.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inboundaero/conference-agent/internal/logger"
	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

// ChatHandler serves POST /chat.
type ChatHandler struct {
	chatService interfaces.ChatService
}

// NewChatHandler creates the chat handler.
func NewChatHandler(chatService interfaces.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles one chat request and returns the response envelope. Uncaught
// failures surface as 500 with the error text in the detail field.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.chatService.Handle(c.Request.Context(), &req)
	if err != nil {
		logger.Errorf(c.Request.Context(), "error in chat endpoint: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
