package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves GET /health.
type HealthHandler struct{}

// NewHealthHandler creates the health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health always reports healthy while the process is serving.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Conference Agent System is running",
	})
}
