package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inboundaero/conference-agent/internal/errors"
	"github.com/inboundaero/conference-agent/internal/logger"
	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

// UserHandler serves GET /user/:registration_id.
type UserHandler struct {
	contextService interfaces.ContextService
}

// NewUserHandler creates the user handler.
func NewUserHandler(contextService interfaces.ContextService) *UserHandler {
	return &UserHandler{contextService: contextService}
}

// GetUser resolves a user by registration id. A miss answers 404; a storage
// failure answers 500 without leaking the underlying error.
func (h *UserHandler) GetUser(c *gin.Context) {
	registrationID := c.Param("registration_id")

	user, err := h.contextService.GetUserByRegistrationID(c.Request.Context(), registrationID)
	if err != nil {
		if errors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
			return
		}
		logger.Errorf(c.Request.Context(), "error fetching user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":         types.StringField(user, "id"),
		"registration_id": registrationID,
		"status":          "found",
		"details":         user["details"],
	})
}
