// Package router wires middleware and routes onto a Gin engine.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inboundaero/conference-agent/internal/handler"
	"github.com/inboundaero/conference-agent/internal/middleware"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

// New builds the HTTP engine with CORS open to all origins, request-id
// propagation and access logging.
func New(chatService interfaces.ChatService, contextService interfaces.ContextService) *gin.Engine {
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.AccessLog())
	engine.Use(cors.New(cors.Config{
		// AllowOriginFunc instead of AllowAllOrigins so credentialed
		// requests from any origin are accepted.
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	chatHandler := handler.NewChatHandler(chatService)
	healthHandler := handler.NewHealthHandler()
	userHandler := handler.NewUserHandler(contextService)

	engine.POST("/chat", chatHandler.Chat)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/user/:registration_id", userHandler.GetUser)

	return engine
}
