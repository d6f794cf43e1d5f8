package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inboundaero/conference-agent/internal/logger"
)

// AccessLog writes one log line per request with method, path, status and
// latency.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Infof(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
