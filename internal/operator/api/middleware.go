package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

// LoggerMiddleware creates a gin middleware for logging requests
func LoggerMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		// Scrapes and probes are noisy
		level := logger.Info
		if path == "/metrics" || path == "/health" {
			level = logger.Debug
		}
		level("Request processed",
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", path,
			"query", raw,
			"ip", c.ClientIP(),
			"latency", time.Since(start),
			"user-agent", c.Request.UserAgent(),
		)
	}
}
