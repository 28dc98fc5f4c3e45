package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ramo772/blog-management-api/internal/logger"
)

// RequestLogging logs every request with its status and latency.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":      method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}
