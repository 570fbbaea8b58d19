package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bank-backoffice.backend/pkg/logger"
)

// LoggerMiddleware writes one access log line per request. Successful
// requests to skipPaths (probes, scrapes) are not logged.
func LoggerMiddleware(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if _, ok := skip[c.Request.URL.Path]; ok && status < 400 {
			return
		}

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}
		logger.LogRequest(c.Request.Context(), c.Request.Method, path, status, time.Since(start), c.ClientIP())
	}
}
