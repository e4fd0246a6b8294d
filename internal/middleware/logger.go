package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"telehealth-server/internal/metrics"
	"telehealth-server/pkg/logging"
)

// RequestLogger logs each request and records its latency.
func RequestLogger(logger *logging.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		m.ObserveHTTP(c.Request.Method, route, strconv.Itoa(status), elapsed.Seconds())

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		if status >= 500 {
			logger.Error("request failed", attrs...)
			return
		}
		logger.Info("request", attrs...)
	}
}
