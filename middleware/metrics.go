package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sagnik22dey/RoasGuy/metrics"
)

// Metrics records per-request Prometheus counters and latency. The path
// label uses the matched route pattern, not the raw URL, so unmatched
// requests cannot blow up the label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(
			c.Request.Method,
			path,
			statusClass(c.Writer.Status()),
		).Inc()
		metrics.HTTPLatency.Observe(time.Since(start).Seconds())
	}
}

func statusClass(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
