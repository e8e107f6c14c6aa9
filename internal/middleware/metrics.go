package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"medflow-insights/pkg/metrics"
)

// Metrics observes request durations labeled by method, route template and
// status code.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(started))
	}
}
