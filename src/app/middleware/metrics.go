package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"gamestore/src/infra/metrics"
)

// Metrics records count and latency of every request under its route
// pattern, so /games/1 and /games/2 share one series.
func Metrics(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
