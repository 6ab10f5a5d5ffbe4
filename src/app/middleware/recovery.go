package middleware

import (
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"gamestore/src/app/http/response"
)

// Recovery turns a panic into the standard 500 error body and logs the
// stack. Register it first so it wraps every other middleware.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		requestID := GetRequestID(c)
		log.Error("panic recovered",
			"request_id", requestID,
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)

		c.Abort()
		response.InternalError(c, requestID)
	})
}
