package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gamestore/src/app/http/response"
	"gamestore/src/app/middleware"
)

// parseID reads an integer path parameter, answering 400 when it is not one.
// Range is left to the store: an id that matches nothing is a 404 (or a 204 on delete).
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.ValidationError(c, name, "must be an integer", middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}
