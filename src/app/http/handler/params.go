package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pokemonreview/src/app/http/response"
	"pokemonreview/src/app/middleware"
)

// pageQuery binds the list endpoint's query string. Page numbers are zero-based.
type pageQuery struct {
	PageNo   int `form:"pageNo,default=0"`
	PageSize int `form:"pageSize,default=10"`
}

// parseID reads an integer path parameter, answering 400 when it is not one.
// Zero and negative ids pass through and come back from the service as not found.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}
