package api

import (
	"net/http"
	"strconv"

	"discover-api/internal/handler/httperr"
	"discover-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errs.InvalidRequest("id must be a positive integer")

// pathID reads a positive int64 path parameter, aborting with 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return 0, false
	}
	return id, true
}
