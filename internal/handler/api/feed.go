package api

import (
	"net/http"

	reqdto "discover-api/internal/handler/dto/request"
	resdto "discover-api/internal/handler/dto/response"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	q queries.FeedQueries
}

func NewFeedHandler(q queries.FeedQueries) *FeedHandler {
	return &FeedHandler{q: q}
}

// @Summary Discover feed
// @Description All posts newest first. Passing limit or after switches to keyset pages.
// @Tags feed
// @Produce json
// @Param limit query int false "Page size (1-200)"
// @Param after query string false "Cursor from a previous next_cursor"
// @Success 200 {object} resdto.FeedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /discover [get]
func (h *FeedHandler) Discover(c *gin.Context) {
	var query reqdto.DiscoverQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	page, err := h.q.Discover(c.Request.Context(), query.ToPage())
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to load feed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFeedPage(page))
}
