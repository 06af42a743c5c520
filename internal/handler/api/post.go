package api

import (
	"net/http"

	reqdto "discover-api/internal/handler/dto/request"
	resdto "discover-api/internal/handler/dto/response"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	cmds   commands.PostCommands
	boosts commands.BoostCommands
	feed   queries.FeedQueries
}

func NewPostHandler(cmds commands.PostCommands, boosts commands.BoostCommands, feed queries.FeedQueries) *PostHandler {
	return &PostHandler{cmds: cmds, boosts: boosts, feed: feed}
}

// @Summary Get post
// @Description Single post composed like a feed entry
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} resdto.PostResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entry, err := h.feed.GetPost(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to load post")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntry(*entry))
}

// @Summary Update post
// @Tags posts
// @Accept json
// @Param id path int true "Post ID"
// @Param request body reqdto.UpdatePostRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.AbortWithKind(c, err, "Update post failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete post
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err, "Delete post failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Boost post
// @Description Admits a boost unless another one is active anywhere
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body reqdto.BoostRequest true "Boost duration"
// @Success 201 {object} resdto.BoostResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /posts/{id}/boost [post]
func (h *PostHandler) Boost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BoostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.boosts.Request(c.Request.Context(), id, req.Days)
	if err != nil {
		httperr.AbortWithKind(c, err, "Boost failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBoostResult(result))
}

// @Summary Like post
// @Description Accepted and ignored
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204 "No Content"
// @Router /posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// @Summary Comment on post
// @Description Accepted and ignored
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204 "No Content"
// @Router /posts/{id}/comments [post]
func (h *PostHandler) Comment(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
