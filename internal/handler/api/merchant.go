package api

import (
	"fmt"
	"net/http"

	reqdto "discover-api/internal/handler/dto/request"
	resdto "discover-api/internal/handler/dto/response"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MerchantHandler struct {
	cmds  commands.MerchantCommands
	posts commands.PostCommands
	items commands.ItemCommands
	q     queries.MerchantQueries
	feed  queries.FeedQueries
	menu  queries.MenuQueries
}

func NewMerchantHandler(
	cmds commands.MerchantCommands,
	posts commands.PostCommands,
	items commands.ItemCommands,
	q queries.MerchantQueries,
	feed queries.FeedQueries,
	menu queries.MenuQueries,
) *MerchantHandler {
	return &MerchantHandler{cmds: cmds, posts: posts, items: items, q: q, feed: feed, menu: menu}
}

// @Summary Create merchant
// @Tags merchants
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMerchantRequest true "Create merchant request"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchants [post]
func (h *MerchantHandler) Create(c *gin.Context) {
	var req reqdto.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err, "Create merchant failed")
		return
	}
	c.Header("Location", fmt.Sprintf("/api/merchants/%d", id))
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Get merchant
// @Tags merchants
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} resdto.MerchantResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchants/{id} [get]
func (h *MerchantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to load merchant")
		return
	}
	resp, err := resdto.FromMerchantView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render merchant", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update merchant
// @Tags merchants
// @Accept json
// @Param id path int true "Merchant ID"
// @Param request body reqdto.UpdateMerchantRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchants/{id} [put]
func (h *MerchantHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.AbortWithKind(c, err, "Update merchant failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete merchant
// @Tags merchants
// @Param id path int true "Merchant ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchants/{id} [delete]
func (h *MerchantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err, "Delete merchant failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List merchant posts
// @Description Composed feed of one merchant, newest first
// @Tags merchants
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} resdto.FeedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchants/{id}/posts [get]
func (h *MerchantHandler) Posts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entries, err := h.feed.ByMerchant(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to load posts")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEntries(entries))
}

// @Summary Create post
// @Tags merchants
// @Accept json
// @Produce json
// @Param id path int true "Merchant ID"
// @Param request body reqdto.CreatePostRequest true "Create post request"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchants/{id}/posts [post]
func (h *MerchantHandler) CreatePost(c *gin.Context) {
	merchantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	id, err := h.posts.Create(c.Request.Context(), merchantID, req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err, "Create post failed")
		return
	}
	c.Header("Location", fmt.Sprintf("/api/posts/%d", id))
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Merchant menu
// @Description Items of one merchant ordered by name
// @Tags merchants
// @Produce json
// @Param id path int true "Merchant ID"
// @Success 200 {object} resdto.MenuResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchants/{id}/menu [get]
func (h *MerchantHandler) Menu(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.menu.List(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to load menu")
		return
	}
	resp, err := resdto.FromMenu(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render menu", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create item
// @Tags merchants
// @Accept json
// @Produce json
// @Param id path int true "Merchant ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchants/{id}/items [post]
func (h *MerchantHandler) CreateItem(c *gin.Context) {
	merchantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	id, err := h.items.Create(c.Request.Context(), merchantID, req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err, "Create item failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}
