package api

import (
	"net/http"

	reqdto "discover-api/internal/handler/dto/request"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	cmds commands.ItemCommands
}

func NewItemHandler(cmds commands.ItemCommands) *ItemHandler {
	return &ItemHandler{cmds: cmds}
}

// @Summary Update item
// @Tags items
// @Accept json
// @Param id path int true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.AbortWithKind(c, err, "Update item failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete item
// @Tags items
// @Param id path int true "Item ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithKind(c, err, "Delete item failed")
		return
	}
	c.Status(http.StatusNoContent)
}
