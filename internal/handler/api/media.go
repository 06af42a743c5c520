package api

import (
	"fmt"
	"net/http"

	resdto "discover-api/internal/handler/dto/response"
	"discover-api/internal/handler/httperr"
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const uploadFormField = "file"

type MediaHandler struct {
	cmds commands.MediaCommands
	q    queries.MediaQueries
}

func NewMediaHandler(cmds commands.MediaCommands, q queries.MediaQueries) *MediaHandler {
	return &MediaHandler{cmds: cmds, q: q}
}

// @Summary Upload media
// @Description Stores the uploaded file and returns its public URL
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} resdto.UploadResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing file part", nil)
		return
	}
	file, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable file part", nil)
		return
	}
	defer file.Close()

	result, err := h.cmds.Upload(c.Request.Context(), commands.UploadMediaInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		httperr.AbortWithKind(c, err, "Upload failed")
		return
	}
	c.Header("Location", fmt.Sprintf("/api/media/%d", result.ID))
	c.JSON(http.StatusCreated, resdto.FromUploadResult(result))
}

// @Summary Get media
// @Tags media
// @Produce json
// @Param id path int true "Media ID"
// @Success 200 {object} resdto.MediaResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /media/{id} [get]
func (h *MediaHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to load media")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMediaView(view))
}
