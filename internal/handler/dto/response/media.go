package response

import (
	"discover-api/internal/usecase/commands"
	"discover-api/internal/usecase/queries"
)

type MediaResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimetype"`
	URL          string `json:"url"`
	DateUploaded string `json:"date_uploaded"`
}

func FromMediaView(v *queries.MediaView) *MediaResponse {
	return &MediaResponse{
		ID:           v.ID,
		Name:         v.Name,
		MimeType:     v.MimeType,
		URL:          v.URL,
		DateUploaded: formatTime(v.DateUploaded),
	}
}

type UploadResponse struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	MimeType string `json:"mimetype"`
}

func FromUploadResult(r *commands.UploadMediaResult) *UploadResponse {
	return &UploadResponse{ID: r.ID, URL: r.URL, MimeType: r.MimeType}
}
