package request

import (
	"discover-api/internal/usecase/commands"
)

type CreatePostRequest struct {
	MediaID int64   `json:"media_id" binding:"required,gt=0"`
	Title   *string `json:"title" binding:"omitempty,max=500"`
	Items   []int64 `json:"items" binding:"omitempty,max=100,dive,gt=0"`
}

func (r *CreatePostRequest) ToInput() commands.CreatePostInput {
	return commands.CreatePostInput{MediaID: r.MediaID, Title: r.Title, Items: r.Items}
}

// UpdatePostRequest: omitted fields are left unchanged; "title": "" clears the title.
type UpdatePostRequest struct {
	MediaID *int64   `json:"media_id" binding:"omitempty,gt=0"`
	Title   *string  `json:"title" binding:"omitempty,max=500"`
	Items   *[]int64 `json:"items" binding:"omitempty,max=100,dive,gt=0"`
}

func (r *UpdatePostRequest) ToInput() commands.UpdatePostInput {
	return commands.UpdatePostInput{MediaID: r.MediaID, Title: r.Title, Items: r.Items}
}

type BoostRequest struct {
	Days int `json:"days" binding:"required,min=1"`
}
