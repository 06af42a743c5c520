package response

import (
	"discover-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ProfileID       *int64  `json:"profile_id"`
	ProfileURL      *string `json:"profile_url"`
	ProfileMimeType *string `json:"profile_mimetype"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
