package request

import (
	"discover-api/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name      string `json:"name" binding:"required,max=120"`
	ProfileID *int64 `json:"profile_id" binding:"omitempty,gt=0"`
}

func (r *CreateUserRequest) ToInput() commands.CreateUserInput {
	return commands.CreateUserInput{Name: r.Name, ProfileID: r.ProfileID}
}
