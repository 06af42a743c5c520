package request

import (
	"discover-api/internal/usecase/commands"
)

type CreateMerchantRequest struct {
	Name   string `json:"name" binding:"required,max=120"`
	LogoID int64  `json:"logo_id" binding:"required,gt=0"`
}

func (r *CreateMerchantRequest) ToInput() commands.CreateMerchantInput {
	return commands.CreateMerchantInput{Name: r.Name, LogoID: r.LogoID}
}

type UpdateMerchantRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=120"`
	LogoID *int64  `json:"logo_id" binding:"omitempty,gt=0"`
}

func (r *UpdateMerchantRequest) ToInput() commands.UpdateMerchantInput {
	return commands.UpdateMerchantInput{Name: r.Name, LogoID: r.LogoID}
}
