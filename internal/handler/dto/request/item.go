package request

import (
	"discover-api/internal/usecase/commands"
)

// Price is in minor currency units. It is a pointer so that 0 counts as present.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	MediaID     int64  `json:"media_id" binding:"required,gt=0"`
	Price       *int64 `json:"price" binding:"required,gte=0"`
	Currency    string `json:"currency" binding:"required,iso4217"`
	Description string `json:"description" binding:"max=2000"`
}

func (r *CreateItemRequest) ToInput() commands.CreateItemInput {
	return commands.CreateItemInput{
		Name:        r.Name,
		MediaID:     r.MediaID,
		Price:       *r.Price,
		Currency:    r.Currency,
		Description: r.Description,
	}
}

type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	MediaID     *int64  `json:"media_id" binding:"omitempty,gt=0"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	Currency    *string `json:"currency" binding:"omitempty,iso4217"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

func (r *UpdateItemRequest) ToInput() commands.UpdateItemInput {
	return commands.UpdateItemInput{
		Name:        r.Name,
		MediaID:     r.MediaID,
		Price:       r.Price,
		Currency:    r.Currency,
		Description: r.Description,
	}
}
