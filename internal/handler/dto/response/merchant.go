package response

import (
	"discover-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type MerchantResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LogoID       int64  `json:"logo_id"`
	LogoURL      string `json:"logo_url"`
	LogoMimeType string `json:"logo_mimetype"`
}

func FromMerchantView(v *queries.MerchantView) (*MerchantResponse, error) {
	var resp MerchantResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

type MenuItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
	MimeType    string `json:"mimetype"`
}

type MenuResponse struct {
	Items []MenuItemResponse `json:"items"`
}

func FromMenu(views []queries.MenuItemView) (*MenuResponse, error) {
	items := make([]MenuItemResponse, 0, len(views))
	if err := copier.Copy(&items, views); err != nil {
		return nil, err
	}
	return &MenuResponse{Items: items}, nil
}
