//go:build unit || e2e

package builder

import (
	"discover-api/internal/domain/feed"
	"discover-api/internal/domain/merchant"
	reqdto "discover-api/internal/handler/dto/request"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/usecase/queries"
)

type MerchantBuilder struct {
	ID     int64
	Name   string
	LogoID int64
}

func NewMerchantBuilder() *MerchantBuilder {
	return &MerchantBuilder{
		ID:     1,
		Name:   "Kopi Kenangan",
		LogoID: 10,
	}
}

func (b *MerchantBuilder) With(mutate func(*MerchantBuilder)) *MerchantBuilder {
	mutate(b)
	return b
}

func (b *MerchantBuilder) WithID(id int64) *MerchantBuilder {
	b.ID = id
	return b
}

func (b *MerchantBuilder) WithName(name string) *MerchantBuilder {
	b.Name = name
	return b
}

func (b *MerchantBuilder) WithLogoID(id int64) *MerchantBuilder {
	b.LogoID = id
	return b
}

func (b *MerchantBuilder) BuildDomain() (*merchant.Merchant, error) {
	return merchant.NewMerchant(b.Name, b.LogoID)
}

func (b *MerchantBuilder) BuildInfra() sqlc.Merchants {
	return sqlc.Merchants{ID: b.ID, Name: b.Name, LogoID: b.LogoID}
}

func (b *MerchantBuilder) BuildRecord() feed.MerchantRecord {
	return feed.MerchantRecord{ID: b.ID, Name: b.Name, LogoID: b.LogoID}
}

func (b *MerchantBuilder) BuildView() *queries.MerchantView {
	logo := NewMediaBuilder().WithID(b.LogoID)
	return &queries.MerchantView{
		ID:           b.ID,
		Name:         b.Name,
		LogoID:       b.LogoID,
		LogoURL:      logo.URL(),
		LogoMimeType: logo.MimeType,
	}
}

func (b *MerchantBuilder) BuildCreateRequestDTO() reqdto.CreateMerchantRequest {
	return reqdto.CreateMerchantRequest{Name: b.Name, LogoID: b.LogoID}
}
