//go:build unit || e2e

package builder

import (
	"discover-api/internal/domain/feed"
	"discover-api/internal/domain/item"
	reqdto "discover-api/internal/handler/dto/request"
	sqlc "discover-api/internal/infra/sqlc/generated"
	"discover-api/internal/usecase/queries"
)

type ItemBuilder struct {
	ID          int64
	MerchantID  int64
	Name        string
	MediaID     int64
	Price       int64
	Currency    string
	Description string
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          200,
		MerchantID:  1,
		Name:        "Iced Latte",
		MediaID:     12,
		Price:       3500,
		Currency:    "SGD",
		Description: "Double shot over ice",
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithMediaID(id int64) *ItemBuilder {
	b.MediaID = id
	return b
}

func (b *ItemBuilder) fields() item.Fields {
	return item.Fields{
		Name:        b.Name,
		MediaID:     b.MediaID,
		Price:       b.Price,
		Currency:    b.Currency,
		Description: b.Description,
	}
}

func (b *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(b.MerchantID, b.fields())
}

func (b *ItemBuilder) BuildInfra() sqlc.Items {
	return sqlc.Items{
		ID:          b.ID,
		MerchantID:  b.MerchantID,
		Name:        b.Name,
		MediaID:     b.MediaID,
		Price:       b.Price,
		Currency:    b.Currency,
		Description: b.Description,
	}
}

func (b *ItemBuilder) BuildRecord() feed.ItemRecord {
	return feed.ItemRecord{
		ID:          b.ID,
		Name:        b.Name,
		MediaID:     b.MediaID,
		Price:       b.Price,
		Currency:    b.Currency,
		Description: b.Description,
	}
}

func (b *ItemBuilder) BuildRecordView() *queries.ItemRecordView {
	return &queries.ItemRecordView{ItemRecord: b.BuildRecord(), MerchantID: b.MerchantID}
}

func (b *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	price := b.Price
	return reqdto.CreateItemRequest{
		Name:        b.Name,
		MediaID:     b.MediaID,
		Price:       &price,
		Currency:    b.Currency,
		Description: b.Description,
	}
}
