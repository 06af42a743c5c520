package item

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
)

type Item struct {
	id          int64
	merchantID  int64
	name        string
	mediaID     int64
	price       Price
	currency    Currency
	description string
}

type Fields struct {
	Name        string
	MediaID     int64
	Price       int64
	Currency    string
	Description string
}

func NewItem(merchantID int64, f Fields) (*Item, error) {
	if merchantID <= 0 {
		return nil, ErrInvalidMerchant
	}
	it := &Item{merchantID: merchantID}
	if err := it.apply(f); err != nil {
		return nil, err
	}
	return it, nil
}

func Reconstruct(id, merchantID int64, f Fields) *Item {
	return &Item{
		id:          id,
		merchantID:  merchantID,
		name:        f.Name,
		mediaID:     f.MediaID,
		price:       Price{amount: f.Price},
		currency:    Currency{code: f.Currency},
		description: f.Description,
	}
}

// Replace validates every field before mutating the item.
func (i *Item) Replace(f Fields) error {
	return i.apply(f)
}

func (i *Item) apply(f Fields) error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if f.MediaID <= 0 {
		return ErrInvalidMedia
	}
	price, err := NewPrice(f.Price)
	if err != nil {
		return err
	}
	currency, err := NewCurrency(f.Currency)
	if err != nil {
		return err
	}
	description := strings.TrimSpace(f.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	i.name = name
	i.mediaID = f.MediaID
	i.price = price
	i.currency = currency
	i.description = description
	return nil
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) MerchantID() int64   { return i.merchantID }
func (i *Item) Name() string        { return i.name }
func (i *Item) MediaID() int64      { return i.mediaID }
func (i *Item) Price() Price        { return i.price }
func (i *Item) Currency() Currency  { return i.currency }
func (i *Item) Description() string { return i.description }

func (i *Item) Fields() Fields {
	return Fields{
		Name:        i.name,
		MediaID:     i.mediaID,
		Price:       i.price.Amount(),
		Currency:    i.currency.String(),
		Description: i.description,
	}
}
