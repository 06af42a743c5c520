package item

import "errors"

var (
	ErrEmptyName          = errors.New("item name cannot be empty")
	ErrNameTooLong        = errors.New("item name exceeds maximum length")
	ErrInvalidMedia       = errors.New("item must reference a media item")
	ErrInvalidMerchant    = errors.New("item must belong to a merchant")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidCurrency    = errors.New("currency must be a three-letter ISO 4217 code")
	ErrDescriptionTooLong = errors.New("item description exceeds maximum length")
)
