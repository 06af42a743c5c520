package post

import "errors"

var (
	ErrInvalidMerchant = errors.New("post must belong to a merchant")
	ErrInvalidMedia    = errors.New("post must reference a media item")
	ErrTitleTooLong    = errors.New("post title exceeds maximum length")
	ErrTooManyItems    = errors.New("post references too many items")
	ErrInvalidItemID   = errors.New("item ids must be positive")
)
