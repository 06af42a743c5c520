package merchant

import "errors"

var (
	ErrEmptyName   = errors.New("merchant name cannot be empty")
	ErrNameTooLong = errors.New("merchant name exceeds maximum length")
	ErrInvalidLogo = errors.New("merchant logo must reference a media item")
)
