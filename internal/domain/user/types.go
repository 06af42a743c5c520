package user

import "errors"

var (
	ErrEmptyName      = errors.New("user name cannot be empty")
	ErrNameTooLong    = errors.New("user name exceeds maximum length")
	ErrInvalidProfile = errors.New("profile must reference a media item")
)
