package boost

import "errors"

var (
	ErrInvalidPost     = errors.New("boost must reference a post")
	ErrInvalidDuration = errors.New("boost duration must be at least one day")
	ErrDurationTooLong = errors.New("boost duration exceeds the allowed maximum")
	ErrWindowOccupied  = errors.New("another boost is currently active")
)
