package errs

// Error kinds shared by the usecase layers. Specific sentinels are marked
// with one of these so handlers can map them to a status with Is.
var (
	ErrNotFound       = New("not found")
	ErrInvalidRequest = New("invalid request")
	ErrConflict       = New("conflict")
)

func NotFound(msg string) error {
	return Mark(New(msg), ErrNotFound)
}

func InvalidRequest(msg string) error {
	return Mark(New(msg), ErrInvalidRequest)
}

func Conflict(msg string) error {
	return Mark(New(msg), ErrConflict)
}
