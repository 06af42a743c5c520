package media

import "errors"

var (
	ErrEmptyFilename   = errors.New("filename is empty after sanitization")
	ErrInvalidMimeType = errors.New("mime type must be of the form type/subtype")
)
