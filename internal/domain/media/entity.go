package media

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultMimeType = "application/octet-stream"

// URLResolver maps a stored object back to a publicly retrievable URL.
type URLResolver interface {
	Resolve(storageID uuid.UUID, filename string) string
}

type Media struct {
	id         int64
	storageID  uuid.UUID
	name       string
	mimeType   string
	uploadedAt time.Time
}

func NewMedia(filename, mimeType string, now time.Time) (*Media, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return nil, ErrEmptyFilename
	}

	mt, err := normalizeMimeType(mimeType)
	if err != nil {
		return nil, err
	}

	return &Media{
		storageID:  uuid.New(),
		name:       name,
		mimeType:   mt,
		uploadedAt: now,
	}, nil
}

func Reconstruct(id int64, storageID uuid.UUID, name, mimeType string, uploadedAt time.Time) *Media {
	return &Media{
		id:         id,
		storageID:  storageID,
		name:       name,
		mimeType:   mimeType,
		uploadedAt: uploadedAt,
	}
}

func (m *Media) ID() int64             { return m.id }
func (m *Media) StorageID() uuid.UUID  { return m.storageID }
func (m *Media) Name() string          { return m.name }
func (m *Media) MimeType() string      { return m.mimeType }
func (m *Media) UploadedAt() time.Time { return m.uploadedAt }

// StorageKey is the object key inside the bucket.
func (m *Media) StorageKey() string {
	return StorageKey(m.storageID, m.name)
}

func StorageKey(storageID uuid.UUID, filename string) string {
	return storageID.String() + "/" + filename
}

func normalizeMimeType(v string) (string, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return DefaultMimeType, nil
	}
	// drop parameters such as "; charset=utf-8"
	if i := strings.IndexByte(v, ';'); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	typ, sub, ok := strings.Cut(v, "/")
	if !ok || typ == "" || sub == "" {
		return "", ErrInvalidMimeType
	}
	return v, nil
}
