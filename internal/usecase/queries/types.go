package queries

import (
	"time"

	"discover-api/internal/domain/feed"

	"github.com/google/uuid"
)

// MediaRecordView is a media row before its URL is resolved.
type MediaRecordView struct {
	ID           int64
	StorageID    uuid.UUID
	Name         string
	MimeType     string
	DateUploaded time.Time
}

type ItemRecordView struct {
	feed.ItemRecord
	MerchantID int64
}

type UserRecordView struct {
	ID        int64
	Name      string
	ProfileID *int64
}

type MediaView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	MimeType     string    `json:"mimetype"`
	URL          string    `json:"url"`
	DateUploaded time.Time `json:"date_uploaded"`
}

type MerchantView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	LogoID       int64  `json:"logo_id"`
	LogoURL      string `json:"logo_url"`
	LogoMimeType string `json:"logo_mimetype"`
}

type UserView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	ProfileID       *int64  `json:"profile_id,omitempty"`
	ProfileURL      *string `json:"profile_url,omitempty"`
	ProfileMimeType *string `json:"profile_mimetype,omitempty"`
}

type MenuItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
	MimeType    string `json:"mimetype"`
}

type FeedPage struct {
	Posts []feed.Entry
	Next  *Cursor
}
