package feed

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMediaNotFound    = errors.New("post media not found")
	ErrMerchantNotFound = errors.New("post merchant not found")
	ErrLogoNotFound     = errors.New("merchant logo not found")
)

type PostRecord struct {
	ID         int64
	MerchantID int64
	MediaID    int64
	Title      *string
	DatePosted time.Time
	ItemIDs    []int64
}

type MediaRecord struct {
	ID        int64
	StorageID uuid.UUID
	Name      string
	MimeType  string
}

type MerchantRecord struct {
	ID     int64
	Name   string
	LogoID int64
}

type ItemRecord struct {
	ID          int64
	Name        string
	MediaID     int64
	Price       int64
	Currency    string
	Description string
}

// Sources holds everything the composer may look up, keyed by id.
// BoostEnds carries the latest boost end_time per post; posts never boosted are absent.
type Sources struct {
	Media     map[int64]MediaRecord
	Merchants map[int64]MerchantRecord
	Items     map[int64]ItemRecord
	BoostEnds map[int64]time.Time
}

type Entry struct {
	ID           int64
	Title        *string
	DatePosted   time.Time
	MediaURL     string
	MimeType     string
	MerchantID   int64
	MerchantName string
	LogoURL      string
	LogoMimeType string
	Items        []EntryItem
	IsBoosted    bool
}

type EntryItem struct {
	ID          int64
	Name        string
	Price       int64
	Currency    string
	Description string
	MediaURL    string
	MimeType    string
}
