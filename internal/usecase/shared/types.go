package shared

import (
	"time"
)

// Write-side snapshots keep commands independent of the read-side views.

type MerchantSnapshot struct {
	ID     int64
	Name   string
	LogoID int64
}

type PostSnapshot struct {
	ID         int64
	MerchantID int64
	MediaID    int64
	Title      *string
	DatePosted time.Time
	ItemIDs    []int64
}

type ItemSnapshot struct {
	ID          int64
	MerchantID  int64
	Name        string
	MediaID     int64
	Price       int64
	Currency    string
	Description string
}
