package post

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLength = 500
	MaxItems       = 100
)

type Post struct {
	id         int64
	merchantID int64
	mediaID    int64
	title      *string
	datePosted time.Time
	itemIDs    []int64
}

func NewPost(merchantID, mediaID int64, title *string, itemIDs []int64, now time.Time) (*Post, error) {
	if merchantID <= 0 {
		return nil, ErrInvalidMerchant
	}
	p := &Post{
		merchantID: merchantID,
		datePosted: now,
	}
	if err := p.apply(mediaID, title, itemIDs); err != nil {
		return nil, err
	}
	return p, nil
}

func Reconstruct(id, merchantID, mediaID int64, title *string, datePosted time.Time, itemIDs []int64) *Post {
	return &Post{
		id:         id,
		merchantID: merchantID,
		mediaID:    mediaID,
		title:      title,
		datePosted: datePosted,
		itemIDs:    itemIDs,
	}
}

// Replace swaps the mutable parts of a post. Ownership and date_posted never change.
func (p *Post) Replace(mediaID int64, title *string, itemIDs []int64) error {
	return p.apply(mediaID, title, itemIDs)
}

func (p *Post) apply(mediaID int64, title *string, itemIDs []int64) error {
	if mediaID <= 0 {
		return ErrInvalidMedia
	}

	var t *string
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if utf8.RuneCountInString(trimmed) > MaxTitleLength {
			return ErrTitleTooLong
		}
		if trimmed != "" {
			t = &trimmed
		}
	}

	if len(itemIDs) > MaxItems {
		return ErrTooManyItems
	}
	for _, id := range itemIDs {
		if id <= 0 {
			return ErrInvalidItemID
		}
	}

	p.mediaID = mediaID
	p.title = t
	p.itemIDs = slices.Clone(itemIDs)
	if p.itemIDs == nil {
		p.itemIDs = []int64{}
	}
	return nil
}

func (p *Post) ID() int64             { return p.id }
func (p *Post) MerchantID() int64     { return p.merchantID }
func (p *Post) MediaID() int64        { return p.mediaID }
func (p *Post) Title() *string        { return p.title }
func (p *Post) DatePosted() time.Time { return p.datePosted }
func (p *Post) ItemIDs() []int64      { return slices.Clone(p.itemIDs) }
