//go:build unit || e2e

package builder

import (
	"time"

	"discover-api/internal/domain/feed"
	"discover-api/internal/domain/post"
	reqdto "discover-api/internal/handler/dto/request"
	sqlc "discover-api/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type PostBuilder struct {
	ID         int64
	MerchantID int64
	MediaID    int64
	Title      *string
	DatePosted time.Time
	ItemIDs    []int64
}

func NewPostBuilder() *PostBuilder {
	title := "New seasonal menu"
	return &PostBuilder{
		ID:         100,
		MerchantID: 1,
		MediaID:    11,
		Title:      &title,
		DatePosted: FixedTime,
		ItemIDs:    []int64{200},
	}
}

func (b *PostBuilder) With(mutate func(*PostBuilder)) *PostBuilder {
	mutate(b)
	return b
}

func (b *PostBuilder) WithID(id int64) *PostBuilder {
	b.ID = id
	return b
}

func (b *PostBuilder) WithMerchantID(id int64) *PostBuilder {
	b.MerchantID = id
	return b
}

func (b *PostBuilder) WithMediaID(id int64) *PostBuilder {
	b.MediaID = id
	return b
}

func (b *PostBuilder) WithDatePosted(t time.Time) *PostBuilder {
	b.DatePosted = t
	return b
}

func (b *PostBuilder) WithItems(ids ...int64) *PostBuilder {
	b.ItemIDs = ids
	return b
}

func (b *PostBuilder) WithoutTitle() *PostBuilder {
	b.Title = nil
	return b
}

func (b *PostBuilder) BuildDomain() (*post.Post, error) {
	return post.NewPost(b.MerchantID, b.MediaID, b.Title, b.ItemIDs, b.DatePosted)
}

func (b *PostBuilder) BuildInfra() sqlc.Posts {
	title := pgtype.Text{}
	if b.Title != nil {
		title = pgtype.Text{String: *b.Title, Valid: true}
	}
	return sqlc.Posts{
		ID:         b.ID,
		UserID:     b.MerchantID,
		MediaID:    b.MediaID,
		Title:      title,
		DatePosted: pgtype.Timestamptz{Time: b.DatePosted, Valid: true},
		Items:      b.ItemIDs,
	}
}

func (b *PostBuilder) BuildRecord() feed.PostRecord {
	return feed.PostRecord{
		ID:         b.ID,
		MerchantID: b.MerchantID,
		MediaID:    b.MediaID,
		Title:      b.Title,
		DatePosted: b.DatePosted,
		ItemIDs:    b.ItemIDs,
	}
}

func (b *PostBuilder) BuildCreateRequestDTO() reqdto.CreatePostRequest {
	return reqdto.CreatePostRequest{MediaID: b.MediaID, Title: b.Title, Items: b.ItemIDs}
}

// BuildEntry is the composed form of this post with default merchant and media.
func (b *PostBuilder) BuildEntry() feed.Entry {
	m := NewMerchantBuilder().WithID(b.MerchantID)
	pm := NewMediaBuilder().WithID(b.MediaID)
	logo := NewMediaBuilder().WithID(m.LogoID)
	return feed.Entry{
		ID:           b.ID,
		Title:        b.Title,
		DatePosted:   b.DatePosted,
		MediaURL:     pm.URL(),
		MimeType:     pm.MimeType,
		MerchantID:   m.ID,
		MerchantName: m.Name,
		LogoURL:      logo.URL(),
		LogoMimeType: logo.MimeType,
		Items:        []feed.EntryItem{},
	}
}
