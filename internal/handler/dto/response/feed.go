package response

import (
	"discover-api/internal/domain/feed"
	"discover-api/internal/usecase/queries"
)

type PostResponse struct {
	ID           int64              `json:"id"`
	Title        *string            `json:"title"`
	DatePosted   string             `json:"date_posted"`
	MediaURL     string             `json:"media_url"`
	MimeType     string             `json:"mimetype"`
	MerchantID   int64              `json:"merchant_id"`
	MerchantName string             `json:"merchant_name"`
	LogoURL      string             `json:"logo_url"`
	LogoMimeType string             `json:"logo_mimetype"`
	Items        []PostItemResponse `json:"items"`
	IsBoosted    bool               `json:"is_boosted"`
}

type PostItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
	MimeType    string `json:"mimetype"`
}

type FeedResponse struct {
	Posts      []PostResponse `json:"posts"`
	NextCursor *string        `json:"next_cursor,omitempty"`
}

func FromEntry(e feed.Entry) PostResponse {
	items := make([]PostItemResponse, len(e.Items))
	for i, it := range e.Items {
		items[i] = PostItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Price:       it.Price,
			Currency:    it.Currency,
			Description: it.Description,
			MediaURL:    it.MediaURL,
			MimeType:    it.MimeType,
		}
	}
	return PostResponse{
		ID:           e.ID,
		Title:        e.Title,
		DatePosted:   formatTime(e.DatePosted),
		MediaURL:     e.MediaURL,
		MimeType:     e.MimeType,
		MerchantID:   e.MerchantID,
		MerchantName: e.MerchantName,
		LogoURL:      e.LogoURL,
		LogoMimeType: e.LogoMimeType,
		Items:        items,
		IsBoosted:    e.IsBoosted,
	}
}

func FromEntries(entries []feed.Entry) FeedResponse {
	posts := make([]PostResponse, len(entries))
	for i, e := range entries {
		posts[i] = FromEntry(e)
	}
	return FeedResponse{Posts: posts}
}

func FromFeedPage(page *queries.FeedPage) FeedResponse {
	resp := FromEntries(page.Posts)
	if page.Next != nil {
		next := page.Next.After
		resp.NextCursor = &next
	}
	return resp
}
