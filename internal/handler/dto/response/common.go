package response

import "time"

type IDResponse struct {
	ID int64 `json:"id"`
}

// Timestamps are rendered as RFC 3339 in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
