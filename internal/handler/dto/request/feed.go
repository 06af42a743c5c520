package request

import (
	"discover-api/internal/usecase/queries"
)

type DiscoverQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after" binding:"omitempty,max=256"`
}

func (q *DiscoverQuery) ToPage() queries.PageRequest {
	return queries.PageRequest{Limit: q.Limit, After: q.After}
}
