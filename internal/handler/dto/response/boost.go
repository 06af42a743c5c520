package response

import (
	"discover-api/internal/usecase/commands"
)

type BoostResponse struct {
	ID      int64  `json:"id"`
	PostID  int64  `json:"post_id"`
	EndTime string `json:"end_time"`
}

func FromBoostResult(r *commands.BoostResult) *BoostResponse {
	return &BoostResponse{ID: r.ID, PostID: r.PostID, EndTime: formatTime(r.EndTime)}
}
