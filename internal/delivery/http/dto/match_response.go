package dto

import (
	"time"

	"github.com/google/uuid"

	ucmatch "jobmatch/internal/usecase/match"
)

type MatchResponse struct {
	ID          uuid.UUID       `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Counterpart ProfileResponse `json:"counterpart"`
}

func NewMatchListResponse(ms []ucmatch.WithCounterpart) []MatchResponse {
	out := make([]MatchResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, MatchResponse{
			ID:          m.Match.ID,
			CreatedAt:   m.Match.CreatedAt,
			Counterpart: NewProfileResponse(m.Counterpart),
		})
	}
	return out
}

type SwipeResponse struct {
	Recorded bool       `json:"recorded"`
	Matched  bool       `json:"matched"`
	MatchID  *uuid.UUID `json:"match_id,omitempty"`
}
