package dto

import (
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/profile"
)

type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Skills    []string  `json:"skills"`
	Location  string    `json:"location"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Role:      string(p.Role),
		Name:      p.Name,
		Bio:       p.Bio,
		Skills:    skills,
		Location:  p.Location,
		PhotoURL:  p.PhotoURL,
		CreatedAt: p.CreatedAt,
	}
}

func NewProfileListResponse(ps []profile.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewProfileResponse(p))
	}
	return out
}
