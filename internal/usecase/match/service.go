package match

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"jobmatch/internal/domain/match"
	"jobmatch/internal/domain/profile"
)

var ErrInternal = errors.New("internal error")

// WithCounterpart pairs a match with the other participant's profile, which is
// what the matches screen renders.
type WithCounterpart struct {
	Match       match.Match
	Counterpart profile.Profile
}

type Service struct {
	matches  match.Repository
	profiles profile.Repository
}

func NewService(matches match.Repository, profiles profile.Repository) *Service {
	return &Service{matches: matches, profiles: profiles}
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]WithCounterpart, error) {
	ms, err := s.matches.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]WithCounterpart, 0, len(ms))
	for _, m := range ms {
		other := m.Counterpart(userID)
		p, err := s.profiles.GetByUserID(ctx, other)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				// Matched before the counterpart deleted their profile; the
				// match still exists but has nothing to render.
				continue
			}
			return nil, ErrInternal
		}
		out = append(out, WithCounterpart{Match: m, Counterpart: p})
	}
	return out, nil
}
