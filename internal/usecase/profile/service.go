package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"jobmatch/internal/domain/profile"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrProfileMissing = errors.New("profile missing")
	ErrInternal       = errors.New("internal error")
)

type UpsertInput struct {
	Name     string
	Bio      string
	Skills   []string
	Location string
	PhotoURL string
}

type DeckInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type Service struct {
	profiles profile.Repository
	decks    DeckInvalidator
}

func NewService(profiles profile.Repository, decks DeckInvalidator) *Service {
	return &Service{profiles: profiles, decks: decks}
}

// Upsert creates or fully replaces the caller's profile. Submitting twice
// leaves one row with the latest values; there is no partial merge.
func (s *Service) Upsert(ctx context.Context, userID uuid.UUID, in UpsertInput) (profile.Profile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return profile.Profile{}, ErrInvalidInput
	}

	p := profile.Profile{
		UserID:   userID,
		Name:     name,
		Bio:      strings.TrimSpace(in.Bio),
		Skills:   normalizeSkills(in.Skills),
		Location: strings.TrimSpace(in.Location),
		PhotoURL: strings.TrimSpace(in.PhotoURL),
	}

	saved, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return profile.Profile{}, ErrInternal
	}

	if s.decks != nil {
		s.decks.Invalidate(ctx, userID)
	}

	return saved, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrProfileMissing
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func normalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
