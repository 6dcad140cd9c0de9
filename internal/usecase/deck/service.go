package deck

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/profile"
)

var (
	ErrProfileMissing = errors.New("profile missing")
	ErrInternal       = errors.New("internal error")
)

const defaultDeckSize = 100

// Cache is the subset of the redis cache the deck needs. A nil or unavailable
// cache degrades to hitting the database on every fetch.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	profiles profile.Repository
	cache    Cache
	logger   *log.Logger
	size     int
}

func NewService(profiles profile.Repository, cache Cache, logger *log.Logger) *Service {
	return &Service{profiles: profiles, cache: cache, logger: logger, size: defaultDeckSize}
}

// Deck returns the caller's current candidates: opposite-role profiles,
// excluding the caller and everyone already swiped on. The result is a stable
// snapshot; swipes made after the fetch do not mutate an already served deck.
func (s *Service) Deck(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error) {
	me, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrProfileMissing
		}
		return nil, ErrInternal
	}

	key := cacheKey(userID)
	if s.cache != nil {
		var cached []profile.Profile
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	candidates, err := s.profiles.ListCandidates(ctx, userID, me.Role.Opposite(), s.size)
	if err != nil {
		return nil, ErrInternal
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, candidates, 0); err != nil && s.logger != nil {
			s.logger.Printf("deck cache set failed | user=%s err=%v", userID, err)
		}
	}

	return candidates, nil
}

// Invalidate drops the cached deck so the next fetch excludes fresh swipes.
func (s *Service) Invalidate(ctx context.Context, userID uuid.UUID) {
	if s == nil || s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey(userID)); err != nil && s.logger != nil {
		s.logger.Printf("deck cache invalidate failed | user=%s err=%v", userID, err)
	}
}

func cacheKey(userID uuid.UUID) string {
	return "deck:" + userID.String()
}
