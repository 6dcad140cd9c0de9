package swipe

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"jobmatch/internal/domain/match"
	"jobmatch/internal/domain/profile"
	"jobmatch/internal/domain/swipe"
)

var (
	ErrSelfSwipe      = errors.New("cannot swipe on yourself")
	ErrProfileMissing = errors.New("profile missing")
	ErrTargetNotFound = errors.New("target profile not found")
	ErrInternal       = errors.New("internal error")
)

type Result struct {
	Recorded bool
	Matched  bool
	MatchID  uuid.UUID
}

type DeckInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type Service struct {
	ledger   swipe.Ledger
	matches  match.Repository
	profiles profile.Repository
	decks    DeckInvalidator
	logger   *log.Logger
}

func NewService(ledger swipe.Ledger, matches match.Repository, profiles profile.Repository, decks DeckInvalidator, logger *log.Logger) *Service {
	return &Service{ledger: ledger, matches: matches, profiles: profiles, decks: decks, logger: logger}
}

// Record appends the swipe decision and, on a reciprocal like, creates the
// match. Match creation is a conditional insert keyed by the canonical pair at
// the data layer, so repeated or concurrent recording for the same two users
// yields exactly one match.
func (s *Service) Record(ctx context.Context, swiperID, targetID uuid.UUID, liked bool) (Result, error) {
	if swiperID == targetID {
		return Result{}, ErrSelfSwipe
	}

	if _, err := s.profiles.GetByUserID(ctx, swiperID); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return Result{}, ErrProfileMissing
		}
		return Result{}, ErrInternal
	}
	if _, err := s.profiles.GetByUserID(ctx, targetID); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return Result{}, ErrTargetNotFound
		}
		return Result{}, ErrInternal
	}

	recorded, err := s.ledger.Record(ctx, swipe.Decision{
		SwiperID: swiperID,
		SwipedID: targetID,
		Liked:    liked,
	})
	if err != nil {
		return Result{}, ErrInternal
	}
	if !recorded && s.logger != nil {
		s.logger.Printf("swipe already recorded | swiper=%s target=%s", swiperID, targetID)
	}

	res := Result{Recorded: recorded}

	// The match check runs even when the decision was a duplicate: the
	// conditional insert makes it idempotent, and skipping it could lose a
	// match if an earlier attempt failed between the two writes.
	if liked {
		reciprocal, err := s.ledger.ReciprocalLiked(ctx, swiperID, targetID)
		if err != nil {
			return Result{}, ErrInternal
		}
		if reciprocal {
			m, created, err := s.matches.CreateIfAbsent(ctx, swiperID, targetID)
			if err != nil {
				return Result{}, ErrInternal
			}
			res.Matched = created
			res.MatchID = m.ID
			if created && s.logger != nil {
				s.logger.Printf("match created | match=%s user_a=%s user_b=%s", m.ID, m.UserAID, m.UserBID)
			}
		}
	}

	if s.decks != nil {
		s.decks.Invalidate(ctx, swiperID)
	}

	return res, nil
}
