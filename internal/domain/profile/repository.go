package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"jobmatch/internal/domain/user"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	// Upsert creates the profile or fully replaces it. One profile per user.
	Upsert(ctx context.Context, p Profile) (Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)

	// ListCandidates returns profiles of the given role, excluding the viewer
	// and every user the viewer has already recorded a swipe against. The
	// result is a stable snapshot of candidates at query time.
	ListCandidates(ctx context.Context, viewerID uuid.UUID, role user.Role, limit int) ([]Profile, error)
}
