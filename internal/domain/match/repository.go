package match

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("match not found")

type Repository interface {
	// CreateIfAbsent inserts a match for the unordered pair {a, b} unless one
	// exists, atomically at the data layer. Safe under concurrent invocation
	// from both participants; exactly one row ever exists per pair.
	CreateIfAbsent(ctx context.Context, a, b uuid.UUID) (m Match, created bool, err error)

	GetByID(ctx context.Context, id uuid.UUID) (Match, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Match, error)
}
