package swipe

import (
	"context"

	"github.com/google/uuid"
)

type Ledger interface {
	// Record appends the decision. A second write for the same ordered
	// (swiper, swiped) pair is a no-op and reports recorded=false.
	Record(ctx context.Context, d Decision) (recorded bool, err error)

	// ReciprocalLiked reports whether swiped has already liked swiper.
	ReciprocalLiked(ctx context.Context, swiperID, swipedID uuid.UUID) (bool, error)
}
