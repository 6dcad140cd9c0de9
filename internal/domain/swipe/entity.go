package swipe

import (
	"time"

	"github.com/google/uuid"
)

// Decision is one append-only ledger entry: swiper decided about swiped.
// Immutable once written.
type Decision struct {
	ID        int64
	SwiperID  uuid.UUID
	SwipedID  uuid.UUID
	Liked     bool
	CreatedAt time.Time
}
