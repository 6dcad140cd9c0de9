package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message belongs to exactly one match. Immutable once written; ordered within
// a match by created_at, with id as the tiebreak.
type Message struct {
	ID        uuid.UUID
	MatchID   uuid.UUID
	SenderID  uuid.UUID
	Content   string
	CreatedAt time.Time
}
