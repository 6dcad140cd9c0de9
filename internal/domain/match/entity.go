package match

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// Match links an unordered pair of users. The pair is stored in canonical
// order (UserA < UserB byte-wise) so uniqueness is per unordered pair.
type Match struct {
	ID        uuid.UUID
	UserAID   uuid.UUID
	UserBID   uuid.UUID
	CreatedAt time.Time
}

func (m Match) Involves(userID uuid.UUID) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// Counterpart returns the other participant. Callers must check Involves first.
func (m Match) Counterpart(userID uuid.UUID) uuid.UUID {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}

// CanonicalPair orders two user ids so {A,B} and {B,A} map to the same row.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}
