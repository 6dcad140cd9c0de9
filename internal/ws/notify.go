package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/chat"
)

type MessageEvent struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	MatchID   uuid.UUID `json:"match_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NotifyMessage pushes an appended message to the match's live subscribers.
// Called after the row is persisted; the feed is the only delivery path to
// other participants, so there is no duplicate to reconcile client-side.
func (h *Hub) NotifyMessage(m chat.Message) {
	if h == nil {
		return
	}

	evt := MessageEvent{
		Type:      "message",
		ID:        m.ID,
		MatchID:   m.MatchID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Publish(m.MatchID, b)
}
