package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub fans newly appended chat messages out to the live subscribers of each
// match. Clients are grouped into per-match rooms; publishing to one match
// never touches subscribers of another.
type Hub struct {
	rooms      map[uuid.UUID]map[*Client]bool
	publish    chan outbound
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type outbound struct {
	matchID uuid.UUID
	payload []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		rooms:      make(map[uuid.UUID]map[*Client]bool),
		publish:    make(chan outbound, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			room := h.rooms[client.matchID]
			if room == nil {
				room = make(map[*Client]bool)
				h.rooms[client.matchID] = room
			}
			room[client] = true
			size := len(room)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS subscribed | match=%s room_size=%d", client.matchID, size)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			room := h.rooms[client.matchID]
			if room != nil {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.send)
				}
				if len(room) == 0 {
					delete(h.rooms, client.matchID)
				}
			}
			size := len(room)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS unsubscribed | match=%s room_size=%d", client.matchID, size)
			}

		case out := <-h.publish:
			h.mutex.RLock()
			room := h.rooms[out.matchID]
			snapshot := make([]*Client, 0, len(room))
			for c := range room {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- out.payload:
				default:
					// Slow consumer: drop the subscription rather than block
					// delivery to the rest of the room.
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

func (h *Hub) Publish(matchID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.publish <- outbound{matchID: matchID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS publish dropped | match=%s reason=buffer_full", matchID)
		}
	}
}

func (h *Hub) RoomSize(matchID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.rooms[matchID])
}
