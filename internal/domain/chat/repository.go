package chat

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Append stores the message and returns it with id and created_at filled.
	Append(ctx context.Context, m Message) (Message, error)

	// ListByMatch returns the full history ascending by created_at, id.
	ListByMatch(ctx context.Context, matchID uuid.UUID) ([]Message, error)
}
