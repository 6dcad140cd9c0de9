package postgres

import (
	"context"

	"github.com/google/uuid"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/chat"
)

type MessageRepository struct {
	db database.DB
}

func NewMessageRepository(db database.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Append(ctx context.Context, m chat.Message) (chat.Message, error) {
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO messages (match_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		m.MatchID, m.SenderID, m.Content,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return chat.Message{}, err
	}
	return m, nil
}

func (r *MessageRepository) ListByMatch(ctx context.Context, matchID uuid.UUID) ([]chat.Message, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, match_id, sender_id, content, created_at
		FROM messages
		WHERE match_id = $1
		ORDER BY created_at, id`,
		matchID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.MatchID, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
