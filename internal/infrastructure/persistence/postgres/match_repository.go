package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/match"
)

type MatchRepository struct {
	db database.DB
}

func NewMatchRepository(db database.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// CreateIfAbsent relies on the matches_one_per_pair unique constraint: the
// conditional insert is resolved by the database, not by check-then-act, so
// two sessions creating the same pair concurrently still yield one row.
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, a, b uuid.UUID) (match.Match, bool, error) {
	ua, ub := match.CanonicalPair(a, b)

	var m match.Match
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO matches (user_a_id, user_b_id)
		VALUES ($1, $2)
		ON CONFLICT (user_a_id, user_b_id) DO NOTHING
		RETURNING id, user_a_id, user_b_id, created_at`,
		ua, ub,
	).Scan(&m.ID, &m.UserAID, &m.UserBID, &m.CreatedAt)
	if err == nil {
		return m, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return match.Match{}, false, err
	}

	// Conflict path: the pair already has a match.
	existing, err := r.getByPair(ctx, ua, ub)
	if err != nil {
		return match.Match{}, false, err
	}
	return existing, false, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_a_id, user_b_id, created_at FROM matches WHERE id = $1`,
		id,
	)
	return scanMatch(row)
}

func (r *MatchRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]match.Match, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_a_id, user_b_id, created_at
		FROM matches
		WHERE user_a_id = $1 OR user_b_id = $1
		ORDER BY created_at DESC, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []match.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MatchRepository) getByPair(ctx context.Context, ua, ub uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_a_id, user_b_id, created_at FROM matches WHERE user_a_id = $1 AND user_b_id = $2`,
		ua, ub,
	)
	return scanMatch(row)
}

func scanMatch(row database.Row) (match.Match, error) {
	var m match.Match
	if err := row.Scan(&m.ID, &m.UserAID, &m.UserBID, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, err
	}
	return m, nil
}
