package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/profile"
	"jobmatch/internal/domain/user"
)

type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	row := r.db.QueryRow(
		ctx,
		`WITH up AS (
			INSERT INTO profiles (user_id, name, bio, skills, location, photo_url)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id) DO UPDATE SET
				name = EXCLUDED.name,
				bio = EXCLUDED.bio,
				skills = EXCLUDED.skills,
				location = EXCLUDED.location,
				photo_url = EXCLUDED.photo_url,
				updated_at = now()
			RETURNING id, user_id, name, bio, skills, location, photo_url, created_at, updated_at
		)
		SELECT up.id, up.user_id, u.role, up.name, up.bio, up.skills, up.location, up.photo_url, up.created_at, up.updated_at
		FROM up JOIN users u ON u.id = up.user_id`,
		p.UserID, p.Name, p.Bio, p.Skills, p.Location, p.PhotoURL,
	)
	return scanProfile(row)
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT p.id, p.user_id, u.role, p.name, p.bio, p.skills, p.location, p.photo_url, p.created_at, p.updated_at
		FROM profiles p JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *ProfileRepository) ListCandidates(ctx context.Context, viewerID uuid.UUID, role user.Role, limit int) ([]profile.Profile, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT p.id, p.user_id, u.role, p.name, p.bio, p.skills, p.location, p.photo_url, p.created_at, p.updated_at
		FROM profiles p JOIN users u ON u.id = p.user_id
		WHERE u.role = $2
		  AND p.user_id <> $1
		  AND NOT EXISTS (
			SELECT 1 FROM swipes s WHERE s.swiper_id = $1 AND s.swiped_id = p.user_id
		  )
		ORDER BY p.created_at, p.id
		LIMIT $3`,
		viewerID, string(role), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	var role string
	err := row.Scan(&p.ID, &p.UserID, &role, &p.Name, &p.Bio, &p.Skills, &p.Location, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.Role = user.Role(role)
	return p, nil
}
