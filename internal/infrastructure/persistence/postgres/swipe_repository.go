package postgres

import (
	"context"

	"github.com/google/uuid"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/swipe"
)

type SwipeRepository struct {
	db database.DB
}

func NewSwipeRepository(db database.DB) *SwipeRepository {
	return &SwipeRepository{db: db}
}

func (r *SwipeRepository) Record(ctx context.Context, d swipe.Decision) (bool, error) {
	affected, err := r.db.Exec(
		ctx,
		`INSERT INTO swipes (swiper_id, swiped_id, liked)
		VALUES ($1, $2, $3)
		ON CONFLICT (swiper_id, swiped_id) DO NOTHING`,
		d.SwiperID, d.SwipedID, d.Liked,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SwipeRepository) ReciprocalLiked(ctx context.Context, swiperID, swipedID uuid.UUID) (bool, error) {
	var liked bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM swipes WHERE swiper_id = $2 AND swiped_id = $1 AND liked
		)`,
		swiperID, swipedID,
	).Scan(&liked)
	return liked, err
}
