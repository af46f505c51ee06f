package mysql

import (
	"context"
	"database/sql"
	"time"

	"sporthub/internal/domain"
)

func valTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// Repo archives the user's per-venue state (favorite flags, own
// reviews) in MySQL. The in-memory catalog stays canonical; the archive
// only matters across restarts.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the archive tables when missing.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createFavoritesSQL); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, createMyReviewsSQL)
	return err
}

func (r *Repo) SetFavorite(ctx context.Context, venueID int64, value bool) error {
	if value {
		_, err := r.db.ExecContext(ctx, upsertFavoriteSQL, venueID)
		return err
	}
	_, err := r.db.ExecContext(ctx, deleteFavoriteSQL, venueID)
	return err
}

func (r *Repo) ClearFavorites(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, clearFavoritesSQL)
	return err
}

func (r *Repo) SaveMyReview(ctx context.Context, venueID int64, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, upsertMyReviewSQL,
		venueID,
		rv.ID,
		rv.Author,
		rv.Comment,
		rv.Score,
		valTime(rv.CreatedAt),
	)
	return err
}

func (r *Repo) DeleteMyReview(ctx context.Context, venueID int64) error {
	_, err := r.db.ExecContext(ctx, deleteMyReviewSQL, venueID)
	return err
}

func (r *Repo) LoadState(ctx context.Context) (domain.UserState, error) {
	st := domain.UserState{
		Favorites: map[int64]bool{},
		MyReviews: map[int64]domain.Review{},
	}

	rows, err := r.db.QueryContext(ctx, selectFavoritesSQL)
	if err != nil {
		return domain.UserState{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return domain.UserState{}, err
		}
		st.Favorites[id] = true
	}
	if err := rows.Err(); err != nil {
		return domain.UserState{}, err
	}

	rrows, err := r.db.QueryContext(ctx, selectMyReviewsSQL)
	if err != nil {
		return domain.UserState{}, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var (
			id        int64
			rv        domain.Review
			createdAt sql.NullTime
		)
		if err := rrows.Scan(&id, &rv.ID, &rv.Author, &rv.Comment, &rv.Score, &createdAt); err != nil {
			return domain.UserState{}, err
		}
		if createdAt.Valid {
			rv.CreatedAt = createdAt.Time
		}
		rv.Mine = true
		st.MyReviews[id] = rv
	}
	if err := rrows.Err(); err != nil {
		return domain.UserState{}, err
	}
	return st, nil
}
