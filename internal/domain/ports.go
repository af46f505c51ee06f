package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("sporthub: not found")
	// ErrLastCategory signals a rejected attempt to deselect the only
	// remaining category filter. The selection is unchanged.
	ErrLastCategory = errors.New("sporthub: cannot deselect last filter")
)

// Cache is a TTL'd key-value cache for query results.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// SessionRepository persists the single current-user record under a
// fixed key. Load returns (nil, nil) when no session is stored.
type SessionRepository interface {
	Load(ctx context.Context) (*User, error)
	Save(ctx context.Context, u User) error
	Clear(ctx context.Context) error
}

// UserStateRepository archives the per-venue mutable state (favorite
// flags and the user's own reviews) so it survives restarts. The
// in-memory catalog stays canonical; every call site treats failures as
// best-effort.
type UserStateRepository interface {
	SetFavorite(ctx context.Context, venueID int64, value bool) error
	ClearFavorites(ctx context.Context) error
	SaveMyReview(ctx context.Context, venueID int64, r Review) error
	DeleteMyReview(ctx context.Context, venueID int64) error
	LoadState(ctx context.Context) (UserState, error)
}

// UserState is the archived catalog state keyed by venue ID.
type UserState struct {
	Favorites map[int64]bool
	MyReviews map[int64]Review
}

// VenueFilter narrows a catalog listing. Zero value matches everything.
type VenueFilter struct {
	Categories []Category // empty = all
	Query      string     // substring over name, address, category label
}

// HomeFeed is the two ranked home-screen sections, each at most the
// configured section limit.
type HomeFeed struct {
	AroundYou []Venue `json:"around_you"`
	TopRated  []Venue `json:"top_rated"`
}
