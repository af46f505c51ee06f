package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sporthub/internal/domain"
)

// Store owns the venue collection. Venues are loaded once from the seed
// table and never added or removed; only IsFavorite and MyReview mutate
// afterwards. All access goes through one RWMutex; reads hand out
// snapshot copies taken under the lock.
//
// An optional UserStateRepository archives favorite flags and user
// reviews across restarts. The in-memory collection stays canonical and
// archive failures are logged, never surfaced.
type Store struct {
	mu      sync.RWMutex
	venues  []domain.Venue
	byID    map[int64]int
	archive domain.UserStateRepository
}

// New loads the seed venues, generates the three stable mock reviews
// per venue exactly once, and assigns IDs in load order.
func New(archive domain.UserStateRepository) *Store {
	venues := seedVenues()
	byID := make(map[int64]int, len(venues))
	for i := range venues {
		venues[i].ID = int64(i + 1)
		venues[i].MockReviews = GenerateReviews(venues[i].Category, venues[i].Name)
		byID[venues[i].ID] = i
	}
	return &Store{venues: venues, byID: byID, archive: archive}
}

// Restore applies archived favorites and user reviews on top of the
// freshly loaded catalog. Best-effort: a failed load leaves the catalog
// in its seed state.
func (s *Store) Restore(ctx context.Context) {
	if s.archive == nil {
		return
	}
	state, err := s.archive.LoadState(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("user state restore failed, starting from seed state")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, fav := range state.Favorites {
		if i, ok := s.byID[id]; ok {
			s.venues[i].IsFavorite = fav
		}
	}
	for id, r := range state.MyReviews {
		if i, ok := s.byID[id]; ok {
			r := r
			r.Mine = true
			s.venues[i].MyReview = &r
		}
	}
}

// All returns the full collection in load order.
func (s *Store) All() []domain.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Venue, len(s.venues))
	copy(out, s.venues)
	return out
}

func (s *Store) Get(id int64) (domain.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Venue{}, false
	}
	return s.venues[i], true
}

// Favorites returns favorited venues, preserving load order.
func (s *Store) Favorites() []domain.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Venue
	for _, v := range s.venues {
		if v.IsFavorite {
			out = append(out, v)
		}
	}
	return out
}

// SetFavorite flips the flag on one venue. Unknown IDs are a no-op: the
// identifier space is closed, callers always pass IDs from a prior
// listing.
func (s *Store) SetFavorite(ctx context.Context, id int64, value bool) {
	s.mu.Lock()
	i, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.venues[i].IsFavorite = value
	s.mu.Unlock()

	if s.archive != nil {
		if err := s.archive.SetFavorite(ctx, id, value); err != nil {
			log.Warn().Err(err).Int64("venue_id", id).Msg("favorite archive write failed")
		}
	}
}

// SetMyReview replaces the user's own review on one venue; nil deletes
// it. Mock reviews are untouched. Unknown IDs are a no-op.
func (s *Store) SetMyReview(ctx context.Context, id int64, r *domain.Review) {
	s.mu.Lock()
	i, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	if r != nil {
		rc := *r
		rc.Mine = true
		if rc.ID == "" {
			rc.ID = uuid.NewString()
		}
		if rc.CreatedAt.IsZero() {
			rc.CreatedAt = time.Now()
		}
		s.venues[i].MyReview = &rc
	} else {
		s.venues[i].MyReview = nil
	}
	s.mu.Unlock()

	if s.archive == nil {
		return
	}
	var err error
	if r != nil {
		v, _ := s.Get(id)
		err = s.archive.SaveMyReview(ctx, id, *v.MyReview)
	} else {
		err = s.archive.DeleteMyReview(ctx, id)
	}
	if err != nil {
		log.Warn().Err(err).Int64("venue_id", id).Msg("review archive write failed")
	}
}

// ResetAllFavorites clears the favorite flag on every venue. Called on
// logout; the side effect is catalog-wide, not per-user.
func (s *Store) ResetAllFavorites(ctx context.Context) {
	s.mu.Lock()
	for i := range s.venues {
		s.venues[i].IsFavorite = false
	}
	s.mu.Unlock()

	if s.archive != nil {
		if err := s.archive.ClearFavorites(ctx); err != nil {
			log.Warn().Err(err).Msg("favorites archive clear failed")
		}
	}
}
