package app

import (
	"context"
	"fmt"

	"sporthub/internal/domain"
)

// CommandService applies the two per-venue mutations and keeps the
// cache honest afterwards. Mutations on unknown identifiers are silent
// no-ops: the identifier space is closed and callers only hold IDs from
// a prior listing.
type CommandService struct {
	catalog Catalog
	cache   domain.Cache
}

func NewCommandService(c Catalog, cache domain.Cache) *CommandService {
	return &CommandService{catalog: c, cache: cache}
}

func (s *CommandService) SetFavorite(ctx context.Context, id int64, value bool) {
	s.catalog.SetFavorite(ctx, id, value)
	s.invalidateVenue(ctx, id)
}

// SetMyReview writes the user's single review for a venue. The score
// must be 1..5; everything else about the review is free-form.
func (s *CommandService) SetMyReview(ctx context.Context, id int64, author, comment string, score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("score %d out of range 1..5", score)
	}
	s.catalog.SetMyReview(ctx, id, &domain.Review{Author: author, Comment: comment, Score: score})
	s.invalidateVenue(ctx, id)
	return nil
}

func (s *CommandService) ClearMyReview(ctx context.Context, id int64) {
	s.catalog.SetMyReview(ctx, id, nil)
	s.invalidateVenue(ctx, id)
}

// ResetAllFavorites clears every favorite flag. The catalog never
// grows, so evicting per-venue keys by walking the collection is cheap.
func (s *CommandService) ResetAllFavorites(ctx context.Context) {
	s.catalog.ResetAllFavorites(ctx)
	for _, v := range s.catalog.All() {
		s.invalidateVenue(ctx, v.ID)
	}
}

func (s *CommandService) invalidateVenue(ctx context.Context, id int64) {
	_ = s.cache.Del(ctx, venueKey(id))
	_ = s.cache.Del(ctx, reviewsKey(id))
}
