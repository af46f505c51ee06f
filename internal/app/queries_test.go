package app_test

import (
	"context"
	"testing"
	"time"

	"sporthub/internal/app"
	"sporthub/internal/catalog"
	"sporthub/internal/domain"
)

// fakeCache is an in-process stand-in for the redis adapter.
type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Venue:
		*d = v.(domain.Venue)
	case *[]domain.Review:
		*d = v.([]domain.Review)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func newServices() (*catalog.Store, *app.QueryService, *app.CommandService) {
	store := catalog.New(nil)
	cache := &fakeCache{}
	q := app.NewQueryService(store, cache, 10*time.Minute, 8)
	cmd := app.NewCommandService(store, cache)
	return store, q, cmd
}

func TestVenueByID_CacheMissThenHit(t *testing.T) {
	ctx := context.Background()
	store, q, _ := newServices()

	v, err := q.VenueByID(ctx, 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v.Name != "Arturo Collana Stadium" {
		t.Fatalf("unexpected venue: %+v", v)
	}

	// Mutate the catalog directly, bypassing command invalidation, to
	// prove the second read is served from cache.
	store.SetFavorite(ctx, 1, true)
	v2, err := q.VenueByID(ctx, 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v2.IsFavorite {
		t.Fatalf("expected cached venue without the favorite flag")
	}

	if _, err := q.VenueByID(ctx, 9999); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCommands_InvalidateCache(t *testing.T) {
	ctx := context.Background()
	_, q, cmd := newServices()

	if _, err := q.VenueByID(ctx, 2); err != nil {
		t.Fatalf("err: %v", err)
	}
	cmd.SetFavorite(ctx, 2, true)
	v, err := q.VenueByID(ctx, 2)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !v.IsFavorite {
		t.Fatalf("stale venue served after favorite mutation")
	}
}

func TestReviews_MineFirst(t *testing.T) {
	ctx := context.Background()
	_, q, cmd := newServices()

	rs, err := q.Reviews(ctx, 4)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rs) != 3 {
		t.Fatalf("expected 3 mock reviews, got %d", len(rs))
	}

	if err := cmd.SetMyReview(ctx, 4, "You", "Loved it", 5); err != nil {
		t.Fatalf("err: %v", err)
	}
	rs, err = q.Reviews(ctx, 4)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rs) != 4 || !rs[0].Mine || rs[0].Comment != "Loved it" {
		t.Fatalf("expected own review first: %+v", rs)
	}

	if err := cmd.SetMyReview(ctx, 4, "You", "x", 9); err == nil {
		t.Fatalf("expected score validation error")
	}
}

func TestNearestN(t *testing.T) {
	store, _, _ := newServices()
	all := store.All()

	// Standing exactly on a venue puts it first at distance zero.
	target := all[25] // Vomero Tennis Academy
	user := target.Coords()
	got := app.NearestN(all, &user, 8)
	if len(got) != 8 {
		t.Fatalf("expected 8 venues, got %d", len(got))
	}
	if got[0].ID != target.ID {
		t.Fatalf("nearest = %s, want %s", got[0].Name, target.Name)
	}
	for i := 1; i < len(got); i++ {
		if user.DistanceMeters(got[i-1].Coords()) > user.DistanceMeters(got[i].Coords()) {
			t.Fatalf("distances not ascending at %d", i)
		}
	}

	// No coordinate: first 8 in catalog order, no ranking.
	got = app.NearestN(all, nil, 8)
	for i, v := range got {
		if v.ID != all[i].ID {
			t.Fatalf("expected catalog order without a coordinate")
		}
	}
}

func TestTopRatedN(t *testing.T) {
	store, _, _ := newServices()
	got := app.TopRatedN(store.All(), 8)
	if len(got) != 8 {
		t.Fatalf("expected 8 venues, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].AverageRating() < got[i].AverageRating() {
			t.Fatalf("ratings not non-increasing: %v then %v",
				got[i-1].AverageRating(), got[i].AverageRating())
		}
	}
}

func TestFilterVenues(t *testing.T) {
	store, _, _ := newServices()
	all := store.All()

	tennis := app.FilterVenues(all, domain.VenueFilter{Categories: []domain.Category{domain.CategoryTennis}})
	if len(tennis) != 8 {
		t.Fatalf("expected 8 tennis venues, got %d", len(tennis))
	}

	// Search is case-insensitive over name, address and category label.
	byName := app.FilterVenues(all, domain.VenueFilter{Query: "kodokan"})
	if len(byName) != 1 || byName[0].Name != "Kodokan Naples" {
		t.Fatalf("name search: %+v", byName)
	}
	byAddr := app.FilterVenues(all, domain.VenueFilter{Query: "80136"})
	if len(byAddr) != 2 {
		t.Fatalf("address search expected 2 hits, got %d", len(byAddr))
	}
	byCat := app.FilterVenues(all, domain.VenueFilter{Query: "  RUNNING "})
	if len(byCat) != 8 {
		t.Fatalf("category search expected 8 hits, got %d", len(byCat))
	}
	blank := app.FilterVenues(all, domain.VenueFilter{Query: "   "})
	if len(blank) != len(all) {
		t.Fatalf("blank query must match everything")
	}
}

func TestHome(t *testing.T) {
	ctx := context.Background()
	_, q, _ := newServices()

	feed := q.Home(ctx, nil, nil)
	if len(feed.AroundYou) != 8 || len(feed.TopRated) != 8 {
		t.Fatalf("sections not truncated to 8: %d / %d", len(feed.AroundYou), len(feed.TopRated))
	}

	cat := domain.CategorySoccer
	feed = q.Home(ctx, nil, &cat)
	for _, v := range append(feed.AroundYou, feed.TopRated...) {
		if v.Category != domain.CategorySoccer {
			t.Fatalf("category filter not applied before ranking: %+v", v)
		}
	}
}
