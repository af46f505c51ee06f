package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"sporthub/internal/domain"
)

// Catalog is the venue collection the services read from and mutate.
// Satisfied by *catalog.Store.
type Catalog interface {
	All() []domain.Venue
	Get(id int64) (domain.Venue, bool)
	Favorites() []domain.Venue
	SetFavorite(ctx context.Context, id int64, value bool)
	SetMyReview(ctx context.Context, id int64, r *domain.Review)
	ResetAllFavorites(ctx context.Context)
}

// QueryService serves read-only views over the catalog. Single-venue
// and review lookups go through the cache; list rankings are computed
// per request from a catalog snapshot.
type QueryService struct {
	catalog      Catalog
	cache        domain.Cache
	cacheTTL     time.Duration
	sectionLimit int
}

func NewQueryService(c Catalog, cache domain.Cache, ttl time.Duration, sectionLimit int) *QueryService {
	if sectionLimit <= 0 {
		sectionLimit = 8
	}
	return &QueryService{catalog: c, cache: cache, cacheTTL: ttl, sectionLimit: sectionLimit}
}

func venueKey(id int64) string   { return fmt.Sprintf("venue:%d", id) }
func reviewsKey(id int64) string { return fmt.Sprintf("reviews:%d", id) }

func (s *QueryService) VenueByID(ctx context.Context, id int64) (domain.Venue, error) {
	key := venueKey(id)
	var v domain.Venue
	if ok, _ := s.cache.Get(ctx, key, &v); ok {
		return v, nil
	}
	v, ok := s.catalog.Get(id)
	if !ok {
		return domain.Venue{}, domain.ErrNotFound
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
	return v, nil
}

// Reviews returns the user's own review first when present, then the
// three mock reviews in generation order.
func (s *QueryService) Reviews(ctx context.Context, id int64) ([]domain.Review, error) {
	key := reviewsKey(id)
	var out []domain.Review
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	v, ok := s.catalog.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if v.MyReview != nil {
		out = append(out, *v.MyReview)
	}
	out = append(out, v.MockReviews...)
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// Venues lists the catalog narrowed by the filter, in load order.
func (s *QueryService) Venues(_ context.Context, f domain.VenueFilter) []domain.Venue {
	return FilterVenues(s.catalog.All(), f)
}

func (s *QueryService) Favorites(context.Context) []domain.Venue {
	return s.catalog.Favorites()
}

// Home assembles the two home-screen sections. The category filter is
// applied before ranking, and each section is truncated to the
// configured limit.
func (s *QueryService) Home(_ context.Context, user *domain.Coords, cat *domain.Category) domain.HomeFeed {
	all := s.catalog.All()
	if cat != nil {
		all = FilterVenues(all, domain.VenueFilter{Categories: []domain.Category{*cat}})
	}
	return domain.HomeFeed{
		AroundYou: NearestN(all, user, s.sectionLimit),
		TopRated:  TopRatedN(all, s.sectionLimit),
	}
}

// ---- pure engine functions ----

// FilterVenues keeps venues matching the category set (empty = all) and
// the search text. Input order is preserved.
func FilterVenues(venues []domain.Venue, f domain.VenueFilter) []domain.Venue {
	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if len(f.Categories) > 0 && !containsCategory(f.Categories, v.Category) {
			continue
		}
		if !matchesSearch(v, f.Query) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func containsCategory(cs []domain.Category, c domain.Category) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

// matchesSearch is a case-insensitive substring match against name,
// address or category display name. Blank queries match everything.
func matchesSearch(v domain.Venue, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(v.Name), q) {
		return true
	}
	if v.Address != nil && strings.Contains(strings.ToLower(*v.Address), q) {
		return true
	}
	return strings.Contains(strings.ToLower(v.Category.DisplayName()), q)
}

// NearestN ranks venues by great-circle distance from the user and
// returns the closest n. Without a coordinate there is no ranking: the
// first n in input order come back. Equal distances keep input order.
func NearestN(venues []domain.Venue, user *domain.Coords, n int) []domain.Venue {
	if user == nil {
		return truncate(venues, n)
	}
	out := make([]domain.Venue, len(venues))
	copy(out, venues)
	sort.SliceStable(out, func(i, j int) bool {
		return user.DistanceMeters(out[i].Coords()) < user.DistanceMeters(out[j].Coords())
	})
	return truncate(out, n)
}

// TopRatedN returns the n best-rated venues, descending average rating,
// ties keeping input order.
func TopRatedN(venues []domain.Venue, n int) []domain.Venue {
	out := make([]domain.Venue, len(venues))
	copy(out, venues)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating() > out[j].AverageRating()
	})
	return truncate(out, n)
}

func truncate(vs []domain.Venue, n int) []domain.Venue {
	if n < 0 || n > len(vs) {
		n = len(vs)
	}
	out := make([]domain.Venue, n)
	copy(out, vs[:n])
	return out
}
