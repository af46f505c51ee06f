//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	httpserver "sporthub/internal/adapters/http_server"
	redisad "sporthub/internal/adapters/redis"
	"sporthub/internal/app"
	"sporthub/internal/catalog"
	"sporthub/internal/domain"
)

func newServer(t *testing.T) (*httptest.Server, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store := catalog.New(nil)
	store.Restore(context.Background())
	cache := redisad.NewFromClient(client)
	sessions := redisad.NewSessionStoreFromClient(client)

	q := app.NewQueryService(store, cache, time.Minute, 8)
	c := app.NewCommandService(store, cache)
	s := app.NewSessionService(sessions, c)

	srv := httpserver.New(0, 0)
	srv.MountHandlers(&httpserver.Handlers{Q: q, C: c, S: s})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts, mr
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()
	var v T
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestHTTP_EndToEnd_SessionAndFavorites(t *testing.T) {
	ts, mr := newServer(t)

	// Login persists the session blob in redis.
	res := do(t, http.MethodPost, ts.URL+"/v1/session", map[string]string{"name": "Mario", "surname": "Rossi"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("login status %d", res.StatusCode)
	}
	u := decode[domain.User](t, res)
	if u.Name != "Mario" || u.Avatar != domain.DefaultAvatar {
		t.Fatalf("unexpected user: %+v", u)
	}
	if !mr.Exists("sporthub:session") {
		t.Fatalf("session not persisted in redis")
	}

	// Favorite two venues, leave a review on one.
	for _, id := range []int64{1, 5} {
		res = do(t, http.MethodPut, fmt.Sprintf("%s/v1/venues/%d/favorite", ts.URL, id), nil)
		if res.StatusCode != http.StatusNoContent {
			t.Fatalf("favorite %d status %d", id, res.StatusCode)
		}
		res.Body.Close()
	}
	res = do(t, http.MethodPut, ts.URL+"/v1/venues/1/review", map[string]any{"comment": "Great turf.", "score": 5})
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("review status %d", res.StatusCode)
	}
	res.Body.Close()

	favs := decode[[]domain.Venue](t, do(t, http.MethodGet, ts.URL+"/v1/favorites", nil))
	if len(favs) != 2 || favs[0].ID != 1 || favs[1].ID != 5 {
		t.Fatalf("unexpected favorites: %+v", favs)
	}

	// The user's review leads the list and carries their full name.
	reviews := decode[[]domain.Review](t, do(t, http.MethodGet, ts.URL+"/v1/venues/1/reviews", nil))
	if len(reviews) != 4 || !reviews[0].Mine || reviews[0].Author != "Mario Rossi" {
		t.Fatalf("unexpected reviews: %+v", reviews)
	}

	// Home sections come back capped at the section limit.
	feed := decode[domain.HomeFeed](t, do(t, http.MethodGet, ts.URL+"/v1/home?lat=40.8518&lon=14.2681", nil))
	if len(feed.AroundYou) != 8 || len(feed.TopRated) != 8 {
		t.Fatalf("unexpected feed sizes: %d/%d", len(feed.AroundYou), len(feed.TopRated))
	}

	// Logout drops the session key and clears every favorite.
	res = do(t, http.MethodDelete, ts.URL+"/v1/session", nil)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("logout status %d", res.StatusCode)
	}
	res.Body.Close()

	if mr.Exists("sporthub:session") {
		t.Fatalf("session key survived logout")
	}
	res = do(t, http.MethodGet, ts.URL+"/v1/session", nil)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("session after logout status %d", res.StatusCode)
	}
	res.Body.Close()

	favs = decode[[]domain.Venue](t, do(t, http.MethodGet, ts.URL+"/v1/favorites", nil))
	if len(favs) != 0 {
		t.Fatalf("favorites survived logout: %+v", favs)
	}

	// The review is the user's content but not a favorite flag; it stays.
	reviews = decode[[]domain.Review](t, do(t, http.MethodGet, ts.URL+"/v1/venues/1/reviews", nil))
	if len(reviews) != 4 {
		t.Fatalf("review list changed on logout: %+v", reviews)
	}
}

func TestHTTP_VenueListingAndErrors(t *testing.T) {
	ts, _ := newServer(t)

	all := decode[[]domain.Venue](t, do(t, http.MethodGet, ts.URL+"/v1/venues", nil))
	if len(all) != 40 {
		t.Fatalf("expected 40 venues, got %d", len(all))
	}

	tennis := decode[[]domain.Venue](t, do(t, http.MethodGet, ts.URL+"/v1/venues?category=tennis", nil))
	if len(tennis) != 8 {
		t.Fatalf("expected 8 tennis venues, got %d", len(tennis))
	}
	for _, v := range tennis {
		if v.Category != domain.CategoryTennis {
			t.Fatalf("wrong category in filtered list: %+v", v)
		}
	}

	res := do(t, http.MethodGet, ts.URL+"/v1/venues?category=chess", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad category status %d", res.StatusCode)
	}
	res.Body.Close()

	res = do(t, http.MethodGet, ts.URL+"/v1/venues/999", nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing venue status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("problem content type: %s", ct)
	}
	res.Body.Close()

	res = do(t, http.MethodGet, ts.URL+"/v1/home?lat=abc&lon=14", nil)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad coords status %d", res.StatusCode)
	}
	res.Body.Close()
}

func TestHTTP_ETagShortCircuit(t *testing.T) {
	ts, _ := newServer(t)

	res := do(t, http.MethodGet, ts.URL+"/v1/venues/1", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	etag := res.Header.Get("ETag")
	res.Body.Close()
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/venues/1", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", res2.StatusCode)
	}
}
