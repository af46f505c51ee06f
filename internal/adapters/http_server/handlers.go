package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"sporthub/internal/app"
	"sporthub/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
	S *app.SessionService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/venues", h.listVenues)
	s.mux.Get("/v1/venues/{id}", h.getVenue)
	s.mux.Get("/v1/venues/{id}/reviews", h.listReviews)
	s.mux.Put("/v1/venues/{id}/favorite", h.putFavorite)
	s.mux.Delete("/v1/venues/{id}/favorite", h.deleteFavorite)
	s.mux.Put("/v1/venues/{id}/review", h.putReview)
	s.mux.Delete("/v1/venues/{id}/review", h.deleteReview)
	s.mux.Get("/v1/favorites", h.listFavorites)
	s.mux.Get("/v1/home", h.home)

	s.mux.Get("/v1/session", h.getSession)
	s.mux.Post("/v1/session", h.login)
	s.mux.Post("/v1/session/social", h.loginSocial)
	s.mux.Delete("/v1/session", h.logout)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached answers with an ETag, short-circuiting to 304 when the
// client already holds the current version.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func venueID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// ---- venue reads ----

func (h *Handlers) listVenues(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f domain.VenueFilter
	f.Query = q.Get("q")
	for _, raw := range q["category"] {
		c, ok := domain.ParseCategory(raw)
		if !ok {
			writeProblem(w, http.StatusBadRequest, "Invalid category", "unknown category "+raw)
			return
		}
		f.Categories = append(f.Categories, c)
	}
	writeCached(w, r, h.Q.Venues(r.Context(), f))
}

func (h *Handlers) getVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := venueID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	v, err := h.Q.VenueByID(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "venue not found")
		return
	}
	writeCached(w, r, v)
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := venueID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	out, err := h.Q.Reviews(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "venue not found")
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) listFavorites(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.Favorites(r.Context()))
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var user *domain.Coords
	latS, lonS := q.Get("lat"), q.Get("lon")
	if latS != "" || lonS != "" {
		lat, errLat := strconv.ParseFloat(latS, 64)
		lon, errLon := strconv.ParseFloat(lonS, 64)
		if errLat != nil || errLon != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid coordinates", "lat and lon must both be numbers")
			return
		}
		user = &domain.Coords{Lat: lat, Lon: lon}
	}

	var cat *domain.Category
	if raw := q.Get("category"); raw != "" {
		c, ok := domain.ParseCategory(raw)
		if !ok {
			writeProblem(w, http.StatusBadRequest, "Invalid category", "unknown category "+raw)
			return
		}
		cat = &c
	}

	writeCached(w, r, h.Q.Home(r.Context(), user, cat))
}

// ---- per-venue mutations ----

func (h *Handlers) putFavorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, true)
}

func (h *Handlers) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, false)
}

func (h *Handlers) setFavorite(w http.ResponseWriter, r *http.Request, value bool) {
	id, ok := venueID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if _, err := h.Q.VenueByID(r.Context(), id); err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "venue not found")
		return
	}
	h.C.SetFavorite(r.Context(), id, value)
	w.WriteHeader(http.StatusNoContent)
}

type reviewRequest struct {
	Comment string `json:"comment"`
	Score   int    `json:"score"`
}

func (h *Handlers) putReview(w http.ResponseWriter, r *http.Request) {
	id, ok := venueID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if _, err := h.Q.VenueByID(r.Context(), id); err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "venue not found")
		return
	}
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON with comment and score")
		return
	}
	author := "You"
	if u := h.S.Current(); u != nil {
		author = u.FullName()
	}
	if err := h.C.SetMyReview(r.Context(), id, author, req.Comment, req.Score); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid score", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := venueID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if _, err := h.Q.VenueByID(r.Context(), id); err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "venue not found")
		return
	}
	h.C.ClearMyReview(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// ---- session ----

type loginRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type socialLoginRequest struct {
	Provider string `json:"provider"`
}

func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	u := h.S.Current()
	if u == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON with name and surname")
		return
	}
	u := h.S.Login(r.Context(), req.Name, req.Surname)
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handlers) loginSocial(w http.ResponseWriter, r *http.Request) {
	var req socialLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Provider == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be JSON with provider")
		return
	}
	u := h.S.LoginSocial(r.Context(), req.Provider)
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.S.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
