package domain

import (
	"math"
	"time"
)

// Category is one of the five sports a venue can belong to.
type Category string

const (
	CategorySoccer     Category = "soccer"
	CategoryVolleyball Category = "volleyball"
	CategoryBasketball Category = "basketball"
	CategoryTennis     Category = "tennis"
	CategoryRunning    Category = "running"
)

// AllCategories returns every category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategorySoccer,
		CategoryVolleyball,
		CategoryBasketball,
		CategoryTennis,
		CategoryRunning,
	}
}

var displayNames = map[Category]string{
	CategorySoccer:     "Soccer",
	CategoryVolleyball: "Volleyball",
	CategoryBasketball: "Basketball",
	CategoryTennis:     "Tennis",
	CategoryRunning:    "Running",
}

// DisplayName returns the capitalized label shown to users ("Soccer", ...).
func (c Category) DisplayName() string { return displayNames[c] }

func (c Category) Valid() bool {
	_, ok := displayNames[c]
	return ok
}

// ParseCategory accepts both the wire form ("tennis") and the display
// form ("Tennis"). ok is false for anything else.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if s == string(c) || s == c.DisplayName() {
			return c, true
		}
	}
	return "", false
}

type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Comment   string    `json:"comment"`
	Score     int       `json:"score"` // 1..5
	CreatedAt time.Time `json:"created_at"`
	Mine      bool      `json:"mine"` // user-authored vs system-generated
}

type Venue struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Address     *string  `json:"address,omitempty"`
	ImageName   string   `json:"image_name"`
	Description string   `json:"description"`

	// MyReview is the single user-authored review, nil until written.
	MyReview *Review `json:"my_review,omitempty"`
	// MockReviews holds exactly 3 generated reviews after catalog load.
	MockReviews []Review `json:"mock_reviews"`
	IsFavorite  bool     `json:"is_favorite"`
}

func (v Venue) Coords() Coords { return Coords{Lat: v.Lat, Lon: v.Lon} }

// AverageRating is the mean of mock review scores plus the user's own
// review when present, rounded to one decimal. Zero reviews yields 0.0.
func (v Venue) AverageRating() float64 {
	total, count := 0, 0
	for _, r := range v.MockReviews {
		total += r.Score
		count++
	}
	if v.MyReview != nil {
		total += v.MyReview.Score
		count++
	}
	if count == 0 {
		return 0.0
	}
	avg := float64(total) / float64(count)
	return math.Round(avg*10) / 10
}

func (v Venue) TotalReviews() int {
	n := len(v.MockReviews)
	if v.MyReview != nil {
		n++
	}
	return n
}
