package catalog

import (
	"time"

	"github.com/google/uuid"

	"sporthub/internal/domain"
)

// Mock review generation is a pure function of (category, venue name):
// the venue name's UTF-8 byte sum seeds every selection, so the same
// venue always carries the same three reviews across runs. The byte-sum
// seed can collide for names with the same byte multiset; that matches
// the shipped behavior and is kept for compatibility.

// authorNames is ordered; the index chosen by the seed is part of the
// determinism contract. First 12 Italian, last 12 international.
var authorNames = [24]string{
	"Luca", "Marco", "Giulia", "Sofia", "Alessandro", "Francesca",
	"Matteo", "Chiara", "Davide", "Elena", "Fabio", "Valentina",
	"John", "Sarah", "Liam", "Emma", "Hans", "Chloe",
	"Hiro", "Fatima", "Carlos", "Yuki", "Amara", "Sven",
}

const surnameInitials = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type scoreTier int

const (
	tierPoor      scoreTier = iota // score <= 2
	tierAverage                    // score == 3
	tierGood                       // score == 4
	tierExcellent                  // score >= 5
)

func tierFor(score int) scoreTier {
	switch {
	case score >= 5:
		return tierExcellent
	case score == 4:
		return tierGood
	case score == 3:
		return tierAverage
	default:
		return tierPoor
	}
}

type poolKey struct {
	cat  domain.Category
	tier scoreTier
}

// commentPools is the single source of truth for review text, keyed by
// (category, tier) and built once at init. Excellent and good tiers are
// category-specific; average and poor are shared across categories.
var commentPools = map[poolKey][]string{}

var excellentComments = map[domain.Category][]string{
	domain.CategorySoccer: {
		"The best turf in Naples!", "Perfect lighting for night matches.",
		"Well maintained and clean.", "Great facility for 5v5.",
	},
	domain.CategoryBasketball: {
		"The rims are perfect, love it!", "Amazing court grip.",
		"Great atmosphere at sunset.", "Best playground in the city.",
	},
	domain.CategoryTennis: {
		"Clay court is in perfect condition.", "Very professional staff.",
		"Quiet and exclusive environment.", "Great bounce consistency.",
	},
	domain.CategoryVolleyball: {
		"High ceiling and perfect floor.", "Professional net equipment.",
		"Clean locker rooms.", "Best gym for volleyball.",
	},
	domain.CategoryRunning: {
		"Breathtaking view while running!", "Perfect flat surface for sprints.",
		"Safe and peaceful area.", "Clean air and good vibes.",
	},
}

var goodComments = map[domain.Category][]string{
	domain.CategorySoccer: {
		"Good pitch, but parking is hard.", "Nice field, changing rooms are ok.",
		"Solid synthetic grass.",
	},
	domain.CategoryBasketball: {
		"Good hoops, floor a bit dusty.", "Nice court but crowded.",
		"Good for a quick game.",
	},
	domain.CategoryTennis: {
		"Good value for money.", "Nice courts, friendly people.",
		"Lighting could be better.",
	},
	domain.CategoryVolleyball: {
		"Decent gym for training.", "Good net, but a bit hot inside.",
		"Spacious court.",
	},
	domain.CategoryRunning: {
		"Nice path, but some pedestrians.", "Good route, a bit short.",
		"Scenic but sometimes windy.",
	},
}

var averageComments = []string{
	"It's okay for a casual game.", "Average facilities, nothing special.",
	"Decent, but needs maintenance.", "Crowded during weekends.",
	"Acceptable, but could be cleaner.",
}

var poorComments = []string{
	"Not recommended.", "Needs urgent renovation.",
	"Too expensive for the quality.", "Bad experience.",
}

func init() {
	for _, c := range domain.AllCategories() {
		commentPools[poolKey{c, tierExcellent}] = excellentComments[c]
		commentPools[poolKey{c, tierGood}] = goodComments[c]
		commentPools[poolKey{c, tierAverage}] = averageComments
		commentPools[poolKey{c, tierPoor}] = poorComments
	}
}

func nameSeed(name string) int {
	seed := 0
	for _, b := range []byte(name) {
		seed += int(b)
	}
	return seed
}

// GenerateReviews produces the three stable mock reviews for a venue.
// Review IDs and timestamps are per-instance; author, comment and score
// are fully determined by the inputs.
func GenerateReviews(cat domain.Category, venueName string) []domain.Review {
	seed := nameSeed(venueName)
	reviews := make([]domain.Review, 0, 3)

	for i := 0; i < 3; i++ {
		cs := seed + i*100

		var score int
		switch i {
		case 0:
			score = 4 + cs%2
		case 1:
			score = 3 + cs%2
		default:
			score = 2 + cs%4
		}

		author := authorNames[cs%len(authorNames)] +
			" " + string(surnameInitials[cs%len(surnameInitials)]) + "."

		pool := commentPools[poolKey{cat, tierFor(score)}]
		comment := pool[cs%len(pool)]

		reviews = append(reviews, domain.Review{
			ID:        uuid.NewString(),
			Author:    author,
			Comment:   comment,
			Score:     score,
			CreatedAt: time.Now(),
		})
	}
	return reviews
}
