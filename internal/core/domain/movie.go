package domain

import (
	"errors"
	"time"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 10
)

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrDuplicateTitle   = errors.New("movie with this title already exists")
	ErrInvalidRating    = errors.New("rating must be between 1 and 10")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrAlreadyPurchased = errors.New("movie already purchased")
	ErrNoMovies         = errors.New("no movies available yet")
)

// Movie is a catalog entry. The title is the unique key; matching is
// case-sensitive, exactly as stored. Price is the daily rental price and
// the one-off purchase price, in whole dollars.
type Movie struct {
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Rating    int       `json:"rating"`
	Purchased bool      `json:"purchased"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidRating reports whether r lies within [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
