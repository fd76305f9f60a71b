package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviehub/rental-system/internal/core/domain"
	"github.com/moviehub/rental-system/internal/core/ports"
)

// RentalService implements the caller-gated catalog operations.
type RentalService struct {
	movies ports.MovieRepository
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewRentalService(movies ports.MovieRepository, users ports.UserRepository, log zerolog.Logger) *RentalService {
	return &RentalService{movies: movies, users: users, log: log}
}

// authorize re-reads the caller's stored record and enforces the login and
// role requirements. Authorization always runs before any domain validation.
func (s *RentalService) authorize(ctx context.Context, caller ports.Caller, needAdmin bool) (*domain.User, error) {
	if caller.Anonymous() {
		return nil, domain.ErrNotLoggedIn
	}

	user, err := s.users.FindByEmail(ctx, caller.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotLoggedIn
		}
		return nil, err
	}
	if !user.LoggedIn {
		return nil, domain.ErrNotLoggedIn
	}
	if needAdmin && !user.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	return user, nil
}

// AddMovie stores a new catalog entry. The title must be unique, the rating
// within bounds, and the price non-negative; the duplicate check runs first.
func (s *RentalService) AddMovie(ctx context.Context, caller ports.Caller, input ports.AddMovieInput) (*ports.MovieSummary, error) {
	if _, err := s.authorize(ctx, caller, true); err != nil {
		return nil, err
	}

	_, err := s.movies.FindByTitle(ctx, input.Title)
	if err == nil {
		return nil, domain.ErrDuplicateTitle
	}
	if !errors.Is(err, domain.ErrMovieNotFound) {
		return nil, err
	}

	if !domain.ValidRating(input.Rating) {
		return nil, domain.ErrInvalidRating
	}
	if input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	now := time.Now().UTC()
	movie := &domain.Movie{
		Title:     input.Title,
		Price:     input.Price,
		Rating:    input.Rating,
		Purchased: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info().Str("title", movie.Title).Int64("price", movie.Price).Int("rating", movie.Rating).
		Str("added_by", caller.Email).Msg("movie added")

	return summarize(movie), nil
}

// EditMovie overwrites the price and rating of an existing movie in place.
func (s *RentalService) EditMovie(ctx context.Context, caller ports.Caller, input ports.EditMovieInput) (*ports.MovieSummary, error) {
	if _, err := s.authorize(ctx, caller, true); err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByTitle(ctx, input.Title)
	if err != nil {
		return nil, err
	}

	if !domain.ValidRating(input.Rating) {
		return nil, domain.ErrInvalidRating
	}
	if input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	movie.Price = input.Price
	movie.Rating = input.Rating
	movie.UpdatedAt = time.Now().UTC()
	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info().Str("title", movie.Title).Int64("price", movie.Price).Int("rating", movie.Rating).
		Str("edited_by", caller.Email).Msg("movie updated")

	return summarize(movie), nil
}

// RemoveMovie deletes a movie from the catalog.
func (s *RentalService) RemoveMovie(ctx context.Context, caller ports.Caller, title string) error {
	if _, err := s.authorize(ctx, caller, true); err != nil {
		return err
	}

	if err := s.movies.Delete(ctx, title); err != nil {
		return err
	}

	s.log.Info().Str("title", title).Str("removed_by", caller.Email).Msg("movie removed")
	return nil
}

// RentMovie quotes a rental: price times days. Renting is stateless and
// does not touch the movie record.
func (s *RentalService) RentMovie(ctx context.Context, caller ports.Caller, title string, days int) (*ports.RentalQuote, error) {
	if _, err := s.authorize(ctx, caller, false); err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	quote := &ports.RentalQuote{
		Title:     movie.Title,
		Days:      days,
		TotalCost: movie.Price * int64(days),
	}

	s.log.Info().Str("title", title).Int("days", days).Int64("total", quote.TotalCost).
		Str("rented_by", caller.Email).Msg("movie rented")

	return quote, nil
}

// BuyMovie marks the movie purchased on the first call and fails with
// ErrAlreadyPurchased on any repeat, never charging twice.
func (s *RentalService) BuyMovie(ctx context.Context, caller ports.Caller, title string) (*ports.PurchaseResult, error) {
	if _, err := s.authorize(ctx, caller, false); err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if movie.Purchased {
		return nil, domain.ErrAlreadyPurchased
	}

	movie.Purchased = true
	movie.UpdatedAt = time.Now().UTC()
	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info().Str("title", title).Int64("price", movie.Price).
		Str("bought_by", caller.Email).Msg("movie purchased")

	return &ports.PurchaseResult{Title: movie.Title, Price: movie.Price}, nil
}

// ListMovies returns the whole catalog for any logged-in caller.
func (s *RentalService) ListMovies(ctx context.Context, caller ports.Caller) ([]ports.MovieSummary, error) {
	if _, err := s.authorize(ctx, caller, false); err != nil {
		return nil, err
	}

	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, domain.ErrNoMovies
	}

	out := make([]ports.MovieSummary, 0, len(movies))
	for _, m := range movies {
		out = append(out, *summarize(m))
	}
	return out, nil
}

func summarize(m *domain.Movie) *ports.MovieSummary {
	return &ports.MovieSummary{
		Title:     m.Title,
		Price:     m.Price,
		Rating:    m.Rating,
		Purchased: m.Purchased,
	}
}
