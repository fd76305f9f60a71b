package ports

import "context"

// AddMovieInput carries all data needed to add a movie to the catalog.
type AddMovieInput struct {
	Title  string
	Price  int64
	Rating int
}

// EditMovieInput overwrites the price and rating of an existing movie.
type EditMovieInput struct {
	Title  string
	Price  int64
	Rating int
}

// MovieSummary is the catalog view returned by ListMovies.
type MovieSummary struct {
	Title     string
	Price     int64
	Rating    int
	Purchased bool
}

// RentalQuote is returned by RentMovie. Renting never mutates the movie:
// there is no record of who rented, for how long, or when.
type RentalQuote struct {
	Title     string
	Days      int
	TotalCost int64
}

// PurchaseResult is returned by BuyMovie.
type PurchaseResult struct {
	Title string
	Price int64
}

// RentalService defines the caller-gated catalog operations. Admin-only:
// AddMovie, EditMovie, RemoveMovie. Any logged-in caller: RentMovie,
// BuyMovie, ListMovies.
type RentalService interface {
	AddMovie(ctx context.Context, caller Caller, input AddMovieInput) (*MovieSummary, error)
	EditMovie(ctx context.Context, caller Caller, input EditMovieInput) (*MovieSummary, error)
	RemoveMovie(ctx context.Context, caller Caller, title string) error
	RentMovie(ctx context.Context, caller Caller, title string, days int) (*RentalQuote, error)
	BuyMovie(ctx context.Context, caller Caller, title string) (*PurchaseResult, error)
	ListMovies(ctx context.Context, caller Caller) ([]MovieSummary, error)
}
