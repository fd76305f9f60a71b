package ports

import (
	"context"

	"github.com/moviehub/rental-system/internal/core/domain"
)

// MovieRepository defines persistence operations for the movie catalog.
// Lookups return domain.ErrMovieNotFound when the title is absent;
// Create returns domain.ErrDuplicateTitle on a duplicate title.
type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, title string) error
	List(ctx context.Context) ([]*domain.Movie, error)
}
