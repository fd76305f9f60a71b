package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/moviehub/rental-system/internal/core/domain"
)

// MovieRepository keeps the catalog in a map keyed by title.
type MovieRepository struct {
	mu     sync.RWMutex
	movies map[string]*domain.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{movies: make(map[string]*domain.Movie)}
}

func (r *MovieRepository) Create(_ context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.movies[movie.Title]; exists {
		return domain.ErrDuplicateTitle
	}
	clone := *movie
	r.movies[movie.Title] = &clone
	return nil
}

func (r *MovieRepository) FindByTitle(_ context.Context, title string) (*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.movies[title]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *MovieRepository) Update(_ context.Context, movie *domain.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[movie.Title]; !ok {
		return domain.ErrMovieNotFound
	}
	clone := *movie
	r.movies[movie.Title] = &clone
	return nil
}

func (r *MovieRepository) Delete(_ context.Context, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[title]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(r.movies, title)
	return nil
}

func (r *MovieRepository) List(_ context.Context) ([]*domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		clone := *m
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}
