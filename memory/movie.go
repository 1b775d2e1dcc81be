package memory

import (
	"context"
	"moviesapi/movie"
	"sync"
)

// MovieRepository implements movie.Repository over a process-local slice.
// Each method holds the lock across its range check and access.
type MovieRepository struct {
	mu     sync.RWMutex
	movies []movie.Movie
}

// NewMovieRepository creates a repository holding a copy of seed.
func NewMovieRepository(seed []movie.Movie) *MovieRepository {
	movies := make([]movie.Movie, len(seed))
	copy(movies, seed)
	return &MovieRepository{movies: movies}
}

func (r *MovieRepository) AllMovies(_ context.Context) ([]movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]movie.Movie, len(r.movies))
	copy(movies, r.movies)
	return movies, nil
}

func (r *MovieRepository) GetByPosition(_ context.Context, pos int) (movie.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.checkPosition(pos); err != nil {
		return movie.Movie{}, err
	}
	return r.movies[pos], nil
}

func (r *MovieRepository) AppendMovie(_ context.Context, m movie.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movies = append(r.movies, m)
	return nil
}

func (r *MovieRepository) ReplaceMovie(_ context.Context, pos int, m movie.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkPosition(pos); err != nil {
		return err
	}
	r.movies[pos] = m
	return nil
}

func (r *MovieRepository) RemoveMovie(_ context.Context, pos int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkPosition(pos); err != nil {
		return err
	}
	r.movies = append(r.movies[:pos], r.movies[pos+1:]...)
	return nil
}

// Len reports the current collection size.
func (r *MovieRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movies)
}

// checkPosition must be called with the lock held.
func (r *MovieRepository) checkPosition(pos int) error {
	if pos < 0 || pos >= len(r.movies) {
		return movie.InvalidPositionError(len(r.movies))
	}
	return nil
}
