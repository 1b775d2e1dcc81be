package memory_test

import (
	"context"
	"moviesapi/errs"
	"moviesapi/memory"
	"moviesapi/movie"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovieRepository(t *testing.T) {
	seed := movie.Seed()
	repo := memory.NewMovieRepository(seed)

	seed[0].Title = "changed"

	got, err := repo.GetByPosition(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "The Departed", got.Title, "repository must not alias the seed slice")
	assert.Equal(t, 7, repo.Len())
}

func TestAllMovies(t *testing.T) {
	repo := memory.NewMovieRepository(movie.Seed())

	t.Run("returns collection in insertion order", func(t *testing.T) {
		movies, err := repo.AllMovies(context.Background())

		require.NoError(t, err)
		assert.Equal(t, movie.Seed(), movies)
	})

	t.Run("returns a copy", func(t *testing.T) {
		movies, err := repo.AllMovies(context.Background())
		require.NoError(t, err)

		movies[1].Title = "changed"

		got, err := repo.GetByPosition(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Memento", got.Title)
	})
}

func TestGetByPosition(t *testing.T) {
	repo := memory.NewMovieRepository(movie.Seed())

	tests := []struct {
		name    string
		pos     int
		wantErr bool
	}{
		{name: "first", pos: 0},
		{name: "last", pos: 6},
		{name: "equal to length", pos: 7, wantErr: true},
		{name: "far beyond length", pos: 100, wantErr: true},
		{name: "negative", pos: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByPosition(context.Background(), tt.pos)

			if tt.wantErr {
				assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
				assert.Equal(t, "Invalid id, it should be b/w 0 to 6.", errs.ErrorMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, movie.Seed()[tt.pos], got)
		})
	}
}

func TestAppendMovie(t *testing.T) {
	repo := memory.NewMovieRepository(movie.Seed())
	m := movie.Movie{Title: "Heat", Genre: "Crime", Year: 1995, Director: "Michael Mann"}

	err := repo.AppendMovie(context.Background(), m)

	require.NoError(t, err)
	assert.Equal(t, 8, repo.Len())
	got, err := repo.GetByPosition(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestReplaceMovie(t *testing.T) {
	t.Run("replaces only the target position", func(t *testing.T) {
		repo := memory.NewMovieRepository(movie.Seed())
		m := movie.Movie{Title: "Heat", Genre: "Crime", Year: 1995, Director: "Michael Mann"}

		err := repo.ReplaceMovie(context.Background(), 3, m)

		require.NoError(t, err)
		movies, _ := repo.AllMovies(context.Background())
		want := movie.Seed()
		want[3] = m
		assert.Equal(t, want, movies)
	})

	t.Run("rejects out of range position", func(t *testing.T) {
		repo := memory.NewMovieRepository(movie.Seed())

		err := repo.ReplaceMovie(context.Background(), 7, movie.Movie{})

		assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
		movies, _ := repo.AllMovies(context.Background())
		assert.Equal(t, movie.Seed(), movies)
	})
}

func TestRemoveMovie(t *testing.T) {
	t.Run("shifts later positions left", func(t *testing.T) {
		repo := memory.NewMovieRepository(movie.Seed())

		err := repo.RemoveMovie(context.Background(), 2)

		require.NoError(t, err)
		seed := movie.Seed()
		movies, _ := repo.AllMovies(context.Background())
		assert.Len(t, movies, 6)
		assert.Equal(t, seed[:2], movies[:2])
		assert.Equal(t, seed[3:], movies[2:])
	})

	t.Run("removes the last element", func(t *testing.T) {
		repo := memory.NewMovieRepository(movie.Seed())

		require.NoError(t, repo.RemoveMovie(context.Background(), 6))

		assert.Equal(t, 6, repo.Len())
	})

	t.Run("rejects removal from empty collection", func(t *testing.T) {
		repo := memory.NewMovieRepository(nil)

		err := repo.RemoveMovie(context.Background(), 0)

		assert.Equal(t, "Invalid id, it should be b/w 0 to -1.", errs.ErrorMessage(err))
	})
}

func TestConcurrentAccess(t *testing.T) {
	repo := memory.NewMovieRepository(nil)
	m := movie.Movie{Title: "Heat", Genre: "Crime", Year: 1995, Director: "Michael Mann"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.AppendMovie(context.Background(), m)
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.AllMovies(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}
