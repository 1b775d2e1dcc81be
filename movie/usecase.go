package movie

import (
	"context"
	"strings"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	FilterByGenre(ctx context.Context, genre string) ([]Movie, error)
	GetMovie(ctx context.Context, pos int) (Movie, error)
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, pos int, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, pos int) error
}

// Repository owns the ordered collection. Methods taking a position must
// range check it and return InvalidPositionError when it is out of bounds.
type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
	GetByPosition(ctx context.Context, pos int) (Movie, error)
	AppendMovie(ctx context.Context, m Movie) error
	ReplaceMovie(ctx context.Context, pos int, m Movie) error
	RemoveMovie(ctx context.Context, pos int) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

// FilterByGenre matches genres case-insensitively. The result is never nil.
func (uc *Usecase) FilterByGenre(ctx context.Context, genre string) ([]Movie, error) {
	if genre == "" {
		return nil, ErrGenreRequired
	}

	movies, err := uc.r.AllMovies(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if strings.EqualFold(m.Genre, genre) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (uc *Usecase) GetMovie(ctx context.Context, pos int) (Movie, error) {
	return uc.r.GetByPosition(ctx, pos)
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	if err := uc.r.AppendMovie(ctx, m); err != nil {
		return Movie{}, err
	}
	return m, nil
}

// UpdateMovie replaces the whole record; fields are not validated.
func (uc *Usecase) UpdateMovie(ctx context.Context, pos int, m Movie) (Movie, error) {
	if err := uc.r.ReplaceMovie(ctx, pos, m); err != nil {
		return Movie{}, err
	}
	return m, nil
}

func (uc *Usecase) DeleteMovie(ctx context.Context, pos int) error {
	return uc.r.RemoveMovie(ctx, pos)
}
