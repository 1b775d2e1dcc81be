package httpserver

import (
	"moviesapi/movie"
)

type AddMovieRequest struct {
	Title    string `json:"title" validate:"required"`
	Genre    string `json:"genre" validate:"required"`
	Year     int    `json:"year" validate:"required"`
	Director string `json:"director" validate:"required"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:    r.Title,
		Genre:    r.Genre,
		Year:     r.Year,
		Director: r.Director,
	}
}

// UpdateMovieRequest carries no validation: the body replaces the record as sent.
type UpdateMovieRequest struct {
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Year     int    `json:"year"`
	Director string `json:"director"`
}

func (r UpdateMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:    r.Title,
		Genre:    r.Genre,
		Year:     r.Year,
		Director: r.Director,
	}
}
