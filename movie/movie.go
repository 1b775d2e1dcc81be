package movie

import "moviesapi/errs"

var (
	ErrGenreRequired   = errs.Errorf(errs.ENOTFOUND, "Please enter genre")
	ErrIncompleteMovie = errs.Errorf(errs.ENOTFOUND, "Please complete all appropriate fields to add new movie")
)

// InvalidPositionError reports a position outside a collection of the given length.
func InvalidPositionError(length int) *errs.Error {
	return errs.Errorf(errs.ENOTFOUND, "Invalid id, it should be b/w 0 to %d.", length-1)
}

// Movie has no identifier; its position in the collection addresses it.
type Movie struct {
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Year     int    `json:"year"`
	Director string `json:"director"`
}

func (m Movie) Validate() error {
	if m.Title == "" || m.Genre == "" || m.Year == 0 || m.Director == "" {
		return ErrIncompleteMovie
	}
	return nil
}

// Seed returns the collection a fresh process starts with.
func Seed() []Movie {
	return []Movie{
		{Title: "The Departed", Genre: "Crime", Year: 2006, Director: "Martin Scorsese"},
		{Title: "Memento", Genre: "Thriller", Year: 2000, Director: "Christopher Nolan"},
		{Title: "The Matrix", Genre: "Sci-Fi", Year: 1999, Director: "The Wachowskis"},
		{Title: "Inception", Genre: "Sci-Fi", Year: 2010, Director: "Christopher Nolan"},
		{Title: "The Godfather", Genre: "Drama", Year: 1972, Director: "Francis Ford Coppola"},
		{Title: "Pulp Fiction", Genre: "Crime", Year: 1994, Director: "Quentin Tarantino"},
		{Title: "The Dark Knight", Genre: "Action", Year: 2008, Director: "Christopher Nolan"},
	}
}
