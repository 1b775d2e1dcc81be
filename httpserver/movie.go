package httpserver

import (
	"fmt"
	"moviesapi/errs"
	"moviesapi/movie"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes(g *echo.Group) {
	g.GET("", s.handleListMovies)
	g.GET("/filter", s.handleFilterMovies)
	g.GET("/:id", s.handleGetMovie)
	g.POST("", s.handleAddMovie)
	g.PUT("/:id", s.handleUpdateMovie)
	g.DELETE("/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description Get the whole collection in insertion order
// @Tags movies
// @Produce json
// @Success 200 {object} Envelope
// @Router /api/movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if err := s.requireMovieService(); err != nil {
		return err
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		return writeMessage(c, http.StatusOK, "Movies array is empty")
	}

	return writeData(c, http.StatusOK, "", movies)
}

// handleFilterMovies godoc
// @Summary Filter Movies
// @Description Case-insensitive exact match on genre
// @Tags movies
// @Produce json
// @Param genre query string true "Genre"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/movies/filter [get]
func (s *Server) handleFilterMovies(c echo.Context) error {
	if err := s.requireMovieService(); err != nil {
		return err
	}

	movies, err := s.MovieService.FilterByGenre(c.Request().Context(), c.QueryParam("genre"))
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		return writeData(c, http.StatusOK, "No such movie genre in the array", []movie.Movie{})
	}

	return writeData(c, http.StatusOK, fmt.Sprintf("%d movie(s) found", len(movies)), movies)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Get the movie at a zero-based position
// @Tags movies
// @Produce json
// @Param id path int true "Position"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	if err := s.requireMovieService(); err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), parsePosition(c.Param("id")))
	if err != nil {
		return err
	}

	return writeData(c, http.StatusOK, "", m)
}

// handleAddMovie godoc
// @Summary Create Movie
// @Description Append a movie to the collection
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body AddMovieRequest true "Movie Data"
// @Success 201 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	if err := s.requireMovieService(); err != nil {
		return err
	}

	var req AddMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		s.Logger.Debugw("rejected movie", "reason", errs.ErrorMessage(err))
		return movie.ErrIncompleteMovie
	}

	m, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	return writeData(c, http.StatusCreated, "New Movie Added", m)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Replace the movie at a position with the request body
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Position"
// @Param movie body UpdateMovieRequest true "Movie Data"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if err := s.requireMovieService(); err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	m, err := s.MovieService.UpdateMovie(c.Request().Context(), parsePosition(c.Param("id")), req.ToMovie())
	if err != nil {
		return err
	}

	return writeData(c, http.StatusOK, "Movie Updated", m)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Remove the movie at a position, shifting later ones down
// @Tags movies
// @Produce json
// @Param id path int true "Position"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /api/movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if err := s.requireMovieService(); err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), parsePosition(c.Param("id"))); err != nil {
		return err
	}

	return writeMessage(c, http.StatusOK, "Movie Deleted")
}

func (s *Server) requireMovieService() error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}
	return nil
}

// parsePosition maps anything that is not a base-10 integer to -1 so it
// fails the repository range check like any other out-of-range position.
func parsePosition(raw string) int {
	pos, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return pos
}
