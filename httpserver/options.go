package httpserver

import (
	"errors"
	"moviesapi/movie"
	"moviesapi/pkg/config"

	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		if cfg == nil {
			return errors.New("httpserver: nil config")
		}
		s.Config = cfg
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l == nil {
			return errors.New("httpserver: nil logger")
		}
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}
