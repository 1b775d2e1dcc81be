package main

import (
	"context"
	"errors"
	"fmt"
	"moviesapi/httpserver"
	"moviesapi/memory"
	"moviesapi/movie"
	"moviesapi/pkg/config"
	"moviesapi/pkg/logger"
	"moviesapi/pkg/sentry"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run owns every deferred cleanup so that failures still flush logs and events.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return fmt.Errorf("cannot init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if err := sentry.Init(cfg); err != nil {
		log.Errorw("cannot init sentry", "error", err)
		return err
	}
	defer sentrygo.Flush(sentry.FlushTime)

	seed, err := loadSeed(cfg.SeedFile)
	if err != nil {
		log.Errorw("cannot load seed movies", "file", cfg.SeedFile, "error", err)
		sentry.Error(err)
		return err
	}

	repo := memory.NewMovieRepository(seed)
	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(repo)),
	)
	if err != nil {
		log.Errorw("cannot create server", "error", err)
		sentry.Error(err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("server started", "addr", server.Addr, "movies", repo.Len())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			sentry.Error(err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdown(server, log, time.Duration(cfg.ShutdownTimeout)*time.Second)

	return nil
}

func loadSeed(path string) ([]movie.Movie, error) {
	if path == "" {
		return movie.Seed(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return movie.ReadCSV(f)
}

func shutdown(server *httpserver.Server, log *zap.SugaredLogger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
		sentry.Warning("graceful shutdown failed: " + err.Error())
		return
	}
	log.Info("server stopped")
}
