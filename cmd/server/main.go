package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"nestlog/internal/app/server/api"
	"nestlog/internal/app/server/config"
	"nestlog/internal/infrastructure/storage/postgres"
	"nestlog/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	storage, err := postgres.New(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(storage, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("address", cfg.Server.RunAddress))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
