package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"farmtrack/database"
	"farmtrack/pkg/metrics"
)

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	if cfg.JWTSecret == "" {
		// tokens will not survive a restart
		cfg.JWTSecret = uuid.NewString()
		logger.Warn("JWT_SECRET not set, using a random secret")
	}

	e := newServer(store, cfg, logger, metrics.New())

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("port", cfg.Port), zap.String("driver", store.Driver), zap.Bool("auth_required", cfg.AuthRequired))
		errc <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
