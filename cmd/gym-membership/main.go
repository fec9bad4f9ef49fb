// Package main содержит точку входа консоли участников спортзала.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	gymmembership "github.com/magabrotheeeer/gym-membership/internal/app/gym-membership"
	"github.com/magabrotheeeer/gym-membership/internal/config"
)

const envLocal = "local"

func main() {
	cfg := config.MustLoad()
	logger := setupLogger(cfg.Env)

	logger.Info("starting gym-membership", slog.String("env", cfg.Env), slog.String("storage", cfg.StoragePath))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := gymmembership.New(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("failed to initialize app", slog.Any("err", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("app stopped with error", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("gym-membership stopped")
}

// setupLogger пишет логи в stderr, чтобы не смешивать их с выводом консоли.
func setupLogger(env string) *slog.Logger {
	if env == envLocal {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
