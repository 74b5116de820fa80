package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/utafrali/ReviewDeskGo/internal/app"
	"github.com/utafrali/ReviewDeskGo/internal/config"
	"github.com/utafrali/ReviewDeskGo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	l := logger.New("reviewdesk", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, l)
	if err != nil {
		l.Error("startup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run()
	}()

	select {
	case <-ctx.Done():
		l.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			l.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if err := a.Shutdown(context.Background()); err != nil {
		l.Error("shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	l.Info("server stopped")
}
