package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mertsakar/wantmart/internal/logging"
	"github.com/mertsakar/wantmart/internal/mockapi"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := mockapi.LoadConfig()
	logger := logging.New(os.Stdout, cfg.LogLevel)
	ctx := context.Background()

	db, err := mockapi.OpenDatabase(cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "database_open_failed", "error", err)
		os.Exit(1)
	}
	if err := mockapi.Seed(db); err != nil {
		logger.Error(ctx, "seed_failed", "error", err)
		os.Exit(1)
	}

	_, e := mockapi.New(db, cfg.JWTSecret, logger)

	go func() {
		logger.Info(ctx, "server_starting", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "server_failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "shutdown_failed", "error", err)
	}
	logger.Info(ctx, "server_stopped")
}
