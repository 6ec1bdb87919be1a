package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pondside/fishing-expedition-backend/internal/config"
	"github.com/pondside/fishing-expedition-backend/internal/engine"
	"github.com/pondside/fishing-expedition-backend/internal/httpapi"
	"github.com/pondside/fishing-expedition-backend/internal/logging"
	"github.com/pondside/fishing-expedition-backend/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed := cfg.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	resolver := engine.NewResolver(rand.New(rand.NewSource(seed)))

	s := session.New(ctx, session.Config{
		RoundTicks: cfg.RoundSeconds,
		TickEvery:  cfg.TickInterval,
	}, resolver, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: httpapi.SetupRoutes(s, logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening",
		zap.Int("port", cfg.Port),
		zap.Int("round_seconds", cfg.RoundSeconds))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("shut down")
}
