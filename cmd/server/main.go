package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/memberhub/auth-system/internal/api"
	"github.com/memberhub/auth-system/internal/core/service"
	"github.com/memberhub/auth-system/internal/infrastructure/db/mongo"
	"github.com/memberhub/auth-system/internal/infrastructure/db/redis"
	"github.com/memberhub/auth-system/internal/pkg/config"
	"github.com/memberhub/auth-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Wiring ---
	userRepo := mongo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure user indexes failed")
	}

	sessionStore := redis.NewSessionStore(rdb)
	authService := service.NewAuthService(userRepo, sessionStore, service.NewBcryptHasher(), cfg.SessionTTL)

	if cfg.SeedAdmin {
		if err := authService.SeedAdmin(ctx); err != nil {
			log.Fatal().Err(err).Msg("admin seed failed")
		}
		log.Warn().Msg("bootstrap admin ensured; rotate the default credential before production use")
	}

	e := api.NewRouter(db, rdb, authService, sessionStore, log)

	// --- Serve ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
