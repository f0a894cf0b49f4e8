package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Danjes623/Inventario-SIGI/internal/api"
	"github.com/Danjes623/Inventario-SIGI/internal/core/service"
	"github.com/Danjes623/Inventario-SIGI/internal/infrastructure/config"
	mongostore "github.com/Danjes623/Inventario-SIGI/internal/infrastructure/db/mongo"
	redisstore "github.com/Danjes623/Inventario-SIGI/internal/infrastructure/db/redis"
	"github.com/Danjes623/Inventario-SIGI/internal/infrastructure/session"
	"github.com/Danjes623/Inventario-SIGI/pkg/logger"
)

// @title Inventario SIGI API
// @version 1.0
// @description Inventory management API: authentication, sessions, and product catalog.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongostore.NewUserRepository(db)
	sessionRepo := mongostore.NewSessionRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := sessionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("session index creation failed")
	}

	// Sessions do not survive a restart: purge whatever the previous run
	// left behind, then keep the collection tight with the sweeper.
	sessionService := service.NewSessionService(sessionRepo, log)
	if _, err := sessionService.PurgeAll(ctx); err != nil {
		log.Warn().Err(err).Msg("startup session purge failed")
	}
	session.NewSweeper(sessionRepo, 0, log).Start(ctx)

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
