// Package main is the entry point for the Don Louis Club loyalty backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"donlouis-club-backend/internal/cache"
	"donlouis-club-backend/internal/config"
	httpapi "donlouis-club-backend/internal/http"
	"donlouis-club-backend/internal/pkg/db"
	"donlouis-club-backend/internal/pkg/lock"
	"donlouis-club-backend/internal/realtime"
	"donlouis-club-backend/internal/repository"
	"donlouis-club-backend/internal/service"
	"donlouis-club-backend/internal/session"
	"donlouis-club-backend/internal/settings"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration. Missing record store credentials are fatal:
	// a loyalty backend without its member records is not allowed to
	// start half-working.
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	dbPool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Run database migrations
	if err := repository.Migrate(ctx, dbPool.Pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize the local profile cache
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to redis")
	}
	defer redisClient.Close()

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(dbPool.Pool)
	settingsRepo := repository.NewSettingsRepository(dbPool.Pool)

	// Initialize local state
	profileCache := cache.NewProfileCache(redisClient)
	sessionStore := cache.NewSessionStore()
	sess := session.New(settings.Defaults(time.Now().UTC()))

	// Initialize services
	memberLock := lock.NewMemberLock()
	registrationService := service.NewRegistrationService(memberRepo, profileCache, sess)
	scanService := service.NewScanService(memberRepo, profileCache, sess, memberLock)
	profileService := service.NewProfileService(memberRepo, profileCache, sessionStore, sess)
	settingsService := service.NewSettingsService(settingsRepo, sess)

	// Resolve settings once at startup so the session snapshot is
	// complete before the first request.
	settingsService.Load(ctx)

	// Start the realtime reconciler
	reconciler := realtime.NewReconciler(dbPool.Pool, profileService)
	go func() {
		if err := reconciler.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("Realtime reconciler stopped")
		}
	}()

	// Initialize HTTP server
	handler := httpapi.NewHandler(registrationService, scanService, profileService, settingsService, sess)
	server := httpapi.NewServer(cfg.Server.Addr(), handler)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Msg("Server is starting...")
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	// Graceful shutdown
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	log.Info().Msg("Server stopped gracefully")
}
