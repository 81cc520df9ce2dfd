package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"mentorlink/api/internal/cache"
	"mentorlink/api/internal/config"
	"mentorlink/api/internal/database"
	"mentorlink/api/internal/handlers"
	"mentorlink/api/internal/jobs"
	"mentorlink/api/internal/log"
	"mentorlink/api/internal/repository"
	"mentorlink/api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	var (
		dbPool      *pgxpool.Pool
		redisClient *redis.Client
		users       repository.UserStore
		bookings    repository.BookingStore
		sessions    repository.SessionStore
	)

	switch cfg.Storage.Driver {
	case "memory":
		users = repository.NewMemoryUserStore()
		bookings = repository.NewMemoryBookingStore()
		logger.Warn().Msg("memory storage driver selected, data will not survive restarts")
	default:
		dbPool, err = database.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect postgres")
		}
		if err := database.Migrate(ctx, dbPool); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate schema")
		}
		users = repository.NewUserRepository(dbPool)
		bookings = repository.NewBookingRepository(dbPool)
	}

	switch cfg.Storage.SessionDriver {
	case "memory":
		sessions = repository.NewMemorySessionStore()
	default:
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis")
		}
		sessions = repository.NewSessionRepository(redisClient)
	}

	handlerSet := handlers.NewHandlerSet(logger, cfg, users, bookings, sessions, dbPool, redisClient)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	scheduler := jobs.NewScheduler(users, bookings, redisClient, cfg.Jobs.SnapshotSchedule, logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, dbPool, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, db *pgxpool.Pool, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("forced shutdown failed")
		}
	}

	scheduler.Stop()

	if db != nil {
		db.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
