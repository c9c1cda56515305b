// Command api runs the booking HTTP server.
//
// @title           Booking API
// @version         1.0
// @description     HTTP API for the studio booking application: auth, services, appointments, gallery, reviews.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bellastudio/booking-api/internal/api"
	"github.com/bellastudio/booking-api/internal/core/service"
	"github.com/bellastudio/booking-api/internal/infrastructure/config"
	mongodb "github.com/bellastudio/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bellastudio/booking-api/internal/infrastructure/db/redis"
	"github.com/bellastudio/booking-api/internal/infrastructure/queue"
	"github.com/bellastudio/booking-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this is the one place stderr is used directly.
		os.Stderr.WriteString("fatal: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index provisioning failed")
	}

	// Notification pipeline: booking requests enqueue, workers persist.
	notifications := service.NewNotificationService(mongodb.NewNotificationRepository(db), log)
	dispatcher := queue.NewDispatcher(0, notifications, log)
	dispatcher.Start(ctx)

	e, authService := api.NewRouter(api.Options{
		Mongo:         db,
		Redis:         rdb,
		JWTSecret:     cfg.JWTSecret,
		AdminPassword: cfg.AdminPassword,
		Queue:         dispatcher,
		Log:           log,
	})

	if err := authService.BootstrapAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
