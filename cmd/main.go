package main

// Entry point of the project-buddy API process. It loads the configuration,
// connects Postgres and Redis, starts the notification hub plus the redis
// event pump, and serves the Fiber API until SIGINT/SIGTERM.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/config"
	"github.com/nuwan-labs/project-buddy/internal/db"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/middleware"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/queue"
	"github.com/nuwan-labs/project-buddy/internal/routers"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewInitI18nService()
	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("configuration could not be loaded")
	}

	dbPool := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	if dbPool == nil {
		log.Fatal().Msg("database pool could not be created")
	}
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("redis pool could not be created")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// hub fans events out to websocket clients; the pump forwards events
	// published by the scheduling process
	hub := notify.NewHub()
	go notify.RunPump(ctx, redisPool, hub)

	taskQueue := queue.NewTaskQueue(redisPool)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	routers.SetupRoutes(app, dbPool, redisPool, cfg, i18nSvc, hub, taskQueue)

	go func() {
		log.Info().Msgf("starting %s on port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("server closed.")
			} else {
				log.Fatal().Err(err).Msgf("server could not start, %v", err)
			}
		}
	}()

	<-ctx.Done()
	stop()
	log.Warn().Msg("shutdown signal received... preparing to stop.")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msgf("error during shutdown: %v", err)
	}

	if err := taskQueue.Close(); err != nil {
		log.Error().Err(err).Msg("task queue close failed")
	}

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("redis pool closed.")
	}

	if dbPool != nil {
		dbPool.Close()
		log.Info().Msg("database pool closed.")
	}

	log.Info().Msg("server stopped cleanly.")
}
