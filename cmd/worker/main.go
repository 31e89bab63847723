package main

// Entry point of the scheduling process. It owns the asynq cron scheduler
// and the task worker; everything user facing happens across the redis
// bridge in the API process.

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/bridge"
	"github.com/nuwan-labs/project-buddy/internal/config"
	"github.com/nuwan-labs/project-buddy/internal/db"
	"github.com/nuwan-labs/project-buddy/internal/ollama"
	"github.com/nuwan-labs/project-buddy/internal/schedule"
	analysis_case "github.com/nuwan-labs/project-buddy/internal/use-cases/analysis-case"
	"github.com/nuwan-labs/project-buddy/internal/worker"
	worker_handler "github.com/nuwan-labs/project-buddy/internal/worker/handlers"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
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

	scheduleCfg, err := schedule.FromAppConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid scheduler configuration")
	}

	client := ollama.NewClient(cfg)
	analysisService := analysis_case.NewAnalysisService(dbPool, cfg, client)
	publisher := bridge.NewPublisher(redisPool)
	handler := worker_handler.NewWorkerHandler(publisher, analysisService, scheduleCfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	errChan := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting worker server...")
		errChan <- worker.RunWorker(ctx, redisPool, scheduleCfg, handler)
	}()

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
		// Wait for in-flight tasks to drain before tearing down the pools
		// they may still be using.
		if err := <-errChan; err != nil {
			log.Error().Err(err).Msg("worker stopped with error")
		}
		dbPool.Close()
		redisPool.Close()
		log.Info().Msg("worker shutdown complete")
	case err := <-errChan:
		log.Fatal().Err(err).Msg("worker crashed")
	}
}
