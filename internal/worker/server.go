package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/schedule"
	worker_handler "github.com/nuwan-labs/project-buddy/internal/worker/handlers"
)

// SchedulerHandle owns the cron scheduler and the task-processing server of
// the scheduling context. The two are started and stopped together; nothing
// else in the process reaches into them.
type SchedulerHandle struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewSchedulerHandle(redis *redis.Client, sc *schedule.Config, h *worker_handler.WorkerHandler) (*SchedulerHandle, error) {
	handle := &SchedulerHandle{
		server:    NewWorkerServer(redis),
		scheduler: NewScheduler(redis, sc),
		mux:       asynq.NewServeMux(),
	}

	RegisterWorkerHandlers(handle.mux, h)
	if err := RegisterCronJobs(handle.scheduler, sc); err != nil {
		return nil, err
	}

	return handle, nil
}

// Run blocks until ctx is cancelled, then shuts both components down.
func (sh *SchedulerHandle) Run(ctx context.Context) error {
	go func() {
		if err := sh.scheduler.Run(); err != nil {
			log.Error().Err(err).Msg("scheduler error")
		}
	}()

	go func() {
		if err := sh.server.Run(sh.mux); err != nil {
			log.Error().Err(err).Msg("worker server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down worker server...")

	sh.scheduler.Shutdown()
	sh.server.Shutdown()

	return nil
}

func RunWorker(ctx context.Context, redis *redis.Client, sc *schedule.Config, h *worker_handler.WorkerHandler) error {
	handle, err := NewSchedulerHandle(redis, sc, h)
	if err != nil {
		return err
	}
	return handle.Run(ctx)
}
