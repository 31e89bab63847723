package worker

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/schedule"
	worker_handler "github.com/nuwan-labs/project-buddy/internal/worker/handlers"
	worker_task "github.com/nuwan-labs/project-buddy/internal/worker/tasks"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(worker_task.TaskActivityPopup, h.ActivityPopup())
	mux.HandleFunc(worker_task.TaskDailyNotePrompt, h.DailyNotePrompt())
	mux.HandleFunc(worker_task.TaskDailyAnalysis, h.DailyAnalysis())
	mux.HandleFunc(worker_task.TaskOneShotPopup, h.OneShotPopup())
}

func RegisterCronJobs(s *asynq.Scheduler, sc *schedule.Config) error {
	jobs := []struct {
		spec  string
		task  *asynq.Task
		queue string
		desc  string
	}{
		{
			spec:  sc.Popup.Cron(),
			task:  asynq.NewTask(worker_task.TaskActivityPopup, nil),
			queue: "default",
			desc:  "hourly activity popup",
		},
		{
			spec:  sc.DailyNote.Cron(),
			task:  asynq.NewTask(worker_task.TaskDailyNotePrompt, nil),
			queue: "default",
			desc:  "daily note prompt",
		},
		{
			spec:  sc.Analysis.Cron(),
			task:  asynq.NewTask(worker_task.TaskDailyAnalysis, nil),
			queue: "low",
			desc:  "evening work-log analysis",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Str("cron", job.spec).Msgf("scheduled: %s", job.desc)
	}

	return nil
}
