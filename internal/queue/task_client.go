package queue

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	worker_task "github.com/nuwan-labs/project-buddy/internal/worker/tasks"
)

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

// EnqueueOneShotPopup schedules a single reminder popup at the given time.
// One-shot reminders bypass the recurring popup window and its misfire
// grace, so late delivery after a restart is still delivered.
func (q *TaskQueue) EnqueueOneShotPopup(payload *worker_task.OneShotPopupPayload, at time.Time) error {
	log.Info().Time("at", at).Msg("queue: scheduling one-shot popup")
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskOneShotPopup, p, asynq.Queue("default"), asynq.ProcessAt(at), asynq.MaxRetry(3))

	_, err := q.client.Enqueue(task)
	return err
}

// EnqueueDailyAnalysis triggers an analysis run for the given date outside
// the nightly schedule, e.g. after a manual backfill.
func (q *TaskQueue) EnqueueDailyAnalysis(date string) error {
	log.Info().Str("date", date).Msg("queue: enqueueing analysis run")
	p, _ := json.Marshal(&worker_task.DailyAnalysisPayload{Date: date})
	task := asynq.NewTask(worker_task.TaskDailyAnalysis, p, asynq.Queue("low"), asynq.MaxRetry(2))

	_, err := q.client.Enqueue(task)
	return err
}

func (q *TaskQueue) Close() error {
	return q.client.Close()
}
