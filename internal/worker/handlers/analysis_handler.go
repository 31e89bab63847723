package worker_handler

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/notify"
	worker_task "github.com/nuwan-labs/project-buddy/internal/worker/tasks"
)

// DailyAnalysis runs the evening work-log analysis. The unattended path
// never fails the task on a model error: the service stores a fallback
// summary, and summary_ready is broadcast either way so the frontend picks
// up whatever row exists for the date.
func (wh *WorkerHandler) DailyAnalysis() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.DailyAnalysisPayload
		if len(t.Payload()) > 0 {
			if err := json.Unmarshal(t.Payload(), &p); err != nil {
				log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
				return err
			}
		}

		now := wh.now().In(wh.schedule.Location)
		date := p.Date
		if date == "" {
			if wh.schedule.Analysis.Misfired(now) {
				log.Warn().Time("now", now).Msg("Worker handler: analysis fired outside grace window, skipping.")
				return nil
			}
			date = now.Format("2006-01-02")
		}

		log.Info().Str("date", date).Msg("Worker handler: daily analysis hit.")
		if _, err := wh.analysis.RunScheduledAnalysis(ctx, date); err != nil {
			log.Error().Err(err).Str("date", date).Msg("Worker handler: analysis run failed.")
			return err
		}

		wh.notifier.Broadcast(notify.NewSummaryReadyEvent(date))
		return nil
	}
}
