package worker_handler

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/notify"
	worker_task "github.com/nuwan-labs/project-buddy/internal/worker/tasks"
)

// ActivityPopup fires the hourly "what are you working on" nudge. A firing
// that arrives past the grace window of its nominal slot is dropped: after a
// long sleep, one fresh popup is worth more than a burst of stale ones.
func (wh *WorkerHandler) ActivityPopup() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		now := wh.now().In(wh.schedule.Location)
		if wh.schedule.Popup.Misfired(now) {
			log.Warn().Time("now", now).Msg("Worker handler: activity popup fired outside grace window, skipping.")
			return nil
		}

		wh.notifier.Broadcast(notify.NewActivityPopupEvent())
		return nil
	}
}

// DailyNotePrompt asks for end-of-day project notes once per working day.
func (wh *WorkerHandler) DailyNotePrompt() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		now := wh.now().In(wh.schedule.Location)
		if wh.schedule.DailyNote.Misfired(now) {
			log.Warn().Time("now", now).Msg("Worker handler: daily note prompt fired outside grace window, skipping.")
			return nil
		}

		wh.notifier.Broadcast(notify.NewDailyNotePromptEvent(now.Format("2006-01-02")))
		return nil
	}
}

// OneShotPopup delivers a user-scheduled reminder. No misfire check: the
// user asked for it explicitly, so a late delivery still goes out.
func (wh *WorkerHandler) OneShotPopup() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.OneShotPopupPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
			return err
		}

		event := notify.NewActivityPopupEvent()
		if p.Message != "" {
			event.Message = p.Message
		}

		wh.notifier.Broadcast(event)
		return nil
	}
}
