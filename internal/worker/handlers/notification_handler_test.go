package worker_handler

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/schedule"
	worker_task "github.com/nuwan-labs/project-buddy/internal/worker/tasks"
)

func testSchedule() *schedule.Config {
	workdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	return &schedule.Config{
		Location: time.UTC,
		Popup: schedule.HourlySpec{
			Weekdays:  workdays,
			StartHour: 8,
			EndHour:   17,
			Minute:    30,
			Grace:     5 * time.Minute,
		},
		DailyNote: schedule.DailySpec{
			Weekdays: workdays,
			Hour:     16,
			Minute:   30,
			Grace:    5 * time.Minute,
		},
		Analysis: schedule.DailySpec{
			Weekdays: workdays,
			Hour:     18,
			Minute:   0,
			Grace:    30 * time.Minute,
		},
	}
}

// 2026-02-24 is a Tuesday.
func clockAt(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 2, 24, hour, minute, 0, 0, time.UTC)
	}
}

func TestActivityPopup_OnTimeBroadcasts(t *testing.T) {
	notifier := new(MockBroadcaster)
	handler := &WorkerHandler{
		notifier: notifier,
		schedule: testSchedule(),
		now:      clockAt(10, 31),
	}

	notifier.On("Broadcast", mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.EventNotification && e.Action == notify.ActionShowActivityPopup
	})).Return()

	err := handler.ActivityPopup()(context.Background(), asynq.NewTask(worker_task.TaskActivityPopup, nil))

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestActivityPopup_PastGraceIsSkipped(t *testing.T) {
	notifier := new(MockBroadcaster)
	handler := &WorkerHandler{
		notifier: notifier,
		schedule: testSchedule(),
		now:      clockAt(10, 40),
	}

	err := handler.ActivityPopup()(context.Background(), asynq.NewTask(worker_task.TaskActivityPopup, nil))

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything)
}

func TestDailyNotePrompt_CarriesDate(t *testing.T) {
	notifier := new(MockBroadcaster)
	handler := &WorkerHandler{
		notifier: notifier,
		schedule: testSchedule(),
		now:      clockAt(16, 32),
	}

	notifier.On("Broadcast", mock.MatchedBy(func(e notify.Event) bool {
		return e.Action == notify.ActionShowDailyNotePrompt && e.Data["date"] == "2026-02-24"
	})).Return()

	err := handler.DailyNotePrompt()(context.Background(), asynq.NewTask(worker_task.TaskDailyNotePrompt, nil))

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

// One-shot reminders have no grace window and deliver the custom message.
func TestOneShotPopup_DeliversLateWithCustomMessage(t *testing.T) {
	notifier := new(MockBroadcaster)
	handler := &WorkerHandler{
		notifier: notifier,
		schedule: testSchedule(),
		now:      clockAt(23, 55),
	}

	notifier.On("Broadcast", mock.MatchedBy(func(e notify.Event) bool {
		return e.Action == notify.ActionShowActivityPopup && e.Message == "Wrap up the import pipeline"
	})).Return()

	payload, _ := json.Marshal(&worker_task.OneShotPopupPayload{Message: "Wrap up the import pipeline"})
	err := handler.OneShotPopup()(context.Background(), asynq.NewTask(worker_task.TaskOneShotPopup, payload))

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}
