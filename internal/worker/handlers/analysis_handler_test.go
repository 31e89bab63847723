package worker_handler

import (
	"context"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	worker_task "github.com/nuwan-labs/project-buddy/internal/worker/tasks"
)

func TestDailyAnalysis_RunsAndBroadcastsSummaryReady(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockBroadcaster)
	analysis := new(MockAnalysisService)
	handler := &WorkerHandler{
		notifier: notifier,
		analysis: analysis,
		schedule: testSchedule(),
		now:      clockAt(18, 5),
	}

	analysis.On("RunScheduledAnalysis", ctx, "2026-02-24").
		Return(&entity.DailySummaryEntity{Date: "2026-02-24"}, (*app_errors.AppError)(nil))
	notifier.On("Broadcast", mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.EventSummaryReady && e.Data["date"] == "2026-02-24"
	})).Return()

	err := handler.DailyAnalysis()(ctx, asynq.NewTask(worker_task.TaskDailyAnalysis, nil))

	assert.NoError(t, err)
	analysis.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestDailyAnalysis_PastGraceIsSkipped(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockBroadcaster)
	analysis := new(MockAnalysisService)
	handler := &WorkerHandler{
		notifier: notifier,
		analysis: analysis,
		schedule: testSchedule(),
		now:      clockAt(19, 0),
	}

	err := handler.DailyAnalysis()(ctx, asynq.NewTask(worker_task.TaskDailyAnalysis, nil))

	assert.NoError(t, err)
	analysis.AssertNotCalled(t, "RunScheduledAnalysis", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Broadcast", mock.Anything)
}

// Pinned dates bypass the grace window so backfills run whenever enqueued.
func TestDailyAnalysis_PinnedDateIgnoresGrace(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockBroadcaster)
	analysis := new(MockAnalysisService)
	handler := &WorkerHandler{
		notifier: notifier,
		analysis: analysis,
		schedule: testSchedule(),
		now:      clockAt(23, 0),
	}

	analysis.On("RunScheduledAnalysis", ctx, "2026-02-20").
		Return(&entity.DailySummaryEntity{Date: "2026-02-20"}, (*app_errors.AppError)(nil))
	notifier.On("Broadcast", mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.EventSummaryReady && e.Data["date"] == "2026-02-20"
	})).Return()

	payload := []byte(`{"date":"2026-02-20"}`)
	err := handler.DailyAnalysis()(ctx, asynq.NewTask(worker_task.TaskDailyAnalysis, payload))

	assert.NoError(t, err)
	analysis.AssertExpectations(t)
}
