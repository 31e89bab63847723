package worker_handler

import (
	"time"

	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/schedule"
	analysis_case "github.com/nuwan-labs/project-buddy/internal/use-cases/analysis-case"
)

type WorkerHandler struct {
	notifier notify.Broadcaster
	analysis analysis_case.AnalysisServiceContract
	schedule *schedule.Config
	now      func() time.Time
}

func NewWorkerHandler(notifier notify.Broadcaster, analysis analysis_case.AnalysisServiceContract, sc *schedule.Config) *WorkerHandler {
	return &WorkerHandler{
		notifier: notifier,
		analysis: analysis,
		schedule: sc,
		now:      time.Now,
	}
}
