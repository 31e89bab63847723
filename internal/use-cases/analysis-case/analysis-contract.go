package analysis_case

import (
	"context"

	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/ollama"
)

type AnalysisServiceContract interface {
	// AnalyzeDate runs the full analysis pipeline for one date and stores the
	// result. Disabled analysis and dates without logs store fixed narratives
	// without calling the model. A model failure is returned as an upstream
	// error and nothing is stored.
	AnalyzeDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError)

	// RunScheduledAnalysis is AnalyzeDate with the unattended failure policy:
	// a model failure stores a fallback summary instead of erroring, so the
	// evening run always leaves a row behind.
	RunScheduledAnalysis(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError)

	GetSummaryByDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError)
	ListSummaries(ctx context.Context, limit int) ([]entity.DailySummaryEntity, *app_errors.AppError)
	OllamaStatus(ctx context.Context) *ollama.HealthStatus
}
