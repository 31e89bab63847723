package summary_repo

import (
	"context"

	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type SummaryRepoContract interface {
	GetSummaryByDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError)
	UpsertSummary(ctx context.Context, summary *entity.DailySummaryEntity) (*entity.DailySummaryEntity, *app_errors.AppError)
	ListSummaries(ctx context.Context, limit int) ([]entity.DailySummaryEntity, *app_errors.AppError)
}
