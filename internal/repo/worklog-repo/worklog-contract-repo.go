package worklog_repo

import (
	"context"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type WorkLogRepoContract interface {
	GetWorkLogByID(ctx context.Context, logID int64) (*entity.WorkLogEntity, *app_errors.AppError)
	GetWorkLogDetailByID(ctx context.Context, logID int64) (*entity.WorkLogDetail, *app_errors.AppError)
	InsertWorkLogInTx(ctx context.Context, t tx.Tx, log *entity.WorkLogEntity) (*entity.WorkLogEntity, *app_errors.AppError)
	ListWorkLogs(ctx context.Context, filter *worklog_dto.WorkLogListFilter) ([]entity.WorkLogDetail, *app_errors.AppError)
	ListWorkLogsByDate(ctx context.Context, date string) ([]entity.WorkLogDetail, *app_errors.AppError)
	UpdateWorkLog(ctx context.Context, log *entity.WorkLogEntity) (*entity.WorkLogEntity, *app_errors.AppError)
	DeleteWorkLog(ctx context.Context, logID int64) *app_errors.AppError
}
