package worklog_case

import (
	"context"

	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type WorkLogServiceContract interface {
	CreateWorkLog(ctx context.Context, req *worklog_dto.CreateWorkLogRequest) (*worklog_dto.WorkLogResponse, *app_errors.AppError)
	ListWorkLogs(ctx context.Context, filter *worklog_dto.WorkLogListFilter) (*worklog_dto.WorkLogListResponse, *app_errors.AppError)
	ListWorkLogsByDate(ctx context.Context, date string) ([]entity.WorkLogDetail, *app_errors.AppError)
	UpdateWorkLog(ctx context.Context, logID int64, req *worklog_dto.UpdateWorkLogRequest) (*entity.WorkLogEntity, *app_errors.AppError)
	DeleteWorkLog(ctx context.Context, logID int64) *app_errors.AppError
}
