package project_repo

import (
	"context"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type ProjectRepoContract interface {
	GetProjectByID(ctx context.Context, projectID int64) (*entity.ProjectEntity, *app_errors.AppError)
	ListProjects(ctx context.Context, filter *project_dto.ProjectListFilter) ([]entity.ProjectEntity, *app_errors.AppError)
	InsertProject(ctx context.Context, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError)
	UpdateProject(ctx context.Context, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError)
	DeleteProject(ctx context.Context, projectID int64) *app_errors.AppError
	GetProjectStats(ctx context.Context, projectID int64) (*entity.ProjectStats, *app_errors.AppError)

	GetActivityByID(ctx context.Context, activityID int64) (*entity.ActivityEntity, *app_errors.AppError)
	ListActivities(ctx context.Context, projectID int64) ([]entity.ActivityEntity, *app_errors.AppError)
	InsertActivity(ctx context.Context, activity *entity.ActivityEntity) (*entity.ActivityEntity, *app_errors.AppError)
	UpdateActivity(ctx context.Context, activity *entity.ActivityEntity) (*entity.ActivityEntity, *app_errors.AppError)
	DeleteActivity(ctx context.Context, activityID int64) *app_errors.AppError

	GetActivityInTx(ctx context.Context, t tx.Tx, activityID int64) (*entity.ActivityEntity, *app_errors.AppError)
	StartActivityInTx(ctx context.Context, t tx.Tx, activityID int64) *app_errors.AppError
	GetProjectForUpdate(ctx context.Context, t tx.Tx, projectID int64) (*entity.ProjectEntity, *app_errors.AppError)
	ListActivityStatusesByProject(ctx context.Context, t tx.Tx, projectID int64) ([]entity.ActivityStatus, *app_errors.AppError)
	SetProjectStatusInTx(ctx context.Context, t tx.Tx, projectID int64, status entity.ProjectStatus) *app_errors.AppError
}
