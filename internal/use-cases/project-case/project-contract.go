package project_case

import (
	"context"

	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type ProjectServiceContract interface {
	CreateProject(ctx context.Context, req *project_dto.CreateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError)
	GetProject(ctx context.Context, projectID int64) (*project_dto.ProjectResponse, *app_errors.AppError)
	ListProjects(ctx context.Context, filter *project_dto.ProjectListFilter) ([]project_dto.ProjectResponse, *app_errors.AppError)
	UpdateProject(ctx context.Context, projectID int64, req *project_dto.UpdateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError)
	DeleteProject(ctx context.Context, projectID int64) *app_errors.AppError

	CreateActivity(ctx context.Context, projectID int64, req *project_dto.CreateActivityRequest) (*project_dto.ActivityResponse, *app_errors.AppError)
	ListActivities(ctx context.Context, projectID int64) ([]project_dto.ActivityResponse, *app_errors.AppError)
	UpdateActivity(ctx context.Context, activityID int64, req *project_dto.UpdateActivityRequest) (*project_dto.ActivityResponse, *app_errors.AppError)
	DeleteActivity(ctx context.Context, activityID int64) *app_errors.AppError
}
