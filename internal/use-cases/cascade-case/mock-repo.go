package cascade_case

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) GetProjectByID(ctx context.Context, projectID int64) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListProjects(ctx context.Context, filter *project_dto.ProjectListFilter) ([]entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) InsertProject(ctx context.Context, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, project)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) UpdateProject(ctx context.Context, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, project)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) DeleteProject(ctx context.Context, projectID int64) *app_errors.AppError {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) GetProjectStats(ctx context.Context, projectID int64) (*entity.ProjectStats, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(*entity.ProjectStats), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) GetActivityByID(ctx context.Context, activityID int64) (*entity.ActivityEntity, *app_errors.AppError) {
	args := m.Called(ctx, activityID)
	return args.Get(0).(*entity.ActivityEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListActivities(ctx context.Context, projectID int64) ([]entity.ActivityEntity, *app_errors.AppError) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]entity.ActivityEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) InsertActivity(ctx context.Context, activity *entity.ActivityEntity) (*entity.ActivityEntity, *app_errors.AppError) {
	args := m.Called(ctx, activity)
	return args.Get(0).(*entity.ActivityEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) UpdateActivity(ctx context.Context, activity *entity.ActivityEntity) (*entity.ActivityEntity, *app_errors.AppError) {
	args := m.Called(ctx, activity)
	return args.Get(0).(*entity.ActivityEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) DeleteActivity(ctx context.Context, activityID int64) *app_errors.AppError {
	args := m.Called(ctx, activityID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) GetActivityInTx(ctx context.Context, t tx.Tx, activityID int64) (*entity.ActivityEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, activityID)
	return args.Get(0).(*entity.ActivityEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) StartActivityInTx(ctx context.Context, t tx.Tx, activityID int64) *app_errors.AppError {
	args := m.Called(ctx, t, activityID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockProjectRepo) GetProjectForUpdate(ctx context.Context, t tx.Tx, projectID int64) (*entity.ProjectEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, projectID)
	return args.Get(0).(*entity.ProjectEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) ListActivityStatusesByProject(ctx context.Context, t tx.Tx, projectID int64) ([]entity.ActivityStatus, *app_errors.AppError) {
	args := m.Called(ctx, t, projectID)
	return args.Get(0).([]entity.ActivityStatus), args.Get(1).(*app_errors.AppError)
}

func (m *MockProjectRepo) SetProjectStatusInTx(ctx context.Context, t tx.Tx, projectID int64, status entity.ProjectStatus) *app_errors.AppError {
	args := m.Called(ctx, t, projectID, status)
	return args.Get(0).(*app_errors.AppError)
}
