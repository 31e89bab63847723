package worklog_case

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/notify"
)

type MockWorkLogRepo struct {
	mock.Mock
}

func (m *MockWorkLogRepo) GetWorkLogByID(ctx context.Context, logID int64) (*entity.WorkLogEntity, *app_errors.AppError) {
	args := m.Called(ctx, logID)
	return args.Get(0).(*entity.WorkLogEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkLogRepo) GetWorkLogDetailByID(ctx context.Context, logID int64) (*entity.WorkLogDetail, *app_errors.AppError) {
	args := m.Called(ctx, logID)
	return args.Get(0).(*entity.WorkLogDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkLogRepo) InsertWorkLogInTx(ctx context.Context, t tx.Tx, log *entity.WorkLogEntity) (*entity.WorkLogEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, log)
	return args.Get(0).(*entity.WorkLogEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkLogRepo) ListWorkLogs(ctx context.Context, filter *worklog_dto.WorkLogListFilter) ([]entity.WorkLogDetail, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.WorkLogDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkLogRepo) ListWorkLogsByDate(ctx context.Context, date string) ([]entity.WorkLogDetail, *app_errors.AppError) {
	args := m.Called(ctx, date)
	return args.Get(0).([]entity.WorkLogDetail), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkLogRepo) UpdateWorkLog(ctx context.Context, log *entity.WorkLogEntity) (*entity.WorkLogEntity, *app_errors.AppError) {
	args := m.Called(ctx, log)
	return args.Get(0).(*entity.WorkLogEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockWorkLogRepo) DeleteWorkLog(ctx context.Context, logID int64) *app_errors.AppError {
	args := m.Called(ctx, logID)
	return args.Get(0).(*app_errors.AppError)
}

type MockCascadeService struct {
	mock.Mock
}

func (m *MockCascadeService) RecomputeProjectStatus(ctx context.Context, t tx.Tx, activityID int64) (*entity.ProjectStatus, *app_errors.AppError) {
	args := m.Called(ctx, t, activityID)
	return args.Get(0).(*entity.ProjectStatus), args.Get(1).(*app_errors.AppError)
}

func (m *MockCascadeService) RecomputeProject(ctx context.Context, t tx.Tx, projectID int64) (*entity.ProjectStatus, *app_errors.AppError) {
	args := m.Called(ctx, t, projectID)
	return args.Get(0).(*entity.ProjectStatus), args.Get(1).(*app_errors.AppError)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(event notify.Event) {
	m.Called(event)
}
