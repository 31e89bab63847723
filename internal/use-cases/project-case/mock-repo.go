package project_case

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

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

type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) *app_errors.AppError {
	args := m.Called(ctx)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTx) Rollback(ctx context.Context) *app_errors.AppError {
	args := m.Called(ctx)
	return args.Get(0).(*app_errors.AppError)
}

type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (tx.Tx, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(tx.Tx), args.Get(1).(*app_errors.AppError)
}
