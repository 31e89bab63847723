package worker_handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/ollama"
)

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(event notify.Event) {
	m.Called(event)
}

type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) AnalyzeDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError) {
	args := m.Called(ctx, date)
	return args.Get(0).(*entity.DailySummaryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAnalysisService) RunScheduledAnalysis(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError) {
	args := m.Called(ctx, date)
	return args.Get(0).(*entity.DailySummaryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAnalysisService) GetSummaryByDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError) {
	args := m.Called(ctx, date)
	return args.Get(0).(*entity.DailySummaryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAnalysisService) ListSummaries(ctx context.Context, limit int) ([]entity.DailySummaryEntity, *app_errors.AppError) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entity.DailySummaryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAnalysisService) OllamaStatus(ctx context.Context) *ollama.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(*ollama.HealthStatus)
}
