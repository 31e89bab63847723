package analysis_case

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/ollama"
)

type MockSummaryRepo struct {
	mock.Mock
}

func (m *MockSummaryRepo) GetSummaryByDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError) {
	args := m.Called(ctx, date)
	return args.Get(0).(*entity.DailySummaryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSummaryRepo) UpsertSummary(ctx context.Context, summary *entity.DailySummaryEntity) (*entity.DailySummaryEntity, *app_errors.AppError) {
	args := m.Called(ctx, summary)
	return args.Get(0).(*entity.DailySummaryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockSummaryRepo) ListSummaries(ctx context.Context, limit int) ([]entity.DailySummaryEntity, *app_errors.AppError) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]entity.DailySummaryEntity), args.Get(1).(*app_errors.AppError)
}

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

type MockPlanRepo struct {
	mock.Mock
}

func (m *MockPlanRepo) GetPlanByID(ctx context.Context, planID int64) (*entity.PlanEntity, *app_errors.AppError) {
	args := m.Called(ctx, planID)
	return args.Get(0).(*entity.PlanEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanRepo) GetActivePlan(ctx context.Context) (*entity.PlanEntity, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(*entity.PlanEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanRepo) CountActivePlans(ctx context.Context, excludeID *int64) (int64, *app_errors.AppError) {
	args := m.Called(ctx, excludeID)
	return args.Get(0).(int64), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanRepo) ListPlans(ctx context.Context, filter *plan_dto.PlanListFilter) ([]entity.PlanEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.PlanEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanRepo) InsertPlan(ctx context.Context, plan *entity.PlanEntity) (*entity.PlanEntity, *app_errors.AppError) {
	args := m.Called(ctx, plan)
	return args.Get(0).(*entity.PlanEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanRepo) UpdatePlan(ctx context.Context, plan *entity.PlanEntity) (*entity.PlanEntity, *app_errors.AppError) {
	args := m.Called(ctx, plan)
	return args.Get(0).(*entity.PlanEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanRepo) DeletePlan(ctx context.Context, planID int64) *app_errors.AppError {
	args := m.Called(ctx, planID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockPlanRepo) ListSprintSelections(ctx context.Context, planID int64) ([]entity.SprintSelectionEntity, *app_errors.AppError) {
	args := m.Called(ctx, planID)
	return args.Get(0).([]entity.SprintSelectionEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPlanRepo) ReplaceSprintSelections(ctx context.Context, planID int64, activityIDs []int64, notes *string) *app_errors.AppError {
	args := m.Called(ctx, planID, activityIDs, notes)
	return args.Get(0).(*app_errors.AppError)
}

type MockOllamaClient struct {
	mock.Mock
}

func (m *MockOllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockOllamaClient) Health(ctx context.Context) *ollama.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(*ollama.HealthStatus)
}
