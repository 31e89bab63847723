package note_case

import (
	"context"

	"github.com/stretchr/testify/mock"

	note_dto "github.com/nuwan-labs/project-buddy/internal/dtos/note-dto"
	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) GetNoteByID(ctx context.Context, noteID int64) (*entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	args := m.Called(ctx, noteID)
	return args.Get(0).(*entity.ProjectDailyNoteEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockNoteRepo) UpsertNote(ctx context.Context, note *entity.ProjectDailyNoteEntity) (*entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	args := m.Called(ctx, note)
	return args.Get(0).(*entity.ProjectDailyNoteEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockNoteRepo) ListNotes(ctx context.Context, filter *note_dto.NoteListFilter) ([]entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.ProjectDailyNoteEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockNoteRepo) DeleteNote(ctx context.Context, noteID int64) *app_errors.AppError {
	args := m.Called(ctx, noteID)
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
