package dashboard_case

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	analysis_case "github.com/nuwan-labs/project-buddy/internal/use-cases/analysis-case"
	cascade_case "github.com/nuwan-labs/project-buddy/internal/use-cases/cascade-case"
)

func fixedClock() time.Time {
	return time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC)
}

func TestGetDashboard_ActivePlan(t *testing.T) {
	ctx := context.Background()

	plans := new(analysis_case.MockPlanRepo)
	projects := new(cascade_case.MockProjectRepo)
	logs := new(analysis_case.MockWorkLogRepo)
	summaries := new(analysis_case.MockSummaryRepo)
	service := &DashboardService{
		plans:     plans,
		projects:  projects,
		logs:      logs,
		summaries: summaries,
		location:  time.UTC,
		now:       fixedClock,
	}

	plan := &entity.PlanEntity{ID: 1, Name: "Sprint 12", StartDate: "2026-02-23", EndDate: "2026-03-06", Status: entity.PlanActive}
	plans.On("GetActivePlan", ctx).Return(plan, (*app_errors.AppError)(nil))

	tag := "teal"
	listed := []entity.ProjectEntity{
		{ID: 3, PlanID: 1, Name: "Data tooling", Status: entity.ProjectActive, ColorTag: &tag},
	}
	projects.On("ListProjects", ctx, mock.MatchedBy(func(f *project_dto.ProjectListFilter) bool {
		return f.PlanID != nil && *f.PlanID == 1
	})).Return(listed, (*app_errors.AppError)(nil))
	projects.On("GetProjectStats", ctx, int64(3)).Return(&entity.ProjectStats{ActivitiesCount: 4, CompletedCount: 1, CompletionPercent: 25}, (*app_errors.AppError)(nil))

	plans.On("ListSprintSelections", ctx, int64(1)).Return([]entity.SprintSelectionEntity{
		{ID: 1, PlanID: 1, ActivityID: 10, ActivityName: "Import pipeline"},
	}, (*app_errors.AppError)(nil))

	logs.On("ListWorkLogsByDate", ctx, "2026-02-24").Return([]entity.WorkLogDetail{
		{WorkLogEntity: entity.WorkLogEntity{ID: 1, DurationMinutes: 90}},
	}, (*app_errors.AppError)(nil))

	summaries.On("GetSummaryByDate", ctx, "2026-02-24").Return(&entity.DailySummaryEntity{
		Date:        "2026-02-24",
		SummaryText: "Good momentum.",
	}, (*app_errors.AppError)(nil))

	resp, err := service.GetDashboard(ctx)

	assert.Nil(t, err)
	assert.NotNil(t, resp.Plan)
	assert.Equal(t, 10, resp.DaysRemaining)
	assert.Len(t, resp.Projects, 1)
	assert.Equal(t, 25.0, resp.Projects[0].CompletionPercent)
	assert.Len(t, resp.SprintActivity, 1)
	assert.Equal(t, 1.5, resp.TodayHours)
	assert.NotNil(t, resp.TodaySummary)
	assert.Equal(t, "Good momentum.", resp.TodaySummary.SummaryText)
}

// No active plan still yields today's logs and hours.
func TestGetDashboard_NoActivePlan(t *testing.T) {
	ctx := context.Background()

	plans := new(analysis_case.MockPlanRepo)
	projects := new(cascade_case.MockProjectRepo)
	logs := new(analysis_case.MockWorkLogRepo)
	summaries := new(analysis_case.MockSummaryRepo)
	service := &DashboardService{
		plans:     plans,
		projects:  projects,
		logs:      logs,
		summaries: summaries,
		location:  time.UTC,
		now:       fixedClock,
	}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "plan.not_found", nil)
	plans.On("GetActivePlan", ctx).Return((*entity.PlanEntity)(nil), notFound)

	logs.On("ListWorkLogsByDate", ctx, "2026-02-24").Return([]entity.WorkLogDetail{}, (*app_errors.AppError)(nil))
	summaries.On("GetSummaryByDate", ctx, "2026-02-24").Return((*entity.DailySummaryEntity)(nil), notFound)

	resp, err := service.GetDashboard(ctx)

	assert.Nil(t, err)
	assert.Nil(t, resp.Plan)
	assert.Empty(t, resp.Projects)
	assert.Equal(t, 0.0, resp.TodayHours)
	assert.Nil(t, resp.TodaySummary)

	projects.AssertNotCalled(t, "ListProjects")
}
