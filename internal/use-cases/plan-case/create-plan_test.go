package plan_case

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

func TestCreatePlan_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanRepo)
	notifier := new(MockBroadcaster)
	service := &PlanService{repo: repo, notifier: notifier}

	req := &plan_dto.CreatePlanRequest{
		Name:      "Sprint 12",
		StartDate: "2026-02-23",
		EndDate:   "2026-03-06",
	}

	repo.On("CountActivePlans", ctx, (*int64)(nil)).Return(int64(0), (*app_errors.AppError)(nil))

	inserted := &entity.PlanEntity{ID: 1, Name: "Sprint 12", StartDate: "2026-02-23", EndDate: "2026-03-06", Status: entity.PlanActive}
	repo.On("InsertPlan", ctx, mock.MatchedBy(func(p *entity.PlanEntity) bool {
		return p.Status == entity.PlanActive && p.Name == "Sprint 12"
	})).Return(inserted, (*app_errors.AppError)(nil))

	resp, err := service.CreatePlan(ctx, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(entity.PlanActive), resp.Status)

	repo.AssertExpectations(t)
}

// Only one plan may be Active at a time.
func TestCreatePlan_ActiveConflict(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanRepo)
	notifier := new(MockBroadcaster)
	service := &PlanService{repo: repo, notifier: notifier}

	req := &plan_dto.CreatePlanRequest{
		Name:      "Sprint 13",
		StartDate: "2026-03-09",
		EndDate:   "2026-03-20",
	}

	repo.On("CountActivePlans", ctx, (*int64)(nil)).Return(int64(1), (*app_errors.AppError)(nil))

	resp, err := service.CreatePlan(ctx, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
	assert.Equal(t, "plan.active_exists", err.MessageKey)

	repo.AssertNotCalled(t, "InsertPlan")
}

func TestCreatePlan_EndBeforeStart(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanRepo)
	service := &PlanService{repo: repo}

	req := &plan_dto.CreatePlanRequest{
		Name:      "Backwards",
		StartDate: "2026-03-06",
		EndDate:   "2026-02-23",
	}

	resp, err := service.CreatePlan(ctx, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)

	repo.AssertNotCalled(t, "CountActivePlans")
}

// Reactivating a paused plan counts other active plans only, not itself.
func TestUpdatePlan_ReactivateConflict(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanRepo)
	notifier := new(MockBroadcaster)
	service := &PlanService{repo: repo, notifier: notifier}

	existing := &entity.PlanEntity{ID: 2, Name: "Sprint 11", StartDate: "2026-02-09", EndDate: "2026-02-20", Status: entity.PlanPaused}
	repo.On("GetPlanByID", ctx, int64(2)).Return(existing, (*app_errors.AppError)(nil))
	repo.On("CountActivePlans", ctx, mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 2
	})).Return(int64(1), (*app_errors.AppError)(nil))

	status := string(entity.PlanActive)
	resp, err := service.UpdatePlan(ctx, 2, &plan_dto.UpdatePlanRequest{Status: &status})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)

	repo.AssertNotCalled(t, "UpdatePlan")
	notifier.AssertNotCalled(t, "Broadcast")
}

func TestUpdatePlan_BroadcastsPlanUpdated(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanRepo)
	notifier := new(MockBroadcaster)
	service := &PlanService{repo: repo, notifier: notifier}

	existing := &entity.PlanEntity{ID: 2, Name: "Sprint 11", StartDate: "2026-02-09", EndDate: "2026-02-20", Status: entity.PlanActive}
	repo.On("GetPlanByID", ctx, int64(2)).Return(existing, (*app_errors.AppError)(nil))

	name := "Sprint 11 (extended)"
	updated := &entity.PlanEntity{ID: 2, Name: name, StartDate: "2026-02-09", EndDate: "2026-02-27", Status: entity.PlanActive}
	repo.On("UpdatePlan", ctx, mock.Anything).Return(updated, (*app_errors.AppError)(nil))

	notifier.On("Broadcast", mock.Anything).Return()

	end := "2026-02-27"
	resp, err := service.UpdatePlan(ctx, 2, &plan_dto.UpdatePlanRequest{Name: &name, EndDate: &end})

	assert.Nil(t, err)
	assert.Equal(t, name, resp.Name)

	notifier.AssertExpectations(t)
}

func TestSelectSprintActivities_ReplacesSet(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPlanRepo)
	notifier := new(MockBroadcaster)
	service := &PlanService{repo: repo, notifier: notifier}

	plan := &entity.PlanEntity{ID: 1, Status: entity.PlanActive}
	repo.On("GetPlanByID", ctx, int64(1)).Return(plan, (*app_errors.AppError)(nil))
	repo.On("ReplaceSprintSelections", ctx, int64(1), []int64{10, 11}, (*string)(nil)).Return((*app_errors.AppError)(nil))

	selections := []entity.SprintSelectionEntity{
		{ID: 1, PlanID: 1, ActivityID: 10, ActivityName: "Import pipeline", ProjectName: "Data tooling"},
		{ID: 2, PlanID: 1, ActivityID: 11, ActivityName: "QC report", ProjectName: "Data tooling"},
	}
	repo.On("ListSprintSelections", ctx, int64(1)).Return(selections, (*app_errors.AppError)(nil))

	notifier.On("Broadcast", mock.Anything).Return()

	result, err := service.SelectSprintActivities(ctx, 1, &plan_dto.SelectActivitiesRequest{ActivityIDs: []int64{10, 11}})

	assert.Nil(t, err)
	assert.Len(t, result, 2)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
