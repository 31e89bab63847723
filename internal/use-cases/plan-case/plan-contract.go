package plan_case

import (
	"context"

	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type PlanServiceContract interface {
	CreatePlan(ctx context.Context, req *plan_dto.CreatePlanRequest) (*plan_dto.PlanResponse, *app_errors.AppError)
	GetPlan(ctx context.Context, planID int64) (*plan_dto.PlanResponse, *app_errors.AppError)
	GetActivePlan(ctx context.Context) (*entity.PlanEntity, *app_errors.AppError)
	ListPlans(ctx context.Context, filter *plan_dto.PlanListFilter) ([]plan_dto.PlanResponse, *app_errors.AppError)
	UpdatePlan(ctx context.Context, planID int64, req *plan_dto.UpdatePlanRequest) (*plan_dto.PlanResponse, *app_errors.AppError)
	DeletePlan(ctx context.Context, planID int64) *app_errors.AppError
	SelectSprintActivities(ctx context.Context, planID int64, req *plan_dto.SelectActivitiesRequest) ([]entity.SprintSelectionEntity, *app_errors.AppError)
	ListSprintSelections(ctx context.Context, planID int64) ([]entity.SprintSelectionEntity, *app_errors.AppError)
}
