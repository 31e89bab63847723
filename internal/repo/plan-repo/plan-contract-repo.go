package plan_repo

import (
	"context"

	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type PlanRepoContract interface {
	GetPlanByID(ctx context.Context, planID int64) (*entity.PlanEntity, *app_errors.AppError)
	GetActivePlan(ctx context.Context) (*entity.PlanEntity, *app_errors.AppError)
	CountActivePlans(ctx context.Context, excludeID *int64) (int64, *app_errors.AppError)
	ListPlans(ctx context.Context, filter *plan_dto.PlanListFilter) ([]entity.PlanEntity, *app_errors.AppError)
	InsertPlan(ctx context.Context, plan *entity.PlanEntity) (*entity.PlanEntity, *app_errors.AppError)
	UpdatePlan(ctx context.Context, plan *entity.PlanEntity) (*entity.PlanEntity, *app_errors.AppError)
	DeletePlan(ctx context.Context, planID int64) *app_errors.AppError
	ListSprintSelections(ctx context.Context, planID int64) ([]entity.SprintSelectionEntity, *app_errors.AppError)
	ReplaceSprintSelections(ctx context.Context, planID int64, activityIDs []int64, notes *string) *app_errors.AppError
}
