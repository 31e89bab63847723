package plan_case

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	plan_repo "github.com/nuwan-labs/project-buddy/internal/repo/plan-repo"
)

type PlanService struct {
	repo     plan_repo.PlanRepoContract
	notifier notify.Broadcaster
}

func NewPlanService(db *pgxpool.Pool, notifier notify.Broadcaster) PlanServiceContract {
	return &PlanService{
		repo:     plan_repo.NewPlanRepo(db),
		notifier: notifier,
	}
}

// CreatePlan inserts a new Active plan. At most one plan may be Active at a
// time, so an existing Active plan rejects the create with a conflict.
func (s *PlanService) CreatePlan(ctx context.Context, req *plan_dto.CreatePlanRequest) (*plan_dto.PlanResponse, *app_errors.AppError) {
	if req.EndDate < req.StartDate {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "validation.datetime", nil)
	}

	count, err := s.repo.CountActivePlans(ctx, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "plan.active_exists", nil)
	}

	inserted, err := s.repo.InsertPlan(ctx, &entity.PlanEntity{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      entity.PlanActive,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("plan_id", inserted.ID).Str("name", inserted.Name).Msg("plan created")

	resp := plan_dto.ToPlanResponse(inserted)
	return &resp, nil
}

func (s *PlanService) GetPlan(ctx context.Context, planID int64) (*plan_dto.PlanResponse, *app_errors.AppError) {
	plan, err := s.repo.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	resp := plan_dto.ToPlanResponse(plan)
	return &resp, nil
}

func (s *PlanService) GetActivePlan(ctx context.Context) (*entity.PlanEntity, *app_errors.AppError) {
	return s.repo.GetActivePlan(ctx)
}

func (s *PlanService) ListPlans(ctx context.Context, filter *plan_dto.PlanListFilter) ([]plan_dto.PlanResponse, *app_errors.AppError) {
	plans, err := s.repo.ListPlans(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]plan_dto.PlanResponse, 0, len(plans))
	for i := range plans {
		results = append(results, plan_dto.ToPlanResponse(&plans[i]))
	}
	return results, nil
}

func (s *PlanService) UpdatePlan(ctx context.Context, planID int64, req *plan_dto.UpdatePlanRequest) (*plan_dto.PlanResponse, *app_errors.AppError) {
	plan, err := s.repo.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.StartDate != nil {
		plan.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		plan.EndDate = *req.EndDate
	}
	if plan.EndDate < plan.StartDate {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "validation.datetime", nil)
	}

	if req.Status != nil {
		next := entity.PlanStatus(*req.Status)
		if next == entity.PlanActive && plan.Status != entity.PlanActive {
			count, err := s.repo.CountActivePlans(ctx, &planID)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "plan.active_exists", nil)
			}
		}
		plan.Status = next
	}

	updated, err := s.repo.UpdatePlan(ctx, plan)
	if err != nil {
		return nil, err
	}

	s.notifier.Broadcast(notify.NewPlanUpdatedEvent(updated.ID))

	resp := plan_dto.ToPlanResponse(updated)
	return &resp, nil
}

func (s *PlanService) DeletePlan(ctx context.Context, planID int64) *app_errors.AppError {
	return s.repo.DeletePlan(ctx, planID)
}

// SelectSprintActivities replaces the plan's sprint selection wholesale and
// returns the new set with display names resolved.
func (s *PlanService) SelectSprintActivities(ctx context.Context, planID int64, req *plan_dto.SelectActivitiesRequest) ([]entity.SprintSelectionEntity, *app_errors.AppError) {
	if _, err := s.repo.GetPlanByID(ctx, planID); err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceSprintSelections(ctx, planID, req.ActivityIDs, req.Notes); err != nil {
		return nil, err
	}

	s.notifier.Broadcast(notify.NewPlanUpdatedEvent(planID))

	return s.repo.ListSprintSelections(ctx, planID)
}

func (s *PlanService) ListSprintSelections(ctx context.Context, planID int64) ([]entity.SprintSelectionEntity, *app_errors.AppError) {
	if _, err := s.repo.GetPlanByID(ctx, planID); err != nil {
		return nil, err
	}
	return s.repo.ListSprintSelections(ctx, planID)
}
