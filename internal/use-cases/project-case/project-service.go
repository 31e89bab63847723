package project_case

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	"github.com/nuwan-labs/project-buddy/internal/config"
	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	project_repo "github.com/nuwan-labs/project-buddy/internal/repo/project-repo"
	cascade_case "github.com/nuwan-labs/project-buddy/internal/use-cases/cascade-case"
)

type ProjectService struct {
	repo      project_repo.ProjectRepoContract
	cascade   cascade_case.CascadeServiceContract
	txManager tx.TxManager
}

func NewProjectService(db *pgxpool.Pool, cfg *config.AppConfig) ProjectServiceContract {
	return &ProjectService{
		repo:      project_repo.NewProjectRepo(db),
		cascade:   cascade_case.NewCascadeService(db, cfg),
		txManager: tx.NewPgxTxManager(db),
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, req *project_dto.CreateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError) {
	status := entity.ProjectNotStarted
	if req.Status != nil {
		status = entity.ProjectStatus(*req.Status)
	}

	inserted, err := s.repo.InsertProject(ctx, &entity.ProjectEntity{
		PlanID:      req.PlanID,
		Name:        req.Name,
		Description: req.Description,
		Goal:        req.Goal,
		Status:      status,
		ColorTag:    req.ColorTag,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("project_id", inserted.ID).Str("name", inserted.Name).Msg("project created")

	resp := project_dto.ToProjectResponse(inserted, nil)
	return &resp, nil
}

func (s *ProjectService) GetProject(ctx context.Context, projectID int64) (*project_dto.ProjectResponse, *app_errors.AppError) {
	project, err := s.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.GetProjectStats(ctx, projectID)
	if err != nil {
		return nil, err
	}

	resp := project_dto.ToProjectResponse(project, stats)
	return &resp, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, filter *project_dto.ProjectListFilter) ([]project_dto.ProjectResponse, *app_errors.AppError) {
	projects, err := s.repo.ListProjects(ctx, filter)
	if err != nil {
		return nil, err
	}

	results := make([]project_dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		stats, err := s.repo.GetProjectStats(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		results = append(results, project_dto.ToProjectResponse(&projects[i], stats))
	}
	return results, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID int64, req *project_dto.UpdateProjectRequest) (*project_dto.ProjectResponse, *app_errors.AppError) {
	project, err := s.repo.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Goal != nil {
		project.Goal = req.Goal
	}
	if req.Status != nil {
		project.Status = entity.ProjectStatus(*req.Status)
	}
	if req.ColorTag != nil {
		project.ColorTag = req.ColorTag
	}

	updated, err := s.repo.UpdateProject(ctx, project)
	if err != nil {
		return nil, err
	}

	resp := project_dto.ToProjectResponse(updated, nil)
	return &resp, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID int64) *app_errors.AppError {
	return s.repo.DeleteProject(ctx, projectID)
}

func (s *ProjectService) CreateActivity(ctx context.Context, projectID int64, req *project_dto.CreateActivityRequest) (*project_dto.ActivityResponse, *app_errors.AppError) {
	if _, err := s.repo.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	status := entity.ActivityNotStarted
	if req.Status != nil {
		status = entity.ActivityStatus(*req.Status)
	}

	var estimated float64
	if req.EstimatedHours != nil {
		estimated = *req.EstimatedHours
	}

	inserted, err := s.repo.InsertActivity(ctx, &entity.ActivityEntity{
		ProjectID:      projectID,
		Name:           req.Name,
		Description:    req.Description,
		Deliverables:   req.Deliverables,
		Dependencies:   req.Dependencies,
		Status:         status,
		EstimatedHours: estimated,
	})
	if err != nil {
		return nil, err
	}

	// An activity born In Progress should reflect on its project right away.
	if status != entity.ActivityNotStarted {
		s.recomputeProject(ctx, projectID)
	}

	resp := project_dto.ToActivityResponse(inserted)
	return &resp, nil
}

func (s *ProjectService) ListActivities(ctx context.Context, projectID int64) ([]project_dto.ActivityResponse, *app_errors.AppError) {
	if _, err := s.repo.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	activities, err := s.repo.ListActivities(ctx, projectID)
	if err != nil {
		return nil, err
	}

	results := make([]project_dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		results = append(results, project_dto.ToActivityResponse(&activities[i]))
	}
	return results, nil
}

func (s *ProjectService) UpdateActivity(ctx context.Context, activityID int64, req *project_dto.UpdateActivityRequest) (*project_dto.ActivityResponse, *app_errors.AppError) {
	activity, err := s.repo.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = req.Description
	}
	if req.Deliverables != nil {
		activity.Deliverables = req.Deliverables
	}
	if req.Dependencies != nil {
		activity.Dependencies = req.Dependencies
	}
	if req.Status != nil && entity.ActivityStatus(*req.Status) != activity.Status {
		activity.Status = entity.ActivityStatus(*req.Status)
		statusChanged = true
	}
	if req.EstimatedHours != nil {
		activity.EstimatedHours = *req.EstimatedHours
	}

	updated, err := s.repo.UpdateActivity(ctx, activity)
	if err != nil {
		return nil, err
	}

	if statusChanged {
		s.recomputeProject(ctx, updated.ProjectID)
	}

	resp := project_dto.ToActivityResponse(updated)
	return &resp, nil
}

func (s *ProjectService) DeleteActivity(ctx context.Context, activityID int64) *app_errors.AppError {
	activity, err := s.repo.GetActivityByID(ctx, activityID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteActivity(ctx, activityID); err != nil {
		return err
	}

	s.recomputeProject(ctx, activity.ProjectID)
	return nil
}

// recomputeProject runs the status cascade in its own short transaction.
// Best effort: the triggering write already succeeded.
func (s *ProjectService) recomputeProject(ctx context.Context, projectID int64) {
	t, err := s.txManager.Begin(ctx)
	if err != nil {
		log.Warn().Int64("project_id", projectID).Msg("cascade: could not begin transaction")
		return
	}
	defer t.Rollback(ctx)

	if _, err := s.cascade.RecomputeProject(ctx, t, projectID); err != nil {
		log.Warn().Int64("project_id", projectID).Str("error", err.Error()).Msg("cascade: recompute failed")
		return
	}

	if err := t.Commit(ctx); err != nil {
		log.Warn().Int64("project_id", projectID).Msg("cascade: commit failed")
	}
}
