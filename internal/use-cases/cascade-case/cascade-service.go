package cascade_case

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	"github.com/nuwan-labs/project-buddy/internal/config"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	project_repo "github.com/nuwan-labs/project-buddy/internal/repo/project-repo"
)

type CascadeService struct {
	repo         project_repo.ProjectRepoContract
	autoComplete bool
}

func NewCascadeService(db *pgxpool.Pool, cfg *config.AppConfig) CascadeServiceContract {
	return &CascadeService{
		repo:         project_repo.NewProjectRepo(db),
		autoComplete: cfg.STATUS.AutoCompleteProjects,
	}
}

func (s *CascadeService) RecomputeProjectStatus(ctx context.Context, t tx.Tx, activityID int64) (*entity.ProjectStatus, *app_errors.AppError) {
	activity, err := s.repo.GetActivityInTx(ctx, t, activityID)
	if err != nil {
		if err.Code == fiber.StatusNotFound {
			// A log can reference a since-deleted activity. Not a failure.
			log.Warn().Int64("activity_id", activityID).Msg("cascade: activity missing, skipping")
			return nil, nil
		}
		return nil, err
	}

	return s.RecomputeProject(ctx, t, activity.ProjectID)
}

func (s *CascadeService) RecomputeProject(ctx context.Context, t tx.Tx, projectID int64) (*entity.ProjectStatus, *app_errors.AppError) {
	project, err := s.repo.GetProjectForUpdate(ctx, t, projectID)
	if err != nil {
		if err.Code == fiber.StatusNotFound {
			log.Warn().Int64("project_id", projectID).Msg("cascade: project missing, skipping")
			return nil, nil
		}
		return nil, err
	}

	statuses, err := s.repo.ListActivityStatusesByProject(ctx, t, project.ID)
	if err != nil {
		return nil, err
	}

	next, changed := entity.NextProjectStatus(project.Status, statuses, s.autoComplete)
	if !changed {
		return nil, nil
	}

	if err := s.repo.SetProjectStatusInTx(ctx, t, project.ID, next); err != nil {
		return nil, err
	}

	log.Info().
		Int64("project_id", project.ID).
		Str("from", string(project.Status)).
		Str("to", string(next)).
		Msg("cascade: project status updated")

	return &next, nil
}
