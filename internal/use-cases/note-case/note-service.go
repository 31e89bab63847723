package note_case

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	note_dto "github.com/nuwan-labs/project-buddy/internal/dtos/note-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	note_repo "github.com/nuwan-labs/project-buddy/internal/repo/note-repo"
	plan_repo "github.com/nuwan-labs/project-buddy/internal/repo/plan-repo"
	project_repo "github.com/nuwan-labs/project-buddy/internal/repo/project-repo"
)

type NoteService struct {
	repo     note_repo.NoteRepoContract
	projects project_repo.ProjectRepoContract
	plans    plan_repo.PlanRepoContract
}

func NewNoteService(db *pgxpool.Pool) NoteServiceContract {
	return &NoteService{
		repo:     note_repo.NewNoteRepo(db),
		projects: project_repo.NewProjectRepo(db),
		plans:    plan_repo.NewPlanRepo(db),
	}
}

// SaveNote upserts the single note for (project, date). The plan link is
// taken from the current Active plan when one exists.
func (s *NoteService) SaveNote(ctx context.Context, req *note_dto.SaveNoteRequest) (*entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	if _, err := s.projects.GetProjectByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	var planID *int64
	if plan, err := s.plans.GetActivePlan(ctx); err == nil {
		planID = &plan.ID
	}

	saved, err := s.repo.UpsertNote(ctx, &entity.ProjectDailyNoteEntity{
		ProjectID: req.ProjectID,
		PlanID:    planID,
		Date:      req.Date,
		WhatIDid:  req.WhatIDid,
		Blockers:  req.Blockers,
		NextSteps: req.NextSteps,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("project_id", req.ProjectID).Str("date", req.Date).Msg("daily note saved")
	return saved, nil
}

func (s *NoteService) ListNotes(ctx context.Context, filter *note_dto.NoteListFilter) ([]entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	return s.repo.ListNotes(ctx, filter)
}

func (s *NoteService) GetNote(ctx context.Context, noteID int64) (*entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	return s.repo.GetNoteByID(ctx, noteID)
}

func (s *NoteService) DeleteNote(ctx context.Context, noteID int64) *app_errors.AppError {
	return s.repo.DeleteNote(ctx, noteID)
}
