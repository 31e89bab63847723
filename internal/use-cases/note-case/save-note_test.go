package note_case

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	note_dto "github.com/nuwan-labs/project-buddy/internal/dtos/note-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	cascade_case "github.com/nuwan-labs/project-buddy/internal/use-cases/cascade-case"
)

func TestSaveNote_LinksActivePlan(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNoteRepo)
	projects := new(cascade_case.MockProjectRepo)
	plans := new(MockPlanRepo)
	service := &NoteService{repo: repo, projects: projects, plans: plans}

	project := &entity.ProjectEntity{ID: 3, Name: "Data tooling", Status: entity.ProjectActive}
	projects.On("GetProjectByID", ctx, int64(3)).Return(project, (*app_errors.AppError)(nil))

	plan := &entity.PlanEntity{ID: 1, Status: entity.PlanActive}
	plans.On("GetActivePlan", ctx).Return(plan, (*app_errors.AppError)(nil))

	saved := &entity.ProjectDailyNoteEntity{ID: 7, ProjectID: 3, Date: "2026-02-24", WhatIDid: "Finished the importer"}
	repo.On("UpsertNote", ctx, mock.MatchedBy(func(n *entity.ProjectDailyNoteEntity) bool {
		return n.ProjectID == 3 && n.Date == "2026-02-24" && n.PlanID != nil && *n.PlanID == 1
	})).Return(saved, (*app_errors.AppError)(nil))

	result, err := service.SaveNote(ctx, &note_dto.SaveNoteRequest{
		ProjectID: 3,
		Date:      "2026-02-24",
		WhatIDid:  "Finished the importer",
	})

	assert.Nil(t, err)
	assert.Equal(t, int64(7), result.ID)

	repo.AssertExpectations(t)
}

func TestSaveNote_UnknownProject(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNoteRepo)
	projects := new(cascade_case.MockProjectRepo)
	plans := new(MockPlanRepo)
	service := &NoteService{repo: repo, projects: projects, plans: plans}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project.not_found", nil)
	projects.On("GetProjectByID", ctx, int64(99)).Return((*entity.ProjectEntity)(nil), notFound)

	result, err := service.SaveNote(ctx, &note_dto.SaveNoteRequest{ProjectID: 99, Date: "2026-02-24", WhatIDid: "x"})

	assert.Nil(t, result)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)

	repo.AssertNotCalled(t, "UpsertNote")
}

// Without an active plan the note is saved unlinked.
func TestSaveNote_NoActivePlan(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNoteRepo)
	projects := new(cascade_case.MockProjectRepo)
	plans := new(MockPlanRepo)
	service := &NoteService{repo: repo, projects: projects, plans: plans}

	project := &entity.ProjectEntity{ID: 3, Status: entity.ProjectActive}
	projects.On("GetProjectByID", ctx, int64(3)).Return(project, (*app_errors.AppError)(nil))

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "plan.not_found", nil)
	plans.On("GetActivePlan", ctx).Return((*entity.PlanEntity)(nil), notFound)

	saved := &entity.ProjectDailyNoteEntity{ID: 8, ProjectID: 3, Date: "2026-02-24"}
	repo.On("UpsertNote", ctx, mock.MatchedBy(func(n *entity.ProjectDailyNoteEntity) bool {
		return n.PlanID == nil
	})).Return(saved, (*app_errors.AppError)(nil))

	_, err := service.SaveNote(ctx, &note_dto.SaveNoteRequest{ProjectID: 3, Date: "2026-02-24", WhatIDid: "x"})

	assert.Nil(t, err)
	repo.AssertExpectations(t)
}
