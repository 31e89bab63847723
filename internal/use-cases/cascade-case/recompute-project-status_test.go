package cascade_case

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

func activityFixture(id, projectID int64) *entity.ActivityEntity {
	return &entity.ActivityEntity{
		ID:        id,
		ProjectID: projectID,
		Name:      "Write import pipeline",
		Status:    entity.ActivityInProgress,
	}
}

func projectFixture(id int64, status entity.ProjectStatus) *entity.ProjectEntity {
	return &entity.ProjectEntity{
		ID:     id,
		PlanID: 1,
		Name:   "Data tooling",
		Status: status,
	}
}

// Logging work against a Not Started project activates it.
func TestRecomputeProjectStatus_Activates(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	tx := new(MockTx)
	service := &CascadeService{repo: repo, autoComplete: false}

	repo.On("GetActivityInTx", ctx, tx, int64(10)).Return(activityFixture(10, 3), (*app_errors.AppError)(nil))
	repo.On("GetProjectForUpdate", ctx, tx, int64(3)).Return(projectFixture(3, entity.ProjectNotStarted), (*app_errors.AppError)(nil))
	repo.On("ListActivityStatusesByProject", ctx, tx, int64(3)).Return([]entity.ActivityStatus{entity.ActivityInProgress, entity.ActivityNotStarted}, (*app_errors.AppError)(nil))
	repo.On("SetProjectStatusInTx", ctx, tx, int64(3), entity.ProjectActive).Return((*app_errors.AppError)(nil))

	next, err := service.RecomputeProjectStatus(ctx, tx, 10)

	assert.Nil(t, err)
	assert.NotNil(t, next)
	assert.Equal(t, entity.ProjectActive, *next)

	repo.AssertExpectations(t)
}

func TestRecomputeProjectStatus_NoChangeWhenAlreadyActive(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	tx := new(MockTx)
	service := &CascadeService{repo: repo, autoComplete: false}

	repo.On("GetActivityInTx", ctx, tx, int64(10)).Return(activityFixture(10, 3), (*app_errors.AppError)(nil))
	repo.On("GetProjectForUpdate", ctx, tx, int64(3)).Return(projectFixture(3, entity.ProjectActive), (*app_errors.AppError)(nil))
	repo.On("ListActivityStatusesByProject", ctx, tx, int64(3)).Return([]entity.ActivityStatus{entity.ActivityInProgress}, (*app_errors.AppError)(nil))

	next, err := service.RecomputeProjectStatus(ctx, tx, 10)

	assert.Nil(t, err)
	assert.Nil(t, next)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "SetProjectStatusInTx")
}

// On Hold and Archived projects are never touched.
func TestRecomputeProjectStatus_AdministrativeStatusWins(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	tx := new(MockTx)
	service := &CascadeService{repo: repo, autoComplete: true}

	repo.On("GetActivityInTx", ctx, tx, int64(10)).Return(activityFixture(10, 3), (*app_errors.AppError)(nil))
	repo.On("GetProjectForUpdate", ctx, tx, int64(3)).Return(projectFixture(3, entity.ProjectOnHold), (*app_errors.AppError)(nil))
	repo.On("ListActivityStatusesByProject", ctx, tx, int64(3)).Return([]entity.ActivityStatus{entity.ActivityComplete}, (*app_errors.AppError)(nil))

	next, err := service.RecomputeProjectStatus(ctx, tx, 10)

	assert.Nil(t, err)
	assert.Nil(t, next)

	repo.AssertNotCalled(t, "SetProjectStatusInTx")
}

func TestRecomputeProjectStatus_AutoCompleteEnabled(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	tx := new(MockTx)
	service := &CascadeService{repo: repo, autoComplete: true}

	repo.On("GetActivityInTx", ctx, tx, int64(10)).Return(activityFixture(10, 3), (*app_errors.AppError)(nil))
	repo.On("GetProjectForUpdate", ctx, tx, int64(3)).Return(projectFixture(3, entity.ProjectActive), (*app_errors.AppError)(nil))
	repo.On("ListActivityStatusesByProject", ctx, tx, int64(3)).Return([]entity.ActivityStatus{entity.ActivityComplete, entity.ActivityComplete}, (*app_errors.AppError)(nil))
	repo.On("SetProjectStatusInTx", ctx, tx, int64(3), entity.ProjectComplete).Return((*app_errors.AppError)(nil))

	next, err := service.RecomputeProjectStatus(ctx, tx, 10)

	assert.Nil(t, err)
	assert.NotNil(t, next)
	assert.Equal(t, entity.ProjectComplete, *next)

	repo.AssertExpectations(t)
}

// A dangling activity reference is skipped, not an error.
func TestRecomputeProjectStatus_MissingActivityIsNoOp(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	tx := new(MockTx)
	service := &CascadeService{repo: repo, autoComplete: false}

	notFound := app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "activity.not_found", nil)
	repo.On("GetActivityInTx", ctx, tx, int64(99)).Return((*entity.ActivityEntity)(nil), notFound)

	next, err := service.RecomputeProjectStatus(ctx, tx, 99)

	assert.Nil(t, err)
	assert.Nil(t, next)

	repo.AssertNotCalled(t, "GetProjectForUpdate")
}

func TestRecomputeProjectStatus_RepoErrorPropagates(t *testing.T) {
	ctx := context.Background()

	repo := new(MockProjectRepo)
	tx := new(MockTx)
	service := &CascadeService{repo: repo, autoComplete: false}

	internal := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	repo.On("GetActivityInTx", ctx, tx, int64(10)).Return(activityFixture(10, 3), (*app_errors.AppError)(nil))
	repo.On("GetProjectForUpdate", ctx, tx, int64(3)).Return((*entity.ProjectEntity)(nil), internal)

	next, err := service.RecomputeProjectStatus(ctx, tx, 10)

	assert.Nil(t, next)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, err.Code)
}
