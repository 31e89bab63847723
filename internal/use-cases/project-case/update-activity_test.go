package project_case

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	cascade_case "github.com/nuwan-labs/project-buddy/internal/use-cases/cascade-case"
)

func ptrString(v string) *string { return &v }

// Editing an activity's status triggers the project cascade.
func TestUpdateActivity_StatusChangeTriggersCascade(t *testing.T) {
	ctx := context.Background()

	repo := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	service := &ProjectService{repo: repo, cascade: cascade, txManager: txManager}

	activity := &entity.ActivityEntity{ID: 10, ProjectID: 3, Name: "Import pipeline", Status: entity.ActivityInProgress}
	repo.On("GetActivityByID", ctx, int64(10)).Return(activity, (*app_errors.AppError)(nil))

	updated := &entity.ActivityEntity{ID: 10, ProjectID: 3, Name: "Import pipeline", Status: entity.ActivityComplete}
	repo.On("UpdateActivity", ctx, mock.MatchedBy(func(a *entity.ActivityEntity) bool {
		return a.Status == entity.ActivityComplete
	})).Return(updated, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	cascade.On("RecomputeProject", ctx, tx, int64(3)).Return((*entity.ProjectStatus)(nil), (*app_errors.AppError)(nil))

	resp, err := service.UpdateActivity(ctx, 10, &project_dto.UpdateActivityRequest{Status: ptrString(string(entity.ActivityComplete))})

	assert.Nil(t, err)
	assert.Equal(t, string(entity.ActivityComplete), resp.Status)

	cascade.AssertExpectations(t)
	repo.AssertExpectations(t)
}

// Renaming without a status change leaves the project alone.
func TestUpdateActivity_NoStatusChangeSkipsCascade(t *testing.T) {
	ctx := context.Background()

	repo := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	service := &ProjectService{repo: repo, cascade: cascade, txManager: txManager}

	activity := &entity.ActivityEntity{ID: 10, ProjectID: 3, Name: "Import pipeline", Status: entity.ActivityInProgress}
	repo.On("GetActivityByID", ctx, int64(10)).Return(activity, (*app_errors.AppError)(nil))

	updated := &entity.ActivityEntity{ID: 10, ProjectID: 3, Name: "Import pipeline v2", Status: entity.ActivityInProgress}
	repo.On("UpdateActivity", ctx, mock.Anything).Return(updated, (*app_errors.AppError)(nil))

	resp, err := service.UpdateActivity(ctx, 10, &project_dto.UpdateActivityRequest{Name: ptrString("Import pipeline v2")})

	assert.Nil(t, err)
	assert.Equal(t, "Import pipeline v2", resp.Name)

	cascade.AssertNotCalled(t, "RecomputeProject")
	txManager.AssertNotCalled(t, "Begin")
}

// Deleting an activity recomputes the status of its former project.
func TestDeleteActivity_TriggersCascade(t *testing.T) {
	ctx := context.Background()

	repo := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	service := &ProjectService{repo: repo, cascade: cascade, txManager: txManager}

	activity := &entity.ActivityEntity{ID: 10, ProjectID: 3, Status: entity.ActivityNotStarted}
	repo.On("GetActivityByID", ctx, int64(10)).Return(activity, (*app_errors.AppError)(nil))
	repo.On("DeleteActivity", ctx, int64(10)).Return((*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	complete := entity.ProjectComplete
	cascade.On("RecomputeProject", ctx, tx, int64(3)).Return(&complete, (*app_errors.AppError)(nil))

	err := service.DeleteActivity(ctx, 10)

	assert.Nil(t, err)
	cascade.AssertExpectations(t)
}

// A cascade failure after a successful delete is swallowed.
func TestDeleteActivity_CascadeFailureIgnored(t *testing.T) {
	ctx := context.Background()

	repo := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	service := &ProjectService{repo: repo, cascade: cascade, txManager: txManager}

	activity := &entity.ActivityEntity{ID: 10, ProjectID: 3, Status: entity.ActivityNotStarted}
	repo.On("GetActivityByID", ctx, int64(10)).Return(activity, (*app_errors.AppError)(nil))
	repo.On("DeleteActivity", ctx, int64(10)).Return((*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	internal := app_errors.NewAppError(500, app_errors.ErrInternal, "internal_error", nil)
	cascade.On("RecomputeProject", ctx, tx, int64(3)).Return((*entity.ProjectStatus)(nil), internal)

	err := service.DeleteActivity(ctx, 10)

	assert.Nil(t, err)
	tx.AssertNotCalled(t, "Commit")
}

func TestCreateActivity_DefaultsToNotStarted(t *testing.T) {
	ctx := context.Background()

	repo := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	service := &ProjectService{repo: repo, cascade: cascade, txManager: txManager}

	project := &entity.ProjectEntity{ID: 3, Status: entity.ProjectNotStarted}
	repo.On("GetProjectByID", ctx, int64(3)).Return(project, (*app_errors.AppError)(nil))

	inserted := &entity.ActivityEntity{ID: 10, ProjectID: 3, Name: "New task", Status: entity.ActivityNotStarted}
	repo.On("InsertActivity", ctx, mock.MatchedBy(func(a *entity.ActivityEntity) bool {
		return a.Status == entity.ActivityNotStarted
	})).Return(inserted, (*app_errors.AppError)(nil))

	resp, err := service.CreateActivity(ctx, 3, &project_dto.CreateActivityRequest{Name: "New task"})

	assert.Nil(t, err)
	assert.Equal(t, string(entity.ActivityNotStarted), resp.Status)

	cascade.AssertNotCalled(t, "RecomputeProject")
}
