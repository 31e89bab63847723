package worklog_case

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	cascade_case "github.com/nuwan-labs/project-buddy/internal/use-cases/cascade-case"
)

func ptrInt64(v int64) *int64 { return &v }

func ptrString(v string) *string { return &v }

// Logging against a fresh activity starts it, activates the project and
// broadcasts activity_logged, all from one call.
func TestCreateWorkLog_FirstLogStartsActivityAndCascades(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkLogRepo)
	projects := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	notifier := new(MockBroadcaster)
	service := &WorkLogService{
		repo:      repo,
		projects:  projects,
		cascade:   cascade,
		txManager: txManager,
		notifier:  notifier,
	}

	req := &worklog_dto.CreateWorkLogRequest{
		Comment:         "Wrote the CSV import path",
		DurationMinutes: 45,
		ActivityID:      ptrInt64(10),
		Timestamp:       ptrString("2026-02-24T10:30:00+05:30"),
	}

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	activity := &entity.ActivityEntity{
		ID:        10,
		ProjectID: 3,
		Name:      "Import pipeline",
		Status:    entity.ActivityNotStarted,
	}
	projects.On("GetActivityInTx", ctx, tx, int64(10)).Return(activity, (*app_errors.AppError)(nil))
	projects.On("StartActivityInTx", ctx, tx, int64(10)).Return((*app_errors.AppError)(nil))

	inserted := &entity.WorkLogEntity{
		ID:              77,
		ProjectID:       ptrInt64(3),
		ActivityID:      ptrInt64(10),
		Comment:         req.Comment,
		DurationMinutes: 45,
		Timestamp:       *req.Timestamp,
	}
	repo.On("InsertWorkLogInTx", ctx, tx, mock.Anything).Return(inserted, (*app_errors.AppError)(nil))

	active := entity.ProjectActive
	cascade.On("RecomputeProjectStatus", ctx, tx, int64(10)).Return(&active, (*app_errors.AppError)(nil))

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	detail := &entity.WorkLogDetail{
		WorkLogEntity: *inserted,
		ProjectName:   "Data tooling",
		ActivityName:  ptrString("Import pipeline"),
	}
	repo.On("GetWorkLogDetailByID", ctx, int64(77)).Return(detail, (*app_errors.AppError)(nil))

	notifier.On("Broadcast", mock.MatchedBy(func(e notify.Event) bool {
		return e.Type == notify.EventActivityLogged
	})).Return()

	resp, err := service.CreateWorkLog(ctx, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.True(t, resp.Cascade.ActivityStarted)
	assert.NotNil(t, resp.Cascade.ProjectNewStatus)
	assert.Equal(t, string(entity.ProjectActive), *resp.Cascade.ProjectNewStatus)
	assert.Equal(t, "Data tooling", resp.Log.ProjectName)

	repo.AssertExpectations(t)
	projects.AssertExpectations(t)
	cascade.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

// An unlinked log writes and broadcasts without touching any project.
func TestCreateWorkLog_WithoutActivity(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkLogRepo)
	projects := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	notifier := new(MockBroadcaster)
	service := &WorkLogService{
		repo:      repo,
		projects:  projects,
		cascade:   cascade,
		txManager: txManager,
		notifier:  notifier,
	}

	req := &worklog_dto.CreateWorkLogRequest{
		Comment:         "Sprint planning",
		DurationMinutes: 30,
		Timestamp:       ptrString("2026-02-24T09:00:00+05:30"),
	}

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	inserted := &entity.WorkLogEntity{ID: 78, Comment: req.Comment, DurationMinutes: 30, Timestamp: *req.Timestamp}
	repo.On("InsertWorkLogInTx", ctx, tx, mock.Anything).Return(inserted, (*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	detail := &entity.WorkLogDetail{WorkLogEntity: *inserted}
	repo.On("GetWorkLogDetailByID", ctx, int64(78)).Return(detail, (*app_errors.AppError)(nil))

	notifier.On("Broadcast", mock.Anything).Return()

	resp, err := service.CreateWorkLog(ctx, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Cascade.ActivityStarted)
	assert.Nil(t, resp.Cascade.ProjectNewStatus)

	projects.AssertNotCalled(t, "GetActivityInTx")
	cascade.AssertNotCalled(t, "RecomputeProjectStatus")
	repo.AssertExpectations(t)
}

// A cascade failure is swallowed: the log still commits and broadcasts.
func TestCreateWorkLog_CascadeFailureKeepsLog(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkLogRepo)
	projects := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	notifier := new(MockBroadcaster)
	service := &WorkLogService{
		repo:      repo,
		projects:  projects,
		cascade:   cascade,
		txManager: txManager,
		notifier:  notifier,
	}

	req := &worklog_dto.CreateWorkLogRequest{
		Comment:         "Debugging the exporter",
		DurationMinutes: 60,
		ActivityID:      ptrInt64(10),
		Timestamp:       ptrString("2026-02-24T14:00:00+05:30"),
	}

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	activity := &entity.ActivityEntity{ID: 10, ProjectID: 3, Status: entity.ActivityInProgress}
	projects.On("GetActivityInTx", ctx, tx, int64(10)).Return(activity, (*app_errors.AppError)(nil))

	inserted := &entity.WorkLogEntity{ID: 79, ProjectID: ptrInt64(3), ActivityID: ptrInt64(10), Comment: req.Comment, DurationMinutes: 60, Timestamp: *req.Timestamp}
	repo.On("InsertWorkLogInTx", ctx, tx, mock.Anything).Return(inserted, (*app_errors.AppError)(nil))

	internal := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	cascade.On("RecomputeProjectStatus", ctx, tx, int64(10)).Return((*entity.ProjectStatus)(nil), internal)

	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	detail := &entity.WorkLogDetail{WorkLogEntity: *inserted, ProjectName: "Data tooling"}
	repo.On("GetWorkLogDetailByID", ctx, int64(79)).Return(detail, (*app_errors.AppError)(nil))

	notifier.On("Broadcast", mock.Anything).Return()

	resp, err := service.CreateWorkLog(ctx, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.Cascade.ActivityStarted)
	assert.Nil(t, resp.Cascade.ProjectNewStatus)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

// A failed insert rolls back and nothing is broadcast.
// Once the transaction has committed, a failed read-back degrades the
// response to the inserted row instead of erroring a write that stuck.
func TestCreateWorkLog_ReadBackFailureAfterCommit(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkLogRepo)
	projects := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	notifier := new(MockBroadcaster)
	service := &WorkLogService{
		repo:      repo,
		projects:  projects,
		cascade:   cascade,
		txManager: txManager,
		notifier:  notifier,
	}

	req := &worklog_dto.CreateWorkLogRequest{
		Comment:         "Standup notes",
		DurationMinutes: 20,
		Timestamp:       ptrString("2026-02-24T11:00:00+05:30"),
	}

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	inserted := &entity.WorkLogEntity{ID: 80, Comment: req.Comment, DurationMinutes: 20, Timestamp: *req.Timestamp}
	repo.On("InsertWorkLogInTx", ctx, tx, mock.Anything).Return(inserted, (*app_errors.AppError)(nil))
	tx.On("Commit", ctx).Return((*app_errors.AppError)(nil))

	internal := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	repo.On("GetWorkLogDetailByID", ctx, int64(80)).Return((*entity.WorkLogDetail)(nil), internal)

	notifier.On("Broadcast", mock.Anything).Return()

	resp, err := service.CreateWorkLog(ctx, req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(80), resp.Log.ID)
	assert.Equal(t, "Standup notes", resp.Log.Comment)
	assert.Empty(t, resp.Log.ProjectName)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateWorkLog_InsertFailure(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkLogRepo)
	projects := new(cascade_case.MockProjectRepo)
	cascade := new(MockCascadeService)
	txManager := new(MockTxManager)
	tx := new(MockTx)
	notifier := new(MockBroadcaster)
	service := &WorkLogService{
		repo:      repo,
		projects:  projects,
		cascade:   cascade,
		txManager: txManager,
		notifier:  notifier,
	}

	req := &worklog_dto.CreateWorkLogRequest{
		Comment:         "Broken write",
		DurationMinutes: 20,
		Timestamp:       ptrString("2026-02-24T11:00:00+05:30"),
	}

	txManager.On("Begin", ctx).Return(tx, (*app_errors.AppError)(nil))
	tx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	internal := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	repo.On("InsertWorkLogInTx", ctx, tx, mock.Anything).Return((*entity.WorkLogEntity)(nil), internal)

	resp, err := service.CreateWorkLog(ctx, req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, err.Code)

	tx.AssertNotCalled(t, "Commit")
	notifier.AssertNotCalled(t, "Broadcast")
}

func TestUpdateWorkLog_DurationOutOfRange(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkLogRepo)
	service := &WorkLogService{repo: repo}

	existing := &entity.WorkLogEntity{ID: 5, Comment: "fine", DurationMinutes: 30}
	repo.On("GetWorkLogByID", ctx, int64(5)).Return(existing, (*app_errors.AppError)(nil))

	tooLong := 481
	resp, err := service.UpdateWorkLog(ctx, 5, &worklog_dto.UpdateWorkLogRequest{DurationMinutes: &tooLong})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)

	repo.AssertNotCalled(t, "UpdateWorkLog")
}

func TestListWorkLogs_TotalHours(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWorkLogRepo)
	service := &WorkLogService{repo: repo}

	logs := []entity.WorkLogDetail{
		{WorkLogEntity: entity.WorkLogEntity{ID: 1, DurationMinutes: 45}},
		{WorkLogEntity: entity.WorkLogEntity{ID: 2, DurationMinutes: 30}},
	}
	filter := &worklog_dto.WorkLogListFilter{Date: ptrString("2026-02-24")}
	repo.On("ListWorkLogs", ctx, filter).Return(logs, (*app_errors.AppError)(nil))

	resp, err := service.ListWorkLogs(ctx, filter)

	assert.Nil(t, err)
	assert.Len(t, resp.Logs, 2)
	assert.Equal(t, 1.25, resp.TotalHours)
}
