package worklog_case

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	"github.com/nuwan-labs/project-buddy/internal/config"
	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	project_repo "github.com/nuwan-labs/project-buddy/internal/repo/project-repo"
	worklog_repo "github.com/nuwan-labs/project-buddy/internal/repo/worklog-repo"
	cascade_case "github.com/nuwan-labs/project-buddy/internal/use-cases/cascade-case"
)

type WorkLogService struct {
	repo      worklog_repo.WorkLogRepoContract
	projects  project_repo.ProjectRepoContract
	cascade   cascade_case.CascadeServiceContract
	txManager tx.TxManager
	notifier  notify.Broadcaster
	now       func() time.Time
}

func NewWorkLogService(db *pgxpool.Pool, cfg *config.AppConfig, notifier notify.Broadcaster) WorkLogServiceContract {
	return &WorkLogService{
		repo:      worklog_repo.NewWorkLogRepo(db),
		projects:  project_repo.NewProjectRepo(db),
		cascade:   cascade_case.NewCascadeService(db, cfg),
		txManager: tx.NewPgxTxManager(db),
		notifier:  notifier,
		now:       time.Now,
	}
}

// CreateWorkLog writes the log, auto-starts a Not Started activity and runs
// the project status cascade, all in one transaction. The cascade pass is
// best effort: its failure is logged but never rolls back the written log.
// The activity_logged event fires only after a successful commit.
func (s *WorkLogService) CreateWorkLog(ctx context.Context, req *worklog_dto.CreateWorkLogRequest) (*worklog_dto.WorkLogResponse, *app_errors.AppError) {
	var timestamp string
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	} else {
		timestamp = s.now().Format(time.RFC3339)
	}

	entry := &entity.WorkLogEntity{
		PlanID:          req.PlanID,
		ProjectID:       req.ProjectID,
		ActivityID:      req.ActivityID,
		Comment:         req.Comment,
		DurationMinutes: req.DurationMinutes,
		Timestamp:       timestamp,
		Tags:            req.Tags,
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	cascade := &worklog_dto.CascadeResult{}

	if req.ActivityID != nil {
		activity, err := s.projects.GetActivityInTx(ctx, t, *req.ActivityID)
		if err != nil {
			return nil, err
		}
		if entry.ProjectID == nil {
			entry.ProjectID = &activity.ProjectID
		}
		if activity.Status == entity.ActivityNotStarted {
			if err := s.projects.StartActivityInTx(ctx, t, activity.ID); err != nil {
				return nil, err
			}
			cascade.ActivityStarted = true
		}
	}

	inserted, err := s.repo.InsertWorkLogInTx(ctx, t, entry)
	if err != nil {
		return nil, err
	}

	if req.ActivityID != nil {
		next, cascadeErr := s.cascade.RecomputeProjectStatus(ctx, t, *req.ActivityID)
		if cascadeErr != nil {
			log.Warn().Int64("activity_id", *req.ActivityID).Str("error", cascadeErr.Error()).Msg("worklog: cascade failed, keeping log")
		} else if next != nil {
			status := string(*next)
			cascade.ProjectNewStatus = &status
		}
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	// The log is committed at this point. A failed read-back must not turn
	// into a client-facing error, or a retry would record the work twice.
	detail, err := s.repo.GetWorkLogDetailByID(ctx, inserted.ID)
	if err != nil {
		log.Warn().Int64("log_id", inserted.ID).Str("error", err.Error()).Msg("worklog: read-back after commit failed, responding from the insert")
		detail = &entity.WorkLogDetail{WorkLogEntity: *inserted}
	}

	s.notifier.Broadcast(notify.NewActivityLoggedEvent(map[string]any{
		"log_id":           detail.ID,
		"comment":          detail.Comment,
		"duration_minutes": detail.DurationMinutes,
		"project_name":     detail.ProjectName,
		"activity_name":    detail.ActivityName,
		"timestamp":        detail.Timestamp,
	}))

	return &worklog_dto.WorkLogResponse{
		Log:     *detail,
		Cascade: cascade,
	}, nil
}

func (s *WorkLogService) ListWorkLogs(ctx context.Context, filter *worklog_dto.WorkLogListFilter) (*worklog_dto.WorkLogListResponse, *app_errors.AppError) {
	logs, err := s.repo.ListWorkLogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &worklog_dto.WorkLogListResponse{
		Logs:       logs,
		TotalHours: entity.TotalHoursFromLogs(logs),
	}, nil
}

func (s *WorkLogService) ListWorkLogsByDate(ctx context.Context, date string) ([]entity.WorkLogDetail, *app_errors.AppError) {
	return s.repo.ListWorkLogsByDate(ctx, date)
}

func (s *WorkLogService) UpdateWorkLog(ctx context.Context, logID int64, req *worklog_dto.UpdateWorkLogRequest) (*entity.WorkLogEntity, *app_errors.AppError) {
	existing, err := s.repo.GetWorkLogByID(ctx, logID)
	if err != nil {
		return nil, err
	}

	if req.Comment != nil {
		existing.Comment = *req.Comment
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < entity.MinLogDurationMinutes || *req.DurationMinutes > entity.MaxLogDurationMinutes {
			return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "validation.duration_out_of_range", nil)
		}
		existing.DurationMinutes = *req.DurationMinutes
	}
	if req.Tags != nil {
		existing.Tags = req.Tags
	}

	return s.repo.UpdateWorkLog(ctx, existing)
}

func (s *WorkLogService) DeleteWorkLog(ctx context.Context, logID int64) *app_errors.AppError {
	return s.repo.DeleteWorkLog(ctx, logID)
}
