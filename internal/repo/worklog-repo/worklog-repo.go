package worklog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	worklog_dto "github.com/nuwan-labs/project-buddy/internal/dtos/worklog-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type WorkLogRepo struct {
	db *pgxpool.Pool
}

func NewWorkLogRepo(db *pgxpool.Pool) WorkLogRepoContract {
	return &WorkLogRepo{
		db: db,
	}
}

const logColumns = `id, plan_id, project_id, activity_id, comment, duration_minutes, timestamp, tags, created_at`

// detailQuery joins display names. Logs without a project link fall back to
// an empty project name rather than being dropped.
const detailQuery = `
	SELECT w.id,
		w.plan_id,
		w.project_id,
		w.activity_id,
		w.comment,
		w.duration_minutes,
		w.timestamp,
		w.tags,
		w.created_at,
		COALESCE(p.name, ''),
		a.name
	FROM work_logs w
	LEFT JOIN projects p ON p.id = w.project_id
	LEFT JOIN activities a ON a.id = w.activity_id
`

func scanDetail(row pgx.Row) (*entity.WorkLogDetail, error) {
	var d entity.WorkLogDetail
	err := row.Scan(&d.ID, &d.PlanID, &d.ProjectID, &d.ActivityID, &d.Comment, &d.DurationMinutes, &d.Timestamp, &d.Tags, &d.CreatedAt, &d.ProjectName, &d.ActivityName)
	return &d, err
}

func (r *WorkLogRepo) GetWorkLogByID(ctx context.Context, logID int64) (*entity.WorkLogEntity, *app_errors.AppError) {
	query := `
	SELECT ` + logColumns + `
	FROM work_logs
	WHERE id = $1;
	`

	var log entity.WorkLogEntity
	if err := r.db.QueryRow(ctx, query, logID).Scan(&log.ID, &log.PlanID, &log.ProjectID, &log.ActivityID, &log.Comment, &log.DurationMinutes, &log.Timestamp, &log.Tags, &log.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "worklog.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return &log, nil
}

func (r *WorkLogRepo) GetWorkLogDetailByID(ctx context.Context, logID int64) (*entity.WorkLogDetail, *app_errors.AppError) {
	query := detailQuery + `
	WHERE w.id = $1;
	`

	detail, err := scanDetail(r.db.QueryRow(ctx, query, logID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "worklog.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return detail, nil
}

func (r *WorkLogRepo) InsertWorkLogInTx(ctx context.Context, t tx.Tx, log *entity.WorkLogEntity) (*entity.WorkLogEntity, *app_errors.AppError) {
	query := `
	INSERT INTO work_logs (
		plan_id,
		project_id,
		activity_id,
		comment,
		duration_minutes,
		timestamp,
		tags
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7
	)
	RETURNING ` + logColumns + `;
	`

	var inserted entity.WorkLogEntity
	if err := tx.Querier(t).QueryRow(
		ctx,
		query,
		log.PlanID,
		log.ProjectID,
		log.ActivityID,
		log.Comment,
		log.DurationMinutes,
		log.Timestamp,
		log.Tags,
	).Scan(&inserted.ID, &inserted.PlanID, &inserted.ProjectID, &inserted.ActivityID, &inserted.Comment, &inserted.DurationMinutes, &inserted.Timestamp, &inserted.Tags, &inserted.CreatedAt); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &inserted, nil
}

func (r *WorkLogRepo) ListWorkLogs(ctx context.Context, filter *worklog_dto.WorkLogListFilter) ([]entity.WorkLogDetail, *app_errors.AppError) {
	query := detailQuery + `
	WHERE 1 = 1
	`

	args := []any{}
	argsPos := 1

	if filter.Date != nil {
		query += fmt.Sprintf(" AND w.timestamp LIKE $%d || '%%'", argsPos)
		args = append(args, *filter.Date)
		argsPos++
	}

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND w.project_id = $%d", argsPos)
		args = append(args, *filter.ProjectID)
		argsPos++
	}

	if filter.PlanID != nil {
		query += fmt.Sprintf(" AND w.plan_id = $%d", argsPos)
		args = append(args, *filter.PlanID)
		argsPos++
	}

	query += " ORDER BY w.timestamp ASC"

	limit := filter.Limit
	if limit == 0 {
		limit = 200
	}
	query += fmt.Sprintf(" LIMIT $%d;", argsPos)
	args = append(args, limit)

	return r.queryDetails(ctx, query, args...)
}

func (r *WorkLogRepo) ListWorkLogsByDate(ctx context.Context, date string) ([]entity.WorkLogDetail, *app_errors.AppError) {
	query := detailQuery + `
	WHERE w.timestamp LIKE $1 || '%'
	ORDER BY w.timestamp ASC;
	`

	return r.queryDetails(ctx, query, date)
}

func (r *WorkLogRepo) queryDetails(ctx context.Context, query string, args ...any) ([]entity.WorkLogDetail, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.WorkLogDetail
	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, *detail)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *WorkLogRepo) UpdateWorkLog(ctx context.Context, log *entity.WorkLogEntity) (*entity.WorkLogEntity, *app_errors.AppError) {
	query := `
	UPDATE work_logs
	SET comment = $1,
		duration_minutes = $2,
		tags = $3
	WHERE id = $4
	RETURNING ` + logColumns + `;
	`

	var updated entity.WorkLogEntity
	if err := r.db.QueryRow(ctx, query, log.Comment, log.DurationMinutes, log.Tags, log.ID).Scan(&updated.ID, &updated.PlanID, &updated.ProjectID, &updated.ActivityID, &updated.Comment, &updated.DurationMinutes, &updated.Timestamp, &updated.Tags, &updated.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "worklog.not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return &updated, nil
}

func (r *WorkLogRepo) DeleteWorkLog(ctx context.Context, logID int64) *app_errors.AppError {
	query := `
	DELETE FROM work_logs
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, logID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "worklog.not_found", nil)
	}
	return nil
}
