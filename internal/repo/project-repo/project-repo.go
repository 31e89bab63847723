package project_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepo(db *pgxpool.Pool) ProjectRepoContract {
	return &ProjectRepo{
		db: db,
	}
}

const projectColumns = `id, plan_id, name, description, goal, status, color_tag, created_at, updated_at`

const activityColumns = `id, project_id, name, description, deliverables, dependencies, status, estimated_hours, created_at, updated_at`

func scanProject(row pgx.Row) (*entity.ProjectEntity, error) {
	var p entity.ProjectEntity
	err := row.Scan(&p.ID, &p.PlanID, &p.Name, &p.Description, &p.Goal, &p.Status, &p.ColorTag, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func scanActivity(row pgx.Row) (*entity.ActivityEntity, error) {
	var a entity.ActivityEntity
	err := row.Scan(&a.ID, &a.ProjectID, &a.Name, &a.Description, &a.Deliverables, &a.Dependencies, &a.Status, &a.EstimatedHours, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *ProjectRepo) GetProjectByID(ctx context.Context, projectID int64) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
	SELECT ` + projectColumns + `
	FROM projects
	WHERE id = $1;
	`

	project, err := scanProject(r.db.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return project, nil
}

func (r *ProjectRepo) ListProjects(ctx context.Context, filter *project_dto.ProjectListFilter) ([]entity.ProjectEntity, *app_errors.AppError) {
	query := `
	SELECT ` + projectColumns + `
	FROM projects
	WHERE 1 = 1
	`

	args := []any{}
	argsPos := 1

	if filter.PlanID != nil {
		query += fmt.Sprintf(" AND plan_id = $%d", argsPos)
		args = append(args, *filter.PlanID)
		argsPos++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argsPos)
		args = append(args, *filter.Status)
		argsPos++
	}

	query += " ORDER BY created_at ASC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.ProjectEntity
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *ProjectRepo) InsertProject(ctx context.Context, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
	INSERT INTO projects (
		plan_id,
		name,
		description,
		goal,
		status,
		color_tag
	) VALUES (
		$1,$2,$3,$4,$5,$6
	)
	RETURNING ` + projectColumns + `;
	`

	inserted, err := scanProject(r.db.QueryRow(ctx, query, project.PlanID, project.Name, project.Description, project.Goal, project.Status, project.ColorTag))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return inserted, nil
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
	UPDATE projects
	SET name = $1,
		description = $2,
		goal = $3,
		status = $4,
		color_tag = $5,
		updated_at = now()
	WHERE id = $6
	RETURNING ` + projectColumns + `;
	`

	updated, err := scanProject(r.db.QueryRow(ctx, query, project.Name, project.Description, project.Goal, project.Status, project.ColorTag, project.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project.not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return updated, nil
}

func (r *ProjectRepo) DeleteProject(ctx context.Context, projectID int64) *app_errors.AppError {
	query := `
	DELETE FROM projects
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, projectID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project.not_found", nil)
	}
	return nil
}

func (r *ProjectRepo) GetProjectStats(ctx context.Context, projectID int64) (*entity.ProjectStats, *app_errors.AppError) {
	query := `
	SELECT
		COUNT(a.id),
		COUNT(a.id) FILTER (WHERE a.status = 'Complete'),
		COALESCE(SUM(a.estimated_hours), 0),
		COALESCE((
			SELECT SUM(w.duration_minutes)::float / 60
			FROM work_logs w
			WHERE w.project_id = $1
		), 0)
	FROM activities a
	WHERE a.project_id = $1;
	`

	var stats entity.ProjectStats
	if err := r.db.QueryRow(ctx, query, projectID).Scan(&stats.ActivitiesCount, &stats.CompletedCount, &stats.HoursEstimated, &stats.HoursLogged); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}

	if stats.ActivitiesCount > 0 {
		stats.CompletionPercent = float64(stats.CompletedCount) / float64(stats.ActivitiesCount) * 100
	}
	return &stats, nil
}

func (r *ProjectRepo) GetActivityByID(ctx context.Context, activityID int64) (*entity.ActivityEntity, *app_errors.AppError) {
	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE id = $1;
	`

	activity, err := scanActivity(r.db.QueryRow(ctx, query, activityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "activity.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return activity, nil
}

func (r *ProjectRepo) ListActivities(ctx context.Context, projectID int64) ([]entity.ActivityEntity, *app_errors.AppError) {
	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE project_id = $1
	ORDER BY created_at ASC;
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.ActivityEntity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, *activity)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *ProjectRepo) InsertActivity(ctx context.Context, activity *entity.ActivityEntity) (*entity.ActivityEntity, *app_errors.AppError) {
	query := `
	INSERT INTO activities (
		project_id,
		name,
		description,
		deliverables,
		dependencies,
		status,
		estimated_hours
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7
	)
	RETURNING ` + activityColumns + `;
	`

	inserted, err := scanActivity(r.db.QueryRow(ctx, query, activity.ProjectID, activity.Name, activity.Description, activity.Deliverables, activity.Dependencies, activity.Status, activity.EstimatedHours))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return inserted, nil
}

func (r *ProjectRepo) UpdateActivity(ctx context.Context, activity *entity.ActivityEntity) (*entity.ActivityEntity, *app_errors.AppError) {
	query := `
	UPDATE activities
	SET name = $1,
		description = $2,
		deliverables = $3,
		dependencies = $4,
		status = $5,
		estimated_hours = $6,
		updated_at = now()
	WHERE id = $7
	RETURNING ` + activityColumns + `;
	`

	updated, err := scanActivity(r.db.QueryRow(ctx, query, activity.Name, activity.Description, activity.Deliverables, activity.Dependencies, activity.Status, activity.EstimatedHours, activity.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "activity.not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return updated, nil
}

func (r *ProjectRepo) DeleteActivity(ctx context.Context, activityID int64) *app_errors.AppError {
	query := `
	DELETE FROM activities
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, activityID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "activity.not_found", nil)
	}
	return nil
}

func (r *ProjectRepo) GetActivityInTx(ctx context.Context, t tx.Tx, activityID int64) (*entity.ActivityEntity, *app_errors.AppError) {
	query := `
	SELECT ` + activityColumns + `
	FROM activities
	WHERE id = $1;
	`

	activity, err := scanActivity(tx.Querier(t).QueryRow(ctx, query, activityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "activity.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return activity, nil
}

// StartActivityInTx flips a Not Started activity to In Progress. Activities
// already underway or complete are left untouched.
func (r *ProjectRepo) StartActivityInTx(ctx context.Context, t tx.Tx, activityID int64) *app_errors.AppError {
	query := `
	UPDATE activities
	SET status = 'In Progress',
		updated_at = now()
	WHERE id = $1
		AND status = 'Not Started';
	`

	if _, err := tx.Querier(t).Exec(ctx, query, activityID); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

// GetProjectForUpdate locks the project row for the duration of the
// transaction so concurrent cascades serialize on it.
func (r *ProjectRepo) GetProjectForUpdate(ctx context.Context, t tx.Tx, projectID int64) (*entity.ProjectEntity, *app_errors.AppError) {
	query := `
	SELECT ` + projectColumns + `
	FROM projects
	WHERE id = $1
	FOR UPDATE;
	`

	project, err := scanProject(tx.Querier(t).QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "project.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return project, nil
}

func (r *ProjectRepo) ListActivityStatusesByProject(ctx context.Context, t tx.Tx, projectID int64) ([]entity.ActivityStatus, *app_errors.AppError) {
	query := `
	SELECT status
	FROM activities
	WHERE project_id = $1;
	`

	rows, err := tx.Querier(t).Query(ctx, query, projectID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var statuses []entity.ActivityStatus
	for rows.Next() {
		var s entity.ActivityStatus
		if err := rows.Scan(&s); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		statuses = append(statuses, s)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return statuses, nil
}

func (r *ProjectRepo) SetProjectStatusInTx(ctx context.Context, t tx.Tx, projectID int64, status entity.ProjectStatus) *app_errors.AppError {
	query := `
	UPDATE projects
	SET status = $1,
		updated_at = now()
	WHERE id = $2;
	`

	if _, err := tx.Querier(t).Exec(ctx, query, status, projectID); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}
