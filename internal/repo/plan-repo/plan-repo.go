package plan_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	plan_dto "github.com/nuwan-labs/project-buddy/internal/dtos/plan-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type PlanRepo struct {
	db *pgxpool.Pool
}

func NewPlanRepo(db *pgxpool.Pool) PlanRepoContract {
	return &PlanRepo{
		db: db,
	}
}

const planColumns = `id, name, description, start_date, end_date, status, created_at, updated_at`

func scanPlan(row pgx.Row) (*entity.PlanEntity, error) {
	var p entity.PlanEntity
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *PlanRepo) GetPlanByID(ctx context.Context, planID int64) (*entity.PlanEntity, *app_errors.AppError) {
	query := `
	SELECT ` + planColumns + `
	FROM biweekly_plans
	WHERE id = $1;
	`

	plan, err := scanPlan(r.db.QueryRow(ctx, query, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "plan.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return plan, nil
}

func (r *PlanRepo) GetActivePlan(ctx context.Context) (*entity.PlanEntity, *app_errors.AppError) {
	query := `
	SELECT ` + planColumns + `
	FROM biweekly_plans
	WHERE status = 'Active'
	ORDER BY created_at DESC
	LIMIT 1;
	`

	plan, err := scanPlan(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "plan.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return plan, nil
}

func (r *PlanRepo) CountActivePlans(ctx context.Context, excludeID *int64) (int64, *app_errors.AppError) {
	query := `
	SELECT COUNT(*)
	FROM biweekly_plans
	WHERE status = 'Active'
	`
	args := []any{}
	if excludeID != nil {
		query += " AND id != $1"
		args = append(args, *excludeID)
	}
	query += ";"

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return count, nil
}

func (r *PlanRepo) ListPlans(ctx context.Context, filter *plan_dto.PlanListFilter) ([]entity.PlanEntity, *app_errors.AppError) {
	query := `
	SELECT ` + planColumns + `
	FROM biweekly_plans
	WHERE 1 = 1
	`

	args := []any{}
	argsPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argsPos)
		args = append(args, *filter.Status)
		argsPos++
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d;", argsPos, argsPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.PlanEntity
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, *plan)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *PlanRepo) InsertPlan(ctx context.Context, plan *entity.PlanEntity) (*entity.PlanEntity, *app_errors.AppError) {
	query := `
	INSERT INTO biweekly_plans (
		name,
		description,
		start_date,
		end_date,
		status
	) VALUES (
		$1,$2,$3,$4,$5
	)
	RETURNING ` + planColumns + `;
	`

	inserted, err := scanPlan(r.db.QueryRow(ctx, query, plan.Name, plan.Description, plan.StartDate, plan.EndDate, plan.Status))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return inserted, nil
}

func (r *PlanRepo) UpdatePlan(ctx context.Context, plan *entity.PlanEntity) (*entity.PlanEntity, *app_errors.AppError) {
	query := `
	UPDATE biweekly_plans
	SET name = $1,
		description = $2,
		start_date = $3,
		end_date = $4,
		status = $5,
		updated_at = now()
	WHERE id = $6
	RETURNING ` + planColumns + `;
	`

	updated, err := scanPlan(r.db.QueryRow(ctx, query, plan.Name, plan.Description, plan.StartDate, plan.EndDate, plan.Status, plan.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "plan.not_found", nil)
		}
		return nil, app_errors.MapPgxError(err)
	}
	return updated, nil
}

func (r *PlanRepo) DeletePlan(ctx context.Context, planID int64) *app_errors.AppError {
	query := `
	DELETE FROM biweekly_plans
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, planID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "plan.not_found", nil)
	}
	return nil
}

func (r *PlanRepo) ListSprintSelections(ctx context.Context, planID int64) ([]entity.SprintSelectionEntity, *app_errors.AppError) {
	query := `
	SELECT s.id,
		s.plan_id,
		s.activity_id,
		s.notes,
		s.created_at,
		a.name,
		a.status,
		p.id,
		p.name
	FROM sprint_activities s
	JOIN activities a ON a.id = s.activity_id
	JOIN projects p ON p.id = a.project_id
	WHERE s.plan_id = $1
	ORDER BY s.created_at ASC;
	`

	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.SprintSelectionEntity
	for rows.Next() {
		var s entity.SprintSelectionEntity
		if err := rows.Scan(&s.ID, &s.PlanID, &s.ActivityID, &s.Notes, &s.CreatedAt, &s.ActivityName, &s.ActivityStatus, &s.ProjectID, &s.ProjectName); err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

// ReplaceSprintSelections swaps the whole selection set in one transaction.
func (r *PlanRepo) ReplaceSprintSelections(ctx context.Context, planID int64, activityIDs []int64, notes *string) *app_errors.AppError {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM sprint_activities WHERE plan_id = $1;`, planID); err != nil {
		return app_errors.MapPgxError(err)
	}

	for _, activityID := range activityIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO sprint_activities (plan_id, activity_id, notes)
			VALUES ($1, $2, $3);`, planID, activityID, notes); err != nil {
			return app_errors.MapPgxError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return nil
}
