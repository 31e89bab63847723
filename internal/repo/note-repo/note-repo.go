package note_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	note_dto "github.com/nuwan-labs/project-buddy/internal/dtos/note-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type NoteRepo struct {
	db *pgxpool.Pool
}

func NewNoteRepo(db *pgxpool.Pool) NoteRepoContract {
	return &NoteRepo{
		db: db,
	}
}

const noteQuery = `
	SELECT n.id,
		n.project_id,
		n.plan_id,
		n.date,
		n.what_i_did,
		n.blockers,
		n.next_steps,
		COALESCE(p.name, ''),
		n.created_at,
		n.updated_at
	FROM project_daily_notes n
	LEFT JOIN projects p ON p.id = n.project_id
`

func scanNote(row pgx.Row) (*entity.ProjectDailyNoteEntity, error) {
	var n entity.ProjectDailyNoteEntity
	err := row.Scan(&n.ID, &n.ProjectID, &n.PlanID, &n.Date, &n.WhatIDid, &n.Blockers, &n.NextSteps, &n.ProjectName, &n.CreatedAt, &n.UpdatedAt)
	return &n, err
}

func (r *NoteRepo) GetNoteByID(ctx context.Context, noteID int64) (*entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	query := noteQuery + `
	WHERE n.id = $1;
	`

	note, err := scanNote(r.db.QueryRow(ctx, query, noteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "note.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return note, nil
}

// UpsertNote keeps one note per project per date; saving again replaces the
// free-text fields.
func (r *NoteRepo) UpsertNote(ctx context.Context, note *entity.ProjectDailyNoteEntity) (*entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	query := `
	INSERT INTO project_daily_notes (
		project_id,
		plan_id,
		date,
		what_i_did,
		blockers,
		next_steps
	) VALUES (
		$1,$2,$3,$4,$5,$6
	)
	ON CONFLICT (project_id, date) DO UPDATE
	SET plan_id = EXCLUDED.plan_id,
		what_i_did = EXCLUDED.what_i_did,
		blockers = EXCLUDED.blockers,
		next_steps = EXCLUDED.next_steps,
		updated_at = now()
	RETURNING id;
	`

	var id int64
	if err := r.db.QueryRow(
		ctx,
		query,
		note.ProjectID,
		note.PlanID,
		note.Date,
		note.WhatIDid,
		note.Blockers,
		note.NextSteps,
	).Scan(&id); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return r.GetNoteByID(ctx, id)
}

func (r *NoteRepo) ListNotes(ctx context.Context, filter *note_dto.NoteListFilter) ([]entity.ProjectDailyNoteEntity, *app_errors.AppError) {
	query := noteQuery + `
	WHERE 1 = 1
	`

	args := []any{}
	argsPos := 1

	if filter.Date != nil {
		query += fmt.Sprintf(" AND n.date = $%d", argsPos)
		args = append(args, *filter.Date)
		argsPos++
	}

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND n.project_id = $%d", argsPos)
		args = append(args, *filter.ProjectID)
		argsPos++
	}

	query += " ORDER BY n.date DESC, n.project_id ASC;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.ProjectDailyNoteEntity
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, *note)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}

func (r *NoteRepo) DeleteNote(ctx context.Context, noteID int64) *app_errors.AppError {
	query := `
	DELETE FROM project_daily_notes
	WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query, noteID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "note.not_found", nil)
	}
	return nil
}
