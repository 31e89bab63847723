package summary_repo

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type SummaryRepo struct {
	db *pgxpool.Pool
}

func NewSummaryRepo(db *pgxpool.Pool) SummaryRepoContract {
	return &SummaryRepo{
		db: db,
	}
}

const summaryColumns = `id, plan_id, date, summary_text, blockers, highlights, suggestions, patterns, generated_at, created_at`

func scanSummary(row pgx.Row) (*entity.DailySummaryEntity, error) {
	var s entity.DailySummaryEntity
	err := row.Scan(&s.ID, &s.PlanID, &s.Date, &s.SummaryText, &s.Blockers, &s.Highlights, &s.Suggestions, &s.Patterns, &s.GeneratedAt, &s.CreatedAt)
	return &s, err
}

func (r *SummaryRepo) GetSummaryByDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError) {
	query := `
	SELECT ` + summaryColumns + `
	FROM daily_summaries
	WHERE date = $1;
	`

	summary, err := scanSummary(r.db.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "summary.not_found", nil)
		}
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	return summary, nil
}

// UpsertSummary inserts or replaces the single row for the summary's date.
// A re-run overwrites content and refreshes generated_at in place.
func (r *SummaryRepo) UpsertSummary(ctx context.Context, summary *entity.DailySummaryEntity) (*entity.DailySummaryEntity, *app_errors.AppError) {
	query := `
	INSERT INTO daily_summaries (
		plan_id,
		date,
		summary_text,
		blockers,
		highlights,
		suggestions,
		patterns,
		generated_at
	) VALUES (
		$1,$2,$3,$4,$5,$6,$7,now()
	)
	ON CONFLICT (date) DO UPDATE
	SET plan_id = EXCLUDED.plan_id,
		summary_text = EXCLUDED.summary_text,
		blockers = EXCLUDED.blockers,
		highlights = EXCLUDED.highlights,
		suggestions = EXCLUDED.suggestions,
		patterns = EXCLUDED.patterns,
		generated_at = now()
	RETURNING ` + summaryColumns + `;
	`

	upserted, err := scanSummary(r.db.QueryRow(
		ctx,
		query,
		summary.PlanID,
		summary.Date,
		summary.SummaryText,
		summary.Blockers,
		summary.Highlights,
		summary.Suggestions,
		summary.Patterns,
	))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return upserted, nil
}

func (r *SummaryRepo) ListSummaries(ctx context.Context, limit int) ([]entity.DailySummaryEntity, *app_errors.AppError) {
	query := `
	SELECT ` + summaryColumns + `
	FROM daily_summaries
	ORDER BY date DESC
	LIMIT $1;
	`

	if limit == 0 {
		limit = 30
	}

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
	}
	defer rows.Close()

	var results []entity.DailySummaryEntity
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", err)
		}
		results = append(results, *summary)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return results, nil
}
