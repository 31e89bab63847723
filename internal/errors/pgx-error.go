package app_errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// MapPgxError folds a driver failure into the API error taxonomy. Constraint
// violations become client errors; everything else stays internal.
func MapPgxError(err error) *AppError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NewAppError(500, ErrInternal, "internal_error", err)
	}

	switch pgErr.Code {
	case "23505": // unique_violation: second active plan, duplicate summary date or sprint pick
		return NewAppError(409, ErrConflict, "conflict", err)
	case "23503": // foreign_key_violation: referenced plan/project/activity is gone
		return NewAppError(400, ErrValidation, "invalid_request", err)
	case "23514": // check_violation: work-log duration bounds
		return NewAppError(400, ErrValidation, "validation.duration_out_of_range", err)
	}

	return NewAppError(500, ErrInternal, "internal_error", err)
}
