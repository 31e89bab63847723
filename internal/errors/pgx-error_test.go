package app_errors

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgxError_ConstraintViolations(t *testing.T) {
	cases := []struct {
		code       string
		wantStatus int
		wantType   string
		wantKey    string
	}{
		{"23505", 409, ErrConflict, "conflict"},
		{"23503", 400, ErrValidation, "invalid_request"},
		{"23514", 400, ErrValidation, "validation.duration_out_of_range"},
		{"42P01", 500, ErrInternal, "internal_error"},
	}

	for _, tc := range cases {
		appErr := MapPgxError(&pgconn.PgError{Code: tc.code})
		assert.Equal(t, tc.wantStatus, appErr.Code, tc.code)
		assert.Equal(t, tc.wantType, appErr.Type, tc.code)
		assert.Equal(t, tc.wantKey, appErr.MessageKey, tc.code)
	}
}

func TestMapPgxError_NonDriverError(t *testing.T) {
	appErr := MapPgxError(errors.New("connection reset"))

	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, ErrInternal, appErr.Type)
}
