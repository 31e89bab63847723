package worklog_dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type CreateWorkLogRequest struct {
	Comment         string  `json:"comment" validate:"required,min=1"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1,max=480"`
	PlanID          *int64  `json:"plan_id,omitempty" validate:"omitempty,min=1"`
	ProjectID       *int64  `json:"project_id,omitempty" validate:"omitempty,min=1"`
	ActivityID      *int64  `json:"activity_id,omitempty" validate:"omitempty,min=1"`
	Timestamp       *string `json:"timestamp,omitempty" validate:"omitempty,isoDatetime"`
	Tags            *string `json:"tags,omitempty"`
}

type UpdateWorkLogRequest struct {
	Comment         *string `json:"comment,omitempty" validate:"omitempty,min=1"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1,max=480"`
	Tags            *string `json:"tags,omitempty"`
}

type WorkLogListFilter struct {
	Date      *string `query:"date,omitempty" validate:"omitempty,isoDate"`
	ProjectID *int64  `query:"project_id,omitempty" validate:"omitempty,min=1"`
	PlanID    *int64  `query:"plan_id,omitempty" validate:"omitempty,min=1"`
	Limit     int     `query:"limit,omitempty" validate:"omitempty,min=1,max=500"`
}

type ParamWorkLogID struct {
	ID int64 `params:"log_id" validate:"required,min=1"`
}

// IsValidISODatetime accepts RFC 3339 timestamps, with or without an offset.
func IsValidISODatetime(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if _, err := time.Parse(time.RFC3339, v); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02T15:04:05", v)
	return err == nil
}
