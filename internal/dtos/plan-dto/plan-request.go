package plan_dto

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nuwan-labs/project-buddy/internal/entity"
)

type CreatePlanRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date" validate:"required,isoDate"`
	EndDate     string  `json:"end_date" validate:"required,isoDate"`
}

type UpdatePlanRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty" validate:"omitempty,isoDate"`
	EndDate     *string `json:"end_date,omitempty" validate:"omitempty,isoDate"`
	Status      *string `json:"status,omitempty" validate:"omitempty,planStatus"`
}

type PlanListFilter struct {
	Status *string `query:"status,omitempty" validate:"omitempty,planStatus"`
	Limit  int     `query:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Page   int     `query:"page,omitempty" validate:"omitempty,min=1,max=100"`
}

type ParamPlanID struct {
	ID int64 `params:"plan_id" validate:"required,min=1"`
}

type SelectActivitiesRequest struct {
	ActivityIDs []int64 `json:"activity_ids" validate:"required,min=1,dive,min=1"`
	Notes       *string `json:"notes,omitempty"`
}

func IsValidPlanStatus(fl validator.FieldLevel) bool {
	return entity.PlanStatus(fl.Field().String()).IsValid()
}

// IsValidISODate accepts calendar dates in YYYY-MM-DD form.
func IsValidISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
