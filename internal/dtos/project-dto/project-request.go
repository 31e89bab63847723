package project_dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/nuwan-labs/project-buddy/internal/entity"
)

type CreateProjectRequest struct {
	PlanID      int64   `json:"plan_id" validate:"required,min=1"`
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Goal        *string `json:"goal,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,projectStatus"`
	ColorTag    *string `json:"color_tag,omitempty" validate:"omitempty,max=30"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Goal        *string `json:"goal,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,projectStatus"`
	ColorTag    *string `json:"color_tag,omitempty" validate:"omitempty,max=30"`
}

type ProjectListFilter struct {
	PlanID *int64  `query:"plan_id,omitempty" validate:"omitempty,min=1"`
	Status *string `query:"status,omitempty" validate:"omitempty,projectStatus"`
}

type ParamProjectID struct {
	ID int64 `params:"project_id" validate:"required,min=1"`
}

type CreateActivityRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=200"`
	Description    *string  `json:"description,omitempty"`
	Deliverables   *string  `json:"deliverables,omitempty"`
	Dependencies   *string  `json:"dependencies,omitempty"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,activityStatus"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty" validate:"omitempty,min=0"`
}

type UpdateActivityRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description    *string  `json:"description,omitempty"`
	Deliverables   *string  `json:"deliverables,omitempty"`
	Dependencies   *string  `json:"dependencies,omitempty"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,activityStatus"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty" validate:"omitempty,min=0"`
}

type ParamActivityID struct {
	ID int64 `params:"activity_id" validate:"required,min=1"`
}

func IsValidProjectStatus(fl validator.FieldLevel) bool {
	return entity.ProjectStatus(fl.Field().String()).IsValid()
}

func IsValidActivityStatus(fl validator.FieldLevel) bool {
	return entity.ActivityStatus(fl.Field().String()).IsValid()
}
