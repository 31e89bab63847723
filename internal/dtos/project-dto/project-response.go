package project_dto

import (
	"github.com/nuwan-labs/project-buddy/internal/entity"
)

type ProjectResponse struct {
	ID          int64                `json:"project_id"`
	PlanID      int64                `json:"plan_id"`
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	Goal        *string              `json:"goal,omitempty"`
	Status      string               `json:"status"`
	ColorTag    *string              `json:"color_tag,omitempty"`
	Stats       *entity.ProjectStats `json:"stats,omitempty"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type ActivityResponse struct {
	ID             int64   `json:"activity_id"`
	ProjectID      int64   `json:"project_id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Deliverables   *string `json:"deliverables,omitempty"`
	Dependencies   *string `json:"dependencies,omitempty"`
	Status         string  `json:"status"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

func ToProjectResponse(p *entity.ProjectEntity, stats *entity.ProjectStats) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		PlanID:      p.PlanID,
		Name:        p.Name,
		Description: p.Description,
		Goal:        p.Goal,
		Status:      string(p.Status),
		ColorTag:    p.ColorTag,
		Stats:       stats,
	}
}

func ToActivityResponse(a *entity.ActivityEntity) ActivityResponse {
	return ActivityResponse{
		ID:             a.ID,
		ProjectID:      a.ProjectID,
		Name:           a.Name,
		Description:    a.Description,
		Deliverables:   a.Deliverables,
		Dependencies:   a.Dependencies,
		Status:         string(a.Status),
		EstimatedHours: a.EstimatedHours,
	}
}
