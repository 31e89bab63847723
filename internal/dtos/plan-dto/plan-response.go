package plan_dto

import (
	"github.com/nuwan-labs/project-buddy/internal/entity"
)

type PlanResponse struct {
	ID          int64   `json:"plan_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
}

type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
	Total int64          `json:"total"`
}

type SprintSelectionResponse struct {
	Selections []entity.SprintSelectionEntity `json:"selections"`
}

func ToPlanResponse(p *entity.PlanEntity) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
	}
}
