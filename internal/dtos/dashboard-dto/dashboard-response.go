package dashboard_dto

import (
	analysis_dto "github.com/nuwan-labs/project-buddy/internal/dtos/analysis-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
)

type DashboardProject struct {
	ID                int64   `json:"project_id"`
	Name              string  `json:"name"`
	Status            string  `json:"status"`
	ColorTag          *string `json:"color_tag,omitempty"`
	CompletionPercent float64 `json:"completion_percent"`
}

type DashboardResponse struct {
	Plan           *entity.PlanEntity             `json:"plan,omitempty"`
	DaysRemaining  int                            `json:"days_remaining"`
	Projects       []DashboardProject             `json:"projects"`
	SprintActivity []entity.SprintSelectionEntity `json:"sprint_activity,omitempty"`
	TodayLogs      []entity.WorkLogDetail         `json:"today_logs"`
	TodayHours     float64                        `json:"today_hours"`
	TodaySummary   *analysis_dto.SummaryResponse  `json:"today_summary,omitempty"`
}
