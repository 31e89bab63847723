package worklog_dto

import (
	"github.com/nuwan-labs/project-buddy/internal/entity"
)

type WorkLogResponse struct {
	Log     entity.WorkLogDetail `json:"log"`
	Cascade *CascadeResult       `json:"cascade,omitempty"`
}

// CascadeResult reports the side effects a write triggered, so the client
// can refresh affected views without polling.
type CascadeResult struct {
	ActivityStarted  bool    `json:"activity_started"`
	ProjectNewStatus *string `json:"project_new_status,omitempty"`
}

type WorkLogListResponse struct {
	Logs       []entity.WorkLogDetail `json:"logs"`
	TotalHours float64                `json:"total_hours"`
}
