package entity

import "time"

type PlanEntity struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   string     `json:"start_date"` // ISO 8601 YYYY-MM-DD
	EndDate     string     `json:"end_date"`   // ISO 8601 YYYY-MM-DD
	Status      PlanStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// SprintSelectionEntity pins a single activity to a plan's sprint. Plans may
// either own projects outright or carry a flat list of these selections; the
// dashboard treats both shapes as "the leaf activities of the active plan".
type SprintSelectionEntity struct {
	ID             int64          `json:"id"`
	PlanID         int64          `json:"plan_id"`
	ActivityID     int64          `json:"activity_id"`
	Notes          *string        `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	ActivityName   string         `json:"activity_name,omitempty"`
	ProjectID      int64          `json:"project_id,omitempty"`
	ProjectName    string         `json:"project_name,omitempty"`
	ActivityStatus ActivityStatus `json:"activity_status,omitempty"`
}

type PlanStatus string

const (
	PlanActive    PlanStatus = "Active"
	PlanCompleted PlanStatus = "Completed"
	PlanPaused    PlanStatus = "Paused"
	PlanArchived  PlanStatus = "Archived"
)

func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanActive, PlanCompleted, PlanPaused, PlanArchived:
		return true
	}
	return false
}

// DaysRemaining counts whole days from today until the plan's end date,
// never negative. Unparseable end dates count as zero.
func (p *PlanEntity) DaysRemaining(today time.Time) int {
	end, err := time.ParseInLocation("2006-01-02", p.EndDate, today.Location())
	if err != nil {
		return 0
	}
	days := int(end.Sub(today.Truncate(24*time.Hour)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
