package entity

import "time"

type ProjectEntity struct {
	ID          int64         `json:"id"`
	PlanID      int64         `json:"plan_id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Goal        *string       `json:"goal,omitempty"`
	Status      ProjectStatus `json:"status"`
	ColorTag    *string       `json:"color_tag,omitempty"` // e.g. "#FF5733"
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// ProjectStats carries the derived numbers attached to project responses.
// They are always recomputed from children and logs, never stored.
type ProjectStats struct {
	ActivitiesCount   int     `json:"activities_count"`
	CompletedCount    int     `json:"completed_count"`
	CompletionPercent float64 `json:"completion_percent"`
	HoursLogged       float64 `json:"hours_logged"`
	HoursEstimated    float64 `json:"hours_estimated"`
}

type ActivityEntity struct {
	ID             int64          `json:"id"`
	ProjectID      int64          `json:"project_id"`
	Name           string         `json:"name"`
	Description    *string        `json:"description,omitempty"`
	Deliverables   *string        `json:"deliverables,omitempty"`
	Dependencies   *string        `json:"dependencies,omitempty"`
	Status         ActivityStatus `json:"status"`
	EstimatedHours float64        `json:"estimated_hours"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "Not Started"
	ProjectActive     ProjectStatus = "Active"
	ProjectBlocked    ProjectStatus = "Blocked"
	ProjectOnHold     ProjectStatus = "On Hold"
	ProjectComplete   ProjectStatus = "Complete"
	ProjectArchived   ProjectStatus = "Archived"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectNotStarted, ProjectActive, ProjectBlocked, ProjectOnHold, ProjectComplete, ProjectArchived:
		return true
	}
	return false
}

// IsAdministrative reports whether the status was set by an operator and must
// never be overwritten by the cascade.
func (s ProjectStatus) IsAdministrative() bool {
	return s == ProjectOnHold || s == ProjectArchived
}

type ActivityStatus string

const (
	ActivityNotStarted ActivityStatus = "Not Started"
	ActivityInProgress ActivityStatus = "In Progress"
	ActivityComplete   ActivityStatus = "Complete"
)

func (s ActivityStatus) IsValid() bool {
	switch s {
	case ActivityNotStarted, ActivityInProgress, ActivityComplete:
		return true
	}
	return false
}

// NextProjectStatus recomputes a project's derived status from its children.
// Precedence:
//  1. no children, or an administrative status (On Hold / Archived): no change
//  2. every child Complete and autoComplete enabled: Complete
//  3. any child In Progress or Complete: Active (work has started), unless the
//     project is already Complete
//  4. otherwise: no change (all children still Not Started)
//
// The second return value reports whether the status actually changed.
func NextProjectStatus(current ProjectStatus, children []ActivityStatus, autoComplete bool) (ProjectStatus, bool) {
	if len(children) == 0 || current.IsAdministrative() {
		return current, false
	}

	allComplete := true
	anyStarted := false
	for _, c := range children {
		if c != ActivityComplete {
			allComplete = false
		}
		if c == ActivityInProgress || c == ActivityComplete {
			anyStarted = true
		}
	}

	if allComplete && autoComplete {
		if current == ProjectComplete {
			return current, false
		}
		return ProjectComplete, true
	}

	if anyStarted && current != ProjectComplete && current != ProjectActive {
		return ProjectActive, true
	}

	return current, false
}
