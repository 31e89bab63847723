package entity

import (
	"math"
	"time"
)

// Duration bounds for a single work-log entry, in minutes. Entries outside
// this range are rejected at ingestion.
const (
	MinLogDurationMinutes = 1
	MaxLogDurationMinutes = 480
)

// WorkLogEntity is an immutable-at-creation fact: something was worked on at
// a point in time. Creating one is the sole trigger for the status cascade.
type WorkLogEntity struct {
	ID              int64     `json:"id"`
	PlanID          *int64    `json:"plan_id,omitempty"`
	ProjectID       *int64    `json:"project_id,omitempty"`
	ActivityID      *int64    `json:"activity_id,omitempty"`
	Comment         string    `json:"comment"`
	DurationMinutes int       `json:"duration_minutes"`
	Timestamp       string    `json:"timestamp"` // ISO 8601 with offset, e.g. 2026-02-24T10:30:00+05:30
	Tags            *string   `json:"tags,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// WorkLogDetail is a WorkLogEntity joined with the display names of its
// linked project and activity, for responses and the analysis transcript.
type WorkLogDetail struct {
	WorkLogEntity
	ProjectName  string  `json:"project_name"`
	ActivityName *string `json:"activity_name,omitempty"`
}

func TotalHoursFromLogs(logs []WorkLogDetail) float64 {
	var minutes int
	for _, l := range logs {
		minutes += l.DurationMinutes
	}
	return math.Round(float64(minutes)/60*100) / 100
}
