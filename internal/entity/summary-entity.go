package entity

import (
	"time"

	"github.com/goccy/go-json"
)

// DailySummaryEntity holds the analysis result for one calendar date.
// Exactly one row exists per date; a re-run replaces content and GeneratedAt
// in place. The four list fields are JSON arrays whose items may be
// structured objects or plain strings, depending on what the model returned.
type DailySummaryEntity struct {
	ID          int64           `json:"id"`
	PlanID      *int64          `json:"plan_id,omitempty"`
	Date        string          `json:"date"` // YYYY-MM-DD
	SummaryText string          `json:"summary_text"`
	Blockers    json.RawMessage `json:"blockers"`
	Highlights  json.RawMessage `json:"highlights"`
	Suggestions json.RawMessage `json:"suggestions"`
	Patterns    json.RawMessage `json:"patterns"`
	GeneratedAt time.Time       `json:"generated_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EmptyJSONArray is the canonical value for an absent list field. The list
// columns are never NULL.
var EmptyJSONArray = json.RawMessage("[]")

type ProjectDailyNoteEntity struct {
	ID          int64      `json:"id"`
	ProjectID   int64      `json:"project_id"`
	PlanID      *int64     `json:"plan_id,omitempty"`
	Date        string     `json:"date"` // YYYY-MM-DD
	WhatIDid    string     `json:"what_i_did"`
	Blockers    *string    `json:"blockers,omitempty"`
	NextSteps   *string    `json:"next_steps,omitempty"`
	ProjectName string     `json:"project_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
