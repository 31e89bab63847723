package analysis_dto

import (
	"time"

	json "github.com/goccy/go-json"

	"github.com/nuwan-labs/project-buddy/internal/entity"
)

type SummaryResponse struct {
	Date        string          `json:"date"`
	SummaryText string          `json:"summary_text"`
	Blockers    json.RawMessage `json:"blockers"`
	Highlights  json.RawMessage `json:"highlights"`
	Suggestions json.RawMessage `json:"suggestions"`
	Patterns    json.RawMessage `json:"patterns"`
	GeneratedAt time.Time       `json:"generated_at"`
}

func ToSummaryResponse(s *entity.DailySummaryEntity) SummaryResponse {
	return SummaryResponse{
		Date:        s.Date,
		SummaryText: s.SummaryText,
		Blockers:    s.Blockers,
		Highlights:  s.Highlights,
		Suggestions: s.Suggestions,
		Patterns:    s.Patterns,
		GeneratedAt: s.GeneratedAt,
	}
}
