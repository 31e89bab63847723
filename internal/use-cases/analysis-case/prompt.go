package analysis_case

import (
	"fmt"
	"strings"

	"github.com/nuwan-labs/project-buddy/internal/entity"
)

const promptTemplate = `You are analyzing a researcher's daily work log. Today is %s.

Work Log:
%s

Analyze the work log and respond with ONLY valid JSON - no markdown fences, no preamble, no text outside the JSON object.

JSON format:
{
  "summary": "2-3 sentence overview of today's accomplishments",
  "blockers": [
    {"issue": "description", "frequency": 1, "suggestion": "how to resolve"}
  ],
  "highlights": [
    "key accomplishment 1",
    "key accomplishment 2"
  ],
  "suggestions": [
    {"project": "project name", "next_step": "recommended action", "rationale": "why"}
  ],
  "patterns": [
    "observed work pattern 1"
  ]
}
`

// BuildPrompt renders the analysis prompt for one date. Timestamps are cut
// to minute precision; logs without a project or activity link get readable
// placeholders instead of blanks.
func BuildPrompt(date string, logs []entity.WorkLogDetail) string {
	return fmt.Sprintf(promptTemplate, date, formatTranscript(logs))
}

func formatTranscript(logs []entity.WorkLogDetail) string {
	parts := make([]string, 0, len(logs))
	for _, l := range logs {
		project := l.ProjectName
		if project == "" {
			project = "Unknown Project"
		}
		activity := "Ad-hoc / Unplanned"
		if l.ActivityName != nil {
			activity = *l.ActivityName
		}

		ts := l.Timestamp
		if len(ts) > 16 {
			ts = ts[:16]
		}

		parts = append(parts, fmt.Sprintf(
			"  %s  |  %s -> %s\n    Comment:  %s\n    Duration: %d min",
			ts, project, activity, l.Comment, l.DurationMinutes,
		))
	}
	return strings.Join(parts, "\n\n")
}
