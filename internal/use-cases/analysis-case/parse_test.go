package analysis_case

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"

	"github.com/nuwan-labs/project-buddy/internal/entity"
)

func TestStripReasoning(t *testing.T) {
	in := "<think>chewing on the logs</think>{\"summary\": \"done\"}"
	assert.Equal(t, "{\"summary\": \"done\"}", StripReasoning(in))
}

// The reasoning block may itself quote the closing tag. Everything through
// the last occurrence goes.
func TestStripReasoning_NestedCloser(t *testing.T) {
	in := "<think>I should end with </think> eventually</think>ANSWER"
	assert.Equal(t, "ANSWER", StripReasoning(in))
}

func TestStripReasoning_NoTags(t *testing.T) {
	in := "plain reply"
	assert.Equal(t, in, StripReasoning(in))
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	span, ok := ExtractJSON("Here you go: {\"a\": 1} hope that helps!")
	assert.True(t, ok)
	assert.Equal(t, "{\"a\": 1}", span)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, ok := ExtractJSON("no json here")
	assert.False(t, ok)
}

func TestParseAnalysis_WellFormed(t *testing.T) {
	raw := `<think>ok</think>
	{
		"summary": "Shipped the import pipeline and unblocked QC.",
		"blockers": [{"issue": "flaky cluster", "frequency": 2, "suggestion": "pin node pool"}],
		"highlights": ["pipeline shipped"],
		"suggestions": [{"project": "Data tooling", "next_step": "add tests", "rationale": "regressions"}],
		"patterns": ["deep work in the morning"]
	}`

	result := ParseAnalysis(raw)

	assert.False(t, result.Degraded)
	assert.Equal(t, "Shipped the import pipeline and unblocked QC.", result.Summary)
	assert.Contains(t, string(result.Blockers), "flaky cluster")
	assert.Contains(t, string(result.Highlights), "pipeline shipped")
}

func TestParseAnalysis_UnparseableDegrades(t *testing.T) {
	raw := "The model rambled and produced no JSON at all."

	result := ParseAnalysis(raw)

	assert.True(t, result.Degraded)
	assert.Equal(t, raw, result.Summary)
	assert.Equal(t, string(entity.EmptyJSONArray), string(result.Blockers))
	assert.Equal(t, string(entity.EmptyJSONArray), string(result.Patterns))
}

func TestParseAnalysis_SnippetIsCapped(t *testing.T) {
	raw := strings.Repeat("x", 5000)

	result := ParseAnalysis(raw)

	assert.True(t, result.Degraded)
	assert.Len(t, result.Summary, degradedSnippetLimit)
}

func TestParseAnalysis_EmptyReply(t *testing.T) {
	result := ParseAnalysis("")

	assert.True(t, result.Degraded)
	assert.Equal(t, "Analysis complete (unparseable response).", result.Summary)
}

// Missing list fields become empty arrays, not nulls.
func TestParseAnalysis_MissingListsNormalized(t *testing.T) {
	raw := `{"summary": "quiet day", "highlights": ["one thing"]}`

	result := ParseAnalysis(raw)

	assert.False(t, result.Degraded)
	assert.Equal(t, string(entity.EmptyJSONArray), string(result.Blockers))
	assert.Equal(t, string(entity.EmptyJSONArray), string(result.Suggestions))
	assert.Contains(t, string(result.Highlights), "one thing")
}

// A lone value where an array belongs is wrapped, and one bad field does not
// spoil the rest.
func TestParseAnalysis_FieldsNormalizedIndependently(t *testing.T) {
	raw := `{
		"summary": "mixed bag",
		"blockers": "cluster was down",
		"highlights": null,
		"patterns": ["early starts"]
	}`

	result := ParseAnalysis(raw)

	assert.False(t, result.Degraded)
	assert.Equal(t, `["cluster was down"]`, string(result.Blockers))
	assert.Equal(t, string(entity.EmptyJSONArray), string(result.Highlights))
	assert.Contains(t, string(result.Patterns), "early starts")
}

// Null list fields must come out as empty arrays, never as JSON null.
func TestParseAnalysis_NullListsBecomeEmptyArrays(t *testing.T) {
	raw := `{
		"summary": "quiet day",
		"blockers": null,
		"highlights": null,
		"suggestions": null,
		"patterns": null
	}`

	result := ParseAnalysis(raw)

	assert.False(t, result.Degraded)
	assert.Equal(t, "quiet day", result.Summary)
	for _, field := range []json.RawMessage{result.Blockers, result.Highlights, result.Suggestions, result.Patterns} {
		assert.Equal(t, string(entity.EmptyJSONArray), string(field))
	}
}

func TestParseAnalysis_MissingSummaryDegrades(t *testing.T) {
	raw := `{"highlights": ["still useful"]}`

	result := ParseAnalysis(raw)

	assert.True(t, result.Degraded)
	assert.Contains(t, string(result.Highlights), "still useful")
}

func TestBuildPrompt_Transcript(t *testing.T) {
	activity := "Import pipeline"
	logs := []entity.WorkLogDetail{
		{
			WorkLogEntity: entity.WorkLogEntity{
				Comment:         "Wrote the CSV reader",
				DurationMinutes: 45,
				Timestamp:       "2026-02-24T10:30:00+05:30",
			},
			ProjectName:  "Data tooling",
			ActivityName: &activity,
		},
		{
			WorkLogEntity: entity.WorkLogEntity{
				Comment:         "Inbox triage",
				DurationMinutes: 15,
				Timestamp:       "2026-02-24T11:00:00+05:30",
			},
		},
	}

	prompt := BuildPrompt("2026-02-24", logs)

	assert.Contains(t, prompt, "Today is 2026-02-24.")
	assert.Contains(t, prompt, "2026-02-24T10:30  |  Data tooling -> Import pipeline")
	assert.Contains(t, prompt, "Comment:  Wrote the CSV reader")
	assert.Contains(t, prompt, "Duration: 45 min")
	assert.Contains(t, prompt, "Unknown Project -> Ad-hoc / Unplanned")
	assert.Contains(t, prompt, "ONLY valid JSON")
}
