package analysis_case

import (
	"strings"

	json "github.com/goccy/go-json"

	"github.com/nuwan-labs/project-buddy/internal/entity"
)

const degradedSnippetLimit = 1000

// AnalysisResult is the normalized output of one model reply. The list
// fields are always valid JSON arrays. Degraded marks a reply that could not
// be parsed as the expected object; its Summary then carries a raw snippet.
type AnalysisResult struct {
	Summary     string
	Blockers    json.RawMessage
	Highlights  json.RawMessage
	Suggestions json.RawMessage
	Patterns    json.RawMessage
	Degraded    bool
}

// StripReasoning removes a leading <think>...</think> block. Reasoning
// models emit these before the actual answer; everything through the LAST
// closing tag goes, since the reasoning itself may quote the tag.
func StripReasoning(text string) string {
	if !strings.Contains(text, "<think>") {
		return text
	}
	idx := strings.LastIndex(text, "</think>")
	if idx == -1 {
		return text
	}
	return text[idx+len("</think>"):]
}

// ExtractJSON cuts the span from the first '{' to the last '}'. Prose around
// the object is tolerated; absence of a span is the caller's problem.
func ExtractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseAnalysis turns a raw model reply into an AnalysisResult. It never
// fails: an unparseable reply degrades to a raw-text summary with empty
// lists, and each list field is normalized independently so one malformed
// field does not discard the others.
func ParseAnalysis(raw string) *AnalysisResult {
	text := StripReasoning(raw)

	span, ok := ExtractJSON(text)
	if !ok {
		return degraded(raw)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &fields); err != nil {
		return degraded(raw)
	}

	result := &AnalysisResult{
		Blockers:    normalizeList(fields["blockers"]),
		Highlights:  normalizeList(fields["highlights"]),
		Suggestions: normalizeList(fields["suggestions"]),
		Patterns:    normalizeList(fields["patterns"]),
	}

	var summary string
	if err := json.Unmarshal(fields["summary"], &summary); err != nil || summary == "" {
		result.Summary = snippet(raw)
		result.Degraded = true
		return result
	}
	result.Summary = summary

	return result
}

func degraded(raw string) *AnalysisResult {
	summary := snippet(raw)
	if summary == "" {
		summary = "Analysis complete (unparseable response)."
	}
	return &AnalysisResult{
		Summary:     summary,
		Blockers:    entity.EmptyJSONArray,
		Highlights:  entity.EmptyJSONArray,
		Suggestions: entity.EmptyJSONArray,
		Patterns:    entity.EmptyJSONArray,
		Degraded:    true,
	}
}

func snippet(raw string) string {
	runes := []rune(strings.TrimSpace(raw))
	if len(runes) > degradedSnippetLimit {
		runes = runes[:degradedSnippetLimit]
	}
	return string(runes)
}

// normalizeList keeps a valid array as-is, wraps a lone value into a
// single-element array and maps anything else to the empty array.
func normalizeList(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return entity.EmptyJSONArray
	}

	// Unmarshal accepts a JSON null into a nil slice, so the nil check keeps
	// null from passing through as-is.
	var asList []json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil && asList != nil {
		return raw
	}

	var asAny any
	if err := json.Unmarshal(raw, &asAny); err != nil || asAny == nil {
		return entity.EmptyJSONArray
	}

	wrapped, err := json.Marshal([]any{asAny})
	if err != nil {
		return entity.EmptyJSONArray
	}
	return wrapped
}
