package view

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// CleanMarkdown normalizes LLM-written markdown for terminal display:
// fence marker lines (``` / ~~~) are dropped while the fenced text is
// kept, header markers are stripped from header lines, and surrounding
// whitespace is trimmed. Never fails; unrecognized text passes through.
func CleanMarkdown(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			line = strings.TrimLeft(trimmed, "#")
			line = strings.TrimPrefix(line, " ")
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// Verdict is the structured conclusion some analyses embed as a JSON
// object inside their markdown.
type Verdict struct {
	Score   *float64 `json:"score,omitempty"`
	Action  string   `json:"action,omitempty"`
	Summary string   `json:"summary,omitempty"`
}

// ExtractVerdict recovers an embedded verdict from analysis markdown.
// The JSON is model-written and frequently malformed, so the candidate is
// repaired before decoding. A missing or unusable verdict is not an error:
// ok is false and the caller renders the prose alone.
func ExtractVerdict(content string) (*Verdict, bool) {
	candidate := jsonCandidate(content)
	if candidate == "" {
		return nil, false
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, false
	}

	var v Verdict
	if err := json.Unmarshal([]byte(repaired), &v); err != nil {
		return nil, false
	}
	if v.Score == nil && v.Action == "" && v.Summary == "" {
		return nil, false
	}
	return &v, true
}

// jsonCandidate picks the most likely JSON region: a ```json fence if
// present, otherwise the outermost brace pair.
func jsonCandidate(s string) string {
	if i := strings.Index(s, "```json"); i >= 0 {
		rest := s[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return ""
}

// TruncateDate shortens a timestamp to its date part. Backend timestamps
// are "YYYY-MM-DD" optionally followed by a time; anything shorter passes
// through unchanged.
func TruncateDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// PageCount returns the number of pages needed for total items, 0 when
// there is nothing to page.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
