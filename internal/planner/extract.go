package planner

import (
	"strings"

	"github.com/chatstream/chatstream-server/internal/wire"
)

// extractDelimited locates the last delimiter-wrapped region in the
// model's reply (spec §4.7 step 4 "locate the last delimited region").
func extractDelimited(text string) (string, bool) {
	closeIdx := strings.LastIndex(text, wire.Delimiter)
	if closeIdx == -1 {
		return "", false
	}
	openIdx := strings.LastIndex(text[:closeIdx], wire.Delimiter)
	if openIdx == -1 {
		return "", false
	}
	return text[openIdx+len(wire.Delimiter) : closeIdx], true
}

// bestEffortExtract is the fallback path when no delimited region is
// present: strip Markdown code-fence wrappers and repair single-quoted
// strings into valid JSON, on a best-effort basis only.
func bestEffortExtract(text string) string {
	s := stripCodeFences(text)
	return repairSingleQuotes(s)
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// repairSingleQuotes rewrites single-quoted strings to double-quoted ones
// when the text has no double quotes of its own, a common failure mode
// for models asked for JSON that produce Python-style literals instead.
func repairSingleQuotes(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return strings.ReplaceAll(s, "'", `"`)
	}
	return s
}
