package dispatch

// Keyword lists are the ground truth for pattern classification (spec
// §4.3). Extensions add to the end of a list; the dispatcher's rule order
// is what encodes precedence, not list order within a rule.
var (
	llmKeywords = []string{
		"ai", "llm", "plan", "analyze", "dashboard", "intelligent",
		"smart", "insight", "insights", "summary",
	}

	multiCountKeywords = []string{"two", "2", "three", "3", "multiple", "several"}

	tableKeywords = []string{"table", "tables", "sales", "user", "users", "product", "products"}

	chartKeywords = []string{
		"chart", "charts", "line", "lines", "bar", "bars", "graph", "graphs",
		"plot", "plots", "trend", "trends", "revenue", "growth", "performance",
		"metric", "metrics",
	}
)

// multiCount returns the requested card/table/chart count implied by the
// message, clamped to max, and whether a count keyword was present at
// all.
func multiCount(ws WordSet, max int) (n int, found bool) {
	switch {
	case ws.Has("two", "2"):
		n = 2
	case ws.Has("three", "3"):
		n = 3
	case ws.Has("multiple", "several"):
		n = 3
	default:
		return 0, false
	}
	if n > max {
		n = max
	}
	return n, true
}

// MultiCount is the exported form of multiCount, used by emitters that
// need the same count the dispatcher used to route the request.
func MultiCount(ws WordSet, max int) (n int, found bool) {
	return multiCount(ws, max)
}
