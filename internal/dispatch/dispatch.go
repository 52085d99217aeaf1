// Package dispatch classifies a raw chat message into one of the
// patterns the server knows how to answer (spec §4.3). Classification is
// an explicit ordered list of predicates, not a regex cascade: order
// encodes precedence, and that order is itself a tested property (T8).
package dispatch

// Pattern is the equivalence class a message falls into.
type Pattern int

const (
	PatternLLMPlan Pattern = iota
	PatternCardSingleDelayed
	PatternCardMultiDelayed
	PatternCardMultiNormal
	PatternCardSingleNormal
	PatternCardIncremental
	PatternTables
	PatternCharts
	PatternDefault
)

func (p Pattern) String() string {
	switch p {
	case PatternLLMPlan:
		return "llm_plan"
	case PatternCardSingleDelayed:
		return "card_single_delayed"
	case PatternCardMultiDelayed:
		return "card_multi_delayed"
	case PatternCardMultiNormal:
		return "card_multi_normal"
	case PatternCardSingleNormal:
		return "card_single_normal"
	case PatternCardIncremental:
		return "card_incremental"
	case PatternTables:
		return "tables"
	case PatternCharts:
		return "charts"
	default:
		return "default"
	}
}

// rule pairs a predicate with the pattern it selects. Classify walks
// rules in order and returns the first match.
type rule struct {
	pattern Pattern
	match   func(ws WordSet) bool
}

var rules = []rule{
	{PatternLLMPlan, func(ws WordSet) bool {
		return ws.Has(llmKeywords...)
	}},
	{PatternCardSingleDelayed, func(ws WordSet) bool {
		_, hasCount := multiCount(ws, 999)
		return ws.Has("delayed", "partial") && ws.Has("card", "cards") && !hasCount
	}},
	{PatternCardMultiDelayed, func(ws WordSet) bool {
		_, hasCount := multiCount(ws, 999)
		return ws.Has("delayed", "partial") && ws.Has("card", "cards") && hasCount
	}},
	{PatternCardMultiNormal, func(ws WordSet) bool {
		_, hasCount := multiCount(ws, 999)
		wantsCards := ws.Has("cards") || hasCount
		return wantsCards && !ws.Has(tableKeywords...) && !ws.Has(chartKeywords...)
	}},
	{PatternCardSingleNormal, func(ws WordSet) bool {
		return ws.Has("card", "component")
	}},
	{PatternCardIncremental, func(ws WordSet) bool {
		return ws.Has("loading", "state", "states", "progressive")
	}},
	{PatternTables, func(ws WordSet) bool {
		return ws.Has(tableKeywords...)
	}},
	{PatternCharts, func(ws WordSet) bool {
		return ws.Has(chartKeywords...)
	}},
}

// Classify returns the pattern the message routes to. Matching is
// case-insensitive and word-boundary only (see Tokenize); given identical
// input, Classify always returns the same pattern (T8).
func Classify(message string) Pattern {
	ws := Tokenize(message)
	for _, r := range rules {
		if r.match(ws) {
			return r.pattern
		}
	}
	return PatternDefault
}
