package dispatch

import "strings"

// WordSet is a case-folded word-count set used for word-boundary keyword
// matching. Tokenizing on non-letter/digit boundaries gives word-boundary
// semantics for free, without a regexp engine, and without the
// substring-match defect called out in the spec's Open Questions (e.g.
// "table" must not match inside "suitable").
type WordSet map[string]int

// Tokenize lowercases msg and splits it into words on any rune that isn't
// an ASCII letter or digit (non-ASCII letters act as separators). Exported so the emitters can reuse the same keyword
// matching the dispatcher used to classify the request.
func Tokenize(msg string) WordSet {
	ws := make(WordSet)
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			ws[b.String()]++
			b.Reset()
		}
	}
	for _, r := range strings.ToLower(msg) {
		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return ws
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// Has reports whether any of the given words appears in the set.
func (ws WordSet) Has(words ...string) bool {
	for _, w := range words {
		if ws[w] > 0 {
			return true
		}
	}
	return false
}

// HasAll reports whether every given word appears in the set.
func (ws WordSet) HasAll(words ...string) bool {
	for _, w := range words {
		if ws[w] == 0 {
			return false
		}
	}
	return true
}
