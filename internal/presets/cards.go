// Package presets holds the fixed sample-data catalogs for cards, tables,
// and charts (spec §6). Presets are internally consistent with their
// declared columns/axes and types; the exact values are this
// implementation's own choice, not a wire contract.
package presets

// CardScenario is one of the three fixed sample cards used by the
// single-normal card emitter.
type CardScenario struct {
	Title       string
	Description string
	Value       int
	Units       int
}

// Cards is the fixed catalog of card scenarios. The multi-card emitter
// cycles through them by index so the cards within one response differ
// without needing randomness; the single-card emitters always use the
// first scenario.
var Cards = []CardScenario{
	{
		Title:       "Monthly Active Users",
		Description: "Active users over the last 30 days",
		Value:       48213,
		Units:       120,
	},
	{
		Title:       "Support Tickets Resolved",
		Description: "Tickets closed this week",
		Value:       342,
		Units:       18,
	},
	{
		Title:       "Deployment Frequency",
		Description: "Production deploys this sprint",
		Value:       27,
		Units:       9,
	},
}

// CardAt returns the scenario at index i, wrapping around the catalog so
// any non-negative i is valid.
func CardAt(i int) CardScenario {
	return Cards[i%len(Cards)]
}
