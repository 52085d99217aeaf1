package planner

import "github.com/chatstream/chatstream-server/internal/wire"

// FallbackComponents is the fixed three-component plan served when the
// planner exhausts its retries without a valid plan (spec §4.7 step 7).
// It is a pure function returning the same kinds and placeholder data on
// every call, so its structure is a stable property to test against;
// only the ids assigned at emission time ever differ.
func FallbackComponents() []PlanComponent {
	return []PlanComponent{
		{
			Type: wire.SimpleComponent,
			Data: map[string]any{
				"title":       "Dashboard",
				"description": "A quick overview while we regroup.",
				"value":       0,
			},
		},
		{
			Type: wire.TableA,
			Data: map[string]any{
				"columns":    []string{"Name", "Sales", "Region"},
				"rows":       [][]any{},
				"total_rows": 0,
			},
		},
		{
			Type: wire.ChartComponent,
			Data: map[string]any{
				"chart_type": "line",
				"title":      "Trend",
				"x_axis":     []string{},
				"series":     []any{},
			},
		},
	}
}
