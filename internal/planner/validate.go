package planner

import "github.com/chatstream/chatstream-server/internal/wire"

// Limits bounds what a validated plan may contain (spec §4.7 step 5-6).
type Limits struct {
	MaxComponents  int
	MaxTableRows   int
	MaxChartPoints int
}

// DefaultLimits matches the recommended configuration surface in spec §6.
func DefaultLimits() Limits {
	return Limits{MaxComponents: 5, MaxTableRows: 20, MaxChartPoints: 50}
}

var permittedChartTypes = map[string]bool{
	"line": true, "bar": true, "area": true, "pie": true, "scatter": true,
}

// validateComponents drops any raw component that fails its per-kind
// schema check, then clamps the survivors to the configured maximum. An
// empty result means validation produced nothing usable, which the
// caller treats as a failed attempt (spec §4.7 step 6).
func validateComponents(raws []rawComponent, limits Limits) []PlanComponent {
	var out []PlanComponent
	for _, rc := range raws {
		pc, ok := validateOne(rc, limits)
		if !ok {
			continue
		}
		out = append(out, pc)
	}
	if len(out) > limits.MaxComponents {
		out = out[:limits.MaxComponents]
	}
	return out
}

func validateOne(rc rawComponent, limits Limits) (PlanComponent, bool) {
	if rc.Data == nil {
		rc.Data = map[string]any{}
	}
	switch wire.Kind(rc.Type) {
	case wire.SimpleComponent:
		return PlanComponent{Type: wire.SimpleComponent, Data: rc.Data}, true
	case wire.TableA:
		if _, ok := rc.Data["columns"]; !ok {
			return PlanComponent{}, false
		}
		if rows, ok := rc.Data["rows"].([]any); ok && len(rows) > limits.MaxTableRows {
			return PlanComponent{}, false
		}
		return PlanComponent{Type: wire.TableA, Data: rc.Data}, true
	case wire.ChartComponent:
		ct, _ := rc.Data["chart_type"].(string)
		if !permittedChartTypes[ct] {
			return PlanComponent{}, false
		}
		if _, ok := rc.Data["title"]; !ok {
			return PlanComponent{}, false
		}
		if _, ok := rc.Data["x_axis"]; !ok {
			return PlanComponent{}, false
		}
		if longestSeriesLen(rc.Data["series"]) > limits.MaxChartPoints {
			return PlanComponent{}, false
		}
		return PlanComponent{Type: wire.ChartComponent, Data: rc.Data}, true
	default:
		return PlanComponent{}, false
	}
}

func longestSeriesLen(v any) int {
	series, ok := v.([]any)
	if !ok {
		return 0
	}
	longest := 0
	for _, s := range series {
		sm, ok := s.(map[string]any)
		if !ok {
			continue
		}
		values, ok := sm["values"].([]any)
		if !ok {
			continue
		}
		if len(values) > longest {
			longest = len(values)
		}
	}
	return longest
}
