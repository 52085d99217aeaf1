package dispatch

import "github.com/chatstream/chatstream-server/internal/presets"

// SelectTableKinds applies the spec §4.5 kind-selection rules to a
// tokenized message: collect explicitly named kinds, then use any count
// keyword to either repeat a single named kind or fill in the remaining
// kinds in TableOrder, clamped to max.
func SelectTableKinds(ws WordSet, max int) []presets.TableKind {
	var named []presets.TableKind
	if ws.Has("sales") {
		named = append(named, presets.TableSales)
	}
	if ws.Has("user", "users") {
		named = append(named, presets.TableUsers)
	}
	if ws.Has("product", "products") {
		named = append(named, presets.TableProducts)
	}
	count, hasCount := multiCount(ws, max)
	return selectKinds(named, hasCount, count, max, presets.TableOrder, presets.TableSales)
}

// SelectChartKinds applies the same rule shape to chart presets (spec
// §4.6): keyword-to-preset mapping, then count-driven repeat/fill.
func SelectChartKinds(ws WordSet, max int) []presets.ChartKind {
	var named []presets.ChartKind
	if ws.Has("line", "lines", "trend", "trends", "sales") {
		named = append(named, presets.ChartSalesLine)
	}
	if ws.Has("bar", "bars", "revenue") {
		named = append(named, presets.ChartRevenueBar)
	}
	if ws.Has("growth") {
		named = append(named, presets.ChartGrowthLine)
	}
	if ws.Has("performance", "metric", "metrics") {
		named = append(named, presets.ChartPerformance)
	}
	count, hasCount := multiCount(ws, max)
	return selectKinds(named, hasCount, count, max, presets.ChartOrder, presets.ChartSalesLine)
}

// selectKinds is the shared shape behind SelectTableKinds/SelectChartKinds:
// if no count keyword is present, use the named kinds as-is (or a single
// default when nothing was named); otherwise, a count greater than what
// was named either duplicates the one named kind or fills in from order.
func selectKinds[T comparable](named []T, hasCount bool, count, max int, order []T, def T) []T {
	if !hasCount {
		if len(named) == 0 {
			return []T{def}
		}
		return clampSlice(named, max)
	}
	if count > len(named) {
		if len(named) == 1 {
			out := make([]T, count)
			for i := range out {
				out[i] = named[0]
			}
			return clampSlice(out, max)
		}
		out := append([]T{}, named...)
		for _, k := range order {
			if len(out) >= count {
				break
			}
			if !containsSlice(out, k) {
				out = append(out, k)
			}
		}
		return clampSlice(out, max)
	}
	return clampSlice(named, max)
}

func clampSlice[T any](s []T, max int) []T {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func containsSlice[T comparable](s []T, v T) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
