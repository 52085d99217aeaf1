package presets

// ChartKind identifies one of the four fixed chart presets.
type ChartKind string

const (
	ChartSalesLine   ChartKind = "sales_line"
	ChartRevenueBar  ChartKind = "revenue_bar"
	ChartGrowthLine  ChartKind = "growth_line"
	ChartPerformance ChartKind = "performance_bar"
)

// ChartOrder is the fixed fill order used when a request names a count
// but not enough distinct presets (spec §4.6 rule 2).
var ChartOrder = []ChartKind{ChartSalesLine, ChartRevenueBar, ChartGrowthLine, ChartPerformance}

// ChartType is one of the five permitted chart_type values.
type ChartType string

const (
	ChartTypeLine    ChartType = "line"
	ChartTypeBar     ChartType = "bar"
	ChartTypeArea    ChartType = "area"
	ChartTypePie     ChartType = "pie"
	ChartTypeScatter ChartType = "scatter"
)

// ChartSchema describes one chart preset: its declared type, title,
// x-axis labels, the single series label, and the fixed sample values
// (one per x-axis entry).
type ChartSchema struct {
	Type        ChartType
	Title       string
	XAxis       []string
	SeriesLabel string
	Values      []float64
}

// Charts maps each kind to its schema.
var Charts = map[ChartKind]ChartSchema{
	ChartSalesLine: {
		Type:        ChartTypeLine,
		Title:       "Sales Over Time",
		XAxis:       []string{"Jan", "Feb", "Mar", "Apr", "May"},
		SeriesLabel: "Sales",
		Values:      []float64{42000, 45500, 39800, 51200, 55300},
	},
	ChartRevenueBar: {
		Type:        ChartTypeBar,
		Title:       "Revenue by Region",
		XAxis:       []string{"West", "East", "Central", "South"},
		SeriesLabel: "Revenue",
		Values:      []float64{128500, 97250, 154300, 88120},
	},
	ChartGrowthLine: {
		Type:        ChartTypeLine,
		Title:       "Weekly Growth",
		XAxis:       []string{"Wk1", "Wk2", "Wk3", "Wk4", "Wk5", "Wk6"},
		SeriesLabel: "Growth %",
		Values:      []float64{1.2, 2.4, 1.8, 3.1, 2.9, 3.6},
	},
	ChartPerformance: {
		Type:        ChartTypeBar,
		Title:       "Service Performance",
		XAxis:       []string{"Latency", "Throughput", "Error Rate", "Uptime"},
		SeriesLabel: "Score",
		Values:      []float64{92, 88, 97, 99.95},
	},
}

// PointAt returns the value at index i for kind, and whether it exists.
func PointAt(kind ChartKind, i int) (value float64, ok bool) {
	schema := Charts[kind]
	if i < 0 || i >= len(schema.Values) {
		return 0, false
	}
	return schema.Values[i], true
}

// PointCount returns how many preset points a kind has.
func PointCount(kind ChartKind) int {
	return len(Charts[kind].Values)
}
