package stream

import (
	"fmt"

	"github.com/chatstream/chatstream-server/internal/presets"
	"github.com/chatstream/chatstream-server/internal/wire"
)

// Charts is pattern P7 (spec §4.6 / S5): introduce one ChartComponent per
// selected preset with an empty series, then interleave point updates
// across charts round-robin by point index. The single series per chart
// is replaced wholesale each frame; only its values slice accumulates.
func Charts(s *Stream, kinds []presets.ChartKind) error {
	if len(kinds) > s.limits.MaxChartsPerResponse {
		kinds = kinds[:s.limits.MaxChartsPerResponse]
	}
	ids := make([]string, len(kinds))
	maxPoints := 0
	for i, kind := range kinds {
		schema := presets.Charts[kind]
		id, err := s.Introduce(wire.ChartComponent, map[string]any{
			"chart_type": string(schema.Type),
			"title":      schema.Title,
			"x_axis":     schema.XAxis,
			"series":     []any{},
		})
		if err != nil {
			return err
		}
		ids[i] = id
		points := presets.PointCount(kind)
		if points > s.limits.MaxChartPoints {
			points = s.limits.MaxChartPoints
		}
		if points > maxPoints {
			maxPoints = points
		}
	}

	if err := s.Text("Rendering your chart … "); err != nil {
		return err
	}

	total := 0
	for pointIndex := 0; pointIndex < maxPoints; pointIndex++ {
		for i, kind := range kinds {
			value, ok := presets.PointAt(kind, pointIndex)
			if !ok || pointIndex >= s.limits.MaxChartPoints {
				continue
			}
			label := presets.Charts[kind].SeriesLabel
			current, _ := s.reg.Get(ids[i])
			values := seriesValues(current)
			newValues := append(append([]any{}, values...), value)
			newSeries := []any{
				map[string]any{"label": label, "values": newValues},
			}
			if err := s.Update(wire.ChartComponent, ids[i], map[string]any{"series": newSeries}); err != nil {
				return err
			}
			total++
			if err := s.Sleep(s.timing.ChartPointDelay); err != nil {
				return err
			}
		}
	}

	return s.Text(fmt.Sprintf("Plotted %d points total.", total))
}

// seriesValues extracts the accumulated values slice from a chart's
// current registry data, tolerating the empty-series first frame.
func seriesValues(data map[string]any) []any {
	series, ok := data["series"].([]any)
	if !ok || len(series) == 0 {
		return nil
	}
	first, ok := series[0].(map[string]any)
	if !ok {
		return nil
	}
	values, _ := first["values"].([]any)
	return values
}
