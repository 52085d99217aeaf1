package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatstream/chatstream-server/internal/wire"
)

func TestValidateComponents_DropsTableWithoutColumns(t *testing.T) {
	raws := []rawComponent{{Type: "TableA", Data: map[string]any{"rows": []any{}}}}
	got := validateComponents(raws, DefaultLimits())
	assert.Empty(t, got)
}

func TestValidateComponents_DropsTableOverRowLimit(t *testing.T) {
	rows := make([]any, 25)
	raws := []rawComponent{{Type: "TableA", Data: map[string]any{"columns": []any{"A"}, "rows": rows}}}
	got := validateComponents(raws, DefaultLimits())
	assert.Empty(t, got)
}

func TestValidateComponents_DropsChartWithBadType(t *testing.T) {
	raws := []rawComponent{{Type: "ChartComponent", Data: map[string]any{
		"chart_type": "pyramid", "title": "x", "x_axis": []any{"a"},
	}}}
	got := validateComponents(raws, DefaultLimits())
	assert.Empty(t, got)
}

func TestValidateComponents_DropsChartOverPointLimit(t *testing.T) {
	values := make([]any, 60)
	raws := []rawComponent{{Type: "ChartComponent", Data: map[string]any{
		"chart_type": "line", "title": "x", "x_axis": []any{"a"},
		"series": []any{map[string]any{"label": "s", "values": values}},
	}}}
	got := validateComponents(raws, DefaultLimits())
	assert.Empty(t, got)
}

func TestValidateComponents_AcceptsWellFormedMixOfKinds(t *testing.T) {
	raws := []rawComponent{
		{Type: "SimpleComponent", Data: map[string]any{"title": "x"}},
		{Type: "TableA", Data: map[string]any{"columns": []any{"A"}}},
		{Type: "ChartComponent", Data: map[string]any{
			"chart_type": "bar", "title": "t", "x_axis": []any{"a", "b"},
		}},
		{Type: "unknown_kind", Data: map[string]any{}},
	}
	got := validateComponents(raws, DefaultLimits())
	assert.Len(t, got, 3)
	assert.Equal(t, wire.SimpleComponent, got[0].Type)
	assert.Equal(t, wire.TableA, got[1].Type)
	assert.Equal(t, wire.ChartComponent, got[2].Type)
}

func TestValidateComponents_ClampsToMaxComponents(t *testing.T) {
	limits := Limits{MaxComponents: 1, MaxTableRows: 20, MaxChartPoints: 50}
	raws := []rawComponent{
		{Type: "SimpleComponent", Data: map[string]any{}},
		{Type: "SimpleComponent", Data: map[string]any{}},
	}
	got := validateComponents(raws, limits)
	assert.Len(t, got, 1)
}
