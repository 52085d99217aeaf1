package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatstream/chatstream-server/internal/presets"
)

func TestTables_RowsMatchColumnArity(t *testing.T) {
	for kind, schema := range presets.Tables {
		for i, row := range schema.Rows {
			assert.Lenf(t, row, len(schema.Columns),
				"table %s row %d has %d cells, want %d", kind, i, len(row), len(schema.Columns))
		}
	}
}

func TestCharts_ValuesMatchXAxisArity(t *testing.T) {
	for kind, schema := range presets.Charts {
		assert.Lenf(t, schema.Values, len(schema.XAxis),
			"chart %s has %d values, want %d to match x_axis", kind, len(schema.Values), len(schema.XAxis))
	}
}

func TestCardAt_Wraps(t *testing.T) {
	a := presets.CardAt(0)
	b := presets.CardAt(len(presets.Cards))
	assert.Equal(t, a, b)
}

func TestRowAt_OutOfRange(t *testing.T) {
	_, ok := presets.RowAt(presets.TableSales, presets.RowCount(presets.TableSales))
	assert.False(t, ok)
}

func TestPointAt_OutOfRange(t *testing.T) {
	_, ok := presets.PointAt(presets.ChartSalesLine, presets.PointCount(presets.ChartSalesLine))
	assert.False(t, ok)
}

func TestTableOrder_CoversAllKinds(t *testing.T) {
	assert.Len(t, presets.TableOrder, len(presets.Tables))
	for _, k := range presets.TableOrder {
		_, ok := presets.Tables[k]
		assert.True(t, ok)
	}
}

func TestChartOrder_CoversAllKinds(t *testing.T) {
	assert.Len(t, presets.ChartOrder, len(presets.Charts))
	for _, k := range presets.ChartOrder {
		_, ok := presets.Charts[k]
		assert.True(t, ok)
	}
}
