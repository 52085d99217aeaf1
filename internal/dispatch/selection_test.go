package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatstream/chatstream-server/internal/dispatch"
	"github.com/chatstream/chatstream-server/internal/presets"
)

func TestSelectTableKinds_SingleNamedNoCount(t *testing.T) {
	ws := dispatch.Tokenize("show me sales table")
	got := dispatch.SelectTableKinds(ws, 3)
	assert.Equal(t, []presets.TableKind{presets.TableSales}, got)
}

func TestSelectTableKinds_NoneNamedNoCountDefaultsToSales(t *testing.T) {
	ws := dispatch.Tokenize("show me a table")
	got := dispatch.SelectTableKinds(ws, 3)
	assert.Equal(t, []presets.TableKind{presets.TableSales}, got)
}

func TestSelectTableKinds_TwoSalesTablesDuplicates(t *testing.T) {
	ws := dispatch.Tokenize("show me two sales tables")
	got := dispatch.SelectTableKinds(ws, 3)
	assert.Equal(t, []presets.TableKind{presets.TableSales, presets.TableSales}, got)
}

func TestSelectTableKinds_TwoTablesFillsFromOrder(t *testing.T) {
	ws := dispatch.Tokenize("show me two tables")
	got := dispatch.SelectTableKinds(ws, 3)
	assert.Equal(t, []presets.TableKind{presets.TableSales, presets.TableUsers}, got)
}

func TestSelectTableKinds_ClampsToMax(t *testing.T) {
	ws := dispatch.Tokenize("show me three tables")
	got := dispatch.SelectTableKinds(ws, 2)
	assert.Len(t, got, 2)
}

func TestSelectChartKinds_LineMapsToSalesLine(t *testing.T) {
	ws := dispatch.Tokenize("show me a line chart")
	got := dispatch.SelectChartKinds(ws, 3)
	assert.Equal(t, []presets.ChartKind{presets.ChartSalesLine}, got)
}

func TestSelectChartKinds_TwoChartsFillsFromOrder(t *testing.T) {
	ws := dispatch.Tokenize("show me two charts")
	got := dispatch.SelectChartKinds(ws, 3)
	assert.Equal(t, []presets.ChartKind{presets.ChartSalesLine, presets.ChartRevenueBar}, got)
}

func TestSelectChartKinds_TwoLineChartsDuplicates(t *testing.T) {
	ws := dispatch.Tokenize("show me two line charts")
	got := dispatch.SelectChartKinds(ws, 3)
	assert.Equal(t, []presets.ChartKind{presets.ChartSalesLine, presets.ChartSalesLine}, got)
}
