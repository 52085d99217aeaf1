package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatstream/chatstream-server/internal/wire"
)

func TestFallbackComponents_IsStructurallyStable(t *testing.T) {
	a := FallbackComponents()
	b := FallbackComponents()
	assert.Equal(t, a, b)
}

func TestFallbackComponents_HasOneOfEachKind(t *testing.T) {
	got := FallbackComponents()
	require_ := assert.New(t)
	require_.Len(got, 3)
	require_.Equal(wire.SimpleComponent, got[0].Type)
	require_.Equal(wire.TableA, got[1].Type)
	require_.Equal(wire.ChartComponent, got[2].Type)
}
