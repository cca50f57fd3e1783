package main

import (
	"testing"

	"github.com/philipparndt/goplan/internal/layer"
	"github.com/philipparndt/goplan/internal/measure"
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextKindCycles(t *testing.T) {
	tests := []struct {
		kind layer.SurfaceKind
		want layer.SurfaceKind
	}{
		{layer.Wall, layer.Floor},
		{layer.Floor, layer.Ceiling},
		{layer.Ceiling, layer.Hidden},
		{layer.Hidden, layer.Wall},
		{"", layer.Wall},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nextKind(tt.kind), "after %q", tt.kind)
	}
}

func TestMeasurementRendererKeepsCommitOrder(t *testing.T) {
	r := newMeasurementRenderer()
	engine := measure.NewEngine(measure.WithRenderer(r))

	first := engine.Create(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	second := engine.Create(geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 0, 0))
	third := engine.Create(geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 0, 0))

	got := r.committed()
	require.Len(t, got, 3)
	assert.Equal(t, []float64{first.Distance, second.Distance, third.Distance},
		[]float64{got[0].Distance, got[1].Distance, got[2].Distance})

	r.Remove(second.Handle)
	got = r.committed()
	require.Len(t, got, 2)
	assert.Equal(t, third.Handle, got[1].Handle)

	engine.Start(geometry.NewVector3(0, 0, 0))
	engine.Update(geometry.NewVector3(0, 0, 4))
	require.NotNil(t, r.preview)
	assert.Equal(t, "4.00m", r.preview.Label.Text)

	engine.End(geometry.NewVector3(0, 0, 4))
	assert.Nil(t, r.preview)
	assert.Len(t, r.committed(), 3)
}
