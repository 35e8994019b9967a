package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBounds_Padding(t *testing.T) {
	t.Parallel()

	set := Dedupe([]Sample{
		{X: 0, Y: 0, Value: 1},
		{X: 10, Y: 5, Value: 2},
	})
	cfg := DefaultConfig()

	b := ComputeBounds(set, cfg)
	assert.InDelta(t, -2, b.XMin, 1e-12)
	assert.InDelta(t, 12, b.XMax, 1e-12)
	assert.InDelta(t, -1, b.YMin, 1e-12)
	assert.InDelta(t, 6, b.YMax, 1e-12)
}

func TestComputeBounds_ZeroRangeFloor(t *testing.T) {
	t.Parallel()

	// All samples share x; the range floor of 1 keeps the rectangle
	// non-degenerate.
	set := Dedupe([]Sample{
		{X: 3, Y: 0, Value: 1},
		{X: 3, Y: 10, Value: 2},
	})
	cfg := DefaultConfig()

	b := ComputeBounds(set, cfg)
	assert.InDelta(t, 2.8, b.XMin, 1e-12)
	assert.InDelta(t, 3.2, b.XMax, 1e-12)
	assert.Less(t, b.XMin, b.XMax)
}

func TestComputeBounds_FixedMode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.BoundsMode = BoundsFixed
	cfg.FixedBounds = Bounds{XMin: 0, XMax: 200, YMin: 0, YMax: 100}

	// Samples far outside the floor plan do not move the bounds.
	set := Dedupe([]Sample{
		{X: -500, Y: 900, Value: 1},
		{X: 700, Y: -300, Value: 2},
	})
	b := ComputeBounds(set, cfg)
	assert.Equal(t, cfg.FixedBounds, b)
}

func TestSinglePointBounds(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	b := singlePointBounds(50, 25, cfg)
	assert.Equal(t, Bounds{XMin: 45, XMax: 55, YMin: 20, YMax: 30}, b)

	cfg.BoundsMode = BoundsFixed
	assert.Equal(t, cfg.FixedBounds, singlePointBounds(50, 25, cfg))
}

func TestParseBoundsMode(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in      string
		want    BoundsMode
		wantErr bool
	}{
		{in: "data-extent", want: BoundsDataExtent},
		{in: "", want: BoundsDataExtent},
		{in: "fixed", want: BoundsFixed},
		{in: "floorplan", wantErr: true},
	} {
		got, err := ParseBoundsMode(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		assert.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
