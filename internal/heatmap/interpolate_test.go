package heatmap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

func attemptsByMethod(res *Result) map[string]Attempt {
	out := make(map[string]Attempt, len(res.Attempts))
	for _, a := range res.Attempts {
		out[a.Method] = a
	}
	return out
}

func assertNoNaN(t *testing.T, g *Grid) {
	t.Helper()
	for i, v := range g.Values {
		if math.IsNaN(v) {
			t.Fatalf("cell %d is NaN", i)
		}
	}
}

func TestInterpolate_EmptySet(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, DefaultConfig())
	_, err := e.Interpolate(&SampleSet{}, Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1})
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestInterpolate_CubicGating(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.GridResolution = 20
	e := mustEngine(t, cfg)

	// Three well-spread samples: below the cubic minimum.
	set := Dedupe([]Sample{
		{X: 0, Y: 0, Value: -40},
		{X: 10, Y: 0, Value: -60},
		{X: 5, Y: 8, Value: -50},
	})
	res, err := e.Interpolate(set, ComputeBounds(set, cfg))
	require.NoError(t, err)

	a := attemptsByMethod(res)
	require.Contains(t, a, MethodCubic)
	assert.True(t, a[MethodCubic].Skipped, "cubic must be skipped below the sample gate")
	assert.NoError(t, a[MethodCubic].Err)
	assert.NotEqual(t, MethodCubic, res.Method)
	assertNoNaN(t, res.Grid)
}

func TestInterpolate_CubicUsedWhenWellPosed(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.GridResolution = 20
	e := mustEngine(t, cfg)

	set := Dedupe([]Sample{
		{X: 0, Y: 0, Value: -40},
		{X: 10, Y: 0, Value: -55},
		{X: 0, Y: 10, Value: -60},
		{X: 10, Y: 10, Value: -70},
		{X: 5, Y: 5, Value: -50},
	})
	res, err := e.Interpolate(set, ComputeBounds(set, cfg))
	require.NoError(t, err)

	assert.Equal(t, MethodCubic, res.Method)
	assertNoNaN(t, res.Grid)

	lo, hi, ok := res.Grid.MinMax()
	require.True(t, ok)
	assert.Less(t, lo, hi)
}

func TestInterpolate_CollinearRecovery(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.GridResolution = 25
	cfg.CubicMinSamples = 3 // force the cubic attempt to exercise its failure path
	e := mustEngine(t, cfg)

	set := Dedupe([]Sample{
		{X: 0, Y: 0, Value: 1},
		{X: 1, Y: 1, Value: 2},
		{X: 2, Y: 2, Value: 3},
	})
	res, err := e.Interpolate(set, ComputeBounds(set, cfg))
	require.NoError(t, err, "collinear samples must not surface an error")

	a := attemptsByMethod(res)
	require.Contains(t, a, MethodCubic)
	require.Contains(t, a, MethodLinear)
	assert.Error(t, a[MethodCubic].Err, "cubic cannot handle collinear geometry")
	assert.Error(t, a[MethodLinear].Err, "linear cannot triangulate collinear geometry")

	// Nearest (or IDW) terminates the chain with a fully defined grid.
	assert.Contains(t, []string{MethodNearest, MethodIDW}, res.Method)
	assertNoNaN(t, res.Grid)
}

func TestInterpolate_DuplicateFreeTwoPoints(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.GridResolution = 10
	e := mustEngine(t, cfg)

	set := Dedupe([]Sample{
		{X: 0, Y: 0, Value: 5},
		{X: 4, Y: 4, Value: 9},
	})
	res, err := e.Interpolate(set, ComputeBounds(set, cfg))
	require.NoError(t, err)
	assertNoNaN(t, res.Grid)
	for _, v := range res.Grid.Values {
		if v != 5 && v != 9 {
			t.Fatalf("nearest-neighbour grid contains value %v not in the sample set", v)
		}
	}
}

func TestIDW_Totality(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 7, 40} {
		for _, res := range []int{1, 2, 5, 33} {
			set := &SampleSet{}
			for i := 0; i < n; i++ {
				set.X = append(set.X, rng.Float64()*100)
				set.Y = append(set.Y, rng.Float64()*50)
				set.V = append(set.V, rng.NormFloat64()*30)
			}
			g := NewGrid(Bounds{XMin: 0, XMax: 100, YMin: 0, YMax: 50}, res)
			require.NoError(t, idwStrategy{}.Interpolate(set, g))
			assertNoNaN(t, g)
		}
	}
}

func TestIDW_CoincidentLatticePoint(t *testing.T) {
	t.Parallel()

	// A sample sitting exactly on a lattice point must not divide by
	// zero, and dominates the cell's weighted average.
	set := &SampleSet{X: []float64{0, 10}, Y: []float64{0, 10}, V: []float64{-30, -90}}
	g := NewGrid(Bounds{XMin: 0, XMax: 10, YMin: 0, YMax: 10}, 11)
	require.NoError(t, idwStrategy{}.Interpolate(set, g))

	assert.InDelta(t, -30, g.Z(0, 0), 1e-6)
	assert.InDelta(t, -90, g.Z(10, 10), 1e-6)
}

func TestIDW_ConstantField(t *testing.T) {
	t.Parallel()

	set := &SampleSet{X: []float64{1, 2, 3}, Y: []float64{1, 3, 2}, V: []float64{42, 42, 42}}
	g := NewGrid(Bounds{XMin: 0, XMax: 4, YMin: 0, YMax: 4}, 9)
	require.NoError(t, idwStrategy{}.Interpolate(set, g))
	for _, v := range g.Values {
		assert.InDelta(t, 42, v, 1e-9)
	}
}

func TestInterpolate_AllZeroValues(t *testing.T) {
	t.Parallel()

	// An all-zero metric still interpolates to a defined (all zero)
	// grid; filtering zero-means-missing metrics is the caller's job.
	cfg := DefaultConfig()
	cfg.GridResolution = 8
	e := mustEngine(t, cfg)

	set := Dedupe([]Sample{
		{X: 0, Y: 0, Value: 0},
		{X: 5, Y: 0, Value: 0},
		{X: 0, Y: 5, Value: 0},
		{X: 5, Y: 5, Value: 0},
	})
	res, err := e.Interpolate(set, ComputeBounds(set, cfg))
	require.NoError(t, err)
	assertNoNaN(t, res.Grid)
	lo, hi, ok := res.Grid.MinMax()
	require.True(t, ok)
	assert.InDelta(t, 0, lo, 1e-9)
	assert.InDelta(t, 0, hi, 1e-9)
}

func TestNewEngine_RejectsBadConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.GridResolution = 0
	_, err := NewEngine(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Methods = []string{"kriging"}
	_, err = NewEngine(cfg)
	assert.Error(t, err)
}
