package heatmap

import "math"

// Grid is a dense N×N raster of interpolated values over Bounds. Values
// are stored row-major: cell (col, row) lives at row*N+col. Column c maps
// to x = XMin + c/(N-1)*(XMax-XMin), and likewise for rows and y, so the
// lattice spans the bounds inclusively.
//
// Grid implements the gonum/plot plotter.GridXYZ interface so the
// renderer can hand it straight to a HeatMap plotter.
type Grid struct {
	Bounds Bounds
	N      int
	Values []float64
}

// NewGrid allocates an n×n grid over b with all cells NaN. Interpolation
// strategies fill Values; a cell left NaN is undefined.
func NewGrid(b Bounds, n int) *Grid {
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = math.NaN()
	}
	return &Grid{Bounds: b, N: n, Values: vals}
}

// Dims returns the number of columns and rows.
func (g *Grid) Dims() (c, r int) { return g.N, g.N }

// X returns the x coordinate of column c.
func (g *Grid) X(c int) float64 {
	if g.N == 1 {
		return g.Bounds.XMin
	}
	return g.Bounds.XMin + float64(c)/float64(g.N-1)*g.Bounds.Width()
}

// Y returns the y coordinate of row r.
func (g *Grid) Y(r int) float64 {
	if g.N == 1 {
		return g.Bounds.YMin
	}
	return g.Bounds.YMin + float64(r)/float64(g.N-1)*g.Bounds.Height()
}

// Z returns the value at (c, r).
func (g *Grid) Z(c, r int) float64 { return g.Values[r*g.N+c] }

func (g *Grid) set(c, r int, v float64) { g.Values[r*g.N+c] = v }

// allNaN reports whether every cell is undefined. An interpolation
// method that produces this has failed even if it did not error.
func (g *Grid) allNaN() bool {
	for _, v := range g.Values {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}

// MinMax returns the smallest and largest defined cell values. ok is
// false when the grid has no defined cells.
func (g *Grid) MinMax() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Values {
		if math.IsNaN(v) {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
		ok = true
	}
	return lo, hi, ok
}
