package heatmap

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Nearest-neighbour interpolation: every lattice cell takes the value of
// the closest sample, found through a kd-tree. No geometry requirement
// beyond a non-empty set, so in practice this method ends the chain
// before the IDW terminator is needed.

// sitePoint is a sample location carrying its value through the kd-tree.
type sitePoint struct {
	x, y, v float64
}

func (p sitePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(sitePoint)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("illegal dimension")
	}
}

func (p sitePoint) Dims() int { return 2 }

// Distance returns the squared Euclidean distance; ordering is all the
// nearest query needs.
func (p sitePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(sitePoint)
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

type sitePoints []sitePoint

func (p sitePoints) Index(i int) kdtree.Comparable { return p[i] }

func (p sitePoints) Len() int { return len(p) }

func (p sitePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

func (p sitePoints) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(sitePlane{sitePoints: p, Dim: d}, kdtree.MedianOfMedians(sitePlane{sitePoints: p, Dim: d}))
}

// sitePlane implements sort.Interface and kdtree.SortSlicer over one axis.
type sitePlane struct {
	sitePoints
	kdtree.Dim
}

func (p sitePlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.sitePoints[i].x < p.sitePoints[j].x
	case 1:
		return p.sitePoints[i].y < p.sitePoints[j].y
	default:
		panic("illegal dimension")
	}
}

func (p sitePlane) Slice(start, end int) kdtree.SortSlicer {
	return sitePlane{sitePoints: p.sitePoints[start:end], Dim: p.Dim}
}

func (p sitePlane) Swap(i, j int) {
	p.sitePoints[i], p.sitePoints[j] = p.sitePoints[j], p.sitePoints[i]
}

type nearestStrategy struct{}

func (nearestStrategy) Name() string { return MethodNearest }

func (nearestStrategy) Interpolate(set *SampleSet, g *Grid) error {
	pts := make(sitePoints, set.Len())
	for i := range pts {
		pts[i] = sitePoint{x: set.X[i], y: set.Y[i], v: set.V[i]}
	}
	tree := kdtree.New(pts, false)

	for r := 0; r < g.N; r++ {
		y := g.Y(r)
		for c := 0; c < g.N; c++ {
			got, _ := tree.Nearest(sitePoint{x: g.X(c), y: y})
			g.set(c, r, got.(sitePoint).v)
		}
	}
	return nil
}
