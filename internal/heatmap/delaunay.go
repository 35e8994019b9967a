package heatmap

import (
	"errors"
	"math"
)

// Linear scattered-data interpolation: Bowyer-Watson Delaunay
// triangulation with barycentric interpolation inside each triangle.
// Collinear input produces no real triangles, which is the degenerate
// geometry this method fails on; the chain then advances to nearest.

var errDegenerateTriangulation = errors.New("degenerate triangulation: no non-collinear triangles")

type triangle struct {
	a, b, c int
}

// inCircumcircle reports whether point i lies strictly inside the
// circumcircle of t. Points are supplied as parallel coordinate slices.
// t must be counter-clockwise.
func inCircumcircle(px, py []float64, t triangle, i int) bool {
	ax, ay := px[t.a]-px[i], py[t.a]-py[i]
	bx, by := px[t.b]-px[i], py[t.b]-py[i]
	cx, cy := px[t.c]-px[i], py[t.c]-py[i]

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > 0
}

func ccw(px, py []float64, t triangle) triangle {
	area := (px[t.b]-px[t.a])*(py[t.c]-py[t.a]) - (py[t.b]-py[t.a])*(px[t.c]-px[t.a])
	if area < 0 {
		t.b, t.c = t.c, t.b
	}
	return t
}

type edge struct {
	u, v int
}

func normEdge(u, v int) edge {
	if u > v {
		u, v = v, u
	}
	return edge{u: u, v: v}
}

// triangulate runs Bowyer-Watson over the sample locations. The returned
// triangles index into xs/ys. An input whose points are all collinear
// (or that has fewer than 3 points) yields errDegenerateTriangulation.
func triangulate(xs, ys []float64) ([]triangle, error) {
	n := len(xs)
	if n < 3 {
		return nil, errDegenerateTriangulation
	}

	// Copy coordinates and append a super-triangle that encloses the
	// whole data extent with generous margin.
	px := make([]float64, n, n+3)
	py := make([]float64, n, n+3)
	copy(px, xs)
	copy(py, ys)

	xMin, xMax := px[0], px[0]
	yMin, yMax := py[0], py[0]
	for i := 1; i < n; i++ {
		xMin, xMax = min(xMin, px[i]), max(xMax, px[i])
		yMin, yMax = min(yMin, py[i]), max(yMax, py[i])
	}
	span := max(xMax-xMin, yMax-yMin)
	if span == 0 {
		span = 1
	}
	midX, midY := (xMin+xMax)/2, (yMin+yMax)/2
	px = append(px, midX-20*span, midX, midX+20*span)
	py = append(py, midY-span, midY+20*span, midY-span)

	tris := []triangle{ccw(px, py, triangle{a: n, b: n + 1, c: n + 2})}

	for i := 0; i < n; i++ {
		// Collect triangles whose circumcircle contains the point and
		// the boundary of the cavity they leave behind.
		edgeCount := make(map[edge]int)
		keep := tris[:0:0]
		for _, t := range tris {
			if inCircumcircle(px, py, t, i) {
				edgeCount[normEdge(t.a, t.b)]++
				edgeCount[normEdge(t.b, t.c)]++
				edgeCount[normEdge(t.c, t.a)]++
			} else {
				keep = append(keep, t)
			}
		}
		tris = keep
		for e, count := range edgeCount {
			if count != 1 {
				continue
			}
			tris = append(tris, ccw(px, py, triangle{a: e.u, b: e.v, c: i}))
		}
	}

	// Drop triangles that touch the super-triangle vertices.
	kept := tris[:0]
	for _, t := range tris {
		if t.a < n && t.b < n && t.c < n {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil, errDegenerateTriangulation
	}
	return kept, nil
}

// barycentric returns the barycentric coordinates of (x, y) in t, and
// whether the triangle is non-degenerate.
func barycentric(px, py []float64, t triangle, x, y float64) (l1, l2, l3 float64, ok bool) {
	d := (py[t.b]-py[t.c])*(px[t.a]-px[t.c]) + (px[t.c]-px[t.b])*(py[t.a]-py[t.c])
	if math.Abs(d) < 1e-300 {
		return 0, 0, 0, false
	}
	l1 = ((py[t.b]-py[t.c])*(x-px[t.c]) + (px[t.c]-px[t.b])*(y-py[t.c])) / d
	l2 = ((py[t.c]-py[t.a])*(x-px[t.c]) + (px[t.a]-px[t.c])*(y-py[t.c])) / d
	l3 = 1 - l1 - l2
	return l1, l2, l3, true
}

type linearStrategy struct{}

func (linearStrategy) Name() string { return MethodLinear }

func (linearStrategy) Interpolate(set *SampleSet, g *Grid) error {
	tris, err := triangulate(set.X, set.Y)
	if err != nil {
		return err
	}
	fill := set.mean()

	const slack = 1e-9
	for r := 0; r < g.N; r++ {
		y := g.Y(r)
		for c := 0; c < g.N; c++ {
			x := g.X(c)
			v := fill
			for _, t := range tris {
				l1, l2, l3, ok := barycentric(set.X, set.Y, t, x, y)
				if !ok || l1 < -slack || l2 < -slack || l3 < -slack {
					continue
				}
				v = l1*set.V[t.a] + l2*set.V[t.b] + l3*set.V[t.c]
				break
			}
			g.set(c, r, v)
		}
	}
	return nil
}
