package heatmap

import "sort"

// Convex hull support for the triangulation-backed methods. The cubic and
// linear strategies are only defined inside the hull of the sample set;
// cells outside it are filled with the sample mean, matching the fill
// behaviour of scattered-data interpolators.

type hullPoint struct {
	x, y float64
}

// cross returns the z component of (b-a)×(c-a). Positive means the turn
// a→b→c is counter-clockwise.
func cross(a, b, c hullPoint) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

// convexHull computes the hull of the points with Andrew's monotone
// chain, returned in counter-clockwise order. Fewer than 3 points, or a
// fully collinear set, yield a hull with fewer than 3 vertices, which
// callers must treat as degenerate geometry.
func convexHull(xs, ys []float64) []hullPoint {
	pts := make([]hullPoint, len(xs))
	for i := range xs {
		pts[i] = hullPoint{x: xs[i], y: ys[i]}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].x != pts[j].x {
			return pts[i].x < pts[j].x
		}
		return pts[i].y < pts[j].y
	})

	if len(pts) < 3 {
		return pts
	}

	var lower, upper []hullPoint
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain's last point is the other chain's first.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// inHull reports whether (x, y) lies inside or on the counter-clockwise
// hull polygon.
func inHull(hull []hullPoint, x, y float64) bool {
	if len(hull) < 3 {
		return false
	}
	p := hullPoint{x: x, y: y}
	for i := range hull {
		j := (i + 1) % len(hull)
		if cross(hull[i], hull[j], p) < 0 {
			return false
		}
	}
	return true
}
