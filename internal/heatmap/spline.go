package heatmap

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cubic scattered-data interpolation as a thin-plate spline: radial
// kernel r²·log r plus an affine trend, fitted by solving the dense
// (n+3)×(n+3) system with an LU factorisation. Collinear samples make
// the affine block rank deficient, so the solve reports a singular
// matrix and the chain advances. Smooth inside the convex hull; cells
// outside the hull take the sample mean, like the other hull-bound
// method.

var errDegenerateGeometry = errors.New("degenerate geometry")

func tpsKernel(r2 float64) float64 {
	if r2 <= 0 {
		return 0
	}
	return 0.5 * r2 * math.Log(r2) // r²·log r, with log r = log(r²)/2
}

type cubicStrategy struct{}

func (cubicStrategy) Name() string { return MethodCubic }

func (cubicStrategy) Interpolate(set *SampleSet, g *Grid) error {
	n := set.Len()
	hull := convexHull(set.X, set.Y)
	if len(hull) < 3 {
		return fmt.Errorf("%w: convex hull has %d vertices", errDegenerateGeometry, len(hull))
	}

	// System layout: [K P; Pᵀ 0] [w; a] = [v; 0] with P rows (1, x, y).
	m := n + 3
	a := mat.NewDense(m, m, nil)
	b := mat.NewVecDense(m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := set.X[i] - set.X[j]
			dy := set.Y[i] - set.Y[j]
			a.Set(i, j, tpsKernel(dx*dx+dy*dy))
		}
		a.Set(i, n, 1)
		a.Set(i, n+1, set.X[i])
		a.Set(i, n+2, set.Y[i])
		a.Set(n, i, 1)
		a.Set(n+1, i, set.X[i])
		a.Set(n+2, i, set.Y[i])
		b.SetVec(i, set.V[i])
	}

	var lu mat.LU
	lu.Factorize(a)
	coef := mat.NewVecDense(m, nil)
	if err := lu.SolveVecTo(coef, false, b); err != nil {
		return fmt.Errorf("thin-plate spline solve: %w", err)
	}

	fill := set.mean()
	for r := 0; r < g.N; r++ {
		y := g.Y(r)
		for c := 0; c < g.N; c++ {
			x := g.X(c)
			if !inHull(hull, x, y) {
				g.set(c, r, fill)
				continue
			}
			v := coef.AtVec(n) + coef.AtVec(n+1)*x + coef.AtVec(n+2)*y
			for i := 0; i < n; i++ {
				dx := x - set.X[i]
				dy := y - set.Y[i]
				v += coef.AtVec(i) * tpsKernel(dx*dx+dy*dy)
			}
			g.set(c, r, v)
		}
	}
	return nil
}
