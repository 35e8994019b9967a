package heatmap

import "math"

// distanceFloor guards the inverse-distance weights when a lattice point
// coincides with a sample.
const distanceFloor = 1e-10

// idwStrategy is the guaranteed chain terminator: inverse-distance
// weighting with weight 1/d². It is O(cells × samples) and visually
// blobbier than the hull-bound methods, which is why it runs last, but
// it cannot fail and never leaves a cell undefined for a non-empty set.
type idwStrategy struct{}

func (idwStrategy) Name() string { return MethodIDW }

func (idwStrategy) Interpolate(set *SampleSet, g *Grid) error {
	for r := 0; r < g.N; r++ {
		y := g.Y(r)
		for c := 0; c < g.N; c++ {
			x := g.X(c)
			var weightSum, valueSum float64
			for i := 0; i < set.Len(); i++ {
				dx := x - set.X[i]
				dy := y - set.Y[i]
				d := max(math.Sqrt(dx*dx+dy*dy), distanceFloor)
				w := 1 / (d * d)
				weightSum += w
				valueSum += w * set.V[i]
			}
			g.set(c, r, valueSum/weightSum)
		}
	}
	return nil
}
