package heatmap

import "fmt"

// BoundsMode selects how the raster domain is derived.
type BoundsMode int

const (
	// BoundsDataExtent derives bounds from the sample extent plus a
	// padding fraction.
	BoundsDataExtent BoundsMode = iota
	// BoundsFixed pins bounds to a configured world rectangle (a floor
	// plan extent), independent of where the samples fall.
	BoundsFixed
)

func (m BoundsMode) String() string {
	switch m {
	case BoundsDataExtent:
		return "data-extent"
	case BoundsFixed:
		return "fixed"
	}
	return fmt.Sprintf("BoundsMode(%d)", int(m))
}

// ParseBoundsMode maps a config string to a BoundsMode.
func ParseBoundsMode(s string) (BoundsMode, error) {
	switch s {
	case "data-extent", "":
		return BoundsDataExtent, nil
	case "fixed":
		return BoundsFixed, nil
	}
	return 0, fmt.Errorf("unknown bounds mode %q", s)
}

// Bounds is the rectangular raster domain. XMin < XMax and YMin < YMax
// always hold for bounds produced by ComputeBounds.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax - XMin.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Contains reports whether (x, y) lies inside the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// ComputeBounds returns the raster domain for a sample set. In data-extent
// mode the extent is padded by cfg.Padding on each side, with the range
// floored at 1 so that samples sharing a coordinate still produce a
// non-degenerate rectangle. In fixed mode cfg.FixedBounds is returned
// untouched.
//
// The set must have at least one sample; single-sample scenes are routed
// through singlePointBounds by the scene composer instead.
func ComputeBounds(set *SampleSet, cfg Config) Bounds {
	if cfg.BoundsMode == BoundsFixed {
		return cfg.FixedBounds
	}

	xMin, xMax := set.X[0], set.X[0]
	yMin, yMax := set.Y[0], set.Y[0]
	for i := 1; i < set.Len(); i++ {
		xMin = min(xMin, set.X[i])
		xMax = max(xMax, set.X[i])
		yMin = min(yMin, set.Y[i])
		yMax = max(yMax, set.Y[i])
	}

	xRange := max(xMax-xMin, 1)
	yRange := max(yMax-yMin, 1)

	return Bounds{
		XMin: xMin - xRange*cfg.Padding,
		XMax: xMax + xRange*cfg.Padding,
		YMin: yMin - yRange*cfg.Padding,
		YMax: yMax + yRange*cfg.Padding,
	}
}

// singlePointBounds returns the domain for a one-sample scene: the fixed
// rectangle in fixed mode, otherwise a small window centred on the point.
func singlePointBounds(x, y float64, cfg Config) Bounds {
	if cfg.BoundsMode == BoundsFixed {
		return cfg.FixedBounds
	}
	w := cfg.SinglePointWindow
	return Bounds{XMin: x - w, XMax: x + w, YMin: y - w, YMax: y + w}
}
