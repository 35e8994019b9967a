package heatmap

import "fmt"

// Method names accepted in Config.Methods, in default chain order.
const (
	MethodCubic   = "cubic"
	MethodLinear  = "linear"
	MethodNearest = "nearest"
	MethodIDW     = "idw"
)

// Config holds the engine tunables. Construct with DefaultConfig and
// override fields, or load overrides from JSON via internal/config.
// A Config is treated as immutable once handed to NewEngine.
type Config struct {
	// GridResolution is the lattice edge length; the raster is
	// GridResolution×GridResolution cells.
	GridResolution int

	// Padding is the fraction of the data range added on each side of
	// the extent in data-extent bounds mode.
	Padding float64

	// LabelThreshold is the largest sample count for which per-point
	// value labels are emitted.
	LabelThreshold int

	// CubicMinSamples gates the cubic method: below this count it is
	// skipped outright rather than attempted.
	CubicMinSamples int

	// Methods is the fallback chain order. IDW always runs last as the
	// guaranteed terminator and does not need to be listed.
	Methods []string

	// BoundsMode selects data-extent or fixed bounds; FixedBounds is
	// the rectangle used in fixed mode.
	BoundsMode  BoundsMode
	FixedBounds Bounds

	// SinglePointWindow is the half-width of the domain rendered around
	// a lone sample in data-extent mode.
	SinglePointWindow float64
}

// DefaultConfig returns the shipped engine tunables.
func DefaultConfig() Config {
	return Config{
		GridResolution:    100,
		Padding:           0.2,
		LabelThreshold:    10,
		CubicMinSamples:   4,
		Methods:           []string{MethodCubic, MethodLinear, MethodNearest},
		BoundsMode:        BoundsDataExtent,
		FixedBounds:       Bounds{XMin: 0, XMax: 200, YMin: 0, YMax: 100},
		SinglePointWindow: 5,
	}
}

// Validate rejects configs the engine cannot run with.
func (c Config) Validate() error {
	if c.GridResolution < 1 {
		return fmt.Errorf("grid resolution must be >= 1, got %d", c.GridResolution)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must be >= 0, got %g", c.Padding)
	}
	if c.BoundsMode == BoundsFixed {
		if c.FixedBounds.XMin >= c.FixedBounds.XMax || c.FixedBounds.YMin >= c.FixedBounds.YMax {
			return fmt.Errorf("fixed bounds %+v are not a valid rectangle", c.FixedBounds)
		}
	}
	for _, m := range c.Methods {
		switch m {
		case MethodCubic, MethodLinear, MethodNearest, MethodIDW:
		default:
			return fmt.Errorf("unknown interpolation method %q", m)
		}
	}
	return nil
}
