package heatmap

import (
	"fmt"
	"image"
)

// SceneKind distinguishes the three rendering states.
type SceneKind int

const (
	// SceneEmpty has no usable samples: bounds only, explanatory title.
	SceneEmpty SceneKind = iota
	// SceneSinglePoint marks one sample, no interpolation.
	SceneSinglePoint
	// SceneHeatmap is the full grid-plus-points composition.
	SceneHeatmap
)

// SceneMeta describes the metric being visualised. It is static
// configuration supplied by the caller (internal/survey owns the table).
type SceneMeta struct {
	// Label is the human-readable metric label, e.g. "RSSI (dBm)".
	Label string
	// Colormap is the palette identifier resolved by the renderer.
	Colormap string
	// IntegerLabels switches point labels from one decimal place to
	// whole numbers (throughput-class metrics).
	IntegerLabels bool
}

// FormatValue renders one sample value the way point labels show it.
func (m SceneMeta) FormatValue(v float64) string {
	if m.IntegerLabels {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// Scene is the single-use, read-only description handed to the drawing
// collaborator: the interpolated grid, the retained samples, their
// labels, and presentation metadata. Grid is nil unless Kind is
// SceneHeatmap; Labels is empty when the point count exceeds the
// configured threshold.
type Scene struct {
	Kind       SceneKind
	Meta       SceneMeta
	Title      string
	Bounds     Bounds
	Grid       *Grid
	Set        *SampleSet
	Labels     []string
	Method     string
	Background image.Image
}

// Compose builds the render scene for one metric. The pipeline is
// dedupe, bounds, interpolate, label; degenerate cardinalities short
// circuit before interpolation:
//
//   - no samples: an empty scene (callers treat this as a state, not an
//     error — the input may have been legitimately filtered to nothing)
//   - one sample: a marker scene with a small or fixed window, no grid
//
// Throughput-class zero filtering is the caller's job and must happen
// before Compose; by this point every sample is renderable.
func (e *Engine) Compose(samples []Sample, meta SceneMeta, background image.Image) (*Scene, error) {
	if len(samples) == 0 {
		return &Scene{
			Kind:       SceneEmpty,
			Meta:       meta,
			Title:      fmt.Sprintf("%s - No Data", meta.Label),
			Bounds:     e.emptyBounds(),
			Background: background,
		}, nil
	}

	set := Dedupe(samples)

	if set.Len() == 1 {
		return &Scene{
			Kind:       SceneSinglePoint,
			Meta:       meta,
			Title:      fmt.Sprintf("%s - Single Data Point", meta.Label),
			Bounds:     singlePointBounds(set.X[0], set.Y[0], e.cfg),
			Set:        set,
			Labels:     []string{meta.FormatValue(set.V[0])},
			Background: background,
		}, nil
	}

	bounds := ComputeBounds(set, e.cfg)
	res, err := e.Interpolate(set, bounds)
	if err != nil {
		return nil, err
	}

	var labels []string
	if set.Len() <= e.cfg.LabelThreshold {
		labels = make([]string, set.Len())
		for i, v := range set.V {
			labels[i] = meta.FormatValue(v)
		}
	}

	return &Scene{
		Kind:       SceneHeatmap,
		Meta:       meta,
		Title:      fmt.Sprintf("%s Heat Map (%d points)", baseLabel(meta.Label), set.Len()),
		Bounds:     bounds,
		Grid:       res.Grid,
		Set:        set,
		Labels:     labels,
		Method:     res.Method,
		Background: background,
	}, nil
}

// emptyBounds is the domain shown when there is nothing to draw.
func (e *Engine) emptyBounds() Bounds {
	if e.cfg.BoundsMode == BoundsFixed {
		return e.cfg.FixedBounds
	}
	w := e.cfg.SinglePointWindow
	return Bounds{XMin: -w, XMax: w, YMin: -w, YMax: w}
}

// baseLabel strips the unit suffix from a metric label, so
// "RSSI (dBm)" titles as "RSSI Heat Map (12 points)".
func baseLabel(label string) string {
	for i := 0; i < len(label); i++ {
		if label[i] == '(' {
			for i > 0 && label[i-1] == ' ' {
				i--
			}
			return label[:i]
		}
	}
	return label
}
