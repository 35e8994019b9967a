package heatmap

import (
	"errors"
	"fmt"
	"log"
)

// ErrNoSamples is returned when interpolation is asked to run over an
// empty sample set. Callers are expected to route empty and single-point
// sets through Compose instead, which renders them as distinct scene
// kinds rather than errors.
var ErrNoSamples = errors.New("no samples to interpolate")

// strategy is one scattered-data interpolation method. Interpolate fills
// the grid in place; an error means the method could not handle this
// sample geometry and the chain should advance.
type strategy interface {
	Name() string
	Interpolate(set *SampleSet, g *Grid) error
}

func strategyFor(name string) (strategy, bool) {
	switch name {
	case MethodCubic:
		return cubicStrategy{}, true
	case MethodLinear:
		return linearStrategy{}, true
	case MethodNearest:
		return nearestStrategy{}, true
	case MethodIDW:
		return idwStrategy{}, true
	}
	return nil, false
}

// Attempt records one step of the fallback chain for diagnostics and
// instrumentation. Exactly one Attempt in a Result has Used set.
type Attempt struct {
	Method  string
	Skipped bool
	Used    bool
	Err     error
}

// Result is an interpolated grid plus the chain history that produced it.
type Result struct {
	Grid     *Grid
	Method   string
	Attempts []Attempt
}

// Engine runs the interpolation chain and composes render scenes. It is
// stateless apart from its immutable config and safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns an engine using it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid heatmap config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Interpolate rasterises the sample set over bounds. Methods from the
// configured chain are tried in order; a method that errors or produces
// an entirely undefined grid is logged and skipped, never surfaced. If
// every chain method fails, the IDW terminator runs, so the only error
// case is an empty set.
func (e *Engine) Interpolate(set *SampleSet, b Bounds) (*Result, error) {
	if set.Len() == 0 {
		return nil, ErrNoSamples
	}

	res := &Result{}
	for _, name := range e.cfg.Methods {
		if name == MethodCubic && set.Len() < e.cfg.CubicMinSamples {
			res.Attempts = append(res.Attempts, Attempt{Method: name, Skipped: true})
			log.Printf("[Interpolator] skipping cubic: %d samples (need %d)", set.Len(), e.cfg.CubicMinSamples)
			continue
		}
		s, ok := strategyFor(name)
		if !ok {
			// Validate rejects unknown names; keep the guard anyway.
			res.Attempts = append(res.Attempts, Attempt{Method: name, Skipped: true})
			continue
		}

		g := NewGrid(b, e.cfg.GridResolution)
		if err := s.Interpolate(set, g); err != nil {
			res.Attempts = append(res.Attempts, Attempt{Method: name, Err: err})
			log.Printf("[Interpolator] method %q failed: %v", name, err)
			continue
		}
		if g.allNaN() {
			err := fmt.Errorf("method %q produced an all-undefined grid", name)
			res.Attempts = append(res.Attempts, Attempt{Method: name, Err: err})
			log.Printf("[Interpolator] %v", err)
			continue
		}

		res.Attempts = append(res.Attempts, Attempt{Method: name, Used: true})
		res.Method = name
		res.Grid = g
		if name != MethodCubic {
			log.Printf("[Interpolator] using %s interpolation for %d samples", name, set.Len())
		}
		return res, nil
	}

	// Guaranteed terminator.
	g := NewGrid(b, e.cfg.GridResolution)
	idwStrategy{}.Interpolate(set, g)
	res.Attempts = append(res.Attempts, Attempt{Method: MethodIDW, Used: true})
	res.Method = MethodIDW
	res.Grid = g
	log.Printf("[Interpolator] all chain methods failed, using inverse-distance weighting")
	return res, nil
}
