// Package config loads engine tuning overrides from JSON files.
//
// Fields are pointers so a partial file only overrides what it names;
// everything else keeps the engine defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/heatmaphero/coverage.report/internal/heatmap"
)

// Tuning mirrors the heatmap engine tunables as an overlay.
type Tuning struct {
	GridResolution    *int     `json:"grid_resolution,omitempty"`
	Padding           *float64 `json:"padding,omitempty"`
	LabelThreshold    *int     `json:"label_threshold,omitempty"`
	CubicMinSamples   *int     `json:"cubic_min_samples,omitempty"`
	Methods           []string `json:"methods,omitempty"`
	BoundsMode        *string  `json:"bounds_mode,omitempty"` // "data-extent" or "fixed"
	FixedBounds       *Rect    `json:"fixed_bounds,omitempty"`
	SinglePointWindow *float64 `json:"single_point_window,omitempty"`
}

// Rect is the JSON shape of a fixed bounds rectangle.
type Rect struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// LoadTuning reads a tuning overlay from a JSON file. The file must have
// a .json extension and stay under 1MB; both checks exist because the
// path typically comes straight from a flag.
func LoadTuning(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var t Tuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &t, nil
}

// Apply overlays the tuning onto cfg and returns the result, validated.
func (t *Tuning) Apply(cfg heatmap.Config) (heatmap.Config, error) {
	if t == nil {
		return cfg, nil
	}
	if t.GridResolution != nil {
		cfg.GridResolution = *t.GridResolution
	}
	if t.Padding != nil {
		cfg.Padding = *t.Padding
	}
	if t.LabelThreshold != nil {
		cfg.LabelThreshold = *t.LabelThreshold
	}
	if t.CubicMinSamples != nil {
		cfg.CubicMinSamples = *t.CubicMinSamples
	}
	if t.Methods != nil {
		cfg.Methods = t.Methods
	}
	if t.BoundsMode != nil {
		mode, err := heatmap.ParseBoundsMode(*t.BoundsMode)
		if err != nil {
			return cfg, err
		}
		cfg.BoundsMode = mode
	}
	if t.FixedBounds != nil {
		cfg.FixedBounds = heatmap.Bounds{
			XMin: t.FixedBounds.XMin,
			XMax: t.FixedBounds.XMax,
			YMin: t.FixedBounds.YMin,
			YMax: t.FixedBounds.YMax,
		}
	}
	if t.SinglePointWindow != nil {
		cfg.SinglePointWindow = *t.SinglePointWindow
	}
	return cfg, cfg.Validate()
}
