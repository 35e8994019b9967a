package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/heatmaphero/coverage.report/internal/heatmap"
)

func TestLoadTuning(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.json")

	testJSON := `{
  "grid_resolution": 50,
  "padding": 0.1,
  "label_threshold": 5,
  "bounds_mode": "fixed",
  "fixed_bounds": {"x_min": 0, "x_max": 200, "y_min": 0, "y_max": 100}
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	tuning, err := LoadTuning(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	cfg, err := tuning.Apply(heatmap.DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to apply tuning: %v", err)
	}

	if cfg.GridResolution != 50 {
		t.Errorf("Expected GridResolution 50, got %d", cfg.GridResolution)
	}
	if cfg.Padding != 0.1 {
		t.Errorf("Expected Padding 0.1, got %g", cfg.Padding)
	}
	if cfg.LabelThreshold != 5 {
		t.Errorf("Expected LabelThreshold 5, got %d", cfg.LabelThreshold)
	}
	if cfg.BoundsMode != heatmap.BoundsFixed {
		t.Errorf("Expected fixed bounds mode, got %v", cfg.BoundsMode)
	}
	want := heatmap.Bounds{XMin: 0, XMax: 200, YMin: 0, YMax: 100}
	if cfg.FixedBounds != want {
		t.Errorf("Expected FixedBounds %+v, got %+v", want, cfg.FixedBounds)
	}

	// Fields not named in the overlay keep their defaults.
	if cfg.CubicMinSamples != 4 {
		t.Errorf("Expected default CubicMinSamples 4, got %d", cfg.CubicMinSamples)
	}
	if len(cfg.Methods) != 3 {
		t.Errorf("Expected default method chain, got %v", cfg.Methods)
	}
}

func TestLoadTuning_RejectsNonJSON(t *testing.T) {
	if _, err := LoadTuning("tuning.yaml"); err == nil {
		t.Error("Expected error for non-.json extension")
	}
}

func TestLoadTuning_MissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestApply_BadBoundsMode(t *testing.T) {
	mode := "spherical"
	tuning := &Tuning{BoundsMode: &mode}
	if _, err := tuning.Apply(heatmap.DefaultConfig()); err == nil {
		t.Error("Expected error for unknown bounds mode")
	}
}

func TestApply_InvalidResultRejected(t *testing.T) {
	zero := 0
	tuning := &Tuning{GridResolution: &zero}
	if _, err := tuning.Apply(heatmap.DefaultConfig()); err == nil {
		t.Error("Expected validation error for zero grid resolution")
	}
}

func TestApply_NilTuning(t *testing.T) {
	var tuning *Tuning
	cfg, err := tuning.Apply(heatmap.DefaultConfig())
	if err != nil {
		t.Fatalf("nil tuning must be a no-op, got error: %v", err)
	}
	if cfg.GridResolution != 100 {
		t.Errorf("Expected untouched defaults, got %+v", cfg)
	}
}
