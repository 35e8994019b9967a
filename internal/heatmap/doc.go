// Package heatmap owns the spatial interpolation core of coverage.report.
//
// Responsibilities: sample deduplication, raster bounds computation,
// scattered-data interpolation onto a dense grid via an ordered fallback
// chain, and render scene composition.
// Key types: SampleSet, Bounds, Grid, Engine, Scene.
//
// The package performs no I/O and holds no state between calls; every
// SampleSet, Bounds and Grid is built fresh per invocation and owned by
// the caller. Pixel drawing lives in internal/render, ingestion in
// internal/survey.
package heatmap
