// Package render draws heatmap scenes with gonum/plot. It is the pixel
// side of the pipeline: the engine composes a Scene, this package turns
// it into a plot.Plot, a PNG stream, or a file on disk.
package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/heatmaphero/coverage.report/internal/heatmap"
)

const (
	paletteColors   = 256
	rasterAlpha     = 0.7
	backgroundAlpha = 0.3

	markerRadius       = vg.Length(5)
	singleMarkerRadius = vg.Length(8)
)

// Renderer draws scenes. Zero-value-usable via New(nil).
type Renderer struct {
	style StylePolicy
}

// New returns a renderer using the given style policy, or NopStyle when
// style is nil.
func New(style StylePolicy) *Renderer {
	if style == nil {
		style = NopStyle{}
	}
	return &Renderer{style: style}
}

// Plot builds the gonum plot for a scene. The axis ranges are pinned to
// the scene bounds so fixed-extent scenes stay registered with their
// floor plan.
func (r *Renderer) Plot(scene *heatmap.Scene) (*plot.Plot, error) {
	p := plot.New()
	r.style.Apply(p)

	p.Title.Text = scene.Title
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"
	p.X.Min, p.X.Max = scene.Bounds.XMin, scene.Bounds.XMax
	p.Y.Min, p.Y.Max = scene.Bounds.YMin, scene.Bounds.YMax

	if scene.Background != nil {
		img := plotter.NewImage(fadeImage(scene.Background, backgroundAlpha),
			scene.Bounds.XMin, scene.Bounds.YMin, scene.Bounds.XMax, scene.Bounds.YMax)
		p.Add(img)
	}

	switch scene.Kind {
	case heatmap.SceneEmpty:
		// Bounds, title and optional floor plan only.
	case heatmap.SceneSinglePoint:
		if err := r.addMarkers(p, scene, singleMarkerRadius); err != nil {
			return nil, err
		}
	case heatmap.SceneHeatmap:
		if err := r.addRaster(p, scene); err != nil {
			return nil, err
		}
		if err := r.addMarkers(p, scene, markerRadius); err != nil {
			return nil, err
		}
	}

	if err := r.addLabels(p, scene); err != nil {
		return nil, err
	}
	return p, nil
}

// WritePNG renders the scene as a PNG of the given size.
func (r *Renderer) WritePNG(w io.Writer, scene *heatmap.Scene, width, height vg.Length) error {
	p, err := r.Plot(scene)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG renders the scene to a PNG file.
func (r *Renderer) SavePNG(path string, scene *heatmap.Scene, width, height vg.Length) error {
	p, err := r.Plot(scene)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) addRaster(p *plot.Plot, scene *heatmap.Scene) error {
	pal, err := Palette(scene.Meta.Colormap, paletteColors)
	if err != nil {
		return err
	}
	hm := plotter.NewHeatMap(scene.Grid, withAlpha(pal, rasterAlpha))
	p.Add(hm)
	return nil
}

func (r *Renderer) addMarkers(p *plot.Plot, scene *heatmap.Scene, radius vg.Length) error {
	set := scene.Set
	if set == nil || set.Len() == 0 {
		return nil
	}
	pal, err := Palette(scene.Meta.Colormap, paletteColors)
	if err != nil {
		return err
	}

	lo, hi := set.V[0], set.V[0]
	for _, v := range set.V[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	pts := make(plotter.XYs, set.Len())
	for i := range pts {
		pts[i] = plotter.XY{X: set.X[i], Y: set.Y[i]}
	}

	fill, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	fill.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  colorFor(pal, set.V[i], lo, hi),
			Radius: radius,
			Shape:  draw.CircleGlyph{},
		}
	}

	ring, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	ring.GlyphStyle = draw.GlyphStyle{
		Color:  r.style.PointBorder(),
		Radius: radius,
		Shape:  draw.RingGlyph{},
	}

	p.Add(fill, ring)
	return nil
}

func (r *Renderer) addLabels(p *plot.Plot, scene *heatmap.Scene) error {
	if len(scene.Labels) == 0 || scene.Set == nil {
		return nil
	}
	// Nudge labels off the markers by a fraction of the domain.
	dx := scene.Bounds.Width() * 0.01
	dy := scene.Bounds.Height() * 0.01

	xy := make(plotter.XYs, len(scene.Labels))
	for i := range xy {
		xy[i] = plotter.XY{X: scene.Set.X[i] + dx, Y: scene.Set.Y[i] + dy}
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xy, Labels: scene.Labels})
	if err != nil {
		return fmt.Errorf("point labels: %w", err)
	}
	p.Add(labels)
	return nil
}
