package render

import (
	"image/color"

	"gonum.org/v1/plot"
)

// StylePolicy is the optional theming hook. The renderer works without
// one (NopStyle); a policy can restyle the plot chrome and the marker
// outline without the renderer testing for its presence.
type StylePolicy interface {
	// Apply restyles a freshly created plot before any data is added.
	Apply(p *plot.Plot)
	// PointBorder is the outline colour for sample markers.
	PointBorder() color.Color
}

// NopStyle is the default policy: stock gonum/plot chrome, black marker
// outlines.
type NopStyle struct{}

func (NopStyle) Apply(*plot.Plot) {}

func (NopStyle) PointBorder() color.Color { return color.Black }

// DarkStyle matches the collector UI's dark theme.
type DarkStyle struct{}

var (
	darkBg = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	darkFg = color.RGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff}
)

func (DarkStyle) Apply(p *plot.Plot) {
	p.BackgroundColor = darkBg
	p.Title.TextStyle.Color = darkFg
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.LineStyle.Color = darkFg
		axis.Label.TextStyle.Color = darkFg
		axis.Tick.LineStyle.Color = darkFg
		axis.Tick.Label.Color = darkFg
	}
}

func (DarkStyle) PointBorder() color.Color { return color.White }
