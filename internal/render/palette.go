package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Colormap identifiers follow the collector's config table (matplotlib
// names); each maps onto the closest gonum palette.

func colorMap(name string) (palette.ColorMap, error) {
	switch name {
	case "viridis":
		return moreland.Kindlmann(), nil
	case "plasma":
		return moreland.ExtendedKindlmann(), nil
	case "YlOrRd", "Reds":
		return moreland.ExtendedBlackBody(), nil
	case "RdYlBu_r":
		return moreland.SmoothBlueRed(), nil
	}
	return nil, fmt.Errorf("unknown colormap %q", name)
}

// Palette resolves a colormap identifier to an n-colour palette.
func Palette(name string, colors int) (palette.Palette, error) {
	switch name {
	case "RdYlGn":
		// Hue ramp red (low) to green (high); RSSI reads red = weak.
		return palette.Rainbow(colors, palette.Red, palette.Green, 1, 1, 1), nil
	}
	cm, err := colorMap(name)
	if err != nil {
		return nil, err
	}
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(colors), nil
}

// withAlpha returns a copy of the palette with every colour's alpha
// scaled, so the heat raster can sit translucently over the floor plan.
func withAlpha(p palette.Palette, alpha float64) palette.Palette {
	src := p.Colors()
	out := make([]color.Color, len(src))
	for i, c := range src {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		n.A = uint8(float64(n.A) * alpha)
		out[i] = n
	}
	return staticPalette(out)
}

type staticPalette []color.Color

func (p staticPalette) Colors() []color.Color { return p }

// colorFor picks the palette colour for a value normalised into
// [lo, hi], used to tint sample markers the same way as the raster.
func colorFor(p palette.Palette, v, lo, hi float64) color.Color {
	colors := p.Colors()
	if len(colors) == 0 {
		return color.Black
	}
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	i := int(t * float64(len(colors)-1))
	i = max(0, min(i, len(colors)-1))
	return colors[i]
}
