package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// LoadBackground reads a floor-plan image (PNG or JPEG) for use as a
// scene underlay.
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open background: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode background %s: %w", path, err)
	}
	return img, nil
}

// fadeImage returns a copy of img with its alpha scaled, so the floor
// plan shows through the heat raster instead of competing with it.
func fadeImage(img image.Image, alpha float64) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := out.NRGBAAt(x, y)
			c.A = uint8(float64(c.A) * alpha)
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
