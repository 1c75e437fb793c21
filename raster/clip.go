package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// clippedImage wraps a draw.Image and drops writes outside a clip
// rectangle. The rasterizer and the image compositor both draw through
// it, so one clip covers every primitive kind.
type clippedImage struct {
	dst  *image.RGBA
	clip image.Rectangle
}

var _ draw.Image = (*clippedImage)(nil)

func newClippedImage(dst *image.RGBA) *clippedImage {
	return &clippedImage{dst: dst, clip: dst.Bounds()}
}

func (c *clippedImage) setClip(r image.Rectangle) {
	c.clip = r.Intersect(c.dst.Bounds())
}

func (c *clippedImage) clearClip() {
	c.clip = c.dst.Bounds()
}

func (c *clippedImage) ColorModel() color.Model {
	return c.dst.ColorModel()
}

func (c *clippedImage) Bounds() image.Rectangle {
	return c.dst.Bounds()
}

func (c *clippedImage) At(x, y int) color.Color {
	return c.dst.At(x, y)
}

func (c *clippedImage) Set(x, y int, col color.Color) {
	if !(image.Point{X: x, Y: y}).In(c.clip) {
		return
	}
	c.dst.Set(x, y, col)
}
