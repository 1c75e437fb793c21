package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/collage"
)

// loadImageFile is the default asset loader. imaging.Open decodes PNG,
// JPEG, GIF, TIFF and BMP and normalizes orientation.
func loadImageFile(path string) (image.Image, error) {
	return imaging.Open(path)
}

// loadImage resolves an asset path through the cache. A failed load is
// cached as a miss so the error is only reported once per frame.
func (b *Backend) loadImage(path string) image.Image {
	if img, ok := b.cache[path]; ok {
		return img
	}
	img, err := b.loader(path)
	if err != nil {
		b.fail(fmt.Errorf("raster: loading image %q: %w", path, err))
		b.cache[path] = nil
		return nil
	}
	b.cache[path] = img
	return img
}

// aff3 converts a collage matrix to the affine form x/image/draw expects.
func aff3(m collage.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.X, m.C, m.D, m.Y}
}

// blit draws the source rectangle sr of src so that its top-left corner
// lands on the local point (x, y) under the current transform, optionally
// rescaled to dw by dh device-independent units.
func (b *Backend) blit(src image.Image, sr image.Rectangle, x, y float64, dw, dh int, alpha float64, interp xdraw.Transformer) {
	if sr.Empty() {
		return
	}
	if alpha < 1 {
		src = fadeImage(src, alpha)
	}
	m := b.transform.Multiply(collage.Translation(x, y))
	if dw != sr.Dx() || dh != sr.Dy() {
		m = m.Multiply(collage.ScaleX(float64(dw) / float64(sr.Dx()))).
			Multiply(collage.ScaleY(float64(dh) / float64(sr.Dy())))
	}
	m = m.Multiply(collage.Translation(-float64(sr.Min.X), -float64(sr.Min.Y)))
	interp.Transform(b.dst, aff3(m), src, sr, xdraw.Over, nil)
}

// DrawImage implements collage.Backend. The w by h box is centered on the
// local origin; the renderer encodes any element-level stretch in the
// current transform.
func (b *Backend) DrawImage(style collage.ImageStyle, cropX, cropY, w, h int, path string, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	src := b.loadImage(path)
	if src == nil {
		return
	}

	x, y := -float64(w)/2, -float64(h)/2
	switch style {
	case collage.ImagePlain:
		b.blit(src, src.Bounds(), x, y, w, h, alpha, xdraw.ApproxBiLinear)
	case collage.ImageFitted:
		// Scale to cover the box preserving aspect, then center-crop.
		fitted := imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
		b.blit(fitted, fitted.Bounds(), x, y, w, h, alpha, xdraw.ApproxBiLinear)
	case collage.ImageCropped:
		sr := image.Rect(cropX, cropY, cropX+w, cropY+h).
			Add(src.Bounds().Min).
			Intersect(src.Bounds())
		b.blit(src, sr, x, y, sr.Dx(), sr.Dy(), alpha, xdraw.ApproxBiLinear)
	case collage.ImageTiled:
		b.blit(tile(src, w, h), image.Rect(0, 0, w, h), x, y, w, h, alpha, xdraw.NearestNeighbor)
	}
}

// DrawSprite implements collage.Backend. Sprites keep hard pixel edges,
// so they are sampled with nearest neighbor.
func (b *Backend) DrawSprite(srcX, srcY, w, h int, path string, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	src := b.loadImage(path)
	if src == nil {
		return
	}
	sr := image.Rect(srcX, srcY, srcX+w, srcY+h).
		Add(src.Bounds().Min).
		Intersect(src.Bounds())
	b.blit(src, sr, -float64(w)/2, -float64(h)/2, sr.Dx(), sr.Dy(), alpha, xdraw.NearestNeighbor)
}

// tile repeats src until it covers a w by h canvas.
func tile(src image.Image, w, h int) image.Image {
	bounds := src.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()
	if sw == 0 || sh == 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	canvas := imaging.New(w, h, color.NRGBA{})
	for y := 0; y < h; y += sh {
		for x := 0; x < w; x += sw {
			canvas = imaging.Paste(canvas, src, image.Pt(x, y))
		}
	}
	return canvas
}

// fadeImage returns a copy of src with every pixel's alpha scaled.
func fadeImage(src image.Image, alpha float64) image.Image {
	out := imaging.Clone(src)
	a := collage.Clamp(alpha)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = uint8(math.Round(float64(out.Pix[i]) * a))
	}
	return out
}
