// Package raster renders scenes to pixels on the CPU by wrapping the
// rasterx scanline rasterizer.
//
// The backend draws into an in-memory RGBA image which can be saved as a
// PNG or consumed directly:
//
//	b := raster.New()
//	r := collage.NewRenderer(b)
//	if err := r.DrawForms(400, 300, collage.Circle(80).Filled(collage.Blue)); err != nil {
//	    log.Fatal(err)
//	}
//	if err := b.SavePNG("out.png"); err != nil {
//	    log.Fatal(err)
//	}
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/collage"
)

// Backend is a collage.Backend producing an *image.RGBA.
//
// Primitive coordinates are transformed on the CPU before they reach the
// rasterizer, so the scanner only ever sees device-space geometry. Asset
// loading failures do not abort drawing; the first one is reported by End.
type Backend struct {
	dst     *clippedImage
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher

	transform collage.Matrix
	err       error

	background *collage.Color
	loader     func(path string) (image.Image, error)
	cache      map[string]image.Image
}

var _ collage.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground fills the frame with a color at Begin. Without it the
// frame starts fully transparent.
func WithBackground(c collage.Color) Option {
	return func(b *Backend) { b.background = &c }
}

// WithImageLoader replaces the asset loader used to resolve the opaque
// paths of image, sprite and texture primitives. The default reads PNG,
// JPEG or GIF files from disk.
func WithImageLoader(load func(path string) (image.Image, error)) Option {
	return func(b *Backend) { b.loader = load }
}

// New creates a raster backend. The pixel buffer is allocated by Begin.
func New(opts ...Option) *Backend {
	b := &Backend{
		loader: loadImageFile,
		cache:  make(map[string]image.Image),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin implements collage.Backend.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid dimensions %dx%d", width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.dst = newClippedImage(b.img)
	b.scanner = rasterx.NewScannerGV(width, height, b.dst, b.dst.Bounds())
	b.filler = rasterx.NewFiller(width, height, b.scanner)
	b.dasher = rasterx.NewDasher(width, height, b.scanner)
	b.transform = collage.Identity()
	b.err = nil
	if b.background != nil {
		b.Clear(*b.background)
	}
	return nil
}

// End implements collage.Backend. It reports the first asset error
// encountered during the frame, if any.
func (b *Backend) End() error {
	return b.err
}

// Image returns the rendered frame. Valid after End.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// ErrNoFrame is returned by SavePNG when no frame has been rendered yet.
var ErrNoFrame = errors.New("raster: no frame rendered")

// SavePNG writes the rendered frame to a PNG file.
func (b *Backend) SavePNG(path string) error {
	if b.img == nil {
		return ErrNoFrame
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, b.img)
}

// SetTransform implements collage.Backend.
func (b *Backend) SetTransform(m collage.Matrix) {
	b.transform = m
}

// SetScissor implements collage.Backend.
func (b *Backend) SetScissor(s collage.Scissor) {
	b.dst.setClip(image.Rect(
		int(math.Floor(s.MinX)), int(math.Floor(s.MinY)),
		int(math.Ceil(s.MaxX)), int(math.Ceil(s.MaxY)),
	))
}

// ClearScissor implements collage.Backend.
func (b *Backend) ClearScissor() {
	b.dst.clearClip()
}

// Clear implements collage.Backend.
func (b *Backend) Clear(c collage.Color) {
	fill := toNRGBA(c)
	bounds := b.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			b.dst.Set(x, y, fill)
		}
	}
}

func (b *Backend) fail(err error) {
	if b.err == nil {
		b.err = err
	}
	collage.Logger().Warn("raster backend error", "err", err)
}

// device maps a local point through the current transform into fixed
// point device coordinates.
func (b *Backend) device(p collage.Point) fixed.Point26_6 {
	q := b.transform.TransformPoint(p)
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(q.X * 64)),
		Y: fixed.Int26_6(math.Round(q.Y * 64)),
	}
}

func toNRGBA(c collage.Color) color.NRGBA {
	r, g, bl, a := c.ToRGBA()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(math.Round(255 * collage.Clamp(a)))}
}

var (
	capFuncs = map[collage.LineCap]rasterx.CapFunc{
		collage.CapFlat:   rasterx.ButtCap,
		collage.CapRound:  rasterx.RoundCap,
		collage.CapPadded: rasterx.SquareCap,
	}
	joinModes = map[collage.LineJoin]rasterx.JoinMode{
		collage.JoinSmooth:  rasterx.Round,
		collage.JoinSharp:   rasterx.Miter,
		collage.JoinClipped: rasterx.Bevel,
	}
)

// StrokeSegment implements collage.Backend. The stroke width and dash
// pattern scale with the current transform.
func (b *Backend) StrokeSegment(p, q collage.Point, style collage.LineStyle) {
	scale := b.transform.ScaleFactor()
	width := style.Width * scale
	if width <= 0 {
		return
	}

	var dash []float64
	if style.IsDashed() {
		dash = make([]float64, len(style.Dash))
		for i, d := range style.Dash {
			dash[i] = d * scale
		}
	}
	b.dasher.SetStroke(
		fixed.Int26_6(math.Round(width*64)),
		fixed.Int26_6(math.Round(style.MiterLimit*64)),
		capFuncs[style.Cap], capFuncs[style.Cap], rasterx.FlatGap,
		joinModes[style.Join], dash, style.DashOffset*scale,
	)
	b.scanner.SetColor(toNRGBA(style.Color))
	b.dasher.Start(b.device(p))
	b.dasher.Line(b.device(q))
	b.dasher.Stop(false)
	b.dasher.Draw()
	b.dasher.Clear()
}

// FillPolygon implements collage.Backend.
func (b *Backend) FillPolygon(points []collage.Point, c collage.Color) {
	if len(points) < 3 {
		return
	}
	b.scanner.SetColor(toNRGBA(c))
	b.fillContours([][]collage.Point{points})
}

// FillContours implements collage.Backend. Contours are combined with the
// non-zero winding rule, so holes wound the opposite way stay empty.
func (b *Backend) FillContours(contours [][]collage.Point, c collage.Color) {
	b.scanner.SetColor(toNRGBA(c))
	b.fillContours(contours)
}

func (b *Backend) fillContours(contours [][]collage.Point) {
	drawn := false
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		drawn = true
		b.filler.Start(b.device(pts[0]))
		for _, p := range pts[1:] {
			b.filler.Line(b.device(p))
		}
		b.filler.Stop(true)
	}
	if drawn {
		b.filler.Draw()
	}
	b.filler.Clear()
}

// FillPolygonGradient implements collage.Backend. The gradient geometry
// is given in the polygon's local space and is mapped through the current
// transform.
func (b *Backend) FillPolygonGradient(points []collage.Point, g collage.Gradient, alpha float64) {
	if len(points) < 3 {
		return
	}

	// The stop alpha rides in Opacity alone; an alpha baked into StopColor
	// as well would be applied twice.
	stops := make([]rasterx.GradStop, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = rasterx.GradStop{
			StopColor: toNRGBA(s.Color.WithAlpha(1)),
			Offset:    s.Offset,
			Opacity:   s.Color.Alpha(),
		}
	}

	start := b.transform.TransformPoint(g.Start)
	end := b.transform.TransformPoint(g.End)
	var pts [5]float64
	if g.Radial {
		// cx, cy, fx, fy, r with the end point as the outer circle.
		pts = [5]float64{end.X, end.Y, start.X, start.Y, g.EndRadius * b.transform.ScaleFactor()}
	} else {
		pts = [5]float64{start.X, start.Y, end.X, end.Y, 0}
	}

	grad := rasterx.Gradient{
		Points:   pts,
		Stops:    stops,
		Matrix:   rasterx.Identity,
		Spread:   rasterx.PadSpread,
		Units:    rasterx.UserSpaceOnUse,
		IsRadial: g.Radial,
	}
	b.scanner.SetColor(grad.GetColorFunction(alpha))
	b.fillContours([][]collage.Point{points})
}

// FillPolygonTexture implements collage.Backend. The texture tiles in
// device space from the device origin.
func (b *Backend) FillPolygonTexture(points []collage.Point, path string, alpha float64) {
	if len(points) < 3 {
		return
	}
	tex := b.loadImage(path)
	if tex == nil {
		return
	}
	bounds := tex.Bounds()
	tw, th := bounds.Dx(), bounds.Dy()
	if tw == 0 || th == 0 {
		return
	}
	b.scanner.SetColor(rasterx.ColorFunc(func(x, y int) color.Color {
		c := tex.At(bounds.Min.X+mod(x, tw), bounds.Min.Y+mod(y, th))
		return applyAlpha(c, alpha)
	}))
	b.fillContours([][]collage.Point{points})
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * collage.Clamp(alpha)))
	return n
}
