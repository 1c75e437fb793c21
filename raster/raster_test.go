package raster

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/collage"
)

func solidImage(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestBeginRejectsEmptyFrame(t *testing.T) {
	b := New()
	if err := b.Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) succeeded, want error")
	}
	if err := b.Begin(10, -1); err == nil {
		t.Error("Begin(10, -1) succeeded, want error")
	}
	if err := b.Begin(10, 10); err != nil {
		t.Errorf("Begin(10, 10) error = %v", err)
	}
}

func TestFillPolygonPaintsPixels(t *testing.T) {
	b := New()
	r := collage.NewRenderer(b)
	if err := r.DrawForms(40, 40, collage.Square(20).Filled(collage.Red)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}

	center := b.Image().RGBAAt(20, 20)
	if center.R < 150 || center.A < 200 {
		t.Errorf("center pixel = %+v, want solid red", center)
	}
	corner := b.Image().RGBAAt(1, 1)
	if corner.A != 0 {
		t.Errorf("corner pixel = %+v, want transparent", corner)
	}
}

func TestBackgroundOption(t *testing.T) {
	b := New(WithBackground(collage.White))
	r := collage.NewRenderer(b)
	if err := r.DrawForms(10, 10); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}
	px := b.Image().RGBAAt(1, 1)
	if px.R != 255 || px.G != 255 || px.B != 255 || px.A != 255 {
		t.Errorf("background pixel = %+v, want white", px)
	}
}

func TestStrokePaintsPixels(t *testing.T) {
	b := New()
	r := collage.NewRenderer(b)
	style := collage.Solid(collage.Black).WithWidth(4)
	if err := r.DrawForms(40, 40, collage.Line(style, -15, 0, 15, 0)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}
	if px := b.Image().RGBAAt(20, 20); px.A < 200 {
		t.Errorf("pixel on the line = %+v, want opaque", px)
	}
	if px := b.Image().RGBAAt(20, 5); px.A != 0 {
		t.Errorf("pixel off the line = %+v, want transparent", px)
	}
}

func TestScissorLimitsPixels(t *testing.T) {
	b := New()
	r := collage.NewRenderer(b)

	// A full-size square cropped to its left half must not paint the
	// right half of the frame.
	e := collage.Collage(40, 40, collage.Square(40).Filled(collage.Blue)).
		Crop(-10, 0, 20, 40)
	if err := r.DrawElement(e); err != nil {
		t.Fatalf("DrawElement() error = %v", err)
	}

	if px := b.Image().RGBAAt(15, 20); px.A < 200 {
		t.Errorf("pixel inside crop = %+v, want painted", px)
	}
	if px := b.Image().RGBAAt(35, 20); px.A != 0 {
		t.Errorf("pixel outside crop = %+v, want untouched", px)
	}
}

func TestGradientFill(t *testing.T) {
	b := New()
	r := collage.NewRenderer(b)
	g := collage.Linear(collage.Pt(-20, 0), collage.Pt(20, 0),
		collage.Stop{Offset: 0, Color: collage.Black},
		collage.Stop{Offset: 1, Color: collage.White},
	)
	if err := r.DrawForms(40, 40, collage.Square(40).Gradient(g)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}
	left := b.Image().RGBAAt(2, 20)
	right := b.Image().RGBAAt(38, 20)
	if left.R >= right.R {
		t.Errorf("gradient not increasing: left %+v, right %+v", left, right)
	}
	if left.A < 200 || right.A < 200 {
		t.Errorf("gradient pixels not opaque: left %+v, right %+v", left, right)
	}
}

func TestGradientTranslucentStops(t *testing.T) {
	half := collage.Red.WithAlpha(0.5)

	solid := New()
	if err := collage.NewRenderer(solid).DrawForms(40, 40, collage.Square(40).Filled(half)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}
	grad := New()
	g := collage.Linear(collage.Pt(-20, 0), collage.Pt(20, 0),
		collage.Stop{Offset: 0, Color: half},
		collage.Stop{Offset: 1, Color: half},
	)
	if err := collage.NewRenderer(grad).DrawForms(40, 40, collage.Square(40).Gradient(g)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}

	// A constant half-alpha gradient must paint the same pixels as a
	// half-alpha solid fill; the stop alpha is applied once, not squared.
	sp := solid.Image().RGBAAt(20, 20)
	gp := grad.Image().RGBAAt(20, 20)
	if diff := int(sp.R) - int(gp.R); diff > 4 || diff < -4 {
		t.Errorf("gradient pixel %+v, solid pixel %+v, want matching red", gp, sp)
	}
	if diff := int(sp.A) - int(gp.A); diff > 4 || diff < -4 {
		t.Errorf("gradient pixel %+v, solid pixel %+v, want matching alpha", gp, sp)
	}
}

func TestDrawImageUsesLoader(t *testing.T) {
	loaded := map[string]int{}
	b := New(WithImageLoader(func(path string) (image.Image, error) {
		loaded[path]++
		return solidImage(4, 4, color.NRGBA{R: 255, A: 255}), nil
	}))
	r := collage.NewRenderer(b)

	e := collage.Layers(
		collage.Image(20, 20, "a.png"),
		collage.TiledImage(20, 20, "a.png"),
	)
	if err := r.DrawElement(e); err != nil {
		t.Fatalf("DrawElement() error = %v", err)
	}
	if loaded["a.png"] != 1 {
		t.Errorf("asset loaded %d times, want 1 (cached)", loaded["a.png"])
	}
	if px := b.Image().RGBAAt(10, 10); px.R < 200 || px.A < 200 {
		t.Errorf("image pixel = %+v, want red", px)
	}
}

func TestMissingAssetReportedAtEnd(t *testing.T) {
	sentinel := errors.New("no such asset")
	b := New(WithImageLoader(func(path string) (image.Image, error) {
		return nil, sentinel
	}))
	r := collage.NewRenderer(b)

	err := r.DrawElement(collage.Image(10, 10, "missing.png"))
	if err == nil {
		t.Fatal("DrawElement() succeeded, want asset error from End")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want wrapped sentinel", err)
	}
}

func TestSavePNG(t *testing.T) {
	b := New(WithBackground(collage.White))
	r := collage.NewRenderer(b)
	if err := r.DrawForms(8, 8, collage.Circle(3).Filled(collage.Green)); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	if err := New().SavePNG(path); !errors.Is(err, ErrNoFrame) {
		t.Errorf("SavePNG before rendering: error = %v, want ErrNoFrame", err)
	}
}

func TestTextureFill(t *testing.T) {
	b := New(WithImageLoader(func(path string) (image.Image, error) {
		return solidImage(2, 2, color.NRGBA{G: 255, A: 255}), nil
	}))
	r := collage.NewRenderer(b)
	if err := r.DrawForms(20, 20, collage.Square(20).Textured("tex.png")); err != nil {
		t.Fatalf("DrawForms() error = %v", err)
	}
	if px := b.Image().RGBAAt(10, 10); px.G < 200 || px.A < 200 {
		t.Errorf("textured pixel = %+v, want green", px)
	}
}
