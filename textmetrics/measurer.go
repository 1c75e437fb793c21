// Package textmetrics measures text and extracts glyph outlines from
// OpenType fonts using go-text/typesetting.
//
// It ships with the Latin Modern faces so text works out of the box:
//
//	m, err := textmetrics.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := collage.NewRenderer(backend, collage.WithTextMeasurer(m))
package textmetrics

import (
	"bytes"
	"fmt"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/cache"
)

// Measurer measures strings and produces flattened glyph outlines for a
// single font face. It implements collage.GlyphOutliner.
//
// A Measurer is safe for concurrent use once constructed.
type Measurer struct {
	face *font.Face
	upem float64

	// Flattened outlines are cached per (height, text) pair; animated
	// scenes redraw the same runs every frame.
	outlines *cache.Cache[outlineKey, outlineEntry]
}

type outlineKey struct {
	height float64
	text   string
}

type outlineEntry struct {
	contours [][]collage.Point
	advance  float64
}

func outlineKeyHash(k outlineKey) uint64 {
	return cache.StringHasher(k.text)
}

var _ collage.GlyphOutliner = (*Measurer)(nil)

type config struct {
	ttf    []byte
	bold   bool
	italic bool
	mono   bool
}

// Option configures the face a Measurer uses.
type Option func(*config)

// WithTTF uses a specific font instead of the built-in Latin Modern
// faces.
func WithTTF(data []byte) Option {
	return func(c *config) { c.ttf = data }
}

// Bold selects the bold Latin Modern face.
func Bold() Option {
	return func(c *config) { c.bold = true }
}

// Italic selects the italic Latin Modern face.
func Italic() Option {
	return func(c *config) { c.italic = true }
}

// Monospace selects the fixed-width Latin Modern face. It overrides Bold
// and Italic.
func Monospace() Option {
	return func(c *config) { c.mono = true }
}

// New creates a Measurer. With no options it uses the regular Latin
// Modern roman face.
func New(opts ...Option) (*Measurer, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	ttf := c.ttf
	if ttf == nil {
		switch {
		case c.mono:
			ttf = lmmono10regular.TTF
		case c.bold && c.italic:
			ttf = lmroman10bolditalic.TTF
		case c.bold:
			ttf = lmroman10bold.TTF
		case c.italic:
			ttf = lmroman10italic.TTF
		default:
			ttf = lmroman10regular.TTF
		}
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("textmetrics: parsing font: %w", err)
	}
	return &Measurer{
		face:     face,
		upem:     float64(face.Upem()),
		outlines: cache.New[outlineKey, outlineEntry](0, outlineKeyHash),
	}, nil
}

// Width returns the advance width in pixels of s rendered at the given
// pixel height. Unknown characters are skipped.
func (m *Measurer) Width(height float64, s string) float64 {
	scale := height / m.upem
	total := 0.0
	for _, r := range norm.NFC.String(s) {
		gid, ok := m.face.Cmap.Lookup(r)
		if !ok {
			continue
		}
		total += scale * float64(m.face.HorizontalAdvance(gid))
	}
	return total
}

// Outline returns the flattened outlines of s rendered at the given pixel
// height, positioned with the run origin at (0, 0) and the y-axis up,
// plus the run's advance width. Each contour is implicitly closed.
//
// Results are cached; callers must not modify the returned contours.
func (m *Measurer) Outline(height float64, s string) ([][]collage.Point, float64) {
	e := m.outlines.GetOrCreate(outlineKey{height: height, text: s}, func() outlineEntry {
		contours, advance := m.outline(height, s)
		return outlineEntry{contours: contours, advance: advance}
	})
	return e.contours, e.advance
}

func (m *Measurer) outline(height float64, s string) ([][]collage.Point, float64) {
	scale := height / m.upem
	var contours [][]collage.Point
	pen := 0.0
	for _, r := range norm.NFC.String(s) {
		gid, ok := m.face.Cmap.Lookup(r)
		if !ok {
			continue
		}
		if outline, ok := m.face.GlyphData(gid).(font.GlyphOutline); ok {
			contours = appendGlyph(contours, outline, scale, pen)
		}
		pen += scale * float64(m.face.HorizontalAdvance(gid))
	}
	return contours, pen
}
