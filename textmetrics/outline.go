package textmetrics

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/collage"
)

// curveSteps is the number of line segments a bezier curve flattens into.
// Glyphs are small; a fixed subdivision is indistinguishable from
// adaptive flattening at text sizes.
const curveSteps = 8

// appendGlyph converts one glyph outline to flattened contours, scaled to
// pixels and shifted right by pen.
func appendGlyph(contours [][]collage.Point, outline font.GlyphOutline, scale, pen float64) [][]collage.Point {
	var cur []collage.Point
	at := func(i int, s opentype.Segment) collage.Point {
		return collage.Pt(float64(s.Args[i].X)*scale+pen, float64(s.Args[i].Y)*scale)
	}
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if len(cur) >= 3 {
				contours = append(contours, cur)
			}
			cur = []collage.Point{at(0, s)}
		case opentype.SegmentOpLineTo:
			cur = append(cur, at(0, s))
		case opentype.SegmentOpQuadTo:
			if len(cur) > 0 {
				cur = appendQuad(cur, cur[len(cur)-1], at(0, s), at(1, s))
			}
		case opentype.SegmentOpCubeTo:
			if len(cur) > 0 {
				cur = appendCube(cur, cur[len(cur)-1], at(0, s), at(1, s), at(2, s))
			}
		}
	}
	if len(cur) >= 3 {
		contours = append(contours, cur)
	}
	return contours
}

func appendQuad(pts []collage.Point, p0, p1, p2 collage.Point) []collage.Point {
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		a := p0.Lerp(p1, t)
		b := p1.Lerp(p2, t)
		pts = append(pts, a.Lerp(b, t))
	}
	return pts
}

func appendCube(pts []collage.Point, p0, p1, p2, p3 collage.Point) []collage.Point {
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		a := p0.Lerp(p1, t)
		b := p1.Lerp(p2, t)
		c := p2.Lerp(p3, t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(c, t)
		pts = append(pts, ab.Lerp(bc, t))
	}
	return pts
}
