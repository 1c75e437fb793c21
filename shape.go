package collage

import "math"

// Shape is a closed polygon described by its edges. The vertex list is
// implicitly closed: the last vertex connects back to the first.
type Shape struct {
	Points []Point
}

// Polygon creates an arbitrary polygon by specifying its corners in order.
// Shapes close automatically, so the given list of points does not need to
// start and end with the same position.
func Polygon(points ...Point) Shape {
	return Shape{Points: points}
}

// Rect creates a rectangle with a given width and height, centered on the
// origin.
func Rect(w, h float64) Shape {
	hw := w / 2
	hh := h / 2
	return Shape{Points: []Point{
		{-hw, -hh},
		{-hw, hh},
		{hw, hh},
		{hw, -hh},
	}}
}

// Square creates a square with a given edge length.
func Square(n float64) Shape {
	return Rect(n, n)
}

// Oval creates an oval with a given width and height, approximated by a
// fixed number of vertices.
func Oval(w, h float64) Shape {
	const n = 50
	t := 2 * math.Pi / n
	hw := w / 2
	hh := h / 2
	points := make([]Point, n-1)
	for i := range points {
		a := t * float64(i)
		points[i] = Point{hw * math.Cos(a), hh * math.Sin(a)}
	}
	return Shape{Points: points}
}

// Circle creates a circle with a given radius.
func Circle(r float64) Shape {
	d := 2 * r
	return Oval(d, d)
}

// Ngon creates a regular polygon with n sides and a given radius. To
// create a pentagon with radius 30 you would say Ngon(5, 30).
func Ngon(n int, r float64) Shape {
	t := 2 * math.Pi / float64(n)
	points := make([]Point, n)
	for i := range points {
		a := t * float64(i)
		points[i] = Point{r * math.Cos(a), r * math.Sin(a)}
	}
	return Shape{Points: points}
}

// Filled creates a form by filling the shape with a solid color.
func (s Shape) Filled(color Color) Form {
	return s.fill(SolidFill{Color: color})
}

// Textured creates a form by filling the shape with a texture. The texture
// is described by an opaque asset path and is tiled to fill the entire
// shape.
func (s Shape) Textured(path string) Form {
	return s.fill(TextureFill{Path: path})
}

// Gradient creates a form by filling the shape with a gradient.
func (s Shape) Gradient(g Gradient) Form {
	return s.fill(GradientFill{Gradient: g})
}

// Outlined creates a form by tracing the shape's boundary with a given
// line style.
func (s Shape) Outlined(style LineStyle) Form {
	return newForm(ShapeForm{Line: &style, Shape: s})
}

func (s Shape) fill(style FillStyle) Form {
	return newForm(ShapeForm{Fill: style, Shape: s})
}
