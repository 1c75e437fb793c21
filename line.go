package collage

// LineCap is the shape of line endpoints.
type LineCap int

const (
	// CapFlat ends the line exactly at its endpoint.
	CapFlat LineCap = iota
	// CapRound ends the line with a half-circle.
	CapRound
	// CapPadded extends the line past its endpoint by half its width.
	CapPadded
)

// LineJoin is the shape of the joint between two line segments.
type LineJoin int

const (
	// JoinSmooth rounds the corner between two segments.
	JoinSmooth LineJoin = iota
	// JoinSharp extends the segment edges until they meet, falling back to
	// a clipped join past the style's miter limit.
	JoinSharp
	// JoinClipped cuts the corner with a straight edge.
	JoinClipped
)

// LineStyle describes how to render a line or an outline.
type LineStyle struct {
	Color Color
	Width float64
	Cap   LineCap
	Join  LineJoin

	// MiterLimit is the cutoff ratio for JoinSharp corners before they are
	// clipped.
	MiterLimit float64

	// Dash contains alternating dash/gap lengths. Empty means a solid line.
	Dash []float64

	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64
}

// DefaultLineStyle returns the default line style: a solid black line of
// width 1 with flat caps and sharp joins.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Color:      Black,
		Width:      1,
		Cap:        CapFlat,
		Join:       JoinSharp,
		MiterLimit: 10,
	}
}

// Solid creates a solid line style with a given color.
func Solid(color Color) LineStyle {
	s := DefaultLineStyle()
	s.Color = color
	return s
}

// Dashed creates a dashed line style with a given color.
// The dash pattern equals [8, 4].
func Dashed(color Color) LineStyle {
	s := Solid(color)
	s.Dash = []float64{8, 4}
	return s
}

// Dotted creates a dotted line style with a given color.
// The dash pattern equals [3, 3].
func Dotted(color Color) LineStyle {
	s := Solid(color)
	s.Dash = []float64{3, 3}
	return s
}

// WithWidth returns a copy of the style with the given line width.
func (s LineStyle) WithWidth(w float64) LineStyle {
	s.Width = w
	return s
}

// IsDashed returns true if the style has a dash pattern.
func (s LineStyle) IsDashed() bool {
	return len(s.Dash) > 0
}
