package collage

// Scissor is an axis-aligned clip rectangle in backend device space
// (pixels, y-axis down). Only pixels inside the scissor may be touched by
// drawing operations.
type Scissor struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Intersect returns the intersection of two scissor rectangles.
func (s Scissor) Intersect(o Scissor) Scissor {
	r := Scissor{
		MinX: max(s.MinX, o.MinX),
		MinY: max(s.MinY, o.MinY),
		MaxX: min(s.MaxX, o.MaxX),
		MaxY: min(s.MaxY, o.MaxY),
	}
	if r.MinX >= r.MaxX || r.MinY >= r.MaxY {
		return Scissor{}
	}
	return r
}

// IsEmpty reports whether the scissor has zero area.
func (s Scissor) IsEmpty() bool {
	return s.MinX >= s.MaxX || s.MinY >= s.MaxY
}

// Backend is the primitive sink a draw traversal renders into: a raster
// backend puts pixels on an image, the recording backend captures typed
// commands for replay or inspection.
//
// The renderer always emits SetTransform before a batch of primitives;
// primitive coordinates are in the local space mapped by that transform.
// Color alpha arrives pre-multiplied with the accumulated opacity of the
// traversal.
//
// A backend that genuinely cannot support one of the primitives must fail
// loudly (panic with a descriptive message) rather than silently skip it:
// a silent no-op hides an incomplete backend from its users.
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	// It is called once per draw call, before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering. After End the backend's output (pixels,
	// command list, ...) may be consumed.
	End() error

	// SetTransform sets the transformation applied to subsequent
	// primitive coordinates. It replaces any previous transform.
	SetTransform(m Matrix)

	// SetScissor limits subsequent drawing to a device-space rectangle.
	// It replaces any previous scissor; the renderer handles nesting by
	// intersecting crops itself.
	SetScissor(s Scissor)

	// ClearScissor removes the scissor limit.
	ClearScissor()

	// Clear paints the whole viewport with a color, ignoring the current
	// transform but honoring the scissor. The renderer never emits Clear
	// itself; it paints Cleared elements as box fills so backgrounds
	// respect the accumulated transform and crop. Clear exists for frame
	// setup by backends, such as the raster backend's background option.
	Clear(c Color)

	// StrokeSegment draws a single line segment between two local-space
	// points with the full line style (width, cap, join, dash pattern).
	StrokeSegment(a, b Point, style LineStyle)

	// FillPolygon fills an implicitly closed polygon with a solid color.
	FillPolygon(points []Point, c Color)

	// FillContours fills a multi-contour region (such as a glyph with
	// holes) using the non-zero winding rule.
	FillContours(contours [][]Point, c Color)

	// FillPolygonTexture fills an implicitly closed polygon by tiling the
	// texture at the given opaque asset path.
	FillPolygonTexture(points []Point, path string, alpha float64)

	// FillPolygonGradient fills an implicitly closed polygon with a
	// gradient whose geometry is in the polygon's local space.
	FillPolygonGradient(points []Point, g Gradient, alpha float64)

	// DrawImage draws the image at the given opaque asset path into a
	// w by h box centered on the local origin, fit per style. For
	// ImageCropped, (cropX, cropY) locate the source rectangle.
	DrawImage(style ImageStyle, cropX, cropY, w, h int, path string, alpha float64)

	// DrawSprite cuts a w by h rectangle out of the sprite sheet at the
	// given opaque asset path, starting at source position (srcX, srcY),
	// and draws it centered on the local origin.
	DrawSprite(srcX, srcY, w, h int, path string, alpha float64)
}

// TextMeasurer is the character-metrics capability: given a pixel height
// and a string, it returns the rendered advance width in pixels.
//
// Text is coupled to measurement because a run is centered by translating
// left by half its total measured width. When no measurer is supplied to
// the renderer, text is silently skipped, which keeps headless rendering
// of purely graphical content working.
type TextMeasurer interface {
	Width(height float64, s string) float64
}

// GlyphOutliner is an optional extension of TextMeasurer for providers
// that can also produce flattened glyph outlines. The renderer uses it to
// draw text on any backend as filled (or stroked) contours; a measurer
// without outlines measures layout but draws nothing.
//
// Outline returns one contour list per glyph run in font drawing order,
// positioned with the run origin at (0, 0), y-axis up, and the total
// advance width of the run.
type GlyphOutliner interface {
	TextMeasurer
	Outline(height float64, s string) (contours [][]Point, advance float64)
}
