package collage

import (
	"fmt"
	"math"
)

// Renderer walks a scene and feeds its primitives to a Backend.
//
// A Renderer is stateless between draw calls and may be reused; it is not
// safe for concurrent use because the underlying backend carries transform
// and scissor state.
type Renderer struct {
	backend  Backend
	measurer TextMeasurer

	// viewport is the device bounds of the frame being drawn, used to
	// prune cropped subtrees that cannot touch any pixel.
	viewport Scissor
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTextMeasurer supplies the text metrics provider. Without one, text
// forms are skipped during drawing.
func WithTextMeasurer(m TextMeasurer) RendererOption {
	return func(r *Renderer) { r.measurer = m }
}

// NewRenderer creates a renderer targeting the given backend.
func NewRenderer(b Backend, opts ...RendererOption) *Renderer {
	r := &Renderer{backend: b}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DrawElement renders an element tree at the element's own size. The
// element's top-left corner lands on the backend's top-left pixel.
func (r *Renderer) DrawElement(e Element) error {
	w, h := e.Size()
	if err := r.backend.Begin(w, h); err != nil {
		return fmt.Errorf("collage: begin: %w", err)
	}
	r.viewport = Scissor{MaxX: float64(w), MaxY: float64(h)}
	r.drawElement(e, Identity(), 1, nil)
	if err := r.backend.End(); err != nil {
		return fmt.Errorf("collage: end: %w", err)
	}
	return nil
}

// DrawForms renders a form list into a width by height viewport, with the
// origin at the viewport center and the y-axis pointing up. It is the
// free-form equivalent of drawing a Collage element.
func (r *Renderer) DrawForms(width, height int, forms ...Form) error {
	if err := r.backend.Begin(width, height); err != nil {
		return fmt.Errorf("collage: begin: %w", err)
	}
	r.viewport = Scissor{MaxX: float64(width), MaxY: float64(height)}
	m := Translation(float64(width)/2, float64(height)/2).Multiply(ScaleY(-1))
	for _, f := range forms {
		r.drawForm(f, m, 1, nil)
	}
	if err := r.backend.End(); err != nil {
		return fmt.Errorf("collage: end: %w", err)
	}
	return nil
}

// fade scales a color's alpha by the accumulated opacity.
func fade(c Color, alpha float64) Color {
	if alpha == 1 {
		return c
	}
	return c.WithAlpha(c.Alpha() * alpha)
}

func fadeLine(style LineStyle, alpha float64) LineStyle {
	style.Color = fade(style.Color, alpha)
	return style
}

// drawForm renders one form under the accumulated matrix m and opacity
// alpha. The form's own placement composes on the right, so its rotation
// and scale happen about its own origin before it is shifted into place.
func (r *Renderer) drawForm(f Form, m Matrix, alpha float64, sc *Scissor) {
	mf := m.Multiply(Translation(f.x, f.y)).Multiply(Scale(f.scale)).Multiply(Rotation(f.theta))
	a := alpha * f.alpha

	switch basic := f.basic.(type) {
	case PathForm:
		// Paths stay open; only shape outlines close.
		r.strokePath(mf, basic.Points, fadeLine(basic.Style, a), false)
	case ShapeForm:
		pts := basic.Shape.Points
		if basic.Fill != nil && len(pts) >= 3 {
			r.backend.SetTransform(mf)
			switch fill := basic.Fill.(type) {
			case SolidFill:
				r.backend.FillPolygon(pts, fade(fill.Color, a))
			case TextureFill:
				r.backend.FillPolygonTexture(pts, fill.Path, a)
			case GradientFill:
				r.backend.FillPolygonGradient(pts, fill.Gradient, a)
			}
		}
		if basic.Line != nil {
			r.strokePath(mf, pts, fadeLine(*basic.Line, a), true)
		}
	case TextForm:
		r.drawText(mf, basic.Text, a, nil)
	case OutlinedTextForm:
		style := basic.Style
		r.drawText(mf, basic.Text, a, &style)
	case SpriteForm:
		r.backend.SetTransform(mf)
		r.backend.DrawSprite(basic.SrcX, basic.SrcY, basic.Width, basic.Height, basic.Path, a)
	case ElementForm:
		e := basic.Element
		w, h := e.Size()
		// Element space runs top-left down; undo the collage flip and
		// center the element on the form origin.
		me := mf.Multiply(Translation(-float64(w)/2, float64(h)/2)).Multiply(ScaleY(-1))
		r.drawElement(e, me, a, sc)
	case GroupForm:
		mg := mf.Multiply(basic.Transform)
		for _, child := range basic.Forms {
			r.drawForm(child, mg, a, sc)
		}
	}
}

// strokePath emits one segment per consecutive point pair. When closed is
// set and the path has at least three points, a final segment connects the
// last point back to the first.
func (r *Renderer) strokePath(m Matrix, pts []Point, style LineStyle, closed bool) {
	if len(pts) < 2 {
		return
	}
	r.backend.SetTransform(m)
	for i := 1; i < len(pts); i++ {
		r.backend.StrokeSegment(pts[i-1], pts[i], style)
	}
	if closed && len(pts) >= 3 {
		r.backend.StrokeSegment(pts[len(pts)-1], pts[0], style)
	}
}

// drawText lays out a text run centered on the local origin and renders
// each unit as filled glyph contours, or stroked contours when outline is
// non-nil. Without a measurer the run is skipped.
func (r *Renderer) drawText(m Matrix, t Text, alpha float64, outline *LineStyle) {
	if r.measurer == nil {
		Logger().Debug("skipping text form, no measurer configured", "text", t.String())
		return
	}
	units := t.Units()
	if len(units) == 0 {
		return
	}
	total := 0.0
	maxHeight := 0.0
	for _, u := range units {
		h := u.Style.Height
		if h == 0 {
			h = DefaultTextHeight
		}
		total += r.measurer.Width(h, u.String)
		maxHeight = math.Max(maxHeight, h)
	}
	outliner, ok := r.measurer.(GlyphOutliner)
	if !ok {
		return
	}
	// The position hint picks which point of the run lands on the origin.
	shift := -total / 2
	switch t.Position() {
	case TextToLeft:
		shift = -total
	case TextToRight:
		shift = 0
	}
	// Baseline sits a third of the tallest unit below the form origin,
	// which optically centers a single line of text.
	mt := m.Multiply(Translation(shift, -maxHeight/3))
	pen := 0.0
	for _, u := range units {
		h := u.Style.Height
		if h == 0 {
			h = DefaultTextHeight
		}
		contours, advance := outliner.Outline(h, u.String)
		mu := mt.Multiply(Translation(pen, 0))
		if len(contours) > 0 {
			if outline != nil {
				for _, c := range contours {
					r.strokePath(mu, c, fadeLine(*outline, alpha), true)
				}
			} else {
				r.backend.SetTransform(mu)
				r.backend.FillContours(contours, fade(u.Style.Color, alpha))
			}
		}
		if u.Style.Line != LineNone && advance > 0 {
			r.drawTextLine(mu, u.Style, h, advance, alpha)
		}
		pen += advance
	}
}

// drawTextLine strokes a unit's decoration line across its advance. The
// unit matrix puts the baseline at y = 0, y-axis up.
func (r *Renderer) drawTextLine(m Matrix, style TextStyle, height, advance, alpha float64) {
	var y float64
	switch style.Line {
	case LineUnder:
		y = -height / 8
	case LineThrough:
		y = height / 4
	case LineOver:
		y = height * 3 / 4
	default:
		return
	}
	line := Solid(style.Color).WithWidth(math.Max(1, height/16))
	r.strokePath(m, []Point{{0, y}, {advance, y}}, fadeLine(line, alpha), false)
}

// drawElement renders one element with its top-left corner at the local
// origin of m, y-axis down.
func (r *Renderer) drawElement(e Element, m Matrix, alpha float64, sc *Scissor) {
	w, h := e.Size()
	a := alpha * e.props.opacity

	if e.props.crop != nil {
		next := r.cropScissor(e, m, *e.props.crop).Intersect(r.viewport)
		if sc != nil {
			next = next.Intersect(*sc)
		}
		if next.IsEmpty() {
			return
		}
		r.backend.SetScissor(next)
		prev := sc
		defer func() {
			if prev != nil {
				r.backend.SetScissor(*prev)
			} else {
				r.backend.ClearScissor()
			}
		}()
		sc = &next
	}

	if e.props.color != nil {
		r.fillBox(m, w, h, fade(*e.props.color, a))
	}

	switch prim := e.prim.(type) {
	case SpacerPrim:
		// Size only.
	case ImagePrim:
		r.drawImage(e, prim, m, a)
	case ContainerPrim:
		child := *prim.Child
		cw, ch := child.Size()
		x := prim.Position.x.resolve(w - cw)
		if prim.Position.horizontal == anchorFar {
			x = float64(w-cw) - x
		}
		y := prim.Position.y.resolve(h - ch)
		if prim.Position.vertical == anchorNear {
			y = float64(h-ch) - y
		}
		r.drawElement(child, m.Multiply(Translation(x, y)), a, sc)
	case FlowPrim:
		r.drawFlow(prim, m, w, h, a, sc)
	case CollagePrim:
		mc := m.Multiply(Translation(float64(w)/2, float64(h)/2)).Multiply(ScaleY(-1))
		for _, f := range prim.Forms {
			r.drawForm(f, mc, a, sc)
		}
	case ClearedPrim:
		r.fillBox(m, w, h, fade(prim.Color, a))
		r.drawElement(*prim.Child, m, a, sc)
	}
}

func (r *Renderer) drawFlow(prim FlowPrim, m Matrix, w, h int, alpha float64, sc *Scissor) {
	children := prim.Children
	switch prim.Direction {
	case Inward:
		for i := len(children) - 1; i >= 0; i-- {
			r.drawCentered(children[i], m, w, h, alpha, sc)
		}
	case Outward:
		for _, child := range children {
			r.drawCentered(child, m, w, h, alpha, sc)
		}
	case Down:
		offset := 0
		for _, child := range children {
			cw, ch := child.Size()
			mx := m.Multiply(Translation(float64(w-cw)/2, float64(offset)))
			r.drawElement(child, mx, alpha, sc)
			offset += ch
		}
	case Up:
		offset := h
		for _, child := range children {
			cw, ch := child.Size()
			offset -= ch
			mx := m.Multiply(Translation(float64(w-cw)/2, float64(offset)))
			r.drawElement(child, mx, alpha, sc)
		}
	case Right:
		offset := 0
		for _, child := range children {
			cw, ch := child.Size()
			mx := m.Multiply(Translation(float64(offset), float64(h-ch)/2))
			r.drawElement(child, mx, alpha, sc)
			offset += cw
		}
	case Left:
		offset := w
		for _, child := range children {
			cw, ch := child.Size()
			offset -= cw
			mx := m.Multiply(Translation(float64(offset), float64(h-ch)/2))
			r.drawElement(child, mx, alpha, sc)
		}
	}
}

func (r *Renderer) drawCentered(child Element, m Matrix, w, h int, alpha float64, sc *Scissor) {
	cw, ch := child.Size()
	mx := m.Multiply(Translation(float64(w-cw)/2, float64(h-ch)/2))
	r.drawElement(child, mx, alpha, sc)
}

func (r *Renderer) drawImage(e Element, prim ImagePrim, m Matrix, alpha float64) {
	w, h := e.Size()
	if w <= 0 || h <= 0 || prim.Width <= 0 || prim.Height <= 0 {
		return
	}
	// The backend draws the intrinsic box centered on the origin; any
	// stretch from WithWidth and friends becomes a scale here.
	mi := m.Multiply(Translation(float64(w)/2, float64(h)/2)).
		Multiply(ScaleX(float64(w) / float64(prim.Width))).
		Multiply(ScaleY(float64(h) / float64(prim.Height)))
	r.backend.SetTransform(mi)
	r.backend.DrawImage(prim.Style, prim.CropX, prim.CropY, prim.Width, prim.Height, prim.Path, alpha)
}

// fillBox paints the element's own rectangle.
func (r *Renderer) fillBox(m Matrix, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.backend.SetTransform(m)
	r.backend.FillPolygon([]Point{
		{0, 0},
		{float64(w), 0},
		{float64(w), float64(h)},
		{0, float64(h)},
	}, c)
}

// cropScissor maps an element-local crop rectangle to a device-space
// scissor. The crop is expressed relative to the element center with the
// y-axis up; the result is the axis-aligned bounds of its transformed
// corners.
func (r *Renderer) cropScissor(e Element, m Matrix, c Crop) Scissor {
	w, h := e.Size()
	cx := float64(w)/2 + c.X
	cy := float64(h)/2 - c.Y
	corners := [4]Point{
		{cx - c.W/2, cy - c.H/2},
		{cx + c.W/2, cy - c.H/2},
		{cx + c.W/2, cy + c.H/2},
		{cx - c.W/2, cy + c.H/2},
	}
	s := Scissor{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, p := range corners {
		q := m.TransformPoint(p)
		s.MinX = math.Min(s.MinX, q.X)
		s.MinY = math.Min(s.MinY, q.Y)
		s.MaxX = math.Max(s.MaxX, q.X)
		s.MaxY = math.Max(s.MaxY, q.Y)
	}
	return s
}
