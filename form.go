package collage

// Form is a general, freeform 2D graphics structure: a node in the scene
// tree carrying its own transform and alpha along with one of the BasicForm
// variants.
//
// Forms are immutable values. The transform builders (Shift, Rotate, Scale,
// Alpha) return modified copies, so sub-forms can be shared across multiple
// parents.
type Form struct {
	theta float64
	scale float64
	x, y  float64
	alpha float64
	basic BasicForm
}

// BasicForm is the set of drawable variants a Form can consist of.
// It is a sealed interface - only types in this package implement it.
type BasicForm interface {
	// basicForm is an unexported method that seals this interface.
	basicForm()
}

// PathForm is an open polyline traced with a line style.
type PathForm struct {
	Style  LineStyle
	Points []Point
}

// ShapeForm is a closed polygon, either outlined (Line non-nil) or filled
// (Fill non-nil). Exactly one of the two is set.
type ShapeForm struct {
	Line  *LineStyle
	Fill  FillStyle
	Shape Shape
}

// TextForm draws styled text centered on the form's position.
type TextForm struct {
	Text Text
}

// OutlinedTextForm traces the glyph outlines of styled text with a line
// style instead of filling them.
type OutlinedTextForm struct {
	Style LineStyle
	Text  Text
}

// SpriteForm cuts a rectangle out of a sprite sheet at a given source
// position. The path is an opaque asset reference resolved by the backend.
type SpriteForm struct {
	SrcX, SrcY    int
	Width, Height int
	Path          string
}

// ElementForm embeds a layout Element so it can be shifted, rotated and
// scaled like any other form.
type ElementForm struct {
	Element Element
}

// GroupForm is a composite node: an ordered list of sub-forms with an
// additional pre-multiplied matrix transform.
type GroupForm struct {
	Transform Matrix
	Forms     []Form
}

func (PathForm) basicForm()         {}
func (ShapeForm) basicForm()        {}
func (TextForm) basicForm()         {}
func (OutlinedTextForm) basicForm() {}
func (SpriteForm) basicForm()       {}
func (ElementForm) basicForm()      {}
func (GroupForm) basicForm()        {}

// FillStyle describes how a shape's interior is painted.
// It is a sealed interface - only types in this package implement it.
type FillStyle interface {
	// fillStyle is an unexported method that seals this interface.
	fillStyle()
}

// SolidFill fills with a single color.
type SolidFill struct {
	Color Color
}

// TextureFill tiles a texture, referenced by an opaque asset path, to fill
// the entire shape.
type TextureFill struct {
	Path string
}

// GradientFill fills with a linear or radial gradient.
type GradientFill struct {
	Gradient Gradient
}

func (SolidFill) fillStyle()    {}
func (TextureFill) fillStyle()  {}
func (GradientFill) fillStyle() {}

func newForm(basic BasicForm) Form {
	return Form{scale: 1, alpha: 1, basic: basic}
}

// Basic returns the form's drawable variant.
func (f Form) Basic() BasicForm {
	return f.basic
}

// Shift moves a form by the given amount. This is a relative translation,
// so Shift(10, 10) moves the form ten pixels up and ten pixels to the
// right.
func (f Form) Shift(x, y float64) Form {
	f.x += x
	f.y += y
	return f
}

// ShiftX moves a form in the x direction. This is relative, so ShiftX(10)
// moves the form 10 pixels to the right.
func (f Form) ShiftX(x float64) Form {
	f.x += x
	return f
}

// ShiftY moves a form in the y direction. This is relative, so ShiftY(10)
// moves the form upwards by 10 pixels.
func (f Form) ShiftY(y float64) Form {
	f.y += y
	return f
}

// Scale scales a form by a given factor. Scaling by 2 doubles both
// dimensions and quadruples the area.
func (f Form) Scale(s float64) Form {
	f.scale *= s
	return f
}

// Rotate rotates a form by a given angle. Rotate takes radians and turns
// things counterclockwise, so to turn a form 30 degrees to the left you
// would say Rotate(Degrees(30)).
func (f Form) Rotate(theta float64) Form {
	f.theta += theta
	return f
}

// Alpha sets the alpha of a form. The default is 1 and 0 is totally
// transparent. The value is not clamped.
func (f Form) Alpha(alpha float64) Form {
	f.alpha = alpha
	return f
}

// ToForm turns any Element into a Form. This lets you use images and
// laid-out widgets in your collage, moving, rotating and scaling them
// however you want.
func ToForm(element Element) Form {
	return newForm(ElementForm{Element: element})
}

// Group flattens many forms into a single form. This lets you move and
// rotate them as a single unit, making it possible to build small, modular
// components.
func Group(forms ...Form) Form {
	return GroupTransform(Identity(), forms...)
}

// GroupTransform flattens many forms into a single form and then applies a
// matrix transformation.
func GroupTransform(matrix Matrix, forms ...Form) Form {
	return newForm(GroupForm{Transform: matrix, Forms: forms})
}

// Traced traces a path of points with a given line style.
func Traced(style LineStyle, points ...Point) Form {
	return newForm(PathForm{Style: style, Points: points})
}

// Line creates a single line segment with a given line style.
func Line(style LineStyle, x1, y1, x2, y2 float64) Form {
	return Traced(style, Pt(x1, y1), Pt(x2, y2))
}

// Sprite creates a sprite from a sprite sheet. It cuts out a w by h
// rectangle at the given source position.
func Sprite(srcX, srcY, w, h int, path string) Form {
	return newForm(SpriteForm{SrcX: srcX, SrcY: srcY, Width: w, Height: h, Path: path})
}

// TextOf creates a text form. Details like size and color are part of the
// Text value itself, so you can mix colors, sizes and fonts easily.
func TextOf(t Text) Form {
	return newForm(TextForm{Text: t})
}

// OutlinedTextOf creates a text form whose glyphs are traced with the
// given line style instead of filled.
func OutlinedTextOf(style LineStyle, t Text) Form {
	return newForm(OutlinedTextForm{Style: style, Text: t})
}
