package collage

import "math"

// Element is a graphical element that snaps together with others to build
// complex widgets and layouts. Each element is a rectangle with a known
// width and height, making them easy to combine and position.
//
// Like Forms, Elements are immutable values: every builder method returns
// a modified copy.
type Element struct {
	props properties
	prim  Prim
}

// properties carries the box attributes shared by every element kind.
type properties struct {
	width, height int
	opacity       float64
	color         *Color
	crop          *Crop
}

// Crop is a rectangular clip region in an element's own coordinate space:
// (X, Y) is the center of the visible rectangle relative to the element's
// center, with the y-axis pointing up, in unscaled element pixels.
type Crop struct {
	X, Y float64
	W, H float64
}

// Prim is the set of element kinds.
// It is a sealed interface - only types in this package implement it.
type Prim interface {
	// prim is an unexported method that seals this interface.
	prim()
}

// SpacerPrim is an empty box.
type SpacerPrim struct{}

// ImagePrim is a raster image, referenced by an opaque asset path.
type ImagePrim struct {
	Style         ImageStyle
	Width, Height int
	// CropX and CropY locate the source rectangle for ImageCropped.
	CropX, CropY int
	Path         string
}

// ContainerPrim positions a single child within the parent's bounds.
type ContainerPrim struct {
	Position Position
	Child    *Element
}

// FlowPrim lays children out along one axis.
type FlowPrim struct {
	Direction Direction
	Children  []Element
}

// CollagePrim embeds a list of freeform Forms as a fixed-size vector
// canvas. Forms use a coordinate system with the origin at the center of
// the collage and the y-axis pointing up.
type CollagePrim struct {
	Width, Height int
	Forms         []Form
}

// ClearedPrim paints an opaque background box over the element's own
// bounds, then draws the child on top. The background is an ordinary fill,
// so it follows the element's transform and crop like any other content.
type ClearedPrim struct {
	Color Color
	Child *Element
}

func (SpacerPrim) prim()    {}
func (ImagePrim) prim()     {}
func (ContainerPrim) prim() {}
func (FlowPrim) prim()      {}
func (CollagePrim) prim()   {}
func (ClearedPrim) prim()   {}

// ImageStyle selects how an image is fit into its element box.
type ImageStyle int

const (
	// ImagePlain draws the image at the element size, stretching if needed.
	ImagePlain ImageStyle = iota
	// ImageFitted crops and scales the image to best fill the box while
	// preserving its aspect ratio.
	ImageFitted
	// ImageCropped takes a rectangle out of the picture starting at a
	// given source coordinate.
	ImageCropped
	// ImageTiled repeats the image to cover the box.
	ImageTiled
)

// Direction is the axis and orientation for a Flow of elements.
type Direction int

const (
	// Up stacks children vertically, first child at the bottom.
	Up Direction = iota
	// Down stacks children vertically, first child on top.
	Down
	// Left lays children out horizontally, first child rightmost.
	Left
	// Right lays children out horizontally, first child leftmost.
	Right
	// Inward layers children on top of each other, first child in front.
	Inward
	// Outward layers children on top of each other, first child at the
	// back.
	Outward
)

// newElement constructs an element from a size and a prim.
func newElement(w, h int, prim Prim) Element {
	return Element{
		props: properties{width: w, height: h, opacity: 1},
		prim:  prim,
	}
}

// Spacer creates an empty box. This is useful for getting spacing right
// and for making borders.
func Spacer(w, h int) Element {
	return newElement(w, h, SpacerPrim{})
}

// Empty is an element that takes up no space. Good for things that appear
// conditionally.
func Empty() Element {
	return Spacer(0, 0)
}

// Image creates an image with a given width, height and asset path.
func Image(w, h int, path string) Element {
	return newElement(w, h, ImagePrim{Style: ImagePlain, Width: w, Height: h, Path: path})
}

// FittedImage creates a fitted image with a given width, height and asset
// path. This will crop and scale the picture to best fill the given
// dimensions.
func FittedImage(w, h int, path string) Element {
	return newElement(w, h, ImagePrim{Style: ImageFitted, Width: w, Height: h, Path: path})
}

// CroppedImage creates a cropped image. It takes a w by h rectangle out of
// the picture starting at the given source coordinate.
func CroppedImage(x, y, w, h int, path string) Element {
	return newElement(w, h, ImagePrim{Style: ImageCropped, Width: w, Height: h, CropX: x, CropY: y, Path: path})
}

// TiledImage creates a tiled image with a given width, height and asset
// path.
func TiledImage(w, h int, path string) Element {
	return newElement(w, h, ImagePrim{Style: ImageTiled, Width: w, Height: h, Path: path})
}

// Collage wraps a collection of 2D forms into an element. There are no
// strict positioning relationships between the forms, so you are free to
// do all kinds of 2D graphics.
func Collage(w, h int, forms ...Form) Element {
	return newElement(w, h, CollagePrim{Width: w, Height: h, Forms: forms})
}

// Flow has a list of elements flow in a particular direction. The
// direction starts from the first element in the list.
func Flow(dir Direction, elements ...Element) Element {
	if len(elements) == 0 {
		return Empty()
	}
	var maxW, maxH, sumW, sumH int
	for _, e := range elements {
		maxW = max(maxW, e.Width())
		maxH = max(maxH, e.Height())
		sumW += e.Width()
		sumH += e.Height()
	}
	prim := FlowPrim{Direction: dir, Children: elements}
	switch dir {
	case Up, Down:
		return newElement(maxW, sumH, prim)
	case Left, Right:
		return newElement(sumW, maxH, prim)
	default: // Inward, Outward
		return newElement(maxW, maxH, prim)
	}
}

// Layers stacks elements on top of each other, starting from the bottom.
func Layers(elements ...Element) Element {
	return Flow(Outward, elements...)
}

// Width returns the width of the element in pixels.
func (e Element) Width() int {
	return e.props.width
}

// Height returns the height of the element in pixels.
func (e Element) Height() int {
	return e.props.height
}

// Size returns the width and height of the element in pixels.
func (e Element) Size() (w, h int) {
	return e.props.width, e.props.height
}

// Opacity returns the element's opacity.
func (e Element) Opacity() float64 {
	return e.props.opacity
}

// Prim returns the element's kind.
func (e Element) Prim() Prim {
	return e.prim
}

// WithWidth returns the element resized to a given width. For Image and
// Collage elements the height is rescaled proportionally to preserve the
// aspect ratio; all other kinds keep their height.
func (e Element) WithWidth(w int) Element {
	if iw, ih, ok := e.intrinsicSize(); ok && iw != 0 {
		e.props.height = int(math.Round(float64(ih) / float64(iw) * float64(w)))
	}
	e.props.width = w
	return e
}

// WithHeight returns the element resized to a given height. For Image and
// Collage elements the width is rescaled proportionally to preserve the
// aspect ratio; all other kinds keep their width.
func (e Element) WithHeight(h int) Element {
	if iw, ih, ok := e.intrinsicSize(); ok && ih != 0 {
		e.props.width = int(math.Round(float64(iw) / float64(ih) * float64(h)))
	}
	e.props.height = h
	return e
}

// WithSize returns the element resized to a given width and height.
func (e Element) WithSize(w, h int) Element {
	return e.WithHeight(h).WithWidth(w)
}

// intrinsicSize returns the natural dimensions of the element's content
// for the kinds that have one (images and collages).
func (e Element) intrinsicSize() (w, h int, ok bool) {
	switch p := e.prim.(type) {
	case ImagePrim:
		return p.Width, p.Height, true
	case CollagePrim:
		return p.Width, p.Height, true
	}
	return 0, 0, false
}

// WithOpacity returns the element with a given opacity. Opacity multiplies
// down the tree: a child's effective opacity is the product of its own and
// all its ancestors'.
func (e Element) WithOpacity(opacity float64) Element {
	e.props.opacity = opacity
	return e
}

// WithColor returns the element with a given background color.
func (e Element) WithColor(c Color) Element {
	e.props.color = &c
	return e
}

// Clear returns an element that paints its whole box with the given color
// before drawing. The background is filled in element space, so it is
// transformed and cropped along with the content.
func (e Element) Clear(c Color) Element {
	child := e
	return newElement(e.Width(), e.Height(), ClearedPrim{Color: c, Child: &child})
}

// Crop returns the element clipped to a rectangle in its own coordinate
// space: (x, y) is the rectangle's center relative to the element's
// center, y-axis up, in unscaled element pixels. Crops intersect down the
// tree; an empty intersection draws nothing.
func (e Element) Crop(x, y, w, h float64) Element {
	e.props.crop = &Crop{X: x, Y: y, W: w, H: h}
	return e
}

// Container puts the element in a w by h box, positioned according to pos.
// This lets you position an element really easily, and there are tons of
// ways to set the Position.
func (e Element) Container(w, h int, pos Position) Element {
	child := e
	return newElement(w, h, ContainerPrim{Position: pos, Child: &child})
}

// Above stacks elements vertically: a.Above(b) puts a above b.
func (e Element) Above(other Element) Element {
	return Flow(Down, e, other)
}

// Below stacks elements vertically: a.Below(b) puts a below b.
func (e Element) Below(other Element) Element {
	return other.Above(e)
}

// Beside puts elements side by side: a.Beside(b) puts b to the right of a.
func (e Element) Beside(other Element) Element {
	return Flow(Right, e, other)
}
