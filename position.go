package collage

// anchor is a three-valued position along one axis: near edge, center, or
// far edge.
type anchor int

const (
	anchorNear anchor = iota
	anchorCenter
	anchorFar
)

// Pos is an offset along one axis, either a fixed number of pixels or a
// fraction of the slack space left over in the parent.
type Pos struct {
	rel   bool
	abs   int
	ratio float64
}

// Absolute creates a Pos a fixed number of pixels from an anchor.
func Absolute(i int) Pos {
	return Pos{abs: i}
}

// Relative creates a Pos that is a fraction of the available slack space
// (parent extent minus child extent) from an anchor.
func Relative(f float64) Pos {
	return Pos{rel: true, ratio: f}
}

// resolve converts the Pos to pixels given the slack space on its axis.
func (p Pos) resolve(slack int) float64 {
	if p.rel {
		return p.ratio * float64(slack)
	}
	return float64(p.abs)
}

// Position determines where a contained element sits inside its container:
// a three-valued anchor per axis plus an offset per axis.
type Position struct {
	horizontal anchor
	vertical   anchor
	x, y       Pos
}

func position(h, v anchor, x, y Pos) Position {
	return Position{horizontal: h, vertical: v, x: x, y: y}
}

// Middle centers the element in the container.
func Middle() Position { return position(anchorCenter, anchorCenter, Relative(0.5), Relative(0.5)) }

// TopLeft puts the element in the top left corner.
func TopLeft() Position { return position(anchorNear, anchorFar, Absolute(0), Absolute(0)) }

// TopRight puts the element in the top right corner.
func TopRight() Position { return position(anchorFar, anchorFar, Absolute(0), Absolute(0)) }

// BottomLeft puts the element in the bottom left corner.
func BottomLeft() Position { return position(anchorNear, anchorNear, Absolute(0), Absolute(0)) }

// BottomRight puts the element in the bottom right corner.
func BottomRight() Position { return position(anchorFar, anchorNear, Absolute(0), Absolute(0)) }

// MidLeft centers the element against the left edge.
func MidLeft() Position { return position(anchorNear, anchorCenter, Absolute(0), Relative(0.5)) }

// MidRight centers the element against the right edge.
func MidRight() Position { return position(anchorFar, anchorCenter, Absolute(0), Relative(0.5)) }

// MidTop centers the element against the top edge.
func MidTop() Position { return position(anchorCenter, anchorFar, Relative(0.5), Absolute(0)) }

// MidBottom centers the element against the bottom edge.
func MidBottom() Position { return position(anchorCenter, anchorNear, Relative(0.5), Absolute(0)) }

// MiddleAt is Middle with custom offsets.
func MiddleAt(x, y Pos) Position { return position(anchorCenter, anchorCenter, x, y) }

// TopLeftAt is TopLeft with custom offsets.
func TopLeftAt(x, y Pos) Position { return position(anchorNear, anchorFar, x, y) }

// TopRightAt is TopRight with custom offsets.
func TopRightAt(x, y Pos) Position { return position(anchorFar, anchorFar, x, y) }

// BottomLeftAt is BottomLeft with custom offsets.
func BottomLeftAt(x, y Pos) Position { return position(anchorNear, anchorNear, x, y) }

// BottomRightAt is BottomRight with custom offsets.
func BottomRightAt(x, y Pos) Position { return position(anchorFar, anchorNear, x, y) }

// MidLeftAt is MidLeft with custom offsets.
func MidLeftAt(x, y Pos) Position { return position(anchorNear, anchorCenter, x, y) }

// MidRightAt is MidRight with custom offsets.
func MidRightAt(x, y Pos) Position { return position(anchorFar, anchorCenter, x, y) }

// MidTopAt is MidTop with custom offsets.
func MidTopAt(x, y Pos) Position { return position(anchorCenter, anchorFar, x, y) }

// MidBottomAt is MidBottom with custom offsets.
func MidBottomAt(x, y Pos) Position { return position(anchorCenter, anchorNear, x, y) }
