package recording

import (
	"strings"

	"github.com/gogpu/collage"
)

// Recorder is a collage.Backend that appends every operation it receives
// to a command list. It never fails and produces no pixels.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ collage.Backend = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// Commands returns the recorded commands in the order they were received.
// The returned slice is owned by the Recorder; callers must not modify it.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Size returns the dimensions from the most recent Begin.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// Count returns how many recorded commands have the given type.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands, keeping allocated capacity.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.width, r.height = 0, 0
}

// String returns the recorded commands one per line, for debugging and
// golden comparisons in tests.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, cmd := range r.commands {
		if s, ok := cmd.(interface{ String() string }); ok {
			b.WriteString(s.String())
		} else {
			b.WriteString(cmd.Type().String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Playback replays the recorded commands to another backend. Begin and End
// errors from the target abort the replay.
func (r *Recorder) Playback(b collage.Backend) error {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginCommand:
			if err := b.Begin(c.Width, c.Height); err != nil {
				return err
			}
		case EndCommand:
			if err := b.End(); err != nil {
				return err
			}
		case SetTransformCommand:
			b.SetTransform(c.Transform)
		case SetScissorCommand:
			b.SetScissor(c.Scissor)
		case ClearScissorCommand:
			b.ClearScissor()
		case ClearCommand:
			b.Clear(c.Color)
		case StrokeSegmentCommand:
			b.StrokeSegment(c.A, c.B, c.Style)
		case FillPolygonCommand:
			b.FillPolygon(c.Points, c.Color)
		case FillContoursCommand:
			b.FillContours(c.Contours, c.Color)
		case FillPolygonTextureCommand:
			b.FillPolygonTexture(c.Points, c.Path, c.Alpha)
		case FillPolygonGradientCommand:
			b.FillPolygonGradient(c.Points, c.Gradient, c.Alpha)
		case DrawImageCommand:
			b.DrawImage(c.Style, c.CropX, c.CropY, c.W, c.H, c.Path, c.Alpha)
		case DrawSpriteCommand:
			b.DrawSprite(c.SrcX, c.SrcY, c.W, c.H, c.Path, c.Alpha)
		}
	}
	return nil
}

// Begin implements collage.Backend.
func (r *Recorder) Begin(width, height int) error {
	r.width, r.height = width, height
	r.commands = append(r.commands, BeginCommand{Width: width, Height: height})
	return nil
}

// End implements collage.Backend.
func (r *Recorder) End() error {
	r.commands = append(r.commands, EndCommand{})
	return nil
}

// SetTransform implements collage.Backend.
func (r *Recorder) SetTransform(m collage.Matrix) {
	r.commands = append(r.commands, SetTransformCommand{Transform: m})
}

// SetScissor implements collage.Backend.
func (r *Recorder) SetScissor(s collage.Scissor) {
	r.commands = append(r.commands, SetScissorCommand{Scissor: s})
}

// ClearScissor implements collage.Backend.
func (r *Recorder) ClearScissor() {
	r.commands = append(r.commands, ClearScissorCommand{})
}

// Clear implements collage.Backend.
func (r *Recorder) Clear(c collage.Color) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// StrokeSegment implements collage.Backend.
func (r *Recorder) StrokeSegment(a, b collage.Point, style collage.LineStyle) {
	r.commands = append(r.commands, StrokeSegmentCommand{A: a, B: b, Style: style})
}

// FillPolygon implements collage.Backend.
func (r *Recorder) FillPolygon(points []collage.Point, c collage.Color) {
	r.commands = append(r.commands, FillPolygonCommand{Points: points, Color: c})
}

// FillContours implements collage.Backend.
func (r *Recorder) FillContours(contours [][]collage.Point, c collage.Color) {
	r.commands = append(r.commands, FillContoursCommand{Contours: contours, Color: c})
}

// FillPolygonTexture implements collage.Backend.
func (r *Recorder) FillPolygonTexture(points []collage.Point, path string, alpha float64) {
	r.commands = append(r.commands, FillPolygonTextureCommand{Points: points, Path: path, Alpha: alpha})
}

// FillPolygonGradient implements collage.Backend.
func (r *Recorder) FillPolygonGradient(points []collage.Point, g collage.Gradient, alpha float64) {
	r.commands = append(r.commands, FillPolygonGradientCommand{Points: points, Gradient: g, Alpha: alpha})
}

// DrawImage implements collage.Backend.
func (r *Recorder) DrawImage(style collage.ImageStyle, cropX, cropY, w, h int, path string, alpha float64) {
	r.commands = append(r.commands, DrawImageCommand{
		Style: style, CropX: cropX, CropY: cropY, W: w, H: h, Path: path, Alpha: alpha,
	})
}

// DrawSprite implements collage.Backend.
func (r *Recorder) DrawSprite(srcX, srcY, w, h int, path string, alpha float64) {
	r.commands = append(r.commands, DrawSpriteCommand{
		SrcX: srcX, SrcY: srcY, W: w, H: h, Path: path, Alpha: alpha,
	})
}
