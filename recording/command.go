// Package recording provides a backend that captures drawing operations
// as typed command structures instead of producing pixels.
//
// Commands are stored in order and can be inspected in tests or replayed
// to any other backend. Typed structs were chosen over a binary format
// for inspectability and debuggability.
//
// # Example
//
//	rec := recording.NewRecorder()
//	r := collage.NewRenderer(rec)
//	r.DrawForms(100, 100, collage.Circle(40).Filled(collage.Blue))
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd)
//	}
package recording

import (
	"fmt"

	"github.com/gogpu/collage"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdBegin        CommandType = iota // Begin a frame
	CmdEnd                             // End a frame
	CmdSetTransform                    // Set transformation matrix
	CmdSetScissor                      // Set scissor rectangle
	CmdClearScissor                    // Clear scissor rectangle

	// Drawing commands
	CmdClear               // Clear viewport with a color
	CmdStrokeSegment       // Stroke a line segment
	CmdFillPolygon         // Fill a polygon with a solid color
	CmdFillContours        // Fill multi-contour region
	CmdFillPolygonTexture  // Fill a polygon with a tiled texture
	CmdFillPolygonGradient // Fill a polygon with a gradient
	CmdDrawImage           // Draw an image element
	CmdDrawSprite          // Draw a sprite sheet cutout
)

var commandTypeNames = [...]string{
	CmdBegin:               "Begin",
	CmdEnd:                 "End",
	CmdSetTransform:        "SetTransform",
	CmdSetScissor:          "SetScissor",
	CmdClearScissor:        "ClearScissor",
	CmdClear:               "Clear",
	CmdStrokeSegment:       "StrokeSegment",
	CmdFillPolygon:         "FillPolygon",
	CmdFillContours:        "FillContours",
	CmdFillPolygonTexture:  "FillPolygonTexture",
	CmdFillPolygonGradient: "FillPolygonGradient",
	CmdDrawImage:           "DrawImage",
	CmdDrawSprite:          "DrawSprite",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginCommand starts a frame at the given dimensions.
type BeginCommand struct {
	Width, Height int
}

func (c BeginCommand) Type() CommandType { return CmdBegin }

func (c BeginCommand) String() string {
	return fmt.Sprintf("Begin(%d, %d)", c.Width, c.Height)
}

// EndCommand finishes a frame.
type EndCommand struct{}

func (c EndCommand) Type() CommandType { return CmdEnd }

func (c EndCommand) String() string { return "End" }

// SetTransformCommand sets the current transformation matrix.
type SetTransformCommand struct {
	Transform collage.Matrix
}

func (c SetTransformCommand) Type() CommandType { return CmdSetTransform }

func (c SetTransformCommand) String() string {
	m := c.Transform
	return fmt.Sprintf("SetTransform(%.3g, %.3g, %.3g, %.3g, %.3g, %.3g)",
		m.A, m.B, m.C, m.D, m.X, m.Y)
}

// SetScissorCommand limits drawing to a device-space rectangle.
type SetScissorCommand struct {
	Scissor collage.Scissor
}

func (c SetScissorCommand) Type() CommandType { return CmdSetScissor }

func (c SetScissorCommand) String() string {
	s := c.Scissor
	return fmt.Sprintf("SetScissor(%.3g, %.3g, %.3g, %.3g)", s.MinX, s.MinY, s.MaxX, s.MaxY)
}

// ClearScissorCommand removes the scissor limit.
type ClearScissorCommand struct{}

func (c ClearScissorCommand) Type() CommandType { return CmdClearScissor }

func (c ClearScissorCommand) String() string { return "ClearScissor" }

// ClearCommand paints the viewport with a color.
type ClearCommand struct {
	Color collage.Color
}

func (c ClearCommand) Type() CommandType { return CmdClear }

func (c ClearCommand) String() string { return fmt.Sprintf("Clear(%v)", c.Color) }

// StrokeSegmentCommand strokes a single line segment.
type StrokeSegmentCommand struct {
	A, B  collage.Point
	Style collage.LineStyle
}

func (c StrokeSegmentCommand) Type() CommandType { return CmdStrokeSegment }

func (c StrokeSegmentCommand) String() string {
	return fmt.Sprintf("StrokeSegment((%.3g, %.3g), (%.3g, %.3g), w=%.3g)",
		c.A.X, c.A.Y, c.B.X, c.B.Y, c.Style.Width)
}

// FillPolygonCommand fills a closed polygon with a solid color.
type FillPolygonCommand struct {
	Points []collage.Point
	Color  collage.Color
}

func (c FillPolygonCommand) Type() CommandType { return CmdFillPolygon }

func (c FillPolygonCommand) String() string {
	return fmt.Sprintf("FillPolygon(%d points, %v)", len(c.Points), c.Color)
}

// FillContoursCommand fills a multi-contour region.
type FillContoursCommand struct {
	Contours [][]collage.Point
	Color    collage.Color
}

func (c FillContoursCommand) Type() CommandType { return CmdFillContours }

func (c FillContoursCommand) String() string {
	return fmt.Sprintf("FillContours(%d contours, %v)", len(c.Contours), c.Color)
}

// FillPolygonTextureCommand fills a closed polygon with a tiled texture.
type FillPolygonTextureCommand struct {
	Points []collage.Point
	Path   string
	Alpha  float64
}

func (c FillPolygonTextureCommand) Type() CommandType { return CmdFillPolygonTexture }

func (c FillPolygonTextureCommand) String() string {
	return fmt.Sprintf("FillPolygonTexture(%d points, %q)", len(c.Points), c.Path)
}

// FillPolygonGradientCommand fills a closed polygon with a gradient.
type FillPolygonGradientCommand struct {
	Points   []collage.Point
	Gradient collage.Gradient
	Alpha    float64
}

func (c FillPolygonGradientCommand) Type() CommandType { return CmdFillPolygonGradient }

func (c FillPolygonGradientCommand) String() string {
	kind := "linear"
	if c.Gradient.Radial {
		kind = "radial"
	}
	return fmt.Sprintf("FillPolygonGradient(%d points, %s)", len(c.Points), kind)
}

// DrawImageCommand draws an image fit to a box.
type DrawImageCommand struct {
	Style        collage.ImageStyle
	CropX, CropY int
	W, H         int
	Path         string
	Alpha        float64
}

func (c DrawImageCommand) Type() CommandType { return CmdDrawImage }

func (c DrawImageCommand) String() string {
	return fmt.Sprintf("DrawImage(%dx%d, %q)", c.W, c.H, c.Path)
}

// DrawSpriteCommand draws a rectangle cut from a sprite sheet.
type DrawSpriteCommand struct {
	SrcX, SrcY int
	W, H       int
	Path       string
	Alpha      float64
}

func (c DrawSpriteCommand) Type() CommandType { return CmdDrawSprite }

func (c DrawSpriteCommand) String() string {
	return fmt.Sprintf("DrawSprite(%d, %d, %dx%d, %q)", c.SrcX, c.SrcY, c.W, c.H, c.Path)
}
