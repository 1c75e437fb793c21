// Package collage provides a declarative 2D vector-graphics scene library.
//
// # Overview
//
// collage lets you build an immutable tree of styled shapes, paths, text and
// nested groups (Forms), apply affine transforms and opacity to them
// compositionally, and lay out rectangular widgets (Elements) with a simple
// box-flow model. A single draw traversal walks both trees, accumulating
// transforms, opacity and clipping top-down, and emits primitive calls to a
// pluggable Backend.
//
// Forms use the coordinate system you might see in an algebra problem: the
// origin is at the center of the collage and the y-axis points up. Elements
// use ordinary top-left, y-down widget coordinates; the Collage element
// bridges the two.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/collage"
//		"github.com/gogpu/collage/raster"
//	)
//
//	form := collage.Group(
//		collage.Rect(60, 40).Filled(collage.Blue).Shift(10, 0).Rotate(math.Pi/4),
//		collage.Circle(5).Outlined(collage.Solid(collage.Red)),
//	)
//
//	backend := raster.New()
//	r := collage.NewRenderer(backend)
//	r.DrawElement(collage.Collage(640, 480, form).Clear(collage.Black))
//	backend.SavePNG("output.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, Matrix, Shape, Form, Text, Element, Renderer
//   - Backends: recording (typed command capture and replay), raster
//     (software rasterizer producing *image.RGBA / PNG)
//   - Capabilities: textmetrics (font-backed text measurement and glyph
//     outlines), injected into the Renderer
//
// Trees are plain immutable values. Builder methods return modified copies,
// so sub-Forms can be shared freely across parents; typical use rebuilds the
// whole tree every frame from current animation state.
package collage
