// Package pathmorph models vector-path geometry as a tree of structured
// drawing commands and provides the algorithms needed to morph one path
// into another.
//
// # Overview
//
// A [PathCommand] is an ordered sequence of subpaths, each [SubPath] an
// ordered sequence of drawing commands, each [DrawCommand] one of six
// primitives: move, line, quadratic curve, cubic curve, close-path or
// elliptical arc. Two paths with identical command structure are morphable:
// interpolating between them at a fraction produces a smooth in-between
// shape. Closed subpaths can additionally be reversed or have their seam
// (start point) rotated along the loop, so that two otherwise-compatible
// loops can be aligned before morphing.
//
// Geometry primitives come from [github.com/gogpu/gg]: gg.Point for
// coordinates and gg.Matrix for affine transforms.
//
// # Quick Start
//
//	square := pathmorph.Build().
//		MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).Close().
//		Done()
//	diamond := pathmorph.Build().
//		MoveTo(5, -2).LineTo(12, 5).LineTo(5, 12).LineTo(-2, 5).Close().
//		Done()
//
//	if square.IsMorphableWith(diamond) {
//		blend := square.Clone()
//		blend.Interpolate(square, diamond, 0.5)
//
//		sink := pathmorph.NewPathSink()
//		blend.Execute(sink)
//		// sink.Path() is a *gg.Path holding the halfway shape.
//	}
//
// # Rendering
//
// Execute walks the tree and emits primitive operations to a [Sink].
// Shipped sinks build a gg path ([PathSink]), rasterize a coverage mask
// ([RasterSink]) or record operations for inspection ([RecordingSink]);
// any rendering surface can participate by implementing the interface.
//
// # Error Handling
//
// Structural mismatches are reported as boolean results from
// IsMorphableWith and Interpolate, never as errors or panics. A false
// return from Interpolate means the receiver's geometry must not be used.
// Input validation is the caller's responsibility: commands are assumed
// well-formed.
package pathmorph
