package pathmorph

import "github.com/gogpu/gg"

// Builder assembles a [PathCommand] from a sequence of drawing operations,
// tracking the current point and the subpath anchor the way a path-data
// parser would. All methods return the builder for chaining.
//
// Example:
//
//	path := pathmorph.Build().
//		MoveTo(0, 0).
//		LineTo(10, 0).
//		LineTo(10, 10).
//		Close().
//		Done()
//
// The first operation should be MoveTo. A drawing operation issued before
// any MoveTo anchors an implicit initial move at the origin.
type Builder struct {
	subpaths []*SubPath
	cmds     []DrawCommand
	current  gg.Point
	anchor   gg.Point
	started  bool
}

// Build starts a new path builder.
func Build() *Builder { return &Builder{} }

// MoveTo starts a new subpath anchored at (x, y).
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.flush()
	pt := gg.Pt(x, y)
	if b.started {
		b.cmds = append(b.cmds, NewMove(b.current, pt))
	} else {
		b.cmds = append(b.cmds, NewInitialMove(pt))
		b.started = true
	}
	b.current = pt
	b.anchor = pt
	return b
}

// LineTo draws a straight segment to (x, y).
func (b *Builder) LineTo(x, y float64) *Builder {
	b.ensureStarted()
	pt := gg.Pt(x, y)
	b.cmds = append(b.cmds, NewLine(b.current, pt))
	b.current = pt
	return b
}

// QuadTo draws a quadratic curve to (x, y) with control point (cx, cy).
func (b *Builder) QuadTo(cx, cy, x, y float64) *Builder {
	b.ensureStarted()
	pt := gg.Pt(x, y)
	b.cmds = append(b.cmds, NewQuadraticCurve(b.current, gg.Pt(cx, cy), pt))
	b.current = pt
	return b
}

// CubicTo draws a cubic curve to (x, y) with control points (c1x, c1y) and
// (c2x, c2y).
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Builder {
	b.ensureStarted()
	pt := gg.Pt(x, y)
	b.cmds = append(b.cmds, NewBezierCurve(b.current, gg.Pt(c1x, c1y), gg.Pt(c2x, c2y), pt))
	b.current = pt
	return b
}

// ArcTo draws an elliptical arc to (x, y) with radii rx and ry, an x-axis
// rotation in degrees, and the large-arc and sweep flags.
func (b *Builder) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) *Builder {
	b.ensureStarted()
	b.cmds = append(b.cmds, NewEllipticalArc(
		b.current.X, b.current.Y, rx, ry, xAxisRotation,
		flagValue(largeArc), flagValue(sweep), x, y))
	b.current = gg.Pt(x, y)
	return b
}

// Close closes the current subpath back to its anchor.
func (b *Builder) Close() *Builder {
	b.ensureStarted()
	b.cmds = append(b.cmds, NewClose(b.current, b.anchor))
	b.current = b.anchor
	return b
}

// Done finishes the path and returns it. The builder is left empty and can
// be reused.
func (b *Builder) Done() *PathCommand {
	b.flush()
	path := NewPathCommand(b.subpaths...)
	b.subpaths = nil
	b.started = false
	b.current = gg.Point{}
	b.anchor = gg.Point{}
	return path
}

func (b *Builder) flush() {
	if len(b.cmds) > 0 {
		b.subpaths = append(b.subpaths, NewSubPath(b.cmds...))
		b.cmds = nil
	}
}

func (b *Builder) ensureStarted() {
	if !b.started {
		b.cmds = append(b.cmds, NewInitialMove(gg.Point{}))
		b.started = true
	}
}

func flagValue(set bool) float64 {
	if set {
		return 1
	}
	return 0
}
