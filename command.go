package pathmorph

import "github.com/gogpu/gg"

// Command tags, matching the SVG path-data letters.
const (
	TagMove          byte = 'M'
	TagLine          byte = 'L'
	TagQuadratic     byte = 'Q'
	TagBezier        byte = 'C'
	TagClose         byte = 'Z'
	TagEllipticalArc byte = 'A'
)

// DrawCommand is a single drawing primitive in a path. The set of concrete
// variants is closed: [MoveCommand], [LineCommand], [QuadraticCurveCommand],
// [BezierCurveCommand], [ClosePathCommand] and [EllipticalArcCommand].
//
// Commands are owned by exactly one [SubPath] at a time. Interpolate mutates
// the receiver's own points in place and never writes through the start or
// end snapshots it reads from.
type DrawCommand interface {
	// Tag returns the SVG command letter for this variant.
	Tag() byte

	// Start returns the command's start point. ok is false only for the
	// initial Move of a path, whose start is the pen's initial position
	// rather than a prior command's end.
	Start() (p gg.Point, ok bool)

	// End returns the command's end point.
	End() gg.Point

	// IsMorphableWith reports whether other is the same variant with the
	// same point structure, so that interpolation between the two is
	// well-defined. Arc pairs are always morphable.
	IsMorphableWith(other DrawCommand) bool

	// Interpolate overwrites the receiver's geometry with a linear blend
	// of start and end at the given fraction. It returns false, leaving
	// the receiver unusable, if the receiver is not morphable with both.
	Interpolate(start, end DrawCommand, fraction float64) bool

	// Transform applies the matrices to every defined point in place,
	// composed left to right.
	Transform(ms ...gg.Matrix)

	// Execute emits exactly one primitive operation to the sink.
	Execute(sink Sink)

	// Reverse flips the command's direction in place.
	Reverse()

	// Clone returns an independent deep copy.
	Clone() DrawCommand

	isDrawCommand()
}

// transformPoint applies the matrices to p in order.
func transformPoint(p gg.Point, ms ...gg.Matrix) gg.Point {
	for _, m := range ms {
		p = m.TransformPoint(p)
	}
	return p
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// MoveCommand lifts the pen to a new position without drawing.
type MoveCommand struct {
	start    gg.Point
	end      gg.Point
	hasStart bool
}

// NewMove creates a Move whose start is the previous command's end.
func NewMove(start, end gg.Point) *MoveCommand {
	return &MoveCommand{start: start, end: end, hasStart: true}
}

// NewInitialMove creates the first Move of a path. It has no start point of
// its own: the pen simply appears at end.
func NewInitialMove(end gg.Point) *MoveCommand {
	return &MoveCommand{end: end}
}

func (c *MoveCommand) Tag() byte { return TagMove }
func (c *MoveCommand) Start() (gg.Point, bool) { return c.start, c.hasStart }
func (c *MoveCommand) End() gg.Point { return c.end }
func (c *MoveCommand) Execute(sink Sink) { sink.MoveTo(c.end.X, c.end.Y) }
func (c *MoveCommand) isDrawCommand() {}

func (c *MoveCommand) IsMorphableWith(other DrawCommand) bool {
	_, ok := other.(*MoveCommand)
	return ok
}

func (c *MoveCommand) Interpolate(start, end DrawCommand, fraction float64) bool {
	if !c.IsMorphableWith(start) || !c.IsMorphableWith(end) {
		return false
	}
	a, b := start.(*MoveCommand), end.(*MoveCommand)
	// An undefined start on any side stays undefined on the receiver side
	// and is skipped; the anchor point alone defines the move.
	if c.hasStart && a.hasStart && b.hasStart {
		c.start = a.start.Lerp(b.start, fraction)
	}
	c.end = a.end.Lerp(b.end, fraction)
	return true
}

func (c *MoveCommand) Transform(ms ...gg.Matrix) {
	if c.hasStart {
		c.start = transformPoint(c.start, ms...)
	}
	c.end = transformPoint(c.end, ms...)
}

// Reverse swaps start and end. The initial Move of a path has no start, and
// reversing it would fabricate one, so it stays as is.
func (c *MoveCommand) Reverse() {
	if c.hasStart {
		c.start, c.end = c.end, c.start
	}
}

func (c *MoveCommand) Clone() DrawCommand {
	cp := *c
	return &cp
}

// LineCommand draws a straight segment.
type LineCommand struct {
	start gg.Point
	end   gg.Point
}

func NewLine(start, end gg.Point) *LineCommand {
	return &LineCommand{start: start, end: end}
}

func (c *LineCommand) Tag() byte { return TagLine }
func (c *LineCommand) Start() (gg.Point, bool) { return c.start, true }
func (c *LineCommand) End() gg.Point { return c.end }
func (c *LineCommand) Execute(sink Sink) { sink.LineTo(c.end.X, c.end.Y) }
func (c *LineCommand) isDrawCommand() {}

func (c *LineCommand) IsMorphableWith(other DrawCommand) bool {
	_, ok := other.(*LineCommand)
	return ok
}

func (c *LineCommand) Interpolate(start, end DrawCommand, fraction float64) bool {
	if !c.IsMorphableWith(start) || !c.IsMorphableWith(end) {
		return false
	}
	a, b := start.(*LineCommand), end.(*LineCommand)
	c.start = a.start.Lerp(b.start, fraction)
	c.end = a.end.Lerp(b.end, fraction)
	return true
}

func (c *LineCommand) Transform(ms ...gg.Matrix) {
	c.start = transformPoint(c.start, ms...)
	c.end = transformPoint(c.end, ms...)
}

func (c *LineCommand) Reverse() { c.start, c.end = c.end, c.start }

func (c *LineCommand) Clone() DrawCommand {
	cp := *c
	return &cp
}

// QuadraticCurveCommand draws a quadratic Bezier segment with one control
// point.
type QuadraticCurveCommand struct {
	start   gg.Point
	control gg.Point
	end     gg.Point
}

func NewQuadraticCurve(start, control, end gg.Point) *QuadraticCurveCommand {
	return &QuadraticCurveCommand{start: start, control: control, end: end}
}

func (c *QuadraticCurveCommand) Tag() byte { return TagQuadratic }
func (c *QuadraticCurveCommand) Start() (gg.Point, bool) { return c.start, true }
func (c *QuadraticCurveCommand) End() gg.Point { return c.end }
func (c *QuadraticCurveCommand) isDrawCommand() {}

// Control returns the control point.
func (c *QuadraticCurveCommand) Control() gg.Point { return c.control }

func (c *QuadraticCurveCommand) Execute(sink Sink) {
	sink.QuadTo(c.control.X, c.control.Y, c.end.X, c.end.Y)
}

func (c *QuadraticCurveCommand) IsMorphableWith(other DrawCommand) bool {
	_, ok := other.(*QuadraticCurveCommand)
	return ok
}

func (c *QuadraticCurveCommand) Interpolate(start, end DrawCommand, fraction float64) bool {
	if !c.IsMorphableWith(start) || !c.IsMorphableWith(end) {
		return false
	}
	a, b := start.(*QuadraticCurveCommand), end.(*QuadraticCurveCommand)
	c.start = a.start.Lerp(b.start, fraction)
	c.control = a.control.Lerp(b.control, fraction)
	c.end = a.end.Lerp(b.end, fraction)
	return true
}

func (c *QuadraticCurveCommand) Transform(ms ...gg.Matrix) {
	c.start = transformPoint(c.start, ms...)
	c.control = transformPoint(c.control, ms...)
	c.end = transformPoint(c.end, ms...)
}

func (c *QuadraticCurveCommand) Reverse() { c.start, c.end = c.end, c.start }

func (c *QuadraticCurveCommand) Clone() DrawCommand {
	cp := *c
	return &cp
}

// BezierCurveCommand draws a cubic Bezier segment with two control points.
type BezierCurveCommand struct {
	start    gg.Point
	control1 gg.Point
	control2 gg.Point
	end      gg.Point
}

func NewBezierCurve(start, control1, control2, end gg.Point) *BezierCurveCommand {
	return &BezierCurveCommand{start: start, control1: control1, control2: control2, end: end}
}

func (c *BezierCurveCommand) Tag() byte { return TagBezier }
func (c *BezierCurveCommand) Start() (gg.Point, bool) { return c.start, true }
func (c *BezierCurveCommand) End() gg.Point { return c.end }
func (c *BezierCurveCommand) isDrawCommand() {}

// Control1 returns the first control point.
func (c *BezierCurveCommand) Control1() gg.Point { return c.control1 }

// Control2 returns the second control point.
func (c *BezierCurveCommand) Control2() gg.Point { return c.control2 }

func (c *BezierCurveCommand) Execute(sink Sink) {
	sink.CubicTo(c.control1.X, c.control1.Y, c.control2.X, c.control2.Y, c.end.X, c.end.Y)
}

func (c *BezierCurveCommand) IsMorphableWith(other DrawCommand) bool {
	_, ok := other.(*BezierCurveCommand)
	return ok
}

func (c *BezierCurveCommand) Interpolate(start, end DrawCommand, fraction float64) bool {
	if !c.IsMorphableWith(start) || !c.IsMorphableWith(end) {
		return false
	}
	a, b := start.(*BezierCurveCommand), end.(*BezierCurveCommand)
	c.start = a.start.Lerp(b.start, fraction)
	c.control1 = a.control1.Lerp(b.control1, fraction)
	c.control2 = a.control2.Lerp(b.control2, fraction)
	c.end = a.end.Lerp(b.end, fraction)
	return true
}

func (c *BezierCurveCommand) Transform(ms ...gg.Matrix) {
	c.start = transformPoint(c.start, ms...)
	c.control1 = transformPoint(c.control1, ms...)
	c.control2 = transformPoint(c.control2, ms...)
	c.end = transformPoint(c.end, ms...)
}

// Reverse flips the traversal direction: endpoints swap and the control
// points trade places.
func (c *BezierCurveCommand) Reverse() {
	c.start, c.end = c.end, c.start
	c.control1, c.control2 = c.control2, c.control1
}

func (c *BezierCurveCommand) Clone() DrawCommand {
	cp := *c
	return &cp
}

// ClosePathCommand closes the current subpath. Its end conventionally snaps
// back to the subpath's anchor point; that convention is trusted, not
// enforced.
type ClosePathCommand struct {
	start gg.Point
	end   gg.Point
}

func NewClose(start, end gg.Point) *ClosePathCommand {
	return &ClosePathCommand{start: start, end: end}
}

func (c *ClosePathCommand) Tag() byte { return TagClose }
func (c *ClosePathCommand) Start() (gg.Point, bool) { return c.start, true }
func (c *ClosePathCommand) End() gg.Point { return c.end }
func (c *ClosePathCommand) Execute(sink Sink) { sink.ClosePath() }
func (c *ClosePathCommand) isDrawCommand() {}

func (c *ClosePathCommand) IsMorphableWith(other DrawCommand) bool {
	_, ok := other.(*ClosePathCommand)
	return ok
}

func (c *ClosePathCommand) Interpolate(start, end DrawCommand, fraction float64) bool {
	if !c.IsMorphableWith(start) || !c.IsMorphableWith(end) {
		return false
	}
	a, b := start.(*ClosePathCommand), end.(*ClosePathCommand)
	c.start = a.start.Lerp(b.start, fraction)
	c.end = a.end.Lerp(b.end, fraction)
	return true
}

func (c *ClosePathCommand) Transform(ms ...gg.Matrix) {
	c.start = transformPoint(c.start, ms...)
	c.end = transformPoint(c.end, ms...)
}

func (c *ClosePathCommand) Reverse() { c.start, c.end = c.end, c.start }

func (c *ClosePathCommand) Clone() DrawCommand {
	cp := *c
	return &cp
}
