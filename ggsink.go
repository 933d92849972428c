package pathmorph

import "github.com/gogpu/gg"

// PathSink builds a [gg.Path] from the operations it receives. Elliptical
// arcs are lowered to cubic Bezier segments, since gg paths have no native
// arc-to element.
type PathSink struct {
	path     *gg.Path
	maxAngle float64
}

var _ Sink = (*PathSink)(nil)

// NewPathSink creates a sink writing into a fresh gg path.
func NewPathSink(opts ...Option) *PathSink {
	o := applyOptions(opts)
	return &PathSink{path: gg.NewPath(), maxAngle: o.arcMaxAngle}
}

// Path returns the accumulated gg path.
func (s *PathSink) Path() *gg.Path { return s.path }

// BeginPath discards anything accumulated so far.
func (s *PathSink) BeginPath() { s.path.Clear() }

func (s *PathSink) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *PathSink) LineTo(x, y float64) { s.path.LineTo(x, y) }

func (s *PathSink) QuadTo(cx, cy, x, y float64) {
	s.path.QuadraticTo(cx, cy, x, y)
}

func (s *PathSink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (s *PathSink) ClosePath() { s.path.Close() }

func (s *PathSink) ArcTo(startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY float64) {
	args := [arcArgCount]float64{startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY}
	flattenArc(args, s.maxAngle,
		func(x, y float64) { s.path.LineTo(x, y) },
		func(c1x, c1y, c2x, c2y, x, y float64) { s.path.CubicTo(c1x, c1y, c2x, c2y, x, y) })
}
