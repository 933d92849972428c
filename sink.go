package pathmorph

// Sink receives primitive drawing operations from Execute. Implementations
// are rendering surfaces: [PathSink] builds a gg path, [RasterSink] fills a
// coverage mask, [RecordingSink] captures operations for inspection.
//
// ArcTo takes the nine raw SVG arc arguments; it is up to the sink to expand
// them into native curves.
type Sink interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ArcTo(startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY float64)
}

// SinkOp is one recorded sink operation.
type SinkOp struct {
	Name string
	Args []float64
}

// RecordingSink captures every operation it receives, in order. It is meant
// for tests and for replaying a rendered path into another sink.
type RecordingSink struct {
	Ops []SinkOp
}

func (s *RecordingSink) BeginPath() { s.record("beginPath") }
func (s *RecordingSink) MoveTo(x, y float64) { s.record("moveTo", x, y) }
func (s *RecordingSink) LineTo(x, y float64) { s.record("lineTo", x, y) }
func (s *RecordingSink) QuadTo(cx, cy, x, y float64) { s.record("quadTo", cx, cy, x, y) }
func (s *RecordingSink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.record("cubicTo", c1x, c1y, c2x, c2y, x, y)
}
func (s *RecordingSink) ClosePath() { s.record("closePath") }

func (s *RecordingSink) ArcTo(startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY float64) {
	s.record("arcTo", startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY)
}

func (s *RecordingSink) record(name string, args ...float64) {
	s.Ops = append(s.Ops, SinkOp{Name: name, Args: args})
}

// Reset discards the recorded operations.
func (s *RecordingSink) Reset() { s.Ops = s.Ops[:0] }

// Replay feeds the recorded operations into another sink.
func (s *RecordingSink) Replay(dst Sink) {
	for _, op := range s.Ops {
		a := op.Args
		switch op.Name {
		case "beginPath":
			dst.BeginPath()
		case "moveTo":
			dst.MoveTo(a[0], a[1])
		case "lineTo":
			dst.LineTo(a[0], a[1])
		case "quadTo":
			dst.QuadTo(a[0], a[1], a[2], a[3])
		case "cubicTo":
			dst.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case "closePath":
			dst.ClosePath()
		case "arcTo":
			dst.ArcTo(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
		}
	}
}
