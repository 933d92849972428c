package pathmorph

import (
	"image"

	"golang.org/x/image/vector"
)

// RasterSink rasterizes the path it receives into an alpha coverage mask
// using the x/image vector rasterizer. The rasterizer's primitive set maps
// one to one onto the sink operations except arcs, which are lowered to
// cubic Bezier segments.
type RasterSink struct {
	ras      *vector.Rasterizer
	width    int
	height   int
	maxAngle float64
}

var _ Sink = (*RasterSink)(nil)

// NewRasterSink creates a sink rasterizing into a width x height mask.
func NewRasterSink(width, height int, opts ...Option) *RasterSink {
	o := applyOptions(opts)
	return &RasterSink{
		ras:      vector.NewRasterizer(width, height),
		width:    width,
		height:   height,
		maxAngle: o.arcMaxAngle,
	}
}

// BeginPath resets the rasterizer for a new composite path.
func (s *RasterSink) BeginPath() { s.ras.Reset(s.width, s.height) }

func (s *RasterSink) MoveTo(x, y float64) { s.ras.MoveTo(float32(x), float32(y)) }
func (s *RasterSink) LineTo(x, y float64) { s.ras.LineTo(float32(x), float32(y)) }

func (s *RasterSink) QuadTo(cx, cy, x, y float64) {
	s.ras.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}

func (s *RasterSink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.ras.CubeTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}

func (s *RasterSink) ClosePath() { s.ras.ClosePath() }

func (s *RasterSink) ArcTo(startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY float64) {
	args := [arcArgCount]float64{startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY}
	flattenArc(args, s.maxAngle,
		func(x, y float64) { s.LineTo(x, y) },
		func(c1x, c1y, c2x, c2y, x, y float64) { s.CubicTo(c1x, c1y, c2x, c2y, x, y) })
}

// Image fills the accumulated path and returns the coverage mask.
func (s *RasterSink) Image() *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, s.width, s.height))
	s.ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
