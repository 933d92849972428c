package pathmorph

import (
	"math"

	"github.com/gogpu/gg"
)

// Indices into the elliptical arc argument vector.
const (
	arcStartX = iota
	arcStartY
	arcRX
	arcRY
	arcRotation // x-axis rotation, degrees
	arcLargeArc // 0 or 1
	arcSweep    // 0 or 1
	arcEndX
	arcEndY

	arcArgCount
)

// EllipticalArcCommand draws an elliptical arc. Unlike the other variants it
// stores a flat argument vector rather than a point list:
//
//	startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY
//
// matching the raw SVG arc-to arguments. The two flags are categorical 0/1
// values, never blended.
type EllipticalArcCommand struct {
	args [arcArgCount]float64
}

func NewEllipticalArc(startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY float64) *EllipticalArcCommand {
	return &EllipticalArcCommand{args: [arcArgCount]float64{
		startX, startY, rx, ry, xAxisRotation, largeArcFlag, sweepFlag, endX, endY,
	}}
}

// Args returns a copy of the nine raw arc arguments.
func (c *EllipticalArcCommand) Args() [arcArgCount]float64 { return c.args }

func (c *EllipticalArcCommand) Tag() byte      { return TagEllipticalArc }
func (c *EllipticalArcCommand) isDrawCommand() {}

func (c *EllipticalArcCommand) Start() (gg.Point, bool) {
	return gg.Pt(c.args[arcStartX], c.args[arcStartY]), true
}

func (c *EllipticalArcCommand) End() gg.Point {
	return gg.Pt(c.args[arcEndX], c.args[arcEndY])
}

// IsMorphableWith reports true for any arc pair. Mismatched flags do not
// block morphing; they snap during interpolation instead.
func (c *EllipticalArcCommand) IsMorphableWith(other DrawCommand) bool {
	_, ok := other.(*EllipticalArcCommand)
	return ok
}

func (c *EllipticalArcCommand) Interpolate(start, end DrawCommand, fraction float64) bool {
	if !c.IsMorphableWith(start) || !c.IsMorphableWith(end) {
		return false
	}
	a, b := start.(*EllipticalArcCommand), end.(*EllipticalArcCommand)
	for i := range c.args {
		c.args[i] = lerp(a.args[i], b.args[i], fraction)
	}
	// Flags cannot be blended: exactly at fraction 0 they are the start
	// command's, for any other fraction the end command's.
	if fraction == 0 {
		c.args[arcLargeArc] = a.args[arcLargeArc]
		c.args[arcSweep] = a.args[arcSweep]
	} else {
		c.args[arcLargeArc] = b.args[arcLargeArc]
		c.args[arcSweep] = b.args[arcSweep]
	}
	return true
}

func (c *EllipticalArcCommand) Transform(ms ...gg.Matrix) {
	start := transformPoint(gg.Pt(c.args[arcStartX], c.args[arcStartY]), ms...)
	end := transformPoint(gg.Pt(c.args[arcEndX], c.args[arcEndY]), ms...)
	rx, ry, rotation, sweep := transformArc(
		c.args[arcRX], c.args[arcRY], c.args[arcRotation], c.args[arcSweep], ms...)
	c.args[arcStartX], c.args[arcStartY] = start.X, start.Y
	c.args[arcRX], c.args[arcRY] = rx, ry
	c.args[arcRotation] = rotation
	c.args[arcSweep] = sweep
	c.args[arcEndX], c.args[arcEndY] = end.X, end.Y
}

func (c *EllipticalArcCommand) Execute(sink Sink) {
	sink.ArcTo(c.args[arcStartX], c.args[arcStartY],
		c.args[arcRX], c.args[arcRY], c.args[arcRotation],
		c.args[arcLargeArc], c.args[arcSweep],
		c.args[arcEndX], c.args[arcEndY])
}

// Reverse swaps the endpoints and flips the sweep direction. The large-arc
// flag, radii and rotation describe the ellipse itself and are unaffected.
func (c *EllipticalArcCommand) Reverse() {
	c.args[arcStartX], c.args[arcEndX] = c.args[arcEndX], c.args[arcStartX]
	c.args[arcStartY], c.args[arcEndY] = c.args[arcEndY], c.args[arcStartY]
	if c.args[arcSweep] == 0 {
		c.args[arcSweep] = 1
	} else {
		c.args[arcSweep] = 0
	}
}

func (c *EllipticalArcCommand) Clone() DrawCommand {
	cp := *c
	return &cp
}

// transformArc re-derives the radii, x-axis rotation (degrees) and sweep
// flag of an elliptical arc under a list of affine transforms. Transforming
// the endpoints alone is not enough: the transformed ellipse generally has
// different axes, and a mirroring transform reverses the sweep direction.
//
// The ellipse is the image of the unit circle under rotate(phi)*scale(rx,ry).
// Composing that mapping with the transforms' linear parts and factoring the
// result as rotate(phi')*scale(rx',ry') recovers the new description. A
// negative minor factor means the composition mirrors, which flips sweep.
func transformArc(rx, ry, rotationDeg, sweep float64, ms ...gg.Matrix) (float64, float64, float64, float64) {
	if rx == 0 || ry == 0 {
		// Degenerate arc, rendered as a straight line; only the endpoints
		// matter and those are transformed by the caller.
		return rx, ry, rotationDeg, sweep
	}
	phi := rotationDeg * math.Pi / 180
	sin, cos := math.Sincos(phi)

	// Columns of rotate(phi)*scale(rx,ry), then each transform applied in
	// order to both columns.
	a, d := rx*cos, rx*sin
	b, e := -ry*sin, ry*cos
	for _, m := range ms {
		a, d = m.A*a+m.B*d, m.D*a+m.E*d
		b, e = m.A*b+m.B*e, m.D*b+m.E*e
	}

	// Polar decomposition of the 2x2 matrix [[a,b],[d,e]] into a rotation
	// and signed singular values.
	ef := (a + e) / 2
	ff := (a - e) / 2
	gf := (d + b) / 2
	hf := (d - b) / 2
	q := math.Hypot(ef, hf)
	r := math.Hypot(ff, gf)
	major := q + r
	minor := q - r
	a1 := math.Atan2(gf, ff)
	a2 := math.Atan2(hf, ef)
	rotation := (a2 + a1) / 2

	if minor < 0 {
		minor = -minor
		if sweep == 0 {
			sweep = 1
		} else {
			sweep = 0
		}
	}

	rotation = math.Mod(rotation*180/math.Pi, 180)
	if rotation < 0 {
		rotation += 180
	}
	return major, minor, rotation, sweep
}

// flattenArc lowers the nine raw arc arguments into cubic Bezier segments,
// each spanning at most maxAngle radians, and feeds them to cubic. Degenerate
// arcs (a zero radius) fall back to a single straight segment via line; arcs
// with coincident endpoints emit nothing, per SVG semantics.
//
// Endpoint parameters are converted to center parameterization following the
// SVG arc implementation notes, including the out-of-range radii correction.
func flattenArc(args [arcArgCount]float64, maxAngle float64,
	line func(x, y float64),
	cubic func(c1x, c1y, c2x, c2y, x, y float64)) {

	x1, y1 := args[arcStartX], args[arcStartY]
	x2, y2 := args[arcEndX], args[arcEndY]
	rx, ry := math.Abs(args[arcRX]), math.Abs(args[arcRY])
	largeArc := args[arcLargeArc] != 0
	sweep := args[arcSweep] != 0

	if x1 == x2 && y1 == y2 {
		return
	}
	if rx == 0 || ry == 0 {
		line(x2, y2)
		return
	}

	phi := args[arcRotation] * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx := (x1 - x2) / 2
	dy := (y1 - y2) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// Scale radii up if the endpoints are too far apart for them.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rxSq, rySq := rx*rx, ry*ry
	x1pSq, y1pSq := x1p*x1p, y1p*y1p
	denom := rxSq*y1pSq + rySq*x1pSq
	if denom == 0 {
		line(x2, y2)
		return
	}
	num := rxSq*rySq - denom
	if num < 0 {
		num = 0
	}
	sq := math.Sqrt(num / denom)
	if largeArc == sweep {
		sq = -sq
	}
	cxp := sq * rx * y1p / ry
	cyp := -sq * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	segments := int(math.Ceil(math.Abs(dTheta) / maxAngle))
	if segments < 1 {
		segments = 1
	}
	step := dTheta / float64(segments)

	// Cubic approximation arm length for one segment of the sweep.
	alpha := math.Sin(step) * (math.Sqrt(4+3*math.Tan(step/2)*math.Tan(step/2)) - 1) / 3

	// Point and tangent on the rotated ellipse at angle t.
	pointAt := func(t float64) (float64, float64) {
		st, ct := math.Sincos(t)
		ex, ey := rx*ct, ry*st
		return cosPhi*ex - sinPhi*ey + cx, sinPhi*ex + cosPhi*ey + cy
	}
	tangentAt := func(t float64) (float64, float64) {
		st, ct := math.Sincos(t)
		ex, ey := -rx*st, ry*ct
		return cosPhi*ex - sinPhi*ey, sinPhi*ex + cosPhi*ey
	}

	t0 := theta1
	px, py := pointAt(t0)
	for i := 0; i < segments; i++ {
		t1 := t0 + step
		qx, qy := pointAt(t1)
		tx0, ty0 := tangentAt(t0)
		tx1, ty1 := tangentAt(t1)
		cubic(px+alpha*tx0, py+alpha*ty0, qx-alpha*tx1, qy-alpha*ty1, qx, qy)
		t0, px, py = t1, qx, qy
	}
}

// vectorAngle returns the signed angle from vector u to vector v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	lenU := math.Hypot(ux, uy)
	lenV := math.Hypot(vx, vy)
	if lenU == 0 || lenV == 0 {
		return 0
	}
	cos := dot / (lenU * lenV)
	if cos < -1 {
		cos = -1
	} else if cos > 1 {
		cos = 1
	}
	angle := math.Acos(cos)
	if ux*vy-uy*vx < 0 {
		angle = -angle
	}
	return angle
}
