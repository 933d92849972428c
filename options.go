package pathmorph

import "math"

// Option configures a sink during creation.
//
// Example:
//
//	// Lower arcs with at most 30 degrees per cubic segment:
//	sink := pathmorph.NewPathSink(pathmorph.WithArcMaxAngle(math.Pi / 6))
type Option func(*sinkOptions)

type sinkOptions struct {
	arcMaxAngle float64
}

func defaultSinkOptions() sinkOptions {
	return sinkOptions{arcMaxAngle: math.Pi / 2}
}

func applyOptions(opts []Option) sinkOptions {
	o := defaultSinkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithArcMaxAngle sets the maximum sweep, in radians, covered by a single
// cubic segment when lowering elliptical arcs. Smaller angles produce more
// segments and a tighter fit. The default is pi/2. Non-positive values are
// ignored.
func WithArcMaxAngle(radians float64) Option {
	return func(o *sinkOptions) {
		if radians > 0 {
			o.arcMaxAngle = radians
		}
	}
}
