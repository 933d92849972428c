package pathmorph

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestArcInterpolate_FlagSnap(t *testing.T) {
	start := NewEllipticalArc(0, 0, 10, 5, 0, 0, 0, 20, 0)
	end := NewEllipticalArc(0, 10, 10, 5, 0, 1, 1, 20, 10)

	tests := []struct {
		name      string
		fraction  float64
		wantLarge float64
		wantSweep float64
	}{
		{"exactly zero takes start flags", 0, 0, 0},
		{"tiny fraction takes end flags", 1e-9, 1, 1},
		{"quarter takes end flags", 0.25, 1, 1},
		{"one takes end flags", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := start.Clone().(*EllipticalArcCommand)
			if !target.Interpolate(start, end, tt.fraction) {
				t.Fatal("Interpolate() = false, want true")
			}
			args := target.Args()
			if args[arcLargeArc] != tt.wantLarge || args[arcSweep] != tt.wantSweep {
				t.Errorf("flags = (%v, %v), want (%v, %v)",
					args[arcLargeArc], args[arcSweep], tt.wantLarge, tt.wantSweep)
			}
		})
	}
}

func TestArcInterpolate_LinearArgs(t *testing.T) {
	start := NewEllipticalArc(0, 0, 10, 4, 0, 0, 0, 20, 0)
	end := NewEllipticalArc(10, 10, 20, 8, 90, 1, 1, 40, 20)
	target := start.Clone().(*EllipticalArcCommand)
	if !target.Interpolate(start, end, 0.5) {
		t.Fatal("Interpolate() = false, want true")
	}
	args := target.Args()
	want := [arcArgCount]float64{5, 5, 15, 6, 45, 1, 1, 30, 10}
	for i := range want {
		if !approx(args[i], want[i]) {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}
}

func TestArcReverse(t *testing.T) {
	c := NewEllipticalArc(1, 2, 10, 5, 30, 1, 0, 7, 8)
	c.Reverse()
	args := c.Args()
	want := [arcArgCount]float64{7, 8, 10, 5, 30, 1, 1, 1, 2}
	if args != want {
		t.Errorf("reversed args = %v, want %v", args, want)
	}

	c.Reverse()
	orig := [arcArgCount]float64{1, 2, 10, 5, 30, 1, 0, 7, 8}
	if c.Args() != orig {
		t.Errorf("double reverse = %v, want %v", c.Args(), orig)
	}
}

func TestArcTransform_UniformScale(t *testing.T) {
	c := NewEllipticalArc(1, 1, 4, 2, 0, 1, 0, 9, 1)
	c.Transform(gg.Scale(2, 2))
	args := c.Args()

	if args[arcStartX] != 2 || args[arcStartY] != 2 || args[arcEndX] != 18 || args[arcEndY] != 2 {
		t.Errorf("endpoints not doubled: %v", args)
	}
	if !approx(args[arcRX], 8) || !approx(args[arcRY], 4) {
		t.Errorf("radii = (%v, %v), want (8, 4)", args[arcRX], args[arcRY])
	}
	if !approx(args[arcRotation], 0) {
		t.Errorf("rotation = %v, want 0", args[arcRotation])
	}
	if args[arcLargeArc] != 1 || args[arcSweep] != 0 {
		t.Errorf("flags changed: %v", args)
	}
}

func TestArcTransform_Rotate90(t *testing.T) {
	c := NewEllipticalArc(4, 0, 4, 2, 0, 0, 1, -4, 0)
	c.Transform(gg.Rotate(math.Pi / 2))
	args := c.Args()

	// The major axis keeps length 4 but now runs vertically, expressed as
	// a 90 degree x-axis rotation.
	if !approx(args[arcRX], 4) || !approx(args[arcRY], 2) {
		t.Errorf("radii = (%v, %v), want (4, 2)", args[arcRX], args[arcRY])
	}
	if !approx(args[arcRotation], 90) {
		t.Errorf("rotation = %v, want 90", args[arcRotation])
	}
	if !approx(args[arcStartX], 0) || !approx(args[arcStartY], 4) {
		t.Errorf("start = (%v, %v), want (0, 4)", args[arcStartX], args[arcStartY])
	}
	if args[arcSweep] != 1 {
		t.Errorf("sweep = %v, want 1", args[arcSweep])
	}
}

func TestArcTransform_MirrorFlipsSweep(t *testing.T) {
	tests := []struct {
		name  string
		sweep float64
		want  float64
	}{
		{"sweep 0 flips to 1", 0, 1},
		{"sweep 1 flips to 0", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEllipticalArc(0, 0, 4, 2, 0, 0, tt.sweep, 8, 0)
			c.Transform(gg.Scale(1, -1))
			args := c.Args()
			if args[arcSweep] != tt.want {
				t.Errorf("sweep = %v, want %v", args[arcSweep], tt.want)
			}
			if !approx(args[arcRX], 4) || !approx(args[arcRY], 2) {
				t.Errorf("radii = (%v, %v), want (4, 2)", args[arcRX], args[arcRY])
			}
			if args[arcLargeArc] != 0 {
				t.Errorf("large-arc flag changed: %v", args[arcLargeArc])
			}
		})
	}
}

func TestArcTransform_DegenerateRadius(t *testing.T) {
	c := NewEllipticalArc(0, 0, 0, 2, 15, 1, 1, 8, 0)
	c.Transform(gg.Scale(2, 2))
	args := c.Args()
	if args[arcRX] != 0 || args[arcRY] != 2 || args[arcRotation] != 15 {
		t.Errorf("degenerate arc description changed: %v", args)
	}
	if args[arcEndX] != 16 {
		t.Errorf("end X = %v, want 16", args[arcEndX])
	}
}

func TestFlattenArc_Semicircle(t *testing.T) {
	// Upper semicircle of radius 10 from (0,0) to (20,0), center (10,0).
	args := [arcArgCount]float64{0, 0, 10, 10, 0, 0, 1, 20, 0}

	var ends []gg.Point
	flattenArc(args, math.Pi/2,
		func(x, y float64) { t.Fatalf("unexpected line fallback to (%v, %v)", x, y) },
		func(c1x, c1y, c2x, c2y, x, y float64) { ends = append(ends, gg.Pt(x, y)) })

	if len(ends) != 2 {
		t.Fatalf("got %d segments, want 2", len(ends))
	}
	last := ends[len(ends)-1]
	if !approx(last.X, 20) || !approx(last.Y, 0) {
		t.Errorf("final point = %v, want (20, 0)", last)
	}
	for _, p := range ends {
		r := math.Hypot(p.X-10, p.Y-0)
		if math.Abs(r-10) > 1e-6 {
			t.Errorf("segment endpoint %v is off the circle (r = %v)", p, r)
		}
	}
}

func TestFlattenArc_Degenerate(t *testing.T) {
	t.Run("coincident endpoints emit nothing", func(t *testing.T) {
		args := [arcArgCount]float64{5, 5, 10, 10, 0, 0, 1, 5, 5}
		flattenArc(args, math.Pi/2,
			func(x, y float64) { t.Error("unexpected line") },
			func(_, _, _, _, _, _ float64) { t.Error("unexpected cubic") })
	})

	t.Run("zero radius falls back to a line", func(t *testing.T) {
		args := [arcArgCount]float64{0, 0, 0, 10, 0, 0, 1, 8, 6}
		var lines int
		flattenArc(args, math.Pi/2,
			func(x, y float64) {
				lines++
				if x != 8 || y != 6 {
					t.Errorf("line to (%v, %v), want (8, 6)", x, y)
				}
			},
			func(_, _, _, _, _, _ float64) { t.Error("unexpected cubic") })
		if lines != 1 {
			t.Errorf("got %d lines, want 1", lines)
		}
	})
}

func TestFlattenArc_SegmentCount(t *testing.T) {
	// A full 180 degree sweep with a 0.6 radian cap needs 6 segments.
	args := [arcArgCount]float64{0, 0, 10, 10, 0, 0, 1, 20, 0}
	var segments int
	flattenArc(args, 0.6,
		func(_, _ float64) {},
		func(_, _, _, _, _, _ float64) { segments++ })
	if segments != 6 {
		t.Errorf("got %d segments, want 6", segments)
	}
}
