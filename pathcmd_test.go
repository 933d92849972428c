package pathmorph

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func twoSubpathPath() *PathCommand {
	return Build().
		MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close().
		MoveTo(20, 20).QuadTo(25, 30, 30, 20).Close().
		Done()
}

func recordPath(p *PathCommand) []SinkOp {
	sink := &RecordingSink{}
	p.Execute(sink)
	return sink.Ops
}

func TestPathExecute_BeginsPathOnce(t *testing.T) {
	p := twoSubpathPath()
	ops := recordPath(p)

	if len(ops) == 0 || ops[0].Name != "beginPath" {
		t.Fatalf("first op = %v, want beginPath", ops)
	}
	for _, op := range ops[1:] {
		if op.Name == "beginPath" {
			t.Error("beginPath emitted more than once")
		}
	}

	var names []string
	for _, op := range ops {
		names = append(names, op.Name)
	}
	want := []string{
		"beginPath",
		"moveTo", "lineTo", "lineTo", "closePath",
		"moveTo", "quadTo", "closePath",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("op sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestPathIsMorphableWith(t *testing.T) {
	a := twoSubpathPath()

	t.Run("translated copy", func(t *testing.T) {
		b := twoSubpathPath()
		b.Transform(gg.Translate(100, 100))
		if !a.IsMorphableWith(b) {
			t.Error("translated copies should be morphable")
		}
	})

	t.Run("different subpath count", func(t *testing.T) {
		b := Build().MoveTo(0, 0).LineTo(1, 1).Done()
		if a.IsMorphableWith(b) {
			t.Error("different subpath counts should not be morphable")
		}
	})

	t.Run("one subpath pair differs in command count", func(t *testing.T) {
		b := Build().
			MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close().
			MoveTo(20, 20).QuadTo(25, 30, 30, 20).LineTo(35, 20).Close().
			Done()
		if a.IsMorphableWith(b) {
			t.Error("mismatched command counts should not be morphable")
		}
	})
}

func TestPathInterpolate_MismatchLeavesGeometryUntouched(t *testing.T) {
	target := twoSubpathPath()
	want := recordPath(target)

	start := twoSubpathPath()
	end := Build().MoveTo(0, 0).LineTo(1, 1).Done()

	if target.Interpolate(start, end, 0.5) {
		t.Fatal("Interpolate() = true for structurally different paths")
	}
	if diff := cmp.Diff(want, recordPath(target)); diff != "" {
		t.Errorf("failed interpolation mutated the path (-want +got):\n%s", diff)
	}
}

func TestPathInterpolate_Halfway(t *testing.T) {
	start := Build().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close().Done()
	end := Build().MoveTo(10, 10).LineTo(30, 10).LineTo(30, 30).Close().Done()

	target := start.Clone()
	if !target.Interpolate(start, end, 0.5) {
		t.Fatal("Interpolate() = false, want true")
	}

	want := recordPath(Build().MoveTo(5, 5).LineTo(20, 5).LineTo(20, 20).Close().Done())
	if diff := cmp.Diff(want, recordPath(target)); diff != "" {
		t.Errorf("halfway blend mismatch (-want +got):\n%s", diff)
	}

	// Snapshots stay untouched.
	if diff := cmp.Diff(recordPath(Build().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close().Done()), recordPath(start)); diff != "" {
		t.Errorf("start snapshot mutated (-want +got):\n%s", diff)
	}
}

func TestPathTransform_AllSubpaths(t *testing.T) {
	p := twoSubpathPath()
	p.Transform(gg.Scale(2, 2))

	first := p.SubPaths()[0]
	if first.Start() != gg.Pt(0, 0) {
		t.Errorf("first subpath start = %v, want (0,0)", first.Start())
	}
	second := p.SubPaths()[1]
	if second.Start() != gg.Pt(40, 40) {
		t.Errorf("second subpath start = %v, want (40,40)", second.Start())
	}
}

func TestPathClone_Independent(t *testing.T) {
	orig := twoSubpathPath()
	want := recordPath(orig)

	clone := orig.Clone()
	clone.Transform(gg.Scale(7, 7))
	clone.SubPaths()[0].Reverse()

	if diff := cmp.Diff(want, recordPath(orig)); diff != "" {
		t.Errorf("mutating a clone changed the original (-want +got):\n%s", diff)
	}
}

func TestPathInterpolate_ArcFlagSnapThroughTree(t *testing.T) {
	start := Build().MoveTo(0, 0).ArcTo(10, 5, 0, false, false, 20, 0).Done()
	end := Build().MoveTo(0, 10).ArcTo(10, 5, 0, true, true, 20, 10).Done()

	target := start.Clone()
	if !target.Interpolate(start, end, 0.5) {
		t.Fatal("Interpolate() = false, want true")
	}
	arc := target.SubPaths()[0].Commands()[1].(*EllipticalArcCommand)
	args := arc.Args()
	if args[arcLargeArc] != 1 || args[arcSweep] != 1 {
		t.Errorf("flags = (%v, %v), want end flags (1, 1)", args[arcLargeArc], args[arcSweep])
	}
}
