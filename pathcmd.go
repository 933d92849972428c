package pathmorph

import "github.com/gogpu/gg"

// PathCommand is a full drawing: an ordered sequence of subpaths. It is the
// unit the surrounding editor and renderer operate on.
type PathCommand struct {
	subpaths []*SubPath
}

func NewPathCommand(subpaths ...*SubPath) *PathCommand {
	return &PathCommand{subpaths: subpaths}
}

// SubPaths returns the subpath sequence. The slice is owned by the path.
func (p *PathCommand) SubPaths() []*SubPath { return p.subpaths }

// IsMorphableWith reports whether other has the same subpath count and
// pairwise morphable subpaths.
func (p *PathCommand) IsMorphableWith(other *PathCommand) bool {
	if len(p.subpaths) != len(other.subpaths) {
		return false
	}
	for i, sp := range p.subpaths {
		if !sp.IsMorphableWith(other.subpaths[i]) {
			return false
		}
	}
	return true
}

// Interpolate blends start and end into the receiver at the given fraction.
// It returns false if the three paths do not share command structure; the
// receiver's geometry must then not be used.
func (p *PathCommand) Interpolate(start, end *PathCommand, fraction float64) bool {
	if !p.IsMorphableWith(start) || !p.IsMorphableWith(end) {
		Logger().Debug("interpolate rejected, paths are not morphable",
			"subpaths", len(p.subpaths),
			"startSubpaths", len(start.subpaths),
			"endSubpaths", len(end.subpaths))
		return false
	}
	for i, sp := range p.subpaths {
		if !sp.Interpolate(start.subpaths[i], end.subpaths[i], fraction) {
			return false
		}
	}
	return true
}

// Transform applies the matrices to every subpath in place.
func (p *PathCommand) Transform(ms ...gg.Matrix) {
	for _, sp := range p.subpaths {
		sp.Transform(ms...)
	}
}

// Execute renders the path: it begins a composite path on the sink, then
// emits every subpath in order.
func (p *PathCommand) Execute(sink Sink) {
	sink.BeginPath()
	for _, sp := range p.subpaths {
		sp.Execute(sink)
	}
}

// Clone returns an independent deep copy, the working copy an editor
// interpolates into while the start and end snapshots stay pristine.
func (p *PathCommand) Clone() *PathCommand {
	subpaths := make([]*SubPath, len(p.subpaths))
	for i, sp := range p.subpaths {
		subpaths[i] = sp.Clone()
	}
	return &PathCommand{subpaths: subpaths}
}
