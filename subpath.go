package pathmorph

import "github.com/gogpu/gg"

// SubPath is one unbroken pen stroke: an ordered command sequence whose
// first element is always a Move. It owns its commands exclusively, and the
// mutating operations below replace the command sequence atomically rather
// than editing it in place.
type SubPath struct {
	commands []DrawCommand
}

func NewSubPath(commands ...DrawCommand) *SubPath {
	return &SubPath{commands: commands}
}

// Commands returns the command sequence. The slice is owned by the subpath.
func (s *SubPath) Commands() []DrawCommand { return s.commands }

// Start returns the subpath's anchor point, which by convention is stored as
// the leading Move's end.
func (s *SubPath) Start() gg.Point { return s.commands[0].End() }

// End returns the last command's end point.
func (s *SubPath) End() gg.Point { return s.commands[len(s.commands)-1].End() }

// IsClosed reports whether the subpath ends exactly where it starts. The
// comparison is exact, with no tolerance.
func (s *SubPath) IsClosed() bool { return s.Start() == s.End() }

// IsMorphableWith reports whether other has the same length and pairwise
// morphable commands.
func (s *SubPath) IsMorphableWith(other *SubPath) bool {
	if len(s.commands) != len(other.commands) {
		return false
	}
	for i, cmd := range s.commands {
		if !cmd.IsMorphableWith(other.commands[i]) {
			return false
		}
	}
	return true
}

// Interpolate blends start and end positionally into the receiver's
// commands. It returns false without completing if either side is not
// morphable with the receiver; the receiver's geometry must then not be
// used.
func (s *SubPath) Interpolate(start, end *SubPath, fraction float64) bool {
	if !s.IsMorphableWith(start) || !s.IsMorphableWith(end) {
		return false
	}
	for i, cmd := range s.commands {
		if !cmd.Interpolate(start.commands[i], end.commands[i], fraction) {
			return false
		}
	}
	return true
}

// Transform applies the matrices to every command in place.
func (s *SubPath) Transform(ms ...gg.Matrix) {
	for _, cmd := range s.commands {
		cmd.Transform(ms...)
	}
}

// Execute emits the subpath's commands to the sink in order. Beginning the
// composite path is the caller's job.
func (s *SubPath) Execute(sink Sink) {
	for _, cmd := range s.commands {
		cmd.Execute(sink)
	}
}

// Clone returns an independent deep copy.
func (s *SubPath) Clone() *SubPath {
	commands := make([]DrawCommand, len(s.commands))
	for i, cmd := range s.commands {
		commands[i] = cmd.Clone()
	}
	return &SubPath{commands: commands}
}

// Reverse flips the subpath's traversal direction while keeping its anchor
// point and its closed/open structure.
//
// The rebuilt sequence leads with a Move from the old first command's start
// to the old last command's end, followed by the remaining commands reversed
// individually and in reverse order. If that leaves a ClosePath in second
// position it is demoted to a Line, and the new last command is promoted to
// a ClosePath in its place, so a closed loop stays structurally closed.
func (s *SubPath) Reverse() {
	cmds := s.commands
	if len(cmds) <= 1 {
		if len(cmds) == 1 {
			cmds[0].Reverse()
		}
		return
	}

	first, last := cmds[0], cmds[len(cmds)-1]
	reversed := make([]DrawCommand, 0, len(cmds))
	reversed = append(reversed, newMoveLike(first, last.End()))
	for i := len(cmds) - 1; i >= 1; i-- {
		cmds[i].Reverse()
		reversed = append(reversed, cmds[i])
	}

	if second, ok := reversed[1].(*ClosePathCommand); ok {
		sp, _ := second.Start()
		reversed[1] = NewLine(sp, second.End())
		newLast := reversed[len(reversed)-1]
		lp, _ := newLast.Start()
		reversed[len(reversed)-1] = NewClose(lp, newLast.End())
	}
	s.commands = reversed
}

// ShiftBack rotates the subpath's seam backward by one command: the last
// command becomes the first drawing command and the anchor moves to its
// start. Only closed subpaths with more than one command can be shifted;
// anything else is a no-op.
//
// A ClosePath rotated to the front cannot stay a close, since closing is
// tied to returning to the anchor: it is demoted to a Line, and the new last
// command is promoted to a ClosePath instead.
func (s *SubPath) ShiftBack() {
	if len(s.commands) <= 1 || !s.IsClosed() {
		return
	}
	cmds := s.commands
	prevFirst := cmds[0]
	last := cmds[len(cmds)-1]

	rotated := make([]DrawCommand, 0, len(cmds))
	rotated = append(rotated, last)
	rotated = append(rotated, cmds[:len(cmds)-1]...)

	if _, ok := last.(*ClosePathCommand); ok {
		newLast := rotated[len(rotated)-1]
		np, _ := newLast.Start()
		rotated[len(rotated)-1] = NewClose(np, newLast.End())
		lp, _ := last.Start()
		rotated[1] = NewLine(lp, last.End())
	} else {
		rotated[1] = last
	}
	secondStart, _ := rotated[1].Start()
	rotated[0] = newMoveLike(prevFirst, secondStart)
	s.commands = rotated
}

// ShiftForward rotates the seam one command forward. A closed loop of n
// commands has n-1 seam positions, so this is n-2 backward shifts; subpaths
// are small enough that the repeated rotation does not matter.
func (s *SubPath) ShiftForward() {
	if len(s.commands) <= 1 || !s.IsClosed() {
		return
	}
	for i := 0; i < len(s.commands)-2; i++ {
		s.ShiftBack()
	}
}

// newMoveLike creates a Move ending at end whose start is taken from src,
// staying start-less when src is the initial Move of a path.
func newMoveLike(src DrawCommand, end gg.Point) *MoveCommand {
	if start, ok := src.Start(); ok {
		return NewMove(start, end)
	}
	return NewInitialMove(end)
}
