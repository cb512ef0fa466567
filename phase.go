package shimmer

// Phase restricts a sub-effect to a window of its parent effect's master
// progress. Start and End are clamped to [0, 1] at evaluation time. The zero
// value {0, 0} is degenerate and never activates; sub-effect constructors
// default to FullWindow.
type Phase struct {
	Start float64
	End   float64
}

// FullWindow is the phase spanning the entire parent lifetime.
var FullWindow = Phase{0, 1}

// NewPhase returns a phase window over [start, end].
func NewPhase(start, end float64) Phase {
	return Phase{Start: start, End: end}
}

// Window remaps the parent's master progress into this window's local [0, 1]
// progress. The second return is false when the window is degenerate
// (start >= end after clamping) or progress falls outside [start, end].
func (p Phase) Window(progress float64) (float64, bool) {
	start := clamp01(p.Start)
	end := clamp01(p.End)
	if start >= end || progress < start || progress > end {
		return 0, false
	}
	return (progress - start) / (end - start), true
}
