package shimmer

// Lifetime governs whether an Effect is active at a given clock value and
// where inside its window the clock falls. Duration is in seconds (or any
// unit, as long as it matches the clock handed to evaluation).
type Lifetime struct {
	Enabled  bool
	Looping  bool
	Start    float64
	Duration float64
}

// OneShot returns a lifetime that runs once over [start, start+duration).
func OneShot(start, duration float64) Lifetime {
	return Lifetime{Enabled: true, Start: start, Duration: duration}
}

// Looping returns a lifetime that repeats with period duration, active for
// every clock value once started. Progress wraps via fract, so clocks before
// start still land in [0, 1).
func Looping(start, duration float64) Lifetime {
	return Lifetime{Enabled: true, Looping: true, Start: start, Duration: duration}
}

// Progress returns the master progress of the clock t through this lifetime.
// The second return is false when the lifetime is inactive: disabled,
// non-positive duration, or a one-shot window that t falls outside of.
// Progress values are in [0, 1); a looping lifetime never deactivates.
func (l Lifetime) Progress(t float64) (float64, bool) {
	if !l.Enabled || l.Duration <= 0 {
		return 0, false
	}
	elapsed := t - l.Start
	if l.Looping {
		return fract(elapsed / l.Duration), true
	}
	if elapsed < 0 || elapsed >= l.Duration {
		return 0, false
	}
	return elapsed / l.Duration, true
}

// Finished reports whether a one-shot lifetime's window has fully passed at
// clock t. Looping and disabled lifetimes never finish.
func (l Lifetime) Finished(t float64) bool {
	if !l.Enabled || l.Looping {
		return false
	}
	return t-l.Start >= l.Duration
}
