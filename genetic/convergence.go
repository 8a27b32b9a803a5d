package genetic

// stallTracker detects when the best score stops improving.
//
// An update counts as progress when the best score grows by at least
// minGain relative to the last significant best (any strict growth when
// minGain is 0). After patience updates without progress the run has
// converged. A zero patience never converges.
type stallTracker struct {
	patience        int
	minGain         float64
	lastSignificant float64
	stale           int
	started         bool
}

// newStallTracker returns a tracker for the given patience and relative gain.
func newStallTracker(patience int, minGain float64) *stallTracker {
	return &stallTracker{patience: patience, minGain: minGain}
}

// update records the current best score and reports whether the run has converged.
func (t *stallTracker) update(best float64) bool {
	if t.patience <= 0 {
		return false
	}
	if !t.started {
		t.started = true
		t.lastSignificant = best
		return false
	}

	if t.improved(best) {
		t.lastSignificant = best
		t.stale = 0
		return false
	}
	t.stale++

	return t.stale >= t.patience
}

// improved reports whether best is a significant gain over lastSignificant.
func (t *stallTracker) improved(best float64) bool {
	if best <= t.lastSignificant {
		return false
	}
	if t.lastSignificant <= 0 {
		return true
	}

	return (best-t.lastSignificant)/t.lastSignificant >= t.minGain
}
