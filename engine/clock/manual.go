package clock

import "time"

// ManualClock is a virtual time source for deterministic tests and headless
// playback. Time only moves when Advance or Set is called.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a ManualClock starting at the Unix epoch.
//
// Returns:
//   - *ManualClock: the virtual time source
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(0, 0)}
}

// Now returns the current virtual time. Pass it to WithTimeSource.
func (m *ManualClock) Now() time.Time {
	return m.now
}

// Advance moves virtual time forward (or backward, for a negative d).
func (m *ManualClock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Set jumps to an absolute virtual time.
func (m *ManualClock) Set(t time.Time) {
	m.now = t
}
