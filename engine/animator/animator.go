package animator

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
)

// Animator defines the per-frame update contract shared by every scene animation.
//
// Update is called once per frame on the frame goroutine. Implementations look
// their target up in the scene on every call and silently skip the frame when
// it is not available yet. Update never fails.
type Animator interface {
	// Update advances the animation by one frame.
	//
	// Parameters:
	//   - frame: timing of the current frame
	Update(frame clock.Frame)
}

// Func adapts a plain function to the Animator interface.
type Func func(frame clock.Frame)

// Update calls f(frame).
func (f Func) Update(frame clock.Frame) {
	f(frame)
}

// StepMode selects how frame-driven animators advance their internal phase.
type StepMode int

const (
	// StepFixed adds a fixed increment per Update call, independent of frame
	// duration. Motion speed scales with frame rate.
	StepFixed StepMode = iota

	// StepDelta scales the increment by the frame delta in seconds.
	StepDelta
)

// String returns the configuration name of the mode.
func (m StepMode) String() string {
	switch m {
	case StepFixed:
		return "fixed"
	case StepDelta:
		return "delta"
	default:
		return fmt.Sprintf("StepMode(%d)", int(m))
	}
}

// ParseStepMode converts a configuration value ("fixed" or "delta") into a StepMode.
//
// Parameters:
//   - s: the mode name, case-insensitive; "" means fixed
//
// Returns:
//   - StepMode: the parsed mode
//   - error: non-nil for unknown names
func ParseStepMode(s string) (StepMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return StepFixed, nil
	case "delta":
		return StepDelta, nil
	default:
		return StepFixed, fmt.Errorf("unknown animation step mode %q", s)
	}
}

// stepper computes the per-call increment for a StepMode.
type stepper struct {
	mode  StepMode
	fixed float32 // increment per call in StepFixed
	rate  float32 // increment per second in StepDelta
}

func (s stepper) step(frame clock.Frame) float32 {
	if s.mode == StepDelta {
		return s.rate * frame.DeltaSeconds()
	}
	return s.fixed
}
