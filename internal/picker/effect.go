package picker

import "github.com/hy4ri/datepick/internal/calendar"

// Effect is a side effect requested by a transition. Runners execute them
// best-effort; the state machine never waits on them.
type Effect interface {
	effect()
}

// HapticKind distinguishes the two feedback strengths.
type HapticKind int

const (
	HapticSelection HapticKind = iota // light tick on navigation and selection
	HapticImpact                      // firmer feedback on confirm
)

// Haptic asks for feedback.
type Haptic struct {
	Kind HapticKind
}

// Indicator carries the new target of the selection marker. Visible is
// false when the selection is absent or outside the viewed month; Tap marks
// an explicit user selection that deserves a pulse.
type Indicator struct {
	Position calendar.Position
	Visible  bool
	Tap      bool
}

// Opened reports a Closed -> Open transition.
type Opened struct{}

// Closed reports an Open -> Closed transition. Confirmed is set when a date
// was delivered to the caller.
type Closed struct {
	Confirmed bool
}

func (Haptic) effect()    {}
func (Indicator) effect() {}
func (Opened) effect()    {}
func (Closed) effect()    {}
