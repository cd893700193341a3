// Package haptic provides the feedback service the picker pokes on navigation,
// selection and confirm. Calls are fire-and-forget: failures are logged and
// never reported back.
package haptic

import (
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/datepick/internal/debuglog"
)

// Service is the feedback collaborator.
type Service interface {
	// Selection is the light tick used for navigation and day selection.
	Selection()
	// Impact is the firmer feedback used on confirm.
	Impact()
}

// Noop discards all feedback.
type Noop struct{}

func (Noop) Selection() {}
func (Noop) Impact()    {}

// beepFunc matches beeep.Beep.
type beepFunc func(freq float64, duration int) error

// Terminal stands in for haptics on a terminal by ringing the bell.
type Terminal struct {
	bellOnSelection bool
	beep            beepFunc
}

// NewTerminal returns a terminal feedback service. Selection ticks only ring
// when bellOnSelection is set; impacts always do.
func NewTerminal(bellOnSelection bool) *Terminal {
	return &Terminal{
		bellOnSelection: bellOnSelection,
		beep:            beeep.Beep,
	}
}

// Selection rings a short, high bell if enabled.
func (t *Terminal) Selection() {
	if !t.bellOnSelection {
		return
	}
	t.ring(beeep.DefaultFreq*2, beeep.DefaultDuration/4)
}

// Impact rings the default bell.
func (t *Terminal) Impact() {
	t.ring(beeep.DefaultFreq, beeep.DefaultDuration)
}

func (t *Terminal) ring(freq float64, duration int) {
	if err := t.beep(freq, duration); err != nil {
		debuglog.Printf("haptic: beep failed: %v", err)
	}
}
