// Package anim drives the selection indicator: it turns a grid position into
// a target offset and interpolates the on-screen marker toward it with
// spring physics, a fade and a tap pulse.
//
// The animator only consumes targets. It never owns the selection, so its
// settled state can always be recomputed from the picker state.
package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hy4ri/datepick/internal/calendar"
)

const epsilon = 0.01

// Layout is the geometry of the day grid in cells.
type Layout struct {
	CellWidth  int
	CellHeight int
	PadX       int
	PadY       int
}

// Target returns the offset of the top-left corner of pos.
func (l Layout) Target(pos calendar.Position) (x, y float64) {
	return float64(l.PadX + pos.Column*l.CellWidth), float64(l.PadY + pos.Row*l.CellHeight)
}

// Spring tunes the position spring.
type Spring struct {
	FPS       int
	Frequency float64 // angular frequency; higher is faster
	Damping   float64 // damping ratio; 1 is critically damped
}

// Config tunes the animator.
type Config struct {
	Spring        Spring
	FadeDuration  time.Duration
	PulseScale    float64
	PulseDuration time.Duration
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Spring:        Spring{FPS: 60, Frequency: 8.0, Damping: 0.7},
		FadeDuration:  150 * time.Millisecond,
		PulseScale:    0.85,
		PulseDuration: 80 * time.Millisecond,
	}
}

// State is the visible marker.
type State struct {
	X       float64
	Y       float64
	Opacity float64
	Scale   float64
}

// Animator interpolates State toward the latest target. A new target always
// supersedes the one in flight; velocity carries over.
type Animator struct {
	cfg    Config
	frame  time.Duration
	spring harmonica.Spring
	scaler harmonica.Spring

	state      State
	vx, vy, vs float64

	tx, ty   float64
	tOpacity float64

	pulseLeft time.Duration
	firstOpen bool
}

// New builds an animator. Invalid tuning falls back to DefaultConfig values.
func New(cfg Config) *Animator {
	def := DefaultConfig()
	if cfg.Spring.FPS <= 0 {
		cfg.Spring.FPS = def.Spring.FPS
	}
	if cfg.Spring.Frequency <= 0 {
		cfg.Spring.Frequency = def.Spring.Frequency
	}
	if cfg.Spring.Damping <= 0 {
		cfg.Spring.Damping = def.Spring.Damping
	}
	if cfg.FadeDuration < 0 {
		cfg.FadeDuration = def.FadeDuration
	}
	if cfg.PulseScale <= 0 || cfg.PulseScale > 1 {
		cfg.PulseScale = def.PulseScale
	}
	if cfg.PulseDuration < 0 {
		cfg.PulseDuration = def.PulseDuration
	}

	dt := harmonica.FPS(cfg.Spring.FPS)
	return &Animator{
		cfg:       cfg,
		frame:     time.Second / time.Duration(cfg.Spring.FPS),
		spring:    harmonica.NewSpring(dt, cfg.Spring.Frequency, cfg.Spring.Damping),
		scaler:    harmonica.NewSpring(dt, cfg.Spring.Frequency*1.5, 0.5),
		state:     State{Scale: 1},
		firstOpen: true,
	}
}

// Frame is the duration of one Step.
func (a *Animator) Frame() time.Duration { return a.frame }

// State returns the marker as it should be drawn now.
func (a *Animator) State() State { return a.state }

// Target returns where the marker is heading and its target opacity.
func (a *Animator) Target() (x, y, opacity float64) { return a.tx, a.ty, a.tOpacity }

// Reset arms the first-open flag and hides the marker. Call it on every
// Closed -> Open transition.
func (a *Animator) Reset() {
	a.firstOpen = true
	a.state = State{X: a.tx, Y: a.ty, Scale: 1}
	a.tOpacity = 0
	a.vx, a.vy, a.vs = 0, 0, 0
	a.pulseLeft = 0
}

// Show moves the marker to (x, y) and fades it in. The first Show after
// Reset is applied instantly so the marker does not fly in on first paint.
func (a *Animator) Show(x, y float64) {
	a.tx, a.ty, a.tOpacity = x, y, 1
	if a.firstOpen {
		a.firstOpen = false
		a.Jump(x, y)
		a.state.Opacity = 1
	}
}

// Hide fades the marker out where it is.
func (a *Animator) Hide() {
	a.tOpacity = 0
}

// Jump places the marker at (x, y) without animating position. Opacity is
// left to continue toward its target.
func (a *Animator) Jump(x, y float64) {
	a.tx, a.ty = x, y
	a.state.X, a.state.Y = x, y
	a.vx, a.vy = 0, 0
}

// Pulse plays the tap feedback: the marker shrinks briefly, then springs back.
func (a *Animator) Pulse() {
	a.pulseLeft = a.cfg.PulseDuration
	if a.pulseLeft < a.frame {
		a.pulseLeft = a.frame
	}
}

// Settled reports whether nothing is left to animate.
func (a *Animator) Settled() bool {
	return a.pulseLeft == 0 &&
		a.state.X == a.tx && a.state.Y == a.ty &&
		a.state.Opacity == a.tOpacity &&
		a.state.Scale == 1
}

// Step advances one frame and reports whether the marker is still moving.
func (a *Animator) Step() bool {
	if a.Settled() {
		return false
	}

	a.state.X, a.vx = a.spring.Update(a.state.X, a.vx, a.tx)
	a.state.Y, a.vy = a.spring.Update(a.state.Y, a.vy, a.ty)
	if math.Abs(a.state.X-a.tx) < epsilon && math.Abs(a.vx) < epsilon {
		a.state.X, a.vx = a.tx, 0
	}
	if math.Abs(a.state.Y-a.ty) < epsilon && math.Abs(a.vy) < epsilon {
		a.state.Y, a.vy = a.ty, 0
	}

	a.stepOpacity()
	a.stepScale()

	return !a.Settled()
}

func (a *Animator) stepOpacity() {
	if a.state.Opacity == a.tOpacity {
		return
	}
	if a.cfg.FadeDuration == 0 {
		a.state.Opacity = a.tOpacity
		return
	}
	delta := float64(a.frame) / float64(a.cfg.FadeDuration)
	if a.state.Opacity < a.tOpacity {
		a.state.Opacity = math.Min(a.tOpacity, a.state.Opacity+delta)
	} else {
		a.state.Opacity = math.Max(a.tOpacity, a.state.Opacity-delta)
	}
}

func (a *Animator) stepScale() {
	target := 1.0
	if a.pulseLeft > 0 {
		target = a.cfg.PulseScale
		a.pulseLeft -= a.frame
		if a.pulseLeft < 0 {
			a.pulseLeft = 0
		}
	}
	a.state.Scale, a.vs = a.scaler.Update(a.state.Scale, a.vs, target)
	if a.pulseLeft == 0 && math.Abs(a.state.Scale-1) < epsilon && math.Abs(a.vs) < epsilon {
		a.state.Scale, a.vs = 1, 0
	}
}

// Run steps until settled or max frames have elapsed and returns the number
// of frames taken.
func (a *Animator) Run(max int) int {
	n := 0
	for n < max && a.Step() {
		n++
	}
	return n
}
