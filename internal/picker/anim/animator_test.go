package anim

import (
	"testing"
	"time"

	"github.com/hy4ri/datepick/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var layout = Layout{CellWidth: 4, CellHeight: 1, PadX: 1, PadY: 2}

func TestLayout_Target(t *testing.T) {
	x, y := layout.Target(calendar.Position{Column: 3, Row: 2})
	assert.Equal(t, 13.0, x)
	assert.Equal(t, 4.0, y)

	x, y = layout.Target(calendar.Position{})
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
}

func TestAnimator_FirstShowIsInstant(t *testing.T) {
	a := New(DefaultConfig())
	a.Show(12, 3)

	assert.Equal(t, State{X: 12, Y: 3, Opacity: 1, Scale: 1}, a.State())
	assert.True(t, a.Settled())
	assert.False(t, a.Step())
}

func TestAnimator_LaterShowSpringsToTarget(t *testing.T) {
	a := New(DefaultConfig())
	a.Show(0, 0)
	a.Show(24, 4)

	require.False(t, a.Settled())
	a.Step()
	s := a.State()
	assert.Greater(t, s.X, 0.0)
	assert.Less(t, s.X, 24.0, "position is interpolated, not jumped")

	frames := a.Run(1000)
	assert.Less(t, frames, 1000)
	assert.Equal(t, State{X: 24, Y: 4, Opacity: 1, Scale: 1}, a.State())
}

func TestAnimator_ResetRearmsFirstOpen(t *testing.T) {
	a := New(DefaultConfig())
	a.Show(4, 0)
	a.Show(8, 0)
	a.Run(1000)

	a.Reset()
	assert.Equal(t, 0.0, a.State().Opacity)

	a.Show(20, 2)
	assert.Equal(t, State{X: 20, Y: 2, Opacity: 1, Scale: 1}, a.State())
}

func TestAnimator_HideFadesWithoutMoving(t *testing.T) {
	a := New(DefaultConfig())
	a.Show(8, 1)
	a.Hide()

	a.Step()
	s := a.State()
	assert.Less(t, s.Opacity, 1.0)
	assert.Equal(t, 8.0, s.X)

	a.Run(1000)
	assert.Equal(t, State{X: 8, Y: 1, Opacity: 0, Scale: 1}, a.State())
}

func TestAnimator_ShowAfterHideFadesBackIn(t *testing.T) {
	a := New(DefaultConfig())
	a.Show(8, 1)
	a.Hide()
	a.Run(1000)

	a.Show(16, 1)
	assert.Equal(t, 0.0, a.State().Opacity, "only the first show is instant")
	a.Run(1000)
	assert.Equal(t, State{X: 16, Y: 1, Opacity: 1, Scale: 1}, a.State())
}

func TestAnimator_PulseDipsAndRecovers(t *testing.T) {
	a := New(DefaultConfig())
	a.Show(4, 1)
	a.Pulse()
	require.False(t, a.Settled())

	minScale := 1.0
	for i := 0; i < 1000 && a.Step(); i++ {
		if s := a.State().Scale; s < minScale {
			minScale = s
		}
	}
	assert.Less(t, minScale, 1.0)
	assert.Equal(t, 1.0, a.State().Scale)
	assert.Equal(t, 4.0, a.State().X, "pulse does not move the marker")
}

func TestAnimator_LastTargetWins(t *testing.T) {
	a := New(DefaultConfig())
	a.Show(0, 0)
	a.Show(28, 5)
	for i := 0; i < 3; i++ {
		a.Step()
	}
	a.Show(4, 1)
	a.Run(1000)

	assert.Equal(t, State{X: 4, Y: 1, Opacity: 1, Scale: 1}, a.State())
}

func TestAnimator_JumpKeepsFade(t *testing.T) {
	a := New(DefaultConfig())
	a.Show(0, 0)
	a.Hide()
	a.Step()
	before := a.State().Opacity

	a.Jump(10, 2)
	s := a.State()
	assert.Equal(t, 10.0, s.X)
	assert.Equal(t, 2.0, s.Y)
	assert.Equal(t, before, s.Opacity)
}

func TestNew_SanitisesTuning(t *testing.T) {
	a := New(Config{})
	assert.Equal(t, time.Second/60, a.Frame())

	a = New(Config{FadeDuration: 0, Spring: Spring{FPS: 30}})
	assert.Equal(t, time.Second/30, a.Frame())
	a.Show(0, 0)
	a.Hide()
	a.Step()
	assert.Equal(t, 0.0, a.State().Opacity, "zero fade applies at once")
}
