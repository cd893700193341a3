package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastFrameClockID int64

func nextFrameClockID() int {
	return int(atomic.AddInt64(&lastFrameClockID, 1))
}

// FrameMsg is sent once per animation frame while a FrameClock is running.
type FrameMsg struct {
	ID  int
	Seq int
}

// FrameClock schedules animation frames. Each Start begins a new sequence,
// so ticks left over from an earlier run are recognised and dropped.
type FrameClock struct {
	id      int
	seq     int
	frame   time.Duration
	running bool
}

// NewFrameClock creates a clock ticking every frame.
func NewFrameClock(frame time.Duration) *FrameClock {
	if frame <= 0 {
		frame = time.Second / 60
	}
	return &FrameClock{
		id:    nextFrameClockID(),
		frame: frame,
	}
}

// Start starts the clock. It returns nil if the clock is already running.
func (c *FrameClock) Start() tea.Cmd {
	if c.running {
		return nil
	}
	c.running = true
	c.seq++
	return c.Tick()
}

// Stop stops the clock; ticks in flight become stale.
func (c *FrameClock) Stop() {
	c.running = false
}

// Running reports whether frames are being scheduled.
func (c *FrameClock) Running() bool {
	return c.running
}

// Tick returns a command that sends a FrameMsg after one frame.
func (c *FrameClock) Tick() tea.Cmd {
	id, seq := c.id, c.seq
	return tea.Tick(c.frame, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Seq: seq}
	})
}

// Owns reports whether msg is a live tick of this clock.
func (c *FrameClock) Owns(msg FrameMsg) bool {
	return c.running && msg.ID == c.id && msg.Seq == c.seq
}
