package action

import (
	"sync/atomic"

	"github.com/go-vgo/robotgo"
)

// CornerStop triggers the emergency stop when the pointer sits in a screen
// corner. Slamming the mouse into a corner is always available to the user
// no matter what the gesture layer is doing.
type CornerStop struct {
	// Margin is the corner size in pixels.
	Margin int

	position   func() (x, y int)
	screenSize func() (w, h int)
}

// DefaultCornerMargin matches the reach of a flicked pointer.
const DefaultCornerMargin = 10

// NewCornerStop builds a CornerStop over the OS pointer position.
func NewCornerStop(margin int) *CornerStop {
	if margin <= 0 {
		margin = DefaultCornerMargin
	}
	return &CornerStop{
		Margin:     margin,
		position:   robotgo.Location,
		screenSize: robotgo.GetScreenSize,
	}
}

// Triggered reports whether the pointer is inside any screen corner.
func (c *CornerStop) Triggered() bool {
	x, y := c.position()
	w, h := c.screenSize()
	if w <= 0 || h <= 0 {
		return false
	}
	nearLeft := x <= c.Margin
	nearRight := x >= w-1-c.Margin
	nearTop := y <= c.Margin
	nearBottom := y >= h-1-c.Margin
	return (nearLeft || nearRight) && (nearTop || nearBottom)
}

// ManualStop is a stop signal pulled by an explicit call, for a panic
// button in the UI. Once set it stays triggered until cleared.
type ManualStop struct {
	triggered atomic.Bool
}

// Trip latches the stop.
func (m *ManualStop) Trip() {
	m.triggered.Store(true)
}

// Clear releases the stop.
func (m *ManualStop) Clear() {
	m.triggered.Store(false)
}

// Triggered reports the latch.
func (m *ManualStop) Triggered() bool {
	return m.triggered.Load()
}

// MultiStop combines stop signals; any triggered signal triggers it.
type MultiStop []StopSignal

// Triggered polls each signal in order.
func (s MultiStop) Triggered() bool {
	for _, sig := range s {
		if sig != nil && sig.Triggered() {
			return true
		}
	}
	return false
}
