// Package tray provides the system tray interface: the execution toggle,
// the last stabilized label, and the emergency-stop indicator.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application. Execution starts disabled;
// the user opts in through the toggle.
type Tray struct {
	onToggle   func(enabled bool)
	onSettings func()
	onQuit     func()
	enabled    bool
	stopped    bool
	mu         sync.RWMutex

	// Menu items stored for later updates
	menuToggle    *systray.MenuItem
	menuLastLabel *systray.MenuItem
}

// New creates a new Tray instance with execution disabled.
func New() *Tray {
	return &Tray{}
}

// OnToggle sets the callback called when the execution toggle is clicked.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnSettings sets the callback called when the settings item is clicked.
func (t *Tray) OnSettings(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSettings = fn
}

// OnQuit sets the callback called when the quit item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Emotion Tracker")
	systray.SetTooltip("Webcam signal tracker")

	t.menuToggle = systray.AddMenuItem("○ Execution off", "Toggle action execution")
	systray.AddSeparator()

	t.menuLastLabel = systray.AddMenuItem("Last: none", "Last stabilized label")
	t.menuLastLabel.Disable()
	systray.AddSeparator()

	menuSettings := systray.AddMenuItem("Open Settings...", "Open settings in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit the tracker")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuSettings.ClickedCh:
				t.handleSettings()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle flips the execution state and notifies the callback. A
// toggle also clears the emergency-stop indicator; re-enabling after a
// stop is an explicit user decision.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	t.stopped = false
	enabled := t.enabled
	t.updateToggleTitle()
	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleSettings handles the settings menu item click.
func (t *Tray) handleSettings() {
	t.mu.RLock()
	callback := t.onSettings
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// updateToggleTitle refreshes the toggle text. Caller holds the lock.
func (t *Tray) updateToggleTitle() {
	if t.menuToggle == nil {
		return
	}
	switch {
	case t.stopped:
		t.menuToggle.SetTitle("■ Emergency stop")
	case t.enabled:
		t.menuToggle.SetTitle("● Execution on")
	default:
		t.menuToggle.SetTitle("○ Execution off")
	}
}

// SetLastLabel updates the last stabilized label in the menu.
func (t *Tray) SetLastLabel(name string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastLabel != nil {
		if name == "" {
			t.menuLastLabel.SetTitle("Last: none")
		} else {
			t.menuLastLabel.SetTitle("Last: " + name)
		}
	}
}

// SetStopped marks or clears the emergency-stop indicator. Marking also
// flips the internal state to disabled so the next toggle re-enables.
func (t *Tray) SetStopped(stopped bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = stopped
	if stopped {
		t.enabled = false
	}
	t.updateToggleTitle()
}

// IsEnabled returns the current execution state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
