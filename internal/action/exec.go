package action

import (
	"log"

	"github.com/go-vgo/robotgo"
)

// scrollTicks is the wheel distance for one scroll action.
const scrollTicks = 5

// OSExecutor performs actions through the OS input layer.
type OSExecutor struct{}

// NewOSExecutor returns the real executor.
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{}
}

// Execute performs the action. Unknown actions are logged and ignored.
func (e *OSExecutor) Execute(act Action) error {
	switch act {
	case ScrollUp:
		robotgo.Scroll(0, scrollTicks)
	case ScrollDown:
		robotgo.Scroll(0, -scrollTicks)
	case VolumeUp:
		return robotgo.KeyTap("audio_vol_up")
	case VolumeDown:
		return robotgo.KeyTap("audio_vol_down")
	case ZoomIn:
		return robotgo.KeyTap("=", "ctrl")
	case ZoomOut:
		return robotgo.KeyTap("-", "ctrl")
	case NoAction:
	default:
		log.Printf("action: unknown action %q, ignoring", act)
	}
	return nil
}
