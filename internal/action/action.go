// Package action is the safety-gated boundary between intents and real OS
// operations. Everything upstream is pure computation; this package is the
// only place a frame can cause a visible side effect, so execution is off
// by default and an emergency stop forces it back off.
package action

import (
	"time"

	"github.com/google/uuid"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/intent"
)

// Action identifies a concrete OS operation.
type Action string

const (
	NoAction   Action = "no_action"
	ScrollUp   Action = "scroll_up"
	ScrollDown Action = "scroll_down"
	VolumeUp   Action = "volume_up"
	VolumeDown Action = "volume_down"
	ZoomIn     Action = "zoom_in"
	ZoomOut    Action = "zoom_out"
)

// Status reports what the gate did with a dispatch.
type Status string

const (
	StatusExecuted      Status = "executed"
	StatusBlocked       Status = "blocked"
	StatusNoAction      Status = "no-action"
	StatusEmergencyStop Status = "emergency-stop"
	StatusError         Status = "error"
)

// Record documents one dispatch, whatever its outcome.
type Record struct {
	ID     string        `json:"id"`
	Time   time.Time     `json:"time"`
	Intent intent.Intent `json:"intent"`
	Action Action        `json:"action"`
	Status Status        `json:"status"`
	Err    string        `json:"error,omitempty"`
}

func newRecord(in intent.Intent, act Action, status Status) Record {
	return Record{
		ID:     uuid.NewString(),
		Time:   time.Now().UTC(),
		Intent: in,
		Action: act,
		Status: status,
	}
}

// Table maps abstract intents to concrete actions.
type Table map[intent.Intent]Action

// DefaultTable returns the built-in mapping. Intents without a concrete
// implementation map to NoAction explicitly.
func DefaultTable() Table {
	return Table{
		intent.ScrollUp:   ScrollUp,
		intent.ScrollDown: ScrollDown,
		intent.Volume:     VolumeUp,
		intent.Zoom:       ZoomIn,

		intent.Pause:       NoAction,
		intent.Stop:        NoAction,
		intent.Home:        NoAction,
		intent.FitPage:     NoAction,
		intent.SeekForward: NoAction,
		intent.NextLine:    NoAction,
		intent.Navigate:    NoAction,
		intent.IntentNone:  NoAction,
	}
}

// Resolve looks up the action for an intent. Absent intents degrade to
// NoAction rather than failing.
func (t Table) Resolve(in intent.Intent) Action {
	act, ok := t[in]
	if !ok {
		return NoAction
	}
	return act
}

// Clone returns an independent copy.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge overlays other's entries onto a copy of t.
func (t Table) Merge(other Table) Table {
	out := t.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}
