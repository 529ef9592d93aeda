// Package intent maps stabilized gesture labels to abstract user intents.
// The mapping is a static table keyed by (gesture, context) pairs with
// exact-match lookup only; pairs outside the table yield IntentNone.
package intent

import (
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
)

// Intent is an abstract user intention, decoupled from how it executes.
type Intent string

const (
	IntentNone  Intent = "NONE"
	ScrollUp    Intent = "SCROLL_UP"
	ScrollDown  Intent = "SCROLL_DOWN"
	Pause       Intent = "PAUSE"
	Stop        Intent = "STOP"
	Home        Intent = "HOME"
	FitPage     Intent = "FIT_PAGE"
	SeekForward Intent = "SEEK_FORWARD"
	NextLine    Intent = "NEXT_LINE"
	Navigate    Intent = "NAVIGATE"
	Zoom        Intent = "ZOOM"
	Volume      Intent = "VOLUME"
)

// Context tags the category of the active application.
type Context string

const (
	ContextBrowser  Context = "BROWSER"
	ContextMedia    Context = "MEDIA"
	ContextIDE      Context = "IDE"
	ContextDocument Context = "DOCUMENT"
	ContextExplorer Context = "EXPLORER"
	ContextUnknown  Context = "UNKNOWN"
)

// Signal is the per-frame mapping result.
type Signal struct {
	Intent  Intent         `json:"intent"`
	Gesture classify.Label `json:"source_gesture"`
	Context Context        `json:"context"`
}

// Key identifies one table entry.
type Key struct {
	Gesture classify.Label
	Context Context
}

// Table is the (gesture, context) to intent lookup table.
type Table map[Key]Intent

// DefaultTable returns the built-in rule set.
func DefaultTable() Table {
	return Table{
		{classify.Fist, ContextBrowser}: Pause,
		{classify.Fist, ContextMedia}:   Pause,
		{classify.Fist, ContextIDE}:     IntentNone,
		{classify.Fist, ContextUnknown}: IntentNone,

		{classify.OpenPalm, ContextBrowser}:  Home,
		{classify.OpenPalm, ContextMedia}:    Stop,
		{classify.OpenPalm, ContextDocument}: FitPage,
		{classify.OpenPalm, ContextUnknown}:  IntentNone,

		{classify.Point, ContextBrowser}:  ScrollDown,
		{classify.Point, ContextDocument}: ScrollDown,
		{classify.Point, ContextMedia}:    SeekForward,
		{classify.Point, ContextIDE}:      NextLine,
		{classify.Point, ContextExplorer}: Navigate,
		{classify.Point, ContextUnknown}:  IntentNone,

		{classify.TwoFingers, ContextBrowser}:  ScrollUp,
		{classify.TwoFingers, ContextDocument}: Zoom,
		{classify.TwoFingers, ContextMedia}:    Volume,
		{classify.TwoFingers, ContextIDE}:      Zoom,
		{classify.TwoFingers, ContextUnknown}:  IntentNone,
	}
}

// Clone returns an independent copy so callers can overlay overrides
// without mutating the shared default.
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

// Map resolves a stabilized gesture against the active context. An empty
// context is treated as ContextUnknown; absent keys yield IntentNone.
func (t Table) Map(gesture classify.Label, ctx Context) Signal {
	if ctx == "" {
		ctx = ContextUnknown
	}
	in, ok := t[Key{Gesture: gesture, Context: ctx}]
	if !ok {
		in = IntentNone
	}
	return Signal{Intent: in, Gesture: gesture, Context: ctx}
}
