package action

import (
	"errors"
	"testing"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/intent"
)

type recordingExecutor struct {
	calls []Action
	err   error
}

func (e *recordingExecutor) Execute(act Action) error {
	e.calls = append(e.calls, act)
	return e.err
}

type stubStop struct {
	triggered bool
}

func (s *stubStop) Triggered() bool {
	return s.triggered
}

func scrollUpSignal() intent.Signal {
	return intent.Signal{
		Intent:  intent.ScrollUp,
		Gesture: classify.TwoFingers,
		Context: intent.ContextBrowser,
	}
}

func TestGateStartsDisabled(t *testing.T) {
	exec := &recordingExecutor{}
	g := NewGate(DefaultTable(), exec, nil)

	if g.Enabled() {
		t.Fatal("new gate is enabled, want disabled")
	}
	rec := g.Dispatch(scrollUpSignal())
	if rec.Status != StatusBlocked {
		t.Errorf("status = %s, want %s", rec.Status, StatusBlocked)
	}
	if len(exec.calls) != 0 {
		t.Errorf("executor called %d times while disabled", len(exec.calls))
	}
}

func TestGateDispatchExecutesWhenEnabled(t *testing.T) {
	exec := &recordingExecutor{}
	g := NewGate(DefaultTable(), exec, &stubStop{})
	g.Enable()

	rec := g.Dispatch(scrollUpSignal())
	if rec.Status != StatusExecuted {
		t.Fatalf("status = %s, want %s", rec.Status, StatusExecuted)
	}
	if rec.Action != ScrollUp || rec.Intent != intent.ScrollUp {
		t.Errorf("record = %+v, want action %s for intent %s", rec, ScrollUp, intent.ScrollUp)
	}
	if len(exec.calls) != 1 || exec.calls[0] != ScrollUp {
		t.Errorf("executor calls = %v, want [%s]", exec.calls, ScrollUp)
	}
	if rec.ID == "" || rec.Time.IsZero() {
		t.Errorf("record missing id or timestamp: %+v", rec)
	}
}

func TestGateEmergencyStopForcesDisable(t *testing.T) {
	exec := &recordingExecutor{}
	stop := &stubStop{}
	g := NewGate(DefaultTable(), exec, stop)
	g.Enable()

	// Frame K: the stop signal fires.
	stop.triggered = true
	rec := g.Dispatch(scrollUpSignal())
	if rec.Status != StatusEmergencyStop {
		t.Fatalf("status = %s, want %s", rec.Status, StatusEmergencyStop)
	}
	if g.Enabled() {
		t.Fatal("gate still enabled after emergency stop")
	}
	if len(exec.calls) != 0 {
		t.Errorf("executor called during emergency stop: %v", exec.calls)
	}

	// Frame K+1: the signal cleared but nothing re-enabled the gate.
	stop.triggered = false
	rec = g.Dispatch(scrollUpSignal())
	if rec.Status != StatusBlocked {
		t.Errorf("status after stop = %s, want %s", rec.Status, StatusBlocked)
	}
	if g.Enabled() {
		t.Error("gate re-enabled itself after emergency stop")
	}
}

func TestGateEmergencyStopWinsOverDisabled(t *testing.T) {
	g := NewGate(DefaultTable(), &recordingExecutor{}, &stubStop{triggered: true})

	rec := g.Dispatch(scrollUpSignal())
	if rec.Status != StatusEmergencyStop {
		t.Errorf("status = %s, want %s", rec.Status, StatusEmergencyStop)
	}
}

func TestGateNoActionIntent(t *testing.T) {
	exec := &recordingExecutor{}
	g := NewGate(DefaultTable(), exec, nil)
	g.Enable()

	rec := g.Dispatch(intent.Signal{Intent: intent.Pause, Gesture: classify.Fist, Context: intent.ContextMedia})
	if rec.Status != StatusNoAction {
		t.Errorf("status = %s, want %s", rec.Status, StatusNoAction)
	}
	if rec.Action != NoAction {
		t.Errorf("action = %s, want %s", rec.Action, NoAction)
	}
	if len(exec.calls) != 0 {
		t.Errorf("executor called for no-op: %v", exec.calls)
	}
}

func TestGateNoActionWhileDisabled(t *testing.T) {
	exec := &recordingExecutor{}
	g := NewGate(DefaultTable(), exec, nil)

	rec := g.Dispatch(intent.Signal{Intent: intent.IntentNone})
	if rec.Status != StatusNoAction {
		t.Errorf("status = %s, want %s", rec.Status, StatusNoAction)
	}
	if rec.Action != NoAction {
		t.Errorf("action = %s, want %s", rec.Action, NoAction)
	}
	if len(exec.calls) != 0 {
		t.Errorf("executor called for no-op: %v", exec.calls)
	}
}

func TestGateUnmappedIntentDegrades(t *testing.T) {
	exec := &recordingExecutor{}
	g := NewGate(DefaultTable(), exec, nil)
	g.Enable()

	rec := g.Dispatch(intent.Signal{Intent: intent.Intent("TELEPORT")})
	if rec.Status != StatusNoAction || rec.Action != NoAction {
		t.Errorf("record = %+v, want %s/%s", rec, NoAction, StatusNoAction)
	}
}

func TestGateExecutorErrorDegrades(t *testing.T) {
	exec := &recordingExecutor{err: errors.New("input device busy")}
	g := NewGate(DefaultTable(), exec, nil)
	g.Enable()

	rec := g.Dispatch(scrollUpSignal())
	if rec.Status != StatusError {
		t.Errorf("status = %s, want %s", rec.Status, StatusError)
	}
	if rec.Err == "" {
		t.Error("record error message empty")
	}
	if !g.Enabled() {
		t.Error("executor error disabled the gate")
	}
}

func TestGateRecordIDsUnique(t *testing.T) {
	g := NewGate(DefaultTable(), &recordingExecutor{}, nil)
	a := g.Dispatch(scrollUpSignal())
	b := g.Dispatch(scrollUpSignal())
	if a.ID == b.ID {
		t.Errorf("record IDs collide: %s", a.ID)
	}
}

func TestTableResolve(t *testing.T) {
	table := DefaultTable()
	tests := []struct {
		in   intent.Intent
		want Action
	}{
		{intent.ScrollUp, ScrollUp},
		{intent.ScrollDown, ScrollDown},
		{intent.Volume, VolumeUp},
		{intent.Zoom, ZoomIn},
		{intent.Pause, NoAction},
		{intent.IntentNone, NoAction},
		{intent.Intent("TELEPORT"), NoAction},
	}
	for _, tt := range tests {
		if got := table.Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTableMergeOverride(t *testing.T) {
	base := DefaultTable()
	merged := base.Merge(Table{intent.Volume: VolumeDown})

	if got := merged.Resolve(intent.Volume); got != VolumeDown {
		t.Errorf("merged Resolve = %s, want %s", got, VolumeDown)
	}
	if got := base.Resolve(intent.Volume); got != VolumeUp {
		t.Errorf("base mutated: Resolve = %s, want %s", got, VolumeUp)
	}
}

func TestCornerStopGeometry(t *testing.T) {
	stop := &CornerStop{Margin: 10}
	stop.screenSize = func() (int, int) { return 1920, 1080 }

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top left", 0, 0, true},
		{"top right", 1919, 3, true},
		{"bottom left", 5, 1079, true},
		{"bottom right", 1915, 1075, true},
		{"center", 960, 540, false},
		{"left edge middle", 0, 540, false},
		{"top edge middle", 960, 0, false},
		{"just outside corner", 11, 11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop.position = func() (int, int) { return tt.x, tt.y }
			if got := stop.Triggered(); got != tt.want {
				t.Errorf("Triggered() at (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCornerStopBadScreen(t *testing.T) {
	stop := &CornerStop{Margin: 10}
	stop.position = func() (int, int) { return 0, 0 }
	stop.screenSize = func() (int, int) { return 0, 0 }
	if stop.Triggered() {
		t.Error("Triggered() with unknown screen size, want false")
	}
}

func TestManualStopLatches(t *testing.T) {
	var m ManualStop

	if m.Triggered() {
		t.Error("fresh ManualStop should not be triggered")
	}

	m.Trip()
	if !m.Triggered() {
		t.Error("tripped ManualStop should stay triggered")
	}
	if !m.Triggered() {
		t.Error("trigger should latch across polls")
	}

	m.Clear()
	if m.Triggered() {
		t.Error("cleared ManualStop should not be triggered")
	}
}

func TestMultiStopAnyTriggers(t *testing.T) {
	var a, b ManualStop
	multi := MultiStop{&a, nil, &b}

	if multi.Triggered() {
		t.Error("no signal tripped, MultiStop should be quiet")
	}

	b.Trip()
	if !multi.Triggered() {
		t.Error("one tripped signal should trigger MultiStop")
	}
}
