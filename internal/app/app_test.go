package app

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/capture"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/config"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/intent"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/pipeline"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/store"
)

type stubPipeline struct {
	res    pipeline.FrameResult
	err    error
	resets int
	closed bool
}

func (s *stubPipeline) Process(*gocv.Mat) (pipeline.FrameResult, error) { return s.res, s.err }
func (s *stubPipeline) Reset()                                          { s.resets++ }
func (s *stubPipeline) Close() error                                    { s.closed = true; return nil }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewFillsDefaults(t *testing.T) {
	a := New(Config{Pipeline: &stubPipeline{}})

	if a.cfg.Runtime == nil {
		t.Error("Runtime not defaulted")
	}
	if a.camera == nil || a.motion == nil {
		t.Error("camera or motion detector not defaulted")
	}
	if !a.IsEnabled() {
		t.Error("new App should start enabled")
	}
}

func TestSetEnabled(t *testing.T) {
	a := New(Config{Pipeline: &stubPipeline{}})

	a.SetEnabled(false)
	if a.IsEnabled() {
		t.Error("expected disabled")
	}
	a.SetEnabled(true)
	if !a.IsEnabled() {
		t.Error("expected enabled")
	}
}

func TestLatestSnapshot(t *testing.T) {
	a := New(Config{Pipeline: &stubPipeline{}})

	if got := a.Latest(); got.Tracked {
		t.Error("zero App should report an untracked latest frame")
	}

	res := pipeline.FrameResult{
		Tracked: true,
		Raw:     classify.Result{Label: classify.Happy, Confidence: 0.8},
	}
	a.setLatest(res)

	got := a.Latest()
	if !got.Tracked || got.Raw.Label != classify.Happy {
		t.Errorf("Latest() = %+v, want stored result", got)
	}
}

func TestApplyProfileOverridesThresholds(t *testing.T) {
	s := newTestStore(t)

	th := classify.DefaultEmotionThresholds()
	th.MouthOpenHappy = 0.05
	blob, _ := json.Marshal(th)

	p := &store.Profile{
		ID:         uuid.NewString(),
		Name:       "wide-smile",
		Kind:       store.ProfileKindEmotion,
		Thresholds: blob,
	}
	if err := s.Profiles().Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Profiles().SetActive(p.ID); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}

	got := classify.DefaultEmotionThresholds()
	applyProfile(s, store.ProfileKindEmotion, &got)

	if got.MouthOpenHappy != 0.05 {
		t.Errorf("MouthOpenHappy = %v, want profile value 0.05", got.MouthOpenHappy)
	}
}

func TestApplyProfileNoActiveProfile(t *testing.T) {
	s := newTestStore(t)

	got := classify.DefaultEmotionThresholds()
	want := got
	applyProfile(s, store.ProfileKindEmotion, &got)

	if got != want {
		t.Errorf("thresholds changed without an active profile: %+v", got)
	}
}

func TestApplyProfileBadThresholds(t *testing.T) {
	s := newTestStore(t)

	p := &store.Profile{
		ID:         uuid.NewString(),
		Name:       "corrupt",
		Kind:       store.ProfileKindGesture,
		Thresholds: json.RawMessage(`{not json`),
	}
	if err := s.Profiles().Create(p); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Profiles().SetActive(p.ID); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}

	got := classify.DefaultGestureThresholds()
	want := got
	applyProfile(s, store.ProfileKindGesture, &got)

	if got != want {
		t.Errorf("thresholds changed despite bad profile blob: %+v", got)
	}
}

func TestPersistSkipsNoActionRecords(t *testing.T) {
	s := newTestStore(t)
	a := New(Config{Pipeline: &stubPipeline{}, Store: s})

	rec := action.Record{
		ID:     uuid.NewString(),
		Time:   time.Now().UTC(),
		Intent: intent.IntentNone,
		Action: action.NoAction,
		Status: action.StatusNoAction,
	}
	a.persist(pipeline.FrameResult{Tracked: true, Record: &rec})

	got, err := s.Records().Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("no-action record was persisted: %+v", got)
	}
}

func TestPersistWritesDispatchRecords(t *testing.T) {
	s := newTestStore(t)
	a := New(Config{Pipeline: &stubPipeline{}, Store: s})

	for _, status := range []action.Status{action.StatusExecuted, action.StatusBlocked, action.StatusEmergencyStop} {
		rec := action.Record{
			ID:     uuid.NewString(),
			Time:   time.Now().UTC(),
			Intent: intent.ScrollUp,
			Action: action.ScrollUp,
			Status: status,
		}
		a.persist(pipeline.FrameResult{Tracked: true, Record: &rec})
	}

	got, err := s.Records().Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("persisted %d records, want 3", len(got))
	}
}

func TestNewGestureGateStartsDisabled(t *testing.T) {
	a := NewGesture(config.Default(), nil)

	if a.Gate() == nil {
		t.Fatal("gesture variant should have a gate")
	}
	if a.Gate().Enabled() {
		t.Error("gate should start disabled")
	}
}

func TestNewEmotionHasNoGate(t *testing.T) {
	a := NewEmotion(config.Default(), nil)

	if a.Gate() != nil {
		t.Error("emotion variant should not have a gate")
	}
}

func TestStartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	cam := capture.NewMockCamera(nil, false)
	pipe := &stubPipeline{}
	a := New(Config{
		Pipeline: pipe,
		Camera:   cam,
		Motion:   capture.NewMotionDetector(1.0),
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !cam.IsOpen() {
		t.Error("camera not opened by Start")
	}

	// Starting twice is a no-op.
	if err := a.Start(); err != nil {
		t.Errorf("second Start() error = %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	a.Stop()

	if cam.IsOpen() {
		t.Error("camera not closed by Stop")
	}
	if !pipe.closed {
		t.Error("pipeline not closed by Stop")
	}
}

func TestResetClearsState(t *testing.T) {
	pipe := &stubPipeline{}
	a := New(Config{Pipeline: pipe})
	a.setLatest(pipeline.FrameResult{Tracked: true})

	a.Reset()

	if pipe.resets != 1 {
		t.Errorf("pipeline resets = %d, want 1", pipe.resets)
	}
	if a.Latest().Tracked {
		t.Error("latest snapshot not cleared by Reset")
	}
}
