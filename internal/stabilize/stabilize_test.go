package stabilize

import (
	"math"
	"testing"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

func testConfig() Config {
	return Config{
		Alpha:               0.3,
		MinDwellFrames:      4,
		CooldownFrames:      6,
		ConfidenceThreshold: 0.5,
		LossGraceFrames:     5,
	}
}

func observe(s *Stabilizer, label classify.Label, conf float64) Decision {
	return s.Observe(classify.Result{Label: label, Confidence: conf})
}

func TestPromotionNeedsDwell(t *testing.T) {
	s := New(testConfig())

	for i := 0; i < 3; i++ {
		d := observe(s, classify.Happy, 0.9)
		if d.Label != classify.None {
			t.Fatalf("frame %d: label = %s, want %s", i, d.Label, classify.None)
		}
		if d.State != StatePending {
			t.Fatalf("frame %d: state = %s, want %s", i, d.State, StatePending)
		}
		if d.Changed {
			t.Fatalf("frame %d: changed before dwell satisfied", i)
		}
	}

	d := observe(s, classify.Happy, 0.9)
	if d.Label != classify.Happy || !d.Changed {
		t.Fatalf("frame 3: got %+v, want published %s", d, classify.Happy)
	}
	if d.State != StateCooldown {
		t.Errorf("state after publish = %s, want %s", d.State, StateCooldown)
	}
}

func TestFlickerNeverPublishes(t *testing.T) {
	s := New(testConfig())

	for i := 0; i < 20; i++ {
		label := classify.Happy
		if i%2 == 1 {
			label = classify.Sad
		}
		d := observe(s, label, 0.9)
		if d.Changed {
			t.Fatalf("frame %d: alternating labels published a change", i)
		}
		if d.Label != classify.None {
			t.Fatalf("frame %d: label = %s, want %s", i, d.Label, classify.None)
		}
	}
}

func TestWeakFramesBreakDwell(t *testing.T) {
	s := New(testConfig())

	observe(s, classify.Happy, 0.9)
	observe(s, classify.Happy, 0.9)
	observe(s, classify.Happy, 0.9)
	// A low-confidence frame resets the streak even with the same label.
	if d := observe(s, classify.Happy, 0.3); d.State != StateStable {
		t.Fatalf("weak frame state = %s, want %s", d.State, StateStable)
	}

	for i := 0; i < 3; i++ {
		if d := observe(s, classify.Happy, 0.9); d.Changed {
			t.Fatalf("frame %d after break: published too early", i)
		}
	}
	if d := observe(s, classify.Happy, 0.9); !d.Changed || d.Label != classify.Happy {
		t.Fatalf("got %+v, want publish of %s after full re-dwell", d, classify.Happy)
	}
}

// publish drives the stabilizer until label is published, returning the
// number of frames consumed.
func publish(t *testing.T, s *Stabilizer, label classify.Label) int {
	t.Helper()
	for i := 1; i <= 50; i++ {
		if d := observe(s, label, 0.9); d.Changed {
			return i
		}
	}
	t.Fatalf("label %s never published", label)
	return 0
}

func TestCooldownDelaysNextChange(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)
	publish(t, s, classify.Happy)

	// A fully dwelled competing label must still wait out the cooldown.
	frames := publish(t, s, classify.Sad)
	want := cfg.CooldownFrames + cfg.MinDwellFrames
	if frames != want {
		t.Errorf("second publish took %d frames, want %d", frames, want)
	}
}

func TestCooldownFramesReportState(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)
	publish(t, s, classify.Happy)

	for i := 0; i < cfg.CooldownFrames; i++ {
		d := observe(s, classify.Sad, 0.9)
		if d.State != StateCooldown {
			t.Fatalf("frame %d: state = %s, want %s", i, d.State, StateCooldown)
		}
		if d.Label != classify.Happy {
			t.Fatalf("frame %d: label = %s, want %s", i, d.Label, classify.Happy)
		}
	}
	if d := observe(s, classify.Sad, 0.9); d.State != StatePending {
		t.Errorf("state after cooldown = %s, want %s", d.State, StatePending)
	}
}

func TestLossGraceFreezesState(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)
	publish(t, s, classify.Happy)

	for i := 0; i < cfg.LossGraceFrames; i++ {
		d := s.ObserveLoss()
		if d.Label != classify.Happy {
			t.Fatalf("loss frame %d: label = %s, want %s", i, d.Label, classify.Happy)
		}
		if d.State != StateCooldown {
			t.Fatalf("loss frame %d: state = %s, want %s", i, d.State, StateCooldown)
		}
	}

	// The cooldown did not tick during the loss window.
	frames := publish(t, s, classify.Sad)
	want := cfg.CooldownFrames + cfg.MinDwellFrames
	if frames != want {
		t.Errorf("publish after loss took %d frames, want %d", frames, want)
	}
}

func TestLossExpiryResets(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)
	publish(t, s, classify.Happy)

	for i := 0; i < cfg.LossGraceFrames; i++ {
		s.ObserveLoss()
	}
	d := s.ObserveLoss()
	if d.Label != classify.None || !d.Changed {
		t.Fatalf("got %+v, want reset to %s with Changed", d, classify.None)
	}
	if s.Current() != classify.None {
		t.Errorf("Current() = %s, want %s", s.Current(), classify.None)
	}

	// Fresh detection starts a dwell from scratch.
	if frames := publish(t, s, classify.Happy); frames != cfg.MinDwellFrames {
		t.Errorf("publish after reset took %d frames, want %d", frames, cfg.MinDwellFrames)
	}
}

func TestDetectionClearsLossCounter(t *testing.T) {
	cfg := testConfig()
	s := New(cfg)
	publish(t, s, classify.Happy)
	// Wait out the cooldown so confirmations land in a stable state.
	for i := 0; i < cfg.CooldownFrames; i++ {
		observe(s, classify.Happy, 0.9)
	}

	// Losses just under the grace window, interleaved with detections,
	// never accumulate to a reset.
	for round := 0; round < 3; round++ {
		for i := 0; i < cfg.LossGraceFrames; i++ {
			s.ObserveLoss()
		}
		d := observe(s, classify.Happy, 0.9)
		if d.Label != classify.Happy {
			t.Fatalf("round %d: label = %s, want %s", round, d.Label, classify.Happy)
		}
	}
}

func TestSmoothEMA(t *testing.T) {
	s := New(testConfig())

	first := s.Smooth(feature.Vector{feature.MouthOpenness: 1.0})
	if got := first[feature.MouthOpenness]; got != 1.0 {
		t.Fatalf("seed value = %v, want 1.0", got)
	}

	second := s.Smooth(feature.Vector{feature.MouthOpenness: 0.0})
	if got, want := second[feature.MouthOpenness], 0.7; math.Abs(got-want) > 1e-9 {
		t.Errorf("smoothed value = %v, want %v", got, want)
	}
}

func TestConfidenceSmoothing(t *testing.T) {
	s := New(testConfig())

	observe(s, classify.Happy, 1.0)
	d := observe(s, classify.Happy, 0.0)
	if want := 0.7; math.Abs(d.Confidence-want) > 1e-9 {
		t.Errorf("smoothed confidence = %v, want %v", d.Confidence, want)
	}
}

func TestResetClearsSmoothing(t *testing.T) {
	s := New(testConfig())
	s.Smooth(feature.Vector{feature.MouthOpenness: 1.0})
	observe(s, classify.Happy, 1.0)

	s.Reset()

	if got := s.Smooth(feature.Vector{feature.MouthOpenness: 0.5})[feature.MouthOpenness]; got != 0.5 {
		t.Errorf("post-reset seed = %v, want 0.5", got)
	}
	if d := observe(s, classify.Happy, 0.4); d.Confidence != 0.4 {
		t.Errorf("post-reset confidence = %v, want 0.4", d.Confidence)
	}
}

func TestZeroConfigUsesDefaults(t *testing.T) {
	s := New(Config{})
	want := DefaultConfig()
	if s.cfg != want {
		t.Errorf("config = %+v, want %+v", s.cfg, want)
	}
}
