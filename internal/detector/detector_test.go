package detector

import (
	"errors"
	"testing"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Kinds) != 1 || cfg.Kinds[0] != landmark.KindHand {
		t.Errorf("default kinds = %v, want [hand]", cfg.Kinds)
	}
	if cfg.MaxResults != 1 {
		t.Errorf("MaxResults = %d, want 1", cfg.MaxResults)
	}
	if cfg.MinConfidence != 0.5 || cfg.MinTrackingConf != 0.5 {
		t.Errorf("confidence thresholds = %v/%v, want 0.5/0.5",
			cfg.MinConfidence, cfg.MinTrackingConf)
	}

	cfg = DefaultConfig(landmark.KindFace, landmark.KindHand)
	if len(cfg.Kinds) != 2 {
		t.Errorf("kinds = %v, want face and hand", cfg.Kinds)
	}
}

func TestFirst(t *testing.T) {
	hand := landmark.OpenPalmHand()
	face := landmark.NeutralFace()
	sets := []*landmark.Set{face, hand}

	if got := First(sets, landmark.KindHand); got != hand {
		t.Errorf("First(hand) = %v, want the hand set", got)
	}
	if got := First(sets, landmark.KindFace); got != face {
		t.Errorf("First(face) = %v, want the face set", got)
	}
	if got := First(nil, landmark.KindHand); got != nil {
		t.Errorf("First(nil) = %v, want nil", got)
	}
	if got := First([]*landmark.Set{face}, landmark.KindHand); got != nil {
		t.Errorf("First without match = %v, want nil", got)
	}
}

func TestJSONDetectionToSet(t *testing.T) {
	det := jsonDetection{
		Kind:  "hand",
		Score: 0.93,
		Points: []jsonPoint{
			{X: 0.1, Y: 0.2, Z: 0.0},
			{X: 0.5, Y: 0.8, Z: -0.1},
		},
	}

	set := det.toSet()
	if set.Kind != landmark.KindHand {
		t.Errorf("kind = %s, want %s", set.Kind, landmark.KindHand)
	}
	if set.Score != 0.93 {
		t.Errorf("score = %v, want 0.93", set.Score)
	}
	if len(set.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(set.Points))
	}
	if set.Box.XMin != 0.1 || set.Box.YMax != 0.8 {
		t.Errorf("box = %+v, want derived from points", set.Box)
	}
	// Two points is not a full hand; Detect drops such sets.
	if err := set.Validate(); !errors.Is(err, landmark.ErrInsufficientLandmarks) {
		t.Errorf("Validate() error = %v, want ErrInsufficientLandmarks", err)
	}
}

func TestMockDetectorStaticSets(t *testing.T) {
	m := NewMockDetector()
	m.SetSets(landmark.FistHand())

	for i := 0; i < 3; i++ {
		sets, err := m.Detect(nil)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if len(sets) != 1 || sets[0].Kind != landmark.KindHand {
			t.Fatalf("Detect() = %v, want one hand set", sets)
		}
	}
	if m.Calls() != 3 {
		t.Errorf("Calls() = %d, want 3", m.Calls())
	}
}

func TestMockDetectorQueue(t *testing.T) {
	m := NewMockDetector()
	m.SetSets(landmark.NeutralFace())
	m.QueueFrames(
		[]*landmark.Set{landmark.SmilingFace()},
		nil,
	)

	sets, _ := m.Detect(nil)
	if len(sets) != 1 {
		t.Fatalf("frame 1: got %d sets, want 1", len(sets))
	}
	sets, _ = m.Detect(nil)
	if len(sets) != 0 {
		t.Fatalf("frame 2: got %d sets, want 0", len(sets))
	}
	// Queue drained, falls back to static sets.
	sets, _ = m.Detect(nil)
	if len(sets) != 1 {
		t.Fatalf("frame 3: got %d sets, want 1", len(sets))
	}
}

func TestMockDetectorError(t *testing.T) {
	m := NewMockDetector()
	wantErr := errors.New("service unavailable")
	m.SetError(wantErr)

	if _, err := m.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("Detect() error = %v, want %v", err, wantErr)
	}
	if err := m.Close(); err != nil || !m.Closed() {
		t.Errorf("Close() = %v, Closed() = %v", err, m.Closed())
	}
}
