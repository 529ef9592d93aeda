package feature

import (
	"errors"
	"math"
	"testing"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
)

const tol = 1e-9

func approx(t *testing.T, got, want float64, name Name) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s = %.7f, want %.7f", name, got, want)
	}
}

func TestFaceExtractor_NeutralFace(t *testing.T) {
	ext := NewFaceExtractor(DefaultBrowBaseline)

	vec, err := ext.Extract(landmark.NeutralFace())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	// Hand-computed from the fixture geometry: face box 0.3 x 0.6,
	// mouth gap 0.0005, lip width 0.08, eye gap 0.015, brow gap 0.030.
	approx(t, vec.Get(MouthOpenness), 0.0020833333+0.1066666667, MouthOpenness)
	approx(t, vec.Get(EyeOpenness), 0.025, EyeOpenness)
	approx(t, vec.Get(EyebrowRaise), 0, EyebrowRaise)
	approx(t, vec.Get(SmileLift), 0, SmileLift)
}

func TestFaceExtractor_SmilingFace(t *testing.T) {
	ext := NewFaceExtractor(DefaultBrowBaseline)

	vec, err := ext.Extract(landmark.SmilingFace())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	approx(t, vec.Get(SmileLift), 0.011/0.6, SmileLift)
	// Corner lift feeds the mouth openness blend with a 10x weight.
	want := (0.005/0.6)*2.5 + (0.011/0.6)*10 + (0.08/0.3)*0.4
	approx(t, vec.Get(MouthOpenness), want, MouthOpenness)
}

func TestFaceExtractor_SurprisedFace(t *testing.T) {
	ext := NewFaceExtractor(DefaultBrowBaseline)

	vec, err := ext.Extract(landmark.SurprisedFace())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	approx(t, vec.Get(EyeOpenness), 0.0255/0.6, EyeOpenness)
	approx(t, vec.Get(EyebrowRaise), 0.036/0.6-DefaultBrowBaseline, EyebrowRaise)
	approx(t, vec.Get(SmileLift), 0, SmileLift)
	if vec.Get(MouthOpenness) < 0.3 {
		t.Errorf("surprised mouth openness = %f, want a dropped jaw", vec.Get(MouthOpenness))
	}
}

func TestFaceExtractor_InsufficientLandmarks(t *testing.T) {
	ext := NewFaceExtractor(DefaultBrowBaseline)

	_, err := ext.Extract(&landmark.Set{
		Kind:   landmark.KindFace,
		Points: make([]landmark.Point, 40),
	})
	if !errors.Is(err, landmark.ErrInsufficientLandmarks) {
		t.Errorf("Extract() error = %v, want ErrInsufficientLandmarks", err)
	}
}

func TestFaceExtractor_Deterministic(t *testing.T) {
	ext := NewFaceExtractor(DefaultBrowBaseline)
	set := landmark.SmilingFace()

	first, err := ext.Extract(set)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	second, err := ext.Extract(set)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	for _, name := range FaceNames {
		if math.Abs(first.Get(name)-second.Get(name)) > tol {
			t.Errorf("%s differs between identical extractions", name)
		}
	}
}

func TestFaceExtractor_BaselineFallback(t *testing.T) {
	ext := NewFaceExtractor(-1)
	vec, err := ext.Extract(landmark.NeutralFace())
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	// A rejected baseline falls back to the default, so the neutral
	// fixture still reads a zero brow raise.
	approx(t, vec.Get(EyebrowRaise), 0, EyebrowRaise)
}
