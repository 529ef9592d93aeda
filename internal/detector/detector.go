// Package detector provides landmark detection interfaces over video
// frames. Detection itself runs in an external MediaPipe service; this
// package owns the process lifecycle and the wire protocol.
package detector

import (
	"gocv.io/x/gocv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
)

// Detector analyzes video frames and returns landmark sets.
type Detector interface {
	// Detect returns the landmark sets found in the frame, an empty
	// slice when nothing is detected.
	Detect(frame *gocv.Mat) ([]*landmark.Set, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds detection options.
type Config struct {
	// Kinds selects which landmark kinds the service should report.
	Kinds []landmark.Kind

	// MaxResults caps detections per kind per frame (default: 1).
	MaxResults int

	// MinConfidence is the minimum detection confidence (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig(kinds ...landmark.Kind) Config {
	if len(kinds) == 0 {
		kinds = []landmark.Kind{landmark.KindHand}
	}
	return Config{
		Kinds:           kinds,
		MaxResults:      1,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}

// First returns the first set of the given kind, or nil.
func First(sets []*landmark.Set, kind landmark.Kind) *landmark.Set {
	for _, s := range sets {
		if s.Kind == kind {
			return s
		}
	}
	return nil
}
