// Package landmark defines the landmark data model shared by the detection
// and pipeline layers.
package landmark

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientLandmarks is returned when a landmark set does not carry the
// expected number of points for its subject kind.
var ErrInsufficientLandmarks = errors.New("insufficient landmarks")

// Kind identifies the tracked subject topology.
type Kind string

const (
	// KindHand is a 21-point hand topology.
	KindHand Kind = "hand"
	// KindFace is a 478-point face mesh topology.
	KindFace Kind = "face"
)

// ExpectedCount returns the landmark count required by the topology.
func (k Kind) ExpectedCount() int {
	switch k {
	case KindHand:
		return HandLandmarkCount
	case KindFace:
		return FaceLandmarkCount
	default:
		return 0
	}
}

// Point represents a normalized 3D landmark position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Box is a normalized bounding region around a detected subject.
type Box struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

// Width returns the horizontal extent of the box, floored to avoid
// division by zero in downstream normalization.
func (b Box) Width() float64 {
	return math.Max(b.XMax-b.XMin, 1e-6)
}

// Height returns the vertical extent of the box, floored to avoid
// division by zero in downstream normalization.
func (b Box) Height() float64 {
	return math.Max(b.YMax-b.YMin, 1e-6)
}

// Set is one subject's landmark detection for a single frame.
// It is produced by a detector, consumed by feature extraction, and
// discarded afterwards.
type Set struct {
	Kind   Kind    `json:"kind"`
	Points []Point `json:"points"`
	Box    Box     `json:"box"`
	Score  float64 `json:"score"`
}

// Validate checks that the set carries the full point count for its kind.
func (s *Set) Validate() error {
	want := s.Kind.ExpectedCount()
	if want == 0 {
		return fmt.Errorf("unknown landmark kind %q", s.Kind)
	}
	if len(s.Points) != want {
		return fmt.Errorf("%w: %s set has %d points, want %d",
			ErrInsufficientLandmarks, s.Kind, len(s.Points), want)
	}
	return nil
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PlanarDistance calculates the distance between two points in the image
// plane, ignoring depth.
func PlanarDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BoundingBox derives a normalized bounding box from a point slice.
func BoundingBox(points []Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	box := Box{
		XMin: points[0].X, YMin: points[0].Y,
		XMax: points[0].X, YMax: points[0].Y,
	}
	for _, p := range points[1:] {
		box.XMin = math.Min(box.XMin, p.X)
		box.YMin = math.Min(box.YMin, p.Y)
		box.XMax = math.Max(box.XMax, p.X)
		box.YMax = math.Max(box.YMax, p.Y)
	}
	return box
}
