package landmark

import (
	"errors"
	"math"
	"testing"
)

func TestSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		set     *Set
		wantErr bool
	}{
		{"full hand", OpenPalmHand(), false},
		{"full face", NeutralFace(), false},
		{"truncated hand", &Set{Kind: KindHand, Points: make([]Point, 7)}, true},
		{"empty face", &Set{Kind: KindFace}, true},
		{"unknown kind", &Set{Kind: Kind("paw"), Points: make([]Point, 21)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSet_Validate_SentinelError(t *testing.T) {
	set := &Set{Kind: KindHand, Points: make([]Point, 5)}
	err := set.Validate()
	if !errors.Is(err, ErrInsufficientLandmarks) {
		t.Errorf("Validate() error = %v, want ErrInsufficientLandmarks", err)
	}
}

func TestDistance(t *testing.T) {
	a := Point{X: 0, Y: 0, Z: 0}
	b := Point{X: 3, Y: 4, Z: 0}

	if d := Distance(a, b); d != 5 {
		t.Errorf("Distance() = %f, want 5", d)
	}
	if d := PlanarDistance(a, b); d != 5 {
		t.Errorf("PlanarDistance() = %f, want 5", d)
	}

	c := Point{X: 0, Y: 0, Z: 2}
	if d := PlanarDistance(a, c); d != 0 {
		t.Errorf("PlanarDistance() should ignore depth, got %f", d)
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point{
		{X: 0.2, Y: 0.7},
		{X: 0.6, Y: 0.3},
		{X: 0.4, Y: 0.9},
	}
	box := BoundingBox(points)

	if box.XMin != 0.2 || box.XMax != 0.6 || box.YMin != 0.3 || box.YMax != 0.9 {
		t.Errorf("BoundingBox() = %+v", box)
	}
	if math.Abs(box.Width()-0.4) > 1e-9 {
		t.Errorf("Width() = %f, want 0.4", box.Width())
	}
	if math.Abs(box.Height()-0.6) > 1e-9 {
		t.Errorf("Height() = %f, want 0.6", box.Height())
	}
}

func TestBoundingBox_Empty(t *testing.T) {
	box := BoundingBox(nil)
	if box != (Box{}) {
		t.Errorf("BoundingBox(nil) = %+v, want zero box", box)
	}
	// Degenerate boxes still normalize safely.
	if box.Width() <= 0 || box.Height() <= 0 {
		t.Error("degenerate box extents must stay positive")
	}
}

func TestHandFixtures_Topology(t *testing.T) {
	for name, set := range map[string]*Set{
		"fist":      FistHand(),
		"open palm": OpenPalmHand(),
		"pointing":  PointingHand(),
		"two":       TwoFingerHand(),
	} {
		if err := set.Validate(); err != nil {
			t.Errorf("%s fixture invalid: %v", name, err)
		}
	}
}
