package classify

import (
	"testing"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
)

func handVec(thumb, index, middle, ring, pinky float64) feature.Vector {
	return feature.Vector{
		feature.ThumbSpread:     thumb,
		feature.IndexExtension:  index,
		feature.MiddleExtension: middle,
		feature.RingExtension:   ring,
		feature.PinkyExtension:  pinky,
	}
}

func TestGestureRuleOrder(t *testing.T) {
	want := []Label{Fist, OpenPalm, Point, TwoFingers}
	rules := NewGestureClassifier(DefaultGestureThresholds()).Rules()
	if len(rules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.Label != want[i] {
			t.Errorf("rule %d (%s): label %s, want %s", i, r.Name, r.Label, want[i])
		}
	}
}

func TestGestureClassify(t *testing.T) {
	c := NewGestureClassifier(DefaultGestureThresholds())

	tests := []struct {
		name string
		vec  feature.Vector
		want Label
	}{
		{"all curled", handVec(0.05, -0.7, -0.7, -0.7, -0.7), Fist},
		{"all extended", handVec(0.6, 0.9, 0.9, 0.9, 0.9), OpenPalm},
		{"index only", handVec(0.05, 0.9, -0.7, -0.7, -0.7), Point},
		{"index and middle", handVec(0.05, 0.9, 0.9, -0.7, -0.7), TwoFingers},
		{"thumb only", handVec(0.6, -0.7, -0.7, -0.7, -0.7), Unknown},
		{"middle only", handVec(0.05, -0.7, 0.9, -0.7, -0.7), Unknown},
		{"index and pinky", handVec(0.05, 0.9, -0.7, -0.7, 0.9), Unknown},
		{"three extended", handVec(0.05, 0.9, 0.9, 0.9, -0.7), Unknown},
		{"four extended", handVec(0.05, 0.9, 0.9, 0.9, 0.9), Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.vec)
			if got.Label != tt.want {
				t.Errorf("Classify() = %s (conf %.3f), want %s", got.Label, got.Confidence, tt.want)
			}
		})
	}
}

func TestGestureClassifyFromFixtures(t *testing.T) {
	ext := feature.NewHandExtractor()
	c := NewGestureClassifier(DefaultGestureThresholds())

	tests := []struct {
		name string
		set  *landmark.Set
		want Label
	}{
		{"fist", landmark.FistHand(), Fist},
		{"open palm", landmark.OpenPalmHand(), OpenPalm},
		{"pointing", landmark.PointingHand(), Point},
		{"two fingers", landmark.TwoFingerHand(), TwoFingers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vec, err := ext.Extract(tt.set)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			got := c.Classify(vec)
			if got.Label != tt.want {
				t.Errorf("Classify() = %s, want %s (features %v)", got.Label, tt.want, vec)
			}
			if got.Confidence <= 0.5 {
				t.Errorf("confidence = %.3f, want > 0.5", got.Confidence)
			}
		})
	}
}

func TestGestureConfidenceTracksDecisiveness(t *testing.T) {
	c := NewGestureClassifier(DefaultGestureThresholds())

	clear := c.Classify(handVec(0.6, 0.9, 0.9, 0.9, 0.9))
	borderline := c.Classify(handVec(0.26, 0.02, 0.9, 0.9, 0.9))
	if clear.Label != OpenPalm || borderline.Label != OpenPalm {
		t.Fatalf("labels = %s, %s, want both %s", clear.Label, borderline.Label, OpenPalm)
	}
	if borderline.Confidence >= clear.Confidence {
		t.Errorf("borderline confidence %.3f >= clear confidence %.3f",
			borderline.Confidence, clear.Confidence)
	}
}

func TestGestureUnknownFallbackConfidence(t *testing.T) {
	c := NewGestureClassifier(DefaultGestureThresholds())
	got := c.Classify(handVec(0.6, -0.7, -0.7, -0.7, -0.7))
	if got.Label != Unknown {
		t.Fatalf("Classify() = %s, want %s", got.Label, Unknown)
	}
	if got.Confidence != FallbackConfidence {
		t.Errorf("confidence = %.3f, want %.3f", got.Confidence, FallbackConfidence)
	}
}
