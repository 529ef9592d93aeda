package classify

import (
	"math"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

// GestureThresholds holds the cut points for finger state detection.
// Extension features are palm-span normalized, so a value of 0 separates
// curled from extended at the PIP joint.
type GestureThresholds struct {
	// ThumbSpreadMin is the minimum normalized lateral distance between
	// thumb tip and thumb MCP for the thumb to count as extended.
	ThumbSpreadMin float64 `json:"thumb_spread_min"`
	// FingerExtendMin is the minimum normalized tip-above-PIP height for
	// a finger to count as extended.
	FingerExtendMin float64 `json:"finger_extend_min"`
}

// DefaultGestureThresholds returns the calibrated defaults.
func DefaultGestureThresholds() GestureThresholds {
	return GestureThresholds{
		ThumbSpreadMin:  0.25,
		FingerExtendMin: 0.0,
	}
}

// fingerStateScale converts a raw distance past a finger threshold into a
// full-margin state. Half a palm span of clearance is unambiguous.
const fingerStateScale = 0.5

// fingerStates derives the per-finger extended flags, thumb first, along
// with the decisiveness of the weakest call.
func (t GestureThresholds) fingerStates(v feature.Vector) (states [5]bool, weakest float64) {
	dists := [5]float64{
		v.Get(feature.ThumbSpread) - t.ThumbSpreadMin,
		v.Get(feature.IndexExtension) - t.FingerExtendMin,
		v.Get(feature.MiddleExtension) - t.FingerExtendMin,
		v.Get(feature.RingExtension) - t.FingerExtendMin,
		v.Get(feature.PinkyExtension) - t.FingerExtendMin,
	}
	weakest = math.Inf(1)
	for i, d := range dists {
		states[i] = d > 0
		weakest = math.Min(weakest, math.Abs(d)/fingerStateScale)
	}
	return states, weakest
}

func countExtended(states [5]bool) int {
	n := 0
	for _, s := range states {
		if s {
			n++
		}
	}
	return n
}

// NewGestureClassifier builds the gesture classifier over finger state
// features. Each rule is a count pattern over the extended flags; vectors
// matching no pattern fall back to UNKNOWN.
func NewGestureClassifier(th GestureThresholds) *Classifier {
	t := th
	if t.ThumbSpreadMin == 0 {
		t.ThumbSpreadMin = DefaultGestureThresholds().ThumbSpreadMin
	}

	pattern := func(match func(states [5]bool, count int) bool) func(feature.Vector) (bool, float64) {
		return func(v feature.Vector) (bool, float64) {
			states, weakest := t.fingerStates(v)
			if !match(states, countExtended(states)) {
				return false, 0
			}
			return true, weakest
		}
	}

	rules := []Rule{
		{
			Name:  "fist",
			Label: Fist,
			Match: pattern(func(_ [5]bool, count int) bool { return count == 0 }),
		},
		{
			Name:  "open-palm",
			Label: OpenPalm,
			Match: pattern(func(_ [5]bool, count int) bool { return count == 5 }),
		},
		{
			Name:  "point",
			Label: Point,
			Match: pattern(func(states [5]bool, count int) bool { return count == 1 && states[1] }),
		},
		{
			Name:  "two-fingers",
			Label: TwoFingers,
			Match: pattern(func(states [5]bool, count int) bool { return count == 2 && states[1] && states[2] }),
		},
	}

	return New(rules, Unknown)
}
