// Package classify turns feature vectors into categorical labels using
// ordered, deterministic threshold rules. Rule order is the tie break:
// the first rule whose conditions all hold wins, and the rule lists are
// inspectable so tests can verify the priority directly.
package classify

import (
	"math"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

// Label is a member of the closed output label set. Emotion and gesture
// labels share the type; every classifier has an explicit fallback member.
type Label string

// Emotion labels, highest classification priority first.
const (
	Excited   Label = "EXCITED"
	Happy     Label = "HAPPY"
	Surprised Label = "SURPRISED"
	Fear      Label = "FEAR"
	Angry     Label = "ANGRY"
	Disgust   Label = "DISGUST"
	Sad       Label = "SAD"
	Neutral   Label = "NEUTRAL"
)

// Gesture labels, highest classification priority first.
const (
	Fist       Label = "FIST"
	OpenPalm   Label = "OPEN_PALM"
	Point      Label = "POINT"
	TwoFingers Label = "TWO_FINGERS"
	Unknown    Label = "UNKNOWN"
)

// None marks the absence of any accepted label, e.g. before the first
// frame or after a tracking loss reset.
const None Label = "NONE"

// Result is the classifier output for one frame.
type Result struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Rule pairs a label with its predicate. Match reports whether the rule
// fires and, when it does, the smallest normalized margin by which the
// features clear the rule's thresholds.
type Rule struct {
	Name  string
	Label Label
	Match func(v feature.Vector) (bool, float64)
}

// Classifier evaluates an ordered rule list over feature vectors.
type Classifier struct {
	rules        []Rule
	fallback     Label
	fallbackConf float64
}

// FallbackConfidence is reported when no rule matches.
const FallbackConfidence = 0.25

// New creates a Classifier from an ordered rule list and a fallback label.
func New(rules []Rule, fallback Label) *Classifier {
	return &Classifier{
		rules:        rules,
		fallback:     fallback,
		fallbackConf: FallbackConfidence,
	}
}

// Classify evaluates the rules in priority order and returns the first
// match. Confidence grows with the margin by which the features clear the
// winning rule's thresholds, clamped to [0,1]. A pure function of v.
func (c *Classifier) Classify(v feature.Vector) Result {
	for _, r := range c.rules {
		if ok, margin := r.Match(v); ok {
			return Result{Label: r.Label, Confidence: marginConfidence(margin)}
		}
	}
	return Result{Label: c.fallback, Confidence: c.fallbackConf}
}

// Rules returns a copy of the rule list in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Fallback returns the label reported when no rule matches.
func (c *Classifier) Fallback() Label {
	return c.fallback
}

// marginConfidence maps a normalized rule margin to a confidence in [0,1].
// A rule that barely fires scores 0.5; a full-margin match scores 1.
func marginConfidence(margin float64) float64 {
	return clamp01(0.5 + 0.5*margin)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// over reports whether v exceeds t, with the excess normalized by the
// threshold magnitude.
func over(v, t float64) (bool, float64) {
	if v <= t {
		return false, 0
	}
	return true, (v - t) / math.Max(math.Abs(t), 1e-6)
}

// under reports whether v falls below t, with the shortfall normalized by
// the threshold magnitude.
func under(v, t float64) (bool, float64) {
	if v >= t {
		return false, 0
	}
	return true, (t - v) / math.Max(math.Abs(t), 1e-6)
}

// all combines condition results: every condition must hold, and the rule
// margin is the weakest condition margin.
func all(conds ...func() (bool, float64)) (bool, float64) {
	margin := math.Inf(1)
	for _, cond := range conds {
		ok, m := cond()
		if !ok {
			return false, 0
		}
		margin = math.Min(margin, m)
	}
	return true, margin
}
