package classify

import (
	"math"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

// EmotionThresholds holds the tunable cut points for the emotion rules.
// Values are in face-height normalized units. Zero values are replaced by
// the defaults, so a partially filled config still yields a working set.
type EmotionThresholds struct {
	MouthOpenHappy     float64 `json:"mouth_open_happy"`
	MouthOpenExcited   float64 `json:"mouth_open_excited"`
	MouthOpenSurprised float64 `json:"mouth_open_surprised"`
	MouthOpenFear      float64 `json:"mouth_open_fear"`

	EyeOpenNeutral   float64 `json:"eye_open_neutral"`
	EyeOpenExcited   float64 `json:"eye_open_excited"`
	EyeOpenSurprised float64 `json:"eye_open_surprised"`
	EyeOpenFear      float64 `json:"eye_open_fear"`
	EyeOpenAngry     float64 `json:"eye_open_angry"`

	BrowRaiseSurprised float64 `json:"brow_raise_surprised"`
	BrowRaiseFear      float64 `json:"brow_raise_fear"`
	BrowFurrowAngry    float64 `json:"brow_furrow_angry"`

	SmileLiftHappy   float64 `json:"smile_lift_happy"`
	SmileLiftExcited float64 `json:"smile_lift_excited"`
	SmileLiftSpeech  float64 `json:"smile_lift_speech"`
}

// DefaultEmotionThresholds returns the calibrated defaults.
func DefaultEmotionThresholds() EmotionThresholds {
	return EmotionThresholds{
		MouthOpenHappy:     0.015,
		MouthOpenExcited:   0.035,
		MouthOpenSurprised: 0.08,
		MouthOpenFear:      0.05,

		EyeOpenNeutral:   0.025,
		EyeOpenExcited:   0.032,
		EyeOpenSurprised: 0.04,
		EyeOpenFear:      0.035,
		EyeOpenAngry:     0.018,

		BrowRaiseSurprised: 0.008,
		BrowRaiseFear:      0.004,
		BrowFurrowAngry:    -0.01,

		SmileLiftHappy:   0.012,
		SmileLiftExcited: 0.022,
		SmileLiftSpeech:  0.008,
	}
}

// withDefaults fills zero fields from the default set.
func (t EmotionThresholds) withDefaults() EmotionThresholds {
	d := DefaultEmotionThresholds()
	fill := func(dst *float64, def float64) {
		if *dst == 0 {
			*dst = def
		}
	}
	fill(&t.MouthOpenHappy, d.MouthOpenHappy)
	fill(&t.MouthOpenExcited, d.MouthOpenExcited)
	fill(&t.MouthOpenSurprised, d.MouthOpenSurprised)
	fill(&t.MouthOpenFear, d.MouthOpenFear)
	fill(&t.EyeOpenNeutral, d.EyeOpenNeutral)
	fill(&t.EyeOpenExcited, d.EyeOpenExcited)
	fill(&t.EyeOpenSurprised, d.EyeOpenSurprised)
	fill(&t.EyeOpenFear, d.EyeOpenFear)
	fill(&t.EyeOpenAngry, d.EyeOpenAngry)
	fill(&t.BrowRaiseSurprised, d.BrowRaiseSurprised)
	fill(&t.BrowRaiseFear, d.BrowRaiseFear)
	fill(&t.BrowFurrowAngry, d.BrowFurrowAngry)
	fill(&t.SmileLiftHappy, d.SmileLiftHappy)
	fill(&t.SmileLiftExcited, d.SmileLiftExcited)
	fill(&t.SmileLiftSpeech, d.SmileLiftSpeech)
	return t
}

// NewEmotionClassifier builds the emotion classifier. Guard rules run
// first so that tiny movements and talking read as NEUTRAL, then the
// emotions in fixed priority order. Unmatched vectors fall back to
// NEUTRAL with low confidence.
func NewEmotionClassifier(th EmotionThresholds) *Classifier {
	t := th.withDefaults()

	rules := []Rule{
		{
			Name:  "neutral-guard",
			Label: Neutral,
			Match: func(v feature.Vector) (bool, float64) {
				mouth := v.Get(feature.MouthOpenness)
				eye := v.Get(feature.EyeOpenness)
				brow := v.Get(feature.EyebrowRaise)
				return all(
					func() (bool, float64) { return under(mouth, 0.25*t.MouthOpenHappy) },
					func() (bool, float64) { return under(math.Abs(brow), 0.003) },
					func() (bool, float64) { return under(eye, 1.1*t.EyeOpenNeutral) },
				)
			},
		},
		{
			// An open mouth without a smile and with relaxed eyes is
			// usually speech, not an emotion.
			Name:  "speech-guard",
			Label: Neutral,
			Match: func(v feature.Vector) (bool, float64) {
				mouth := v.Get(feature.MouthOpenness)
				eye := v.Get(feature.EyeOpenness)
				smile := v.Get(feature.SmileLift)
				return all(
					func() (bool, float64) { return under(smile, t.SmileLiftSpeech) },
					func() (bool, float64) { return over(mouth, 1.2*t.MouthOpenHappy) },
					func() (bool, float64) { return over(eye, 0.6*t.EyeOpenNeutral) },
					func() (bool, float64) { return under(eye, t.EyeOpenFear) },
				)
			},
		},
		{
			Name:  "excited",
			Label: Excited,
			Match: func(v feature.Vector) (bool, float64) {
				mouth := v.Get(feature.MouthOpenness)
				eye := v.Get(feature.EyeOpenness)
				brow := v.Get(feature.EyebrowRaise)
				smile := v.Get(feature.SmileLift)
				return all(
					func() (bool, float64) { return over(smile, t.SmileLiftExcited) },
					func() (bool, float64) { return over(mouth, 0.95*t.MouthOpenExcited) },
					func() (bool, float64) { return over(eye, 0.95*t.EyeOpenExcited) },
					func() (bool, float64) { return over(brow, -0.001) },
				)
			},
		},
		{
			Name:  "happy",
			Label: Happy,
			Match: func(v feature.Vector) (bool, float64) {
				mouth := v.Get(feature.MouthOpenness)
				eye := v.Get(feature.EyeOpenness)
				smile := v.Get(feature.SmileLift)
				return all(
					func() (bool, float64) { return over(smile, t.SmileLiftHappy) },
					func() (bool, float64) { return over(mouth, 1.05*t.MouthOpenHappy) },
					func() (bool, float64) { return over(eye, 0.8*t.EyeOpenNeutral) },
				)
			},
		},
		{
			// Smiles inflate mouth openness, so the surprise gate
			// discounts the smile contribution before comparing.
			Name:  "surprised",
			Label: Surprised,
			Match: func(v feature.Vector) (bool, float64) {
				mouth := v.Get(feature.MouthOpenness)
				eye := v.Get(feature.EyeOpenness)
				brow := v.Get(feature.EyebrowRaise)
				smile := v.Get(feature.SmileLift)
				return all(
					func() (bool, float64) { return over(mouth-6*smile, 1.08*t.MouthOpenSurprised) },
					func() (bool, float64) { return over(eye, 0.98*t.EyeOpenSurprised) },
					func() (bool, float64) { return over(brow, 1.12*t.BrowRaiseSurprised) },
					func() (bool, float64) { return under(smile, 0.006) },
				)
			},
		},
		{
			Name:  "fear",
			Label: Fear,
			Match: func(v feature.Vector) (bool, float64) {
				mouth := v.Get(feature.MouthOpenness)
				eye := v.Get(feature.EyeOpenness)
				brow := v.Get(feature.EyebrowRaise)
				smile := v.Get(feature.SmileLift)
				return all(
					func() (bool, float64) { return over(mouth, 1.05*t.MouthOpenFear) },
					func() (bool, float64) { return over(eye, t.EyeOpenFear) },
					func() (bool, float64) { return over(brow, 1.05*t.BrowRaiseFear) },
					func() (bool, float64) { return under(smile, t.SmileLiftSpeech) },
				)
			},
		},
		{
			Name:  "angry",
			Label: Angry,
			Match: func(v feature.Vector) (bool, float64) {
				eye := v.Get(feature.EyeOpenness)
				brow := v.Get(feature.EyebrowRaise)
				return all(
					func() (bool, float64) { return under(brow, t.BrowFurrowAngry) },
					func() (bool, float64) { return under(eye, t.EyeOpenAngry) },
				)
			},
		},
		{
			Name:  "disgust",
			Label: Disgust,
			Match: func(v feature.Vector) (bool, float64) {
				mouth := v.Get(feature.MouthOpenness)
				eye := v.Get(feature.EyeOpenness)
				brow := v.Get(feature.EyebrowRaise)
				smile := v.Get(feature.SmileLift)
				return all(
					func() (bool, float64) { return over(mouth, 0.5*t.MouthOpenHappy) },
					func() (bool, float64) { return under(mouth, 0.9*t.MouthOpenSurprised) },
					func() (bool, float64) { return under(eye, 0.9*t.EyeOpenNeutral) },
					func() (bool, float64) { return under(brow, -0.002) },
					func() (bool, float64) { return under(smile, 0.01) },
				)
			},
		},
		{
			Name:  "sad",
			Label: Sad,
			Match: func(v feature.Vector) (bool, float64) {
				mouth := v.Get(feature.MouthOpenness)
				eye := v.Get(feature.EyeOpenness)
				brow := v.Get(feature.EyebrowRaise)
				return all(
					func() (bool, float64) { return under(mouth, 0.5*t.MouthOpenHappy) },
					func() (bool, float64) { return under(eye, 1.05*t.EyeOpenNeutral) },
					func() (bool, float64) { return over(brow, -0.004) },
				)
			},
		},
	}

	return New(rules, Neutral)
}
