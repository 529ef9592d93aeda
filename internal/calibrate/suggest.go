package calibrate

import (
	"fmt"
	"math"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

// Suggestion proposes updated emotion thresholds derived from recorded
// neutral-face traces.
type Suggestion struct {
	MouthOpenHappy     float64 `json:"mouth_open_happy"`
	MouthOpenSurprised float64 `json:"mouth_open_surprised"`
	EyeOpenSurprised   float64 `json:"eye_open_surprised"`
	EyeOpenFear        float64 `json:"eye_open_fear"`
	BrowRaiseSurprised float64 `json:"brow_raise_surprised"`
	BrowFurrowAngry    float64 `json:"brow_furrow_angry"`
}

// Suggest derives thresholds from feature stats. The heuristics place each
// cut point relative to the observed distribution: happy mouth slightly
// above the mean to sit clear of speech, surprise near the high tail, brow
// raise a full deviation above the mean, furrow below it.
func Suggest(stats map[feature.Name]FeatureStats) (Suggestion, error) {
	get := func(name feature.Name) (FeatureStats, error) {
		s, ok := stats[name]
		if !ok || s.Count == 0 {
			return FeatureStats{}, fmt.Errorf("missing stats for %s", name)
		}
		return s, nil
	}

	mouth, err := get(feature.MouthOpenness)
	if err != nil {
		return Suggestion{}, err
	}
	eye, err := get(feature.EyeOpenness)
	if err != nil {
		return Suggestion{}, err
	}
	brow, err := get(feature.EyebrowRaise)
	if err != nil {
		return Suggestion{}, err
	}

	return Suggestion{
		MouthOpenHappy:     mouth.Mean + mouth.Std*0.3,
		MouthOpenSurprised: mouth.Max * 0.9,
		EyeOpenSurprised:   eye.Mean + eye.Std*0.8,
		EyeOpenFear:        eye.Mean + eye.Std*0.6,
		BrowRaiseSurprised: brow.Mean + brow.Std*1.0,
		BrowFurrowAngry:    brow.Mean - math.Abs(brow.Std*0.7),
	}, nil
}

// Apply overlays the suggestion onto an existing threshold set.
func (s Suggestion) Apply(th classify.EmotionThresholds) classify.EmotionThresholds {
	th.MouthOpenHappy = s.MouthOpenHappy
	th.MouthOpenSurprised = s.MouthOpenSurprised
	th.EyeOpenSurprised = s.EyeOpenSurprised
	th.EyeOpenFear = s.EyeOpenFear
	th.BrowRaiseSurprised = s.BrowRaiseSurprised
	th.BrowFurrowAngry = s.BrowFurrowAngry
	return th
}
