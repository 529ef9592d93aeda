// Package calibrate summarizes logged feature traces and proposes
// threshold adjustments with plain statistics. No learned models; the
// output feeds back into the same rule thresholds the classifier already
// uses, so tuning never requires a rebuild.
package calibrate

import (
	"math"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

// FeatureStats summarizes one feature column.
type FeatureStats struct {
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Summarize computes per-feature stats over a set of vectors. Features
// absent from a vector are skipped, not counted as zero.
func Summarize(vectors []feature.Vector) map[feature.Name]FeatureStats {
	columns := map[feature.Name][]float64{}
	for _, vec := range vectors {
		for name, val := range vec {
			columns[name] = append(columns[name], val)
		}
	}

	stats := make(map[feature.Name]FeatureStats, len(columns))
	for name, values := range columns {
		stats[name] = summarizeColumn(values)
	}
	return stats
}

func summarizeColumn(values []float64) FeatureStats {
	n := len(values)
	if n == 0 {
		return FeatureStats{}
	}

	sum := 0.0
	min := values[0]
	max := values[0]
	for _, v := range values {
		sum += v
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	return FeatureStats{
		Mean:  mean,
		Std:   math.Sqrt(variance),
		Min:   min,
		Max:   max,
		Count: n,
	}
}
