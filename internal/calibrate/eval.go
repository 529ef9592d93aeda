package calibrate

import (
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/store"
)

// Metrics scores one label's predictions.
type Metrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Evaluation scores a classifier over a labeled sample set.
type Evaluation struct {
	Accuracy float64                    `json:"accuracy"`
	PerLabel map[classify.Label]Metrics `json:"per_label"`
	Total    int                        `json:"total"`
}

// Evaluate replays labeled samples through a classifier and scores the
// predictions against the recorded labels.
func Evaluate(c *classify.Classifier, samples []store.Sample) Evaluation {
	type counts struct {
		tp, fp, fn, support int
	}
	byLabel := map[classify.Label]*counts{}
	tally := func(label classify.Label) *counts {
		if _, ok := byLabel[label]; !ok {
			byLabel[label] = &counts{}
		}
		return byLabel[label]
	}

	correct := 0
	for _, s := range samples {
		want := classify.Label(s.Label)
		got := c.Classify(s.Features).Label

		tally(want).support++
		if got == want {
			correct++
			tally(want).tp++
		} else {
			tally(got).fp++
			tally(want).fn++
		}
	}

	eval := Evaluation{
		PerLabel: make(map[classify.Label]Metrics, len(byLabel)),
		Total:    len(samples),
	}
	if eval.Total > 0 {
		eval.Accuracy = float64(correct) / float64(eval.Total)
	}

	for label, c := range byLabel {
		m := Metrics{Support: c.support}
		if c.tp+c.fp > 0 {
			m.Precision = float64(c.tp) / float64(c.tp+c.fp)
		}
		if c.tp+c.fn > 0 {
			m.Recall = float64(c.tp) / float64(c.tp+c.fn)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		eval.PerLabel[label] = m
	}
	return eval
}
