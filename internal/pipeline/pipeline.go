// Package pipeline drives the per-frame signal chain: landmarks in,
// stabilized decisions out. Each variant owns its stages and processes one
// frame at a time; nothing here is safe for concurrent use.
package pipeline

import (
	"fmt"
	"log"

	"gocv.io/x/gocv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/detector"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/intent"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/stabilize"
)

// FrameResult is everything one frame produced, for the HUD, the server
// broadcast, and tests.
type FrameResult struct {
	// Tracked reports whether a subject was detected this frame.
	Tracked bool `json:"tracked"`
	// Raw is the unsmoothed classification, zero when not tracked.
	Raw classify.Result `json:"raw"`
	// Decision is the stabilized output.
	Decision stabilize.Decision `json:"decision"`
	// Features is the smoothed feature vector, nil when not tracked.
	Features feature.Vector `json:"features,omitempty"`
	// Set is the detected landmark set, nil when not tracked.
	Set *landmark.Set `json:"-"`
	// Intent is the mapped intent signal, zero for the emotion variant.
	Intent intent.Signal `json:"intent,omitempty"`
	// Record is the dispatch record, nil when no dispatch happened.
	Record *action.Record `json:"record,omitempty"`
}

// Emotion is the face-tracking variant: detect, extract, classify,
// stabilize. No intents, no actions.
type Emotion struct {
	det  detector.Detector
	ext  *feature.FaceExtractor
	cls  *classify.Classifier
	stab *stabilize.Stabilizer
}

// NewEmotion assembles the emotion pipeline from its stages.
func NewEmotion(det detector.Detector, ext *feature.FaceExtractor, cls *classify.Classifier, stab *stabilize.Stabilizer) *Emotion {
	return &Emotion{det: det, ext: ext, cls: cls, stab: stab}
}

// Process runs one frame through the chain. A detector error leaves all
// stabilizer state untouched; the frame is simply not counted.
func (p *Emotion) Process(frame *gocv.Mat) (FrameResult, error) {
	sets, err := p.det.Detect(frame)
	if err != nil {
		return FrameResult{}, fmt.Errorf("detect: %w", err)
	}

	set := detector.First(sets, landmark.KindFace)
	if set == nil {
		dec := p.stab.ObserveLoss()
		log.Printf("pipeline: no face, stable=%s state=%s", dec.Label, dec.State)
		return FrameResult{Decision: dec}, nil
	}

	vec, err := p.ext.Extract(set)
	if err != nil {
		return FrameResult{}, fmt.Errorf("extract: %w", err)
	}

	smoothed := p.stab.Smooth(vec)
	raw := p.cls.Classify(smoothed)
	dec := p.stab.Observe(raw)
	log.Printf("pipeline: raw=%s(%.2f) stable=%s(%.2f) state=%s",
		raw.Label, raw.Confidence, dec.Label, dec.Confidence, dec.State)

	return FrameResult{
		Tracked:  true,
		Raw:      raw,
		Decision: dec,
		Features: smoothed,
		Set:      set,
	}, nil
}

// Reset clears the stabilizer state.
func (p *Emotion) Reset() {
	p.stab.Reset()
}

// Close releases the detector.
func (p *Emotion) Close() error {
	return p.det.Close()
}

// GestureConfig assembles a Gesture pipeline. Detector and Gate are
// required; the rest default.
type GestureConfig struct {
	Detector   detector.Detector
	Extractor  *feature.HandExtractor
	Classifier *classify.Classifier
	Stabilizer *stabilize.Stabilizer
	Intents    intent.Table
	Context    intent.Source
	Gate       *action.Gate
}

// Gesture is the hand-tracking variant: the emotion chain plus intent
// mapping and gated dispatch.
type Gesture struct {
	det   detector.Detector
	ext   *feature.HandExtractor
	cls   *classify.Classifier
	stab  *stabilize.Stabilizer
	table intent.Table
	ctx   intent.Source
	gate  *action.Gate
}

// NewGesture assembles the gesture pipeline.
func NewGesture(cfg GestureConfig) *Gesture {
	if cfg.Extractor == nil {
		cfg.Extractor = feature.NewHandExtractor()
	}
	if cfg.Classifier == nil {
		cfg.Classifier = classify.NewGestureClassifier(classify.DefaultGestureThresholds())
	}
	if cfg.Stabilizer == nil {
		cfg.Stabilizer = stabilize.New(stabilize.DefaultConfig())
	}
	if cfg.Intents == nil {
		cfg.Intents = intent.DefaultTable()
	}
	if cfg.Context == nil {
		cfg.Context = intent.StaticSource{}
	}
	return &Gesture{
		det:   cfg.Detector,
		ext:   cfg.Extractor,
		cls:   cfg.Classifier,
		stab:  cfg.Stabilizer,
		table: cfg.Intents,
		ctx:   cfg.Context,
		gate:  cfg.Gate,
	}
}

// Process runs one frame through the chain and dispatches the mapped
// intent through the gate. Loss frames produce no dispatch; the gate only
// sees frames with a tracked hand.
func (p *Gesture) Process(frame *gocv.Mat) (FrameResult, error) {
	sets, err := p.det.Detect(frame)
	if err != nil {
		return FrameResult{}, fmt.Errorf("detect: %w", err)
	}

	set := detector.First(sets, landmark.KindHand)
	if set == nil {
		dec := p.stab.ObserveLoss()
		log.Printf("pipeline: no hand, stable=%s state=%s", dec.Label, dec.State)
		return FrameResult{Decision: dec}, nil
	}

	vec, err := p.ext.Extract(set)
	if err != nil {
		return FrameResult{}, fmt.Errorf("extract: %w", err)
	}

	smoothed := p.stab.Smooth(vec)
	raw := p.cls.Classify(smoothed)
	dec := p.stab.Observe(raw)

	sig := p.table.Map(dec.Label, p.ctx.Current())
	log.Printf("pipeline: raw=%s(%.2f) stable=%s(%.2f) state=%s intent=%s ctx=%s",
		raw.Label, raw.Confidence, dec.Label, dec.Confidence, dec.State, sig.Intent, sig.Context)

	res := FrameResult{
		Tracked:  true,
		Raw:      raw,
		Decision: dec,
		Features: smoothed,
		Set:      set,
		Intent:   sig,
	}
	if p.gate != nil {
		rec := p.gate.Dispatch(sig)
		res.Record = &rec
	}
	return res, nil
}

// Reset clears the stabilizer state.
func (p *Gesture) Reset() {
	p.stab.Reset()
}

// Close releases the detector.
func (p *Gesture) Close() error {
	return p.det.Close()
}
