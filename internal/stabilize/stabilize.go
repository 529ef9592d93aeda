// Package stabilize smooths per-frame classifier output into a stable
// label stream. Raw classifications flicker at frame rate; downstream
// consumers dispatch real actions, so a label change must survive a dwell
// window before it is published and a cooldown window separates
// consecutive changes.
package stabilize

import (
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
)

// State names the stabilizer phase reported with each decision.
type State string

const (
	// StateStable means the published label is settled.
	StateStable State = "STABLE"
	// StatePending means a new candidate label is accumulating dwell.
	StatePending State = "PENDING"
	// StateCooldown means a change was just published and further
	// changes are suppressed.
	StateCooldown State = "COOLDOWN"
)

// Config holds the stabilizer tunables.
type Config struct {
	// Alpha is the EMA smoothing factor in (0,1]. Higher reacts faster.
	Alpha float64 `json:"alpha"`
	// MinDwellFrames is how many consecutive frames a candidate label
	// must hold before it replaces the published label.
	MinDwellFrames int `json:"min_dwell_frames"`
	// CooldownFrames suppresses label changes after a publish.
	CooldownFrames int `json:"cooldown_frames"`
	// ConfidenceThreshold gates which frames count toward dwell.
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	// LossGraceFrames is how many consecutive no-detection frames are
	// tolerated before all state resets.
	LossGraceFrames int `json:"loss_grace_frames"`
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		Alpha:               0.3,
		MinDwellFrames:      4,
		CooldownFrames:      6,
		ConfidenceThreshold: 0.5,
		LossGraceFrames:     15,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Alpha <= 0 || c.Alpha > 1 {
		c.Alpha = d.Alpha
	}
	if c.MinDwellFrames <= 0 {
		c.MinDwellFrames = d.MinDwellFrames
	}
	if c.CooldownFrames < 0 {
		c.CooldownFrames = d.CooldownFrames
	}
	if c.ConfidenceThreshold <= 0 {
		c.ConfidenceThreshold = d.ConfidenceThreshold
	}
	if c.LossGraceFrames <= 0 {
		c.LossGraceFrames = d.LossGraceFrames
	}
	return c
}

// Decision is the stabilized output for one frame.
type Decision struct {
	// Label is the published label, classify.None until the first
	// promotion after startup or a loss reset.
	Label classify.Label `json:"label"`
	// Confidence is the smoothed confidence of the incoming stream.
	Confidence float64 `json:"confidence"`
	// State reports the stabilizer phase.
	State State `json:"state"`
	// Changed is true only on the frame a new label is published.
	Changed bool `json:"changed"`
}

// Stabilizer filters a classification stream. Not safe for concurrent
// use; each pipeline owns one.
type Stabilizer struct {
	cfg Config

	current   classify.Label
	candidate classify.Label
	dwell     int
	cooldown  int
	missing   int

	emaVec  feature.Vector
	emaConf float64
	hasEMA  bool
}

// New creates a Stabilizer. Zero config fields fall back to defaults.
func New(cfg Config) *Stabilizer {
	return &Stabilizer{cfg: cfg.withDefaults(), current: classify.None}
}

// Smooth folds a raw feature vector into the running EMA and returns the
// smoothed vector. The first vector after startup or a reset seeds the
// average unchanged.
func (s *Stabilizer) Smooth(v feature.Vector) feature.Vector {
	if s.emaVec == nil {
		s.emaVec = v.Clone()
		return s.emaVec.Clone()
	}
	a := s.cfg.Alpha
	for name, val := range v {
		s.emaVec[name] = a*val + (1-a)*s.emaVec[name]
	}
	return s.emaVec.Clone()
}

// Observe feeds one frame's classification and returns the stabilized
// decision. A label change is published only after the candidate held for
// MinDwellFrames consecutive confident frames, and never while a cooldown
// from the previous change is active.
func (s *Stabilizer) Observe(r classify.Result) Decision {
	s.missing = 0
	if s.hasEMA {
		a := s.cfg.Alpha
		s.emaConf = a*r.Confidence + (1-a)*s.emaConf
	} else {
		s.emaConf = r.Confidence
		s.hasEMA = true
	}

	if s.cooldown > 0 {
		s.cooldown--
		s.candidate = classify.None
		s.dwell = 0
		return Decision{Label: s.current, Confidence: s.emaConf, State: StateCooldown}
	}

	confident := r.Confidence >= s.cfg.ConfidenceThreshold

	if !confident || r.Label == s.current {
		// Weak frames and confirmations both break any pending
		// candidate streak.
		s.candidate = classify.None
		s.dwell = 0
		return Decision{Label: s.current, Confidence: s.emaConf, State: StateStable}
	}

	if r.Label == s.candidate {
		s.dwell++
	} else {
		s.candidate = r.Label
		s.dwell = 1
	}

	if s.dwell < s.cfg.MinDwellFrames {
		return Decision{Label: s.current, Confidence: s.emaConf, State: StatePending}
	}

	s.current = s.candidate
	s.candidate = classify.None
	s.dwell = 0
	s.cooldown = s.cfg.CooldownFrames
	return Decision{Label: s.current, Confidence: s.emaConf, State: StateCooldown, Changed: true}
}

// ObserveLoss feeds one frame with no detection. Within the grace window
// all state is frozen, cooldown included, and the last decision is
// repeated. Once the window expires everything resets and the published
// label drops to classify.None.
func (s *Stabilizer) ObserveLoss() Decision {
	s.missing++
	if s.missing <= s.cfg.LossGraceFrames {
		state := StateStable
		switch {
		case s.cooldown > 0:
			state = StateCooldown
		case s.dwell > 0:
			state = StatePending
		}
		return Decision{Label: s.current, Confidence: s.emaConf, State: state}
	}

	changed := s.current != classify.None
	s.Reset()
	return Decision{Label: classify.None, State: StateStable, Changed: changed}
}

// Reset clears all stabilizer state.
func (s *Stabilizer) Reset() {
	s.current = classify.None
	s.candidate = classify.None
	s.dwell = 0
	s.cooldown = 0
	s.missing = 0
	s.emaVec = nil
	s.emaConf = 0
	s.hasEMA = false
}

// Current returns the published label.
func (s *Stabilizer) Current() classify.Label {
	return s.current
}
