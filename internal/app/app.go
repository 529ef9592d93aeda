// Package app hosts the tracking loop. It owns the camera, the motion
// detector, and one pipeline variant, and exposes the pieces the tray and
// the HTTP server need.
package app

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/calibrate"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/capture"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/config"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/detector"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/intent"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/landmark"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/pipeline"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/stabilize"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/store"
)

// idleTimeout is how long the scene must stay still before the loop drops
// back to the idle frame rate.
const idleTimeout = 2 * time.Second

// defaultMotionThreshold is the percent of changed pixels that counts as
// motion.
const defaultMotionThreshold = 1.0

// Pipeline is the per-frame chain the loop drives. Both variants in the
// pipeline package satisfy it.
type Pipeline interface {
	Process(frame *gocv.Mat) (pipeline.FrameResult, error)
	Reset()
	Close() error
}

// Config assembles an App. Runtime and Pipeline are required; nil optional
// fields get defaults.
type Config struct {
	Runtime  *config.Config
	Pipeline Pipeline

	// Store persists dispatch records when set.
	Store *store.Store
	// Gate is the dispatch gate of the gesture variant, nil for emotion.
	Gate *action.Gate
	// EStop is the manual emergency stop wired into the gate, nil for
	// emotion.
	EStop *action.ManualStop
	// Logger records per-frame features for calibration when set.
	Logger *calibrate.Logger

	// Camera and Motion override the defaults, used by tests.
	Camera capture.Camera
	Motion *capture.MotionDetector

	// OnFrame is called for every processed frame while the frame is
	// still valid, used for HUD rendering.
	OnFrame func(frame *gocv.Mat, res pipeline.FrameResult)
}

// App runs the tracking loop and guards shared state for the tray and
// server goroutines.
type App struct {
	cfg    Config
	camera capture.Camera
	motion *capture.MotionDetector

	mu      sync.RWMutex
	enabled bool
	stopCh  chan struct{}

	latestMu sync.RWMutex
	latest   pipeline.FrameResult

	hist labelHistory
}

// New builds an App from an assembled pipeline.
func New(cfg Config) *App {
	if cfg.Runtime == nil {
		cfg.Runtime = config.Default()
	}
	if cfg.Camera == nil {
		cfg.Camera = capture.NewCamera(cfg.Runtime.CameraID, cfg.Runtime.FrameWidth, cfg.Runtime.FrameHeight)
	}
	if cfg.Motion == nil {
		cfg.Motion = capture.NewMotionDetector(defaultMotionThreshold)
	}
	return &App{
		cfg:     cfg,
		camera:  cfg.Camera,
		motion:  cfg.Motion,
		enabled: true,
	}
}

// NewEmotion assembles the face-tracking variant: camera in, stabilized
// emotion decisions out. The active emotion profile in the store, when
// present, overrides the configured thresholds.
func NewEmotion(cfg *config.Config, st *store.Store) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	th := cfg.Emotion
	applyProfile(st, store.ProfileKindEmotion, &th)

	p := pipeline.NewEmotion(
		newDetector(landmark.KindFace),
		feature.NewFaceExtractor(cfg.BrowBaseline),
		classify.NewEmotionClassifier(th),
		stabilize.New(cfg.Stabilizer),
	)
	return New(Config{Runtime: cfg, Pipeline: p, Store: st})
}

// NewGesture assembles the hand-tracking variant: the emotion chain plus
// intent mapping and a gated dispatcher. The gate starts disabled.
func NewGesture(cfg *config.Config, st *store.Store) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	th := cfg.Gesture
	applyProfile(st, store.ProfileKindGesture, &th)

	manual := &action.ManualStop{}
	gate := action.NewGate(cfg.ActionTable(), action.NewOSExecutor(),
		action.MultiStop{action.NewCornerStop(cfg.CornerMargin), manual})
	p := pipeline.NewGesture(pipeline.GestureConfig{
		Detector:   newDetector(landmark.KindHand),
		Classifier: classify.NewGestureClassifier(th),
		Stabilizer: stabilize.New(cfg.Stabilizer),
		Intents:    cfg.IntentTable(),
		Context:    intent.NewWindowSource(intent.DefaultTitleRules()),
		Gate:       gate,
	})
	return New(Config{Runtime: cfg, Pipeline: p, Store: st, Gate: gate, EStop: manual})
}

// newDetector tries MediaPipe and falls back to a mock so the rest of the
// system stays usable without it.
func newDetector(kind landmark.Kind) detector.Detector {
	mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig(kind))
	if err == nil {
		log.Printf("app: using MediaPipe %s detection", kind)
		return mp
	}
	log.Printf("app: MediaPipe not available (%v), using mock detector", err)
	return detector.NewMockDetector()
}

// applyProfile overlays the active stored profile onto th. A missing
// profile or bad thresholds blob leaves th unchanged.
func applyProfile[T any](st *store.Store, kind store.ProfileKind, th *T) {
	if st == nil {
		return
	}
	p, err := st.Profiles().Active(kind)
	if err != nil {
		if err != store.ErrNotFound {
			log.Printf("app: load %s profile: %v", kind, err)
		}
		return
	}
	if err := json.Unmarshal(p.Thresholds, th); err != nil {
		log.Printf("app: profile %s has bad thresholds: %v", p.Name, err)
		return
	}
	log.Printf("app: using %s profile %q", kind, p.Name)
}

// SetOnFrame installs the per-frame callback. Call before Start.
func (a *App) SetOnFrame(fn func(frame *gocv.Mat, res pipeline.FrameResult)) {
	a.cfg.OnFrame = fn
}

// SetLogger installs the calibration feature logger. Call before Start.
func (a *App) SetLogger(l *calibrate.Logger) {
	a.cfg.Logger = l
}

// Reset clears the stabilizer and motion state so tracking restarts from
// scratch, for an explicit user reset.
func (a *App) Reset() {
	a.cfg.Pipeline.Reset()
	a.motion.Reset()
	a.hist.reset()
	a.setLatest(pipeline.FrameResult{})
}

// SetEnabled pauses or resumes frame processing. Unlike the gate this
// stops the whole loop, not just dispatch.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled reports whether frames are being processed.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Camera returns the capture device.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Gate returns the dispatch gate, nil for the emotion variant.
func (a *App) Gate() *action.Gate {
	return a.cfg.Gate
}

// EStop returns the manual emergency stop, nil for the emotion variant.
func (a *App) EStop() *action.ManualStop {
	return a.cfg.EStop
}

// Latest returns the most recent frame result.
func (a *App) Latest() pipeline.FrameResult {
	a.latestMu.RLock()
	defer a.latestMu.RUnlock()
	return a.latest
}

func (a *App) setLatest(res pipeline.FrameResult) {
	a.latestMu.Lock()
	a.latest = res
	a.latestMu.Unlock()
}

// Start opens the camera and begins the loop. Starting a running App is a
// no-op.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(a.cfg.Runtime.IdleFPS)

	a.stopCh = make(chan struct{})
	go a.run(a.stopCh)

	log.Println("app: tracking loop started")
	return nil
}

// Stop halts the loop and releases the camera, the motion detector, and
// the pipeline.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("app: close camera: %v", err)
	}
	a.motion.Close()
	if err := a.cfg.Pipeline.Close(); err != nil {
		log.Printf("app: close pipeline: %v", err)
	}
	if a.cfg.Logger != nil {
		if err := a.cfg.Logger.Close(); err != nil {
			log.Printf("app: close feature log: %v", err)
		}
	}

	log.Println("app: tracking loop stopped")
}
