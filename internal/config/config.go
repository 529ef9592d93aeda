// Package config loads runtime configuration. Precedence, lowest to
// highest: built-in defaults, the JSON config file, environment variables
// (optionally from a .env file). Recalibrating thresholds must never
// require a rebuild, so every tunable lives here.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/capture"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/intent"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/stabilize"
)

// Config is the full runtime configuration for both variants.
type Config struct {
	// CameraID selects the capture device.
	CameraID int `json:"camera_id"`
	// ActiveFPS is the frame rate while a subject is present.
	ActiveFPS int `json:"active_fps"`
	// IdleFPS is the reduced frame rate while the scene is still.
	IdleFPS int `json:"idle_fps"`
	// FrameWidth and FrameHeight are the requested capture resolution.
	FrameWidth  int `json:"frame_width"`
	FrameHeight int `json:"frame_height"`

	// ServerAddr is the HTTP listen address, empty to disable.
	ServerAddr string `json:"server_addr"`
	// DBPath is the sqlite database location.
	DBPath string `json:"db_path"`

	// BrowBaseline is the relaxed brow-to-eye gap used as the zero point
	// for the eyebrow raise feature.
	BrowBaseline float64 `json:"brow_baseline"`

	Emotion    classify.EmotionThresholds `json:"emotion_thresholds"`
	Gesture    classify.GestureThresholds `json:"gesture_thresholds"`
	Stabilizer stabilize.Config           `json:"stabilizer"`

	// IntentRules overlays the default intent table:
	// gesture -> context -> intent.
	IntentRules map[string]map[string]string `json:"intent_rules"`
	// ActionRules overlays the default action table: intent -> action.
	ActionRules map[string]string `json:"action_rules"`

	// CornerMargin is the emergency-stop corner size in pixels.
	CornerMargin int `json:"corner_margin"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CameraID:     0,
		ActiveFPS:    15,
		IdleFPS:      2,
		FrameWidth:   capture.DefaultWidth,
		FrameHeight:  capture.DefaultHeight,
		ServerAddr:   "localhost:8421",
		DBPath:       defaultDBPath(),
		BrowBaseline: 0.05,
		Emotion:      classify.DefaultEmotionThresholds(),
		Gesture:      classify.DefaultGestureThresholds(),
		Stabilizer:   stabilize.DefaultConfig(),
		CornerMargin: action.DefaultCornerMargin,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "emotion-tracker.db"
	}
	return filepath.Join(home, ".emotion-tracker", "emotion-tracker.db")
}

// Load builds the configuration. path is the JSON config file; when empty
// the CONFIG_PATH variable and then the default location are tried, and a
// missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using system environment variables")
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".emotion-tracker", "config.json")
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	log.Printf("config: loaded %s", path)
	return nil
}

func (c *Config) applyEnv() {
	c.CameraID = getEnvInt("CAMERA_ID", c.CameraID)
	c.ActiveFPS = getEnvInt("ACTIVE_FPS", c.ActiveFPS)
	c.IdleFPS = getEnvInt("IDLE_FPS", c.IdleFPS)
	c.FrameWidth = getEnvInt("FRAME_WIDTH", c.FrameWidth)
	c.FrameHeight = getEnvInt("FRAME_HEIGHT", c.FrameHeight)
	c.ServerAddr = getEnv("SERVER_ADDR", c.ServerAddr)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.BrowBaseline = getEnvFloat("BROW_BASELINE", c.BrowBaseline)
	c.CornerMargin = getEnvInt("CORNER_MARGIN", c.CornerMargin)

	c.Stabilizer.Alpha = getEnvFloat("SMOOTHING_ALPHA", c.Stabilizer.Alpha)
	c.Stabilizer.MinDwellFrames = getEnvInt("MIN_DWELL_FRAMES", c.Stabilizer.MinDwellFrames)
	c.Stabilizer.CooldownFrames = getEnvInt("COOLDOWN_FRAMES", c.Stabilizer.CooldownFrames)
	c.Stabilizer.ConfidenceThreshold = getEnvFloat("CONFIDENCE_THRESHOLD", c.Stabilizer.ConfidenceThreshold)
	c.Stabilizer.LossGraceFrames = getEnvInt("LOSS_GRACE_FRAMES", c.Stabilizer.LossGraceFrames)
}

// IntentTable returns the default intent table with the configured
// overrides applied.
func (c *Config) IntentTable() intent.Table {
	overlay := intent.Table{}
	for gesture, contexts := range c.IntentRules {
		for ctx, in := range contexts {
			key := intent.Key{
				Gesture: classify.Label(gesture),
				Context: intent.Context(ctx),
			}
			overlay[key] = intent.Intent(in)
		}
	}
	return intent.DefaultTable().Merge(overlay)
}

// ActionTable returns the default action table with the configured
// overrides applied.
func (c *Config) ActionTable() action.Table {
	overlay := action.Table{}
	for in, act := range c.ActionRules {
		overlay[intent.Intent(in)] = action.Action(act)
	}
	return action.DefaultTable().Merge(overlay)
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
