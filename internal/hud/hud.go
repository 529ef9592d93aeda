// Package hud draws the debug overlay: landmark points, the subject box,
// and the label/confidence readout. Purely cosmetic; nothing here feeds
// back into the pipeline.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"gocv.io/x/gocv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/pipeline"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/stabilize"
)

var (
	colorStable   = color.RGBA{G: 220, A: 0}
	colorPending  = color.RGBA{R: 230, G: 200, A: 0}
	colorCooldown = color.RGBA{R: 160, G: 160, B: 160, A: 0}
	colorBox      = color.RGBA{R: 80, G: 200, B: 255, A: 0}
	colorBar      = color.RGBA{G: 180, B: 80, A: 0}
	colorAlert    = color.RGBA{R: 230, A: 0}
)

// Overlay renders frame results onto captured frames.
type Overlay struct {
	// ShowFeatures also renders per-feature bars.
	ShowFeatures bool
	// Features orders the feature bars, typically feature.FaceNames or
	// feature.HandNames.
	Features []feature.Name
}

// New creates an Overlay with feature bars for the given feature order.
func New(features []feature.Name) *Overlay {
	return &Overlay{ShowFeatures: true, Features: features}
}

// Draw renders the result onto the frame in place.
func (o *Overlay) Draw(frame *gocv.Mat, res pipeline.FrameResult) {
	if frame == nil || frame.Empty() {
		return
	}
	w := frame.Cols()
	h := frame.Rows()

	if res.Set != nil {
		box := res.Set.Box
		rect := image.Rect(
			int(box.XMin*float64(w)), int(box.YMin*float64(h)),
			int(box.XMax*float64(w)), int(box.YMax*float64(h)),
		)
		gocv.Rectangle(frame, rect, colorBox, 2)

		for _, p := range res.Set.Points {
			gocv.Circle(frame, image.Pt(int(p.X*float64(w)), int(p.Y*float64(h))), 2, colorBox, -1)
		}
	}

	if !res.Tracked {
		gocv.PutText(frame, "NO SUBJECT", image.Pt(w/2-80, h/2), gocv.FontHersheySimplex, 0.9, colorAlert, 2)
	}

	label := fmt.Sprintf("%s %.2f [%s]", res.Decision.Label, res.Decision.Confidence, res.Decision.State)
	gocv.PutText(frame, label, image.Pt(10, 30), gocv.FontHersheySimplex, 0.8, stateColor(res.Decision.State), 2)

	// Confidence bar under the label.
	gocv.Rectangle(frame, image.Rect(10, 40, 10+barWidth(res.Decision.Confidence, 200), 50), colorBar, -1)
	gocv.Rectangle(frame, image.Rect(10, 40, 210, 50), colorBox, 1)

	y := 70
	if o.ShowFeatures && res.Features != nil {
		for _, name := range o.Features {
			val := res.Features.Get(name)
			text := fmt.Sprintf("%s %.4f", name, val)
			gocv.PutText(frame, text, image.Pt(10, y), gocv.FontHersheySimplex, 0.45, colorBox, 1)
			gocv.Rectangle(frame, image.Rect(180, y-8, 180+barWidth(val*4, 120), y), colorBar, -1)
			y += 20
		}
	}

	if res.Record != nil {
		text := fmt.Sprintf("%s -> %s", res.Record.Action, res.Record.Status)
		c := colorStable
		if res.Record.Status != action.StatusExecuted {
			c = colorAlert
		}
		gocv.PutText(frame, text, image.Pt(10, h-15), gocv.FontHersheySimplex, 0.6, c, 2)
	}
}

// Snapshot writes the frame as a timestamped PNG under dir and returns
// the path.
func Snapshot(frame *gocv.Mat, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("snapshot_%s.png", time.Now().Format("20060102_150405")))
	if ok := gocv.IMWrite(path, *frame); !ok {
		return "", fmt.Errorf("write snapshot %s", path)
	}
	return path, nil
}

// stateColor picks the readout color for a stabilizer state.
func stateColor(s stabilize.State) color.RGBA {
	switch s {
	case stabilize.StatePending:
		return colorPending
	case stabilize.StateCooldown:
		return colorCooldown
	default:
		return colorStable
	}
}

// barWidth scales a value in [0,1] to a pixel width, clamped.
func barWidth(v float64, max int) int {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return max
	}
	return int(v * float64(max))
}
