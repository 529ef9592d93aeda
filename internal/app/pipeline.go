package app

import (
	"log"
	"time"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/pipeline"
)

// run is the tracking loop. Motion gates the frame rate: the camera idles
// until the scene moves, tracks at the active rate while it does, and
// drops back after idleTimeout of stillness. The stabilizer is reset on
// the drop so a stale label cannot survive an idle period.
func (a *App) run(stopCh chan struct{}) {
	active := false
	lastMotion := time.Now()

	interval := time.Second / time.Duration(a.cfg.Runtime.IdleFPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("app: read frame: %v", err)
				continue
			}

			moved, _ := a.motion.Detect(frame)
			if moved {
				lastMotion = time.Now()
				if !active {
					active = true
					a.camera.SetFPS(a.cfg.Runtime.ActiveFPS)
					ticker.Reset(time.Second / time.Duration(a.cfg.Runtime.ActiveFPS))
					log.Println("app: motion, switching to active rate")
				}
			} else if active && time.Since(lastMotion) > idleTimeout {
				active = false
				a.camera.SetFPS(a.cfg.Runtime.IdleFPS)
				ticker.Reset(interval)
				a.cfg.Pipeline.Reset()
				log.Println("app: still, switching to idle rate")
			}

			if !active {
				frame.Close()
				continue
			}

			res, err := a.cfg.Pipeline.Process(frame)
			if err != nil {
				frame.Close()
				log.Printf("app: process frame: %v", err)
				continue
			}
			if a.cfg.OnFrame != nil {
				a.cfg.OnFrame(frame, res)
			}
			frame.Close()

			if res.Tracked {
				a.hist.add(res.Decision.Label)
			}
			a.setLatest(res)
			a.persist(res)
		}
	}
}

// persist writes the side effects of one frame: the dispatch record when
// something was dispatched, and the feature log row when tracking.
// No-action records are skipped so the history holds decisions, not noise.
func (a *App) persist(res pipeline.FrameResult) {
	if a.cfg.Store != nil && res.Record != nil && res.Record.Status != action.StatusNoAction {
		if err := a.cfg.Store.Records().Add(*res.Record); err != nil {
			log.Printf("app: persist record: %v", err)
		}
	}
	if a.cfg.Logger != nil && res.Tracked {
		if err := a.cfg.Logger.Log(float64(a.camera.FPS()), res.Features, res.Raw); err != nil {
			log.Printf("app: feature log: %v", err)
		}
	}
}
