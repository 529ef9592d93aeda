package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gocv.io/x/gocv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/app"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/calibrate"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/config"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/hud"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/pipeline"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/server"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/store"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	display := flag.Bool("display", false, "show the HUD window")
	logPath := flag.String("log", "", `feature CSV path, "auto" for a timestamped file under logs/`)
	flag.Parse()

	fmt.Println("emotrack - webcam emotion tracking")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	st, err := store.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a := app.NewEmotion(cfg, st)

	if *logPath != "" {
		path := *logPath
		if path == "auto" {
			path = ""
		}
		logger, err := calibrate.NewLogger(path)
		if err != nil {
			log.Fatalf("Failed to open feature log: %v", err)
		}
		fmt.Printf("Logging features to %s\n", logger.Path())
		a.SetLogger(logger)
	}

	if *display {
		window := gocv.NewWindow("emotrack")
		defer window.Close()
		overlay := hud.New(feature.FaceNames)
		a.SetOnFrame(func(frame *gocv.Mat, res pipeline.FrameResult) {
			overlay.Draw(frame, res)
			window.IMShow(*frame)
			if window.WaitKey(1) == 's' {
				if path, err := hud.Snapshot(frame, "snapshots"); err == nil {
					log.Printf("saved %s", path)
				}
			}
		})
	}

	if cfg.ServerAddr != "" {
		srv := server.New(server.Config{Store: st, App: a})
		go func() {
			fmt.Printf("Serving API on %s\n", cfg.ServerAddr)
			if err := srv.ListenAndServe(cfg.ServerAddr); err != nil {
				log.Printf("Server failed: %v", err)
			}
		}()
	}

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start tracking: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	a.Stop()
}
