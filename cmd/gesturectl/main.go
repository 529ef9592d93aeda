package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/app"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/classify"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/config"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/server"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/store"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "config file path")
	flag.Parse()

	fmt.Println("gesturectl - gesture-driven desktop control")

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

	a := app.NewGesture(cfg, st)

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

	tr := tray.New()
	tr.OnToggle(func(enabled bool) {
		if enabled {
			a.EStop().Clear()
			a.Gate().Enable()
		} else {
			a.Gate().Disable()
		}
	})
	tr.OnSettings(func() {
		log.Printf("settings: http://%s/api/profiles", cfg.ServerAddr)
	})
	tr.OnQuit(func() {
		a.Stop()
	})

	go watchState(a, tr)

	// Blocks until the quit menu item is used.
	tr.Run()
}

// watchState mirrors the loop state into the tray: the last stabilized
// label and the emergency-stop indicator.
func watchState(a *app.App, tr *tray.Tray) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	last := classify.None
	for range ticker.C {
		res := a.Latest()
		if res.Decision.Label != last {
			last = res.Decision.Label
			name := string(last)
			if last == classify.None {
				name = ""
			}
			tr.SetLastLabel(name)
		}
		if res.Record != nil && res.Record.Status == action.StatusEmergencyStop {
			tr.SetStopped(true)
		}
	}
}
