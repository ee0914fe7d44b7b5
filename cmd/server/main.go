package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"power_budget/internal/config"
	"power_budget/internal/load"
	"power_budget/internal/logger"
	"power_budget/internal/simulator"
	"power_budget/internal/ws"
)

func main() {
	configDir := flag.String("config-dir", "configs", "directory containing config.yml")
	frontendDir := flag.String("frontend-dir", "frontend/build", "directory containing frontend build")
	addr := flag.String("addr", ":8080", "listen address")
	logLevel := flag.String("log-level", logger.InfoLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.Get(*logLevel)

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalw("loading config", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid config", "err", err)
	}

	battery, err := simulator.NewBattery(cfg.Battery)
	if err != nil {
		log.Fatalw("building battery", "err", err)
	}

	profile := load.NewProfile(cfg.Orbit, cfg.Subsystems)
	result := simulator.Run(cfg.Orbit, cfg.Panel, profile, battery)
	summary := result.Summary()
	log.Infow("sweep complete",
		"steps", result.Steps(),
		"generated_mwh", summary.GeneratedMWh,
		"consumed_mwh", summary.ConsumedMWh,
		"min_level_pct", summary.MinLevelPct,
		"end_level_pct", summary.EndLevelPct,
	)

	hub := ws.NewHub()
	bridge := ws.NewBridge(hub, log)
	replay := simulator.NewReplay(result, bridge)
	handler := ws.NewHandler(hub, replay, cfg, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("/ws", handler)

	if _, err := os.Stat(*frontendDir); err == nil {
		log.Infow("serving frontend", "dir", *frontendDir)
		mux.Handle("/", http.FileServer(http.Dir(*frontendDir)))
	}

	log.Infow("starting server", "addr", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatalw("server stopped", "err", err)
	}
}
