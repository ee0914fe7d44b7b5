package main

import (
	"flag"
	"fmt"
	"log"

	"power_budget/internal/config"
	"power_budget/internal/load"
	"power_budget/internal/simulator"
)

func main() {
	configDir := flag.String("config-dir", "configs", "directory containing config.yml")
	lowLevel := flag.Float64("low-level", 30, "level threshold in percent for the time-below figure")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	battery, err := simulator.NewBattery(cfg.Battery)
	if err != nil {
		log.Fatalf("Building battery: %v", err)
	}

	profile := load.NewProfile(cfg.Orbit, cfg.Subsystems)
	result := simulator.Run(cfg.Orbit, cfg.Panel, profile, battery)

	printReport(cfg, profile, result, *lowLevel)
}

func printReport(cfg config.Config, profile *load.Profile, result *simulator.Result, lowLevel float64) {
	s := result.Summary()

	fmt.Println()
	fmt.Println("Orbit Power Budget")
	fmt.Printf("  Orbit: %.1f min period, %.4f° step (%d steps)\n",
		cfg.Orbit.PeriodMin, cfg.Orbit.StepDeg, result.Steps())
	fmt.Printf("  Panel: %.1f mW peak\n", cfg.Panel.PeakMW)
	fmt.Printf("  Battery: %.0f mAh @ %.1f V, charge current %.0f mA, start %.0f%%\n",
		cfg.Battery.CapacityMAh, cfg.Battery.VoltageV,
		cfg.Battery.ChargeCurrentMA, cfg.Battery.InitialChargePct)
	fmt.Println()

	fmt.Printf(" %-22s │ %8s │ %8s │ %15s │ %9s\n",
		"Subsystem", "Idle mW", "Peak mW", "Window", "Period")
	fmt.Printf("────────────────────────┼──────────┼──────────┼─────────────────┼───────────\n")
	for _, sub := range cfg.Subsystems {
		window, period := "-", "-"
		if sub.Periodic() {
			window = fmt.Sprintf("%5.1f° - %5.1f°", sub.StartDeg, sub.EndDeg)
			period = fmt.Sprintf("%6.1f°", sub.PeriodDeg)
		}
		state := ""
		if sub.Periodic() && !sub.Enabled {
			state = " (off)"
		}
		fmt.Printf(" %-22s │ %8.1f │ %8.1f │ %15s │ %9s%s\n",
			sub.Name(), sub.IdleMW, sub.PeakMW, window, period, state)
	}
	fmt.Println()

	fmt.Printf("  Idle draw:        %8.1f mW\n", profile.IdleMW())
	fmt.Printf("  Generated:        %8.1f mWh\n", s.GeneratedMWh)
	fmt.Printf("  Consumed:         %8.1f mWh\n", s.ConsumedMWh)
	fmt.Printf("  Balance:          %+8.1f mWh\n", s.GeneratedMWh-s.ConsumedMWh)
	fmt.Println()
	fmt.Printf("  Level:            %.1f%% → %.1f%% (min %.1f%% at %.1f°, max %.1f%%)\n",
		s.StartLevelPct, s.EndLevelPct, s.MinLevelPct, s.MinLevelDeg, s.MaxLevelPct)
	fmt.Printf("  Eclipse:          %.1f%% of orbit\n", s.EclipseFraction*100)
	fmt.Printf("  Saturated:        %.1f%% of orbit\n", s.SaturatedFraction*100)
	fmt.Printf("  Below %.0f%%:        %.1f min\n", lowLevel, result.TimeBelow(lowLevel))
	fmt.Println()
}
