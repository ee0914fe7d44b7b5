package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"power_budget/internal/config"
	"power_budget/internal/load"
	"power_budget/internal/simulator"
)

type result struct {
	capacityMAh float64
	summary     simulator.Summary
	belowMin    float64
}

func main() {
	configDir := flag.String("config-dir", "configs", "directory containing config.yml")
	capsFlag := flag.String("capacities", "50,100,150,200,300,400", "comma-separated battery capacities in mAh")
	lowLevel := flag.Float64("low-level", 30, "level threshold in percent for the time-below column")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	capacities, err := parseCapacities(*capsFlag)
	if err != nil {
		log.Fatalf("Invalid capacities %q: %v", *capsFlag, err)
	}
	sort.Float64s(capacities)

	results := make([]result, 0, len(capacities))
	for _, capacity := range capacities {
		runCfg := cfg
		runCfg.Battery.CapacityMAh = capacity

		battery, err := simulator.NewBattery(runCfg.Battery)
		if err != nil {
			log.Fatalf("Building %v mAh battery: %v", capacity, err)
		}
		profile := load.NewProfile(runCfg.Orbit, runCfg.Subsystems)
		res := simulator.Run(runCfg.Orbit, runCfg.Panel, profile, battery)

		results = append(results, result{
			capacityMAh: capacity,
			summary:     res.Summary(),
			belowMin:    res.TimeBelow(*lowLevel),
		})
	}

	printTable(cfg, results, *lowLevel)
}

func printTable(cfg config.Config, results []result, lowLevel float64) {
	fmt.Println()
	fmt.Println("Battery Capacity Comparison")
	fmt.Printf("  Orbit: %.1f min, panel %.1f mW peak, start charge %.0f%%\n",
		cfg.Orbit.PeriodMin, cfg.Panel.PeakMW, cfg.Battery.InitialChargePct)
	fmt.Println()

	fmt.Printf(" %8s │ %9s │ %9s │ %9s │ %9s │ %12s\n",
		"Capacity", "End Level", "Min Level", "Max Level", "Saturated", fmt.Sprintf("Below %.0f%%", lowLevel))
	fmt.Printf("──────────┼───────────┼───────────┼───────────┼───────────┼──────────────\n")

	for _, r := range results {
		fmt.Printf(" %5.0f mAh │ %8.1f%% │ %8.1f%% │ %8.1f%% │ %8.1f%% │ %8.1f min\n",
			r.capacityMAh,
			r.summary.EndLevelPct,
			r.summary.MinLevelPct,
			r.summary.MaxLevelPct,
			r.summary.SaturatedFraction*100,
			r.belowMin)
	}
	fmt.Println()
}

func parseCapacities(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	capacities := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		capacities = append(capacities, v)
	}
	if len(capacities) == 0 {
		return nil, fmt.Errorf("no capacities given")
	}
	return capacities, nil
}
