package simulator

import (
	"power_budget/internal/load"
	"power_budget/internal/model"
	"power_budget/internal/solar"
)

// Result holds the aligned output series of one orbit sweep: one entry
// per angle step in each slice. The intermediate solar and load series
// are kept alongside the battery series for overlay comparison.
type Result struct {
	Orbit         model.Orbit
	CapacityMAmin float64

	AngleDeg    []float64
	SolarMW     []float64
	LoadMW      []float64
	ChargeMAmin []float64
	CurrentMA   []float64
	LevelPct    []float64
}

// Run sweeps one orbit in strictly increasing angle order. Each step
// consumes the illumination and load at the current angle and advances
// the battery once; there is no feedback from the battery into the
// models, no lookahead, and no retroactive correction. Output is fully
// deterministic for identical inputs.
func Run(orbit model.Orbit, panel solar.Panel, profile *load.Profile, battery *Battery) *Result {
	angles := orbit.Angles()
	stepMin := orbit.StepMinutes()

	r := &Result{
		Orbit:         orbit,
		CapacityMAmin: battery.CapacityMAmin,
		AngleDeg:      angles,
		SolarMW:       make([]float64, 0, len(angles)),
		LoadMW:        make([]float64, 0, len(angles)),
		ChargeMAmin:   make([]float64, 0, len(angles)),
		CurrentMA:     make([]float64, 0, len(angles)),
		LevelPct:      make([]float64, 0, len(angles)),
	}

	for _, angle := range angles {
		solarMW := panel.PowerAt(angle)
		loadMW := profile.TotalAt(angle)
		step := battery.Step(solarMW, loadMW, stepMin)

		r.SolarMW = append(r.SolarMW, solarMW)
		r.LoadMW = append(r.LoadMW, loadMW)
		r.ChargeMAmin = append(r.ChargeMAmin, step.ChargeMAmin)
		r.CurrentMA = append(r.CurrentMA, step.CurrentMA)
		r.LevelPct = append(r.LevelPct, step.LevelPct)
	}

	return r
}

// Steps returns the number of entries in the sweep.
func (r *Result) Steps() int {
	return len(r.AngleDeg)
}

// Sample returns the series values at step i as one replayable record.
func (r *Result) Sample(i int) Sample {
	return Sample{
		AngleDeg:    r.AngleDeg[i],
		SolarMW:     r.SolarMW[i],
		LoadMW:      r.LoadMW[i],
		ChargeMAmin: r.ChargeMAmin[i],
		CurrentMA:   r.CurrentMA[i],
		LevelPct:    r.LevelPct[i],
	}
}

// Summary holds orbit-level totals derived from a sweep result.
type Summary struct {
	GeneratedMWh float64 `json:"generated_mwh"`
	ConsumedMWh  float64 `json:"consumed_mwh"`

	StartLevelPct float64 `json:"start_level_pct"`
	EndLevelPct   float64 `json:"end_level_pct"`
	MinLevelPct   float64 `json:"min_level_pct"`
	MinLevelDeg   float64 `json:"min_level_deg"`
	MaxLevelPct   float64 `json:"max_level_pct"`

	EclipseFraction   float64 `json:"eclipse_fraction"`
	SaturatedFraction float64 `json:"saturated_fraction"`
}

// Summary computes the orbit-level totals for the sweep.
func (r *Result) Summary() Summary {
	var s Summary
	if r.Steps() == 0 {
		return s
	}

	stepHours := r.Orbit.StepMinutes() / 60
	s.StartLevelPct = r.LevelPct[0]
	s.EndLevelPct = r.LevelPct[r.Steps()-1]
	s.MinLevelPct = r.LevelPct[0]
	s.MaxLevelPct = r.LevelPct[0]

	var eclipseSteps, saturatedSteps int
	for i := range r.AngleDeg {
		s.GeneratedMWh += r.SolarMW[i] * stepHours
		s.ConsumedMWh += r.LoadMW[i] * stepHours

		if r.LevelPct[i] < s.MinLevelPct {
			s.MinLevelPct = r.LevelPct[i]
			s.MinLevelDeg = r.AngleDeg[i]
		}
		if r.LevelPct[i] > s.MaxLevelPct {
			s.MaxLevelPct = r.LevelPct[i]
		}
		if r.SolarMW[i] == 0 {
			eclipseSteps++
		}
		if r.ChargeMAmin[i] >= r.CapacityMAmin && r.CurrentMA[i] == 0 {
			saturatedSteps++
		}
	}

	s.EclipseFraction = float64(eclipseSteps) / float64(r.Steps())
	s.SaturatedFraction = float64(saturatedSteps) / float64(r.Steps())
	return s
}

// TimeBelow returns how many minutes of the orbit the battery level
// spends strictly below the given percentage.
func (r *Result) TimeBelow(levelPct float64) float64 {
	stepMin := r.Orbit.StepMinutes()
	var minutes float64
	for _, lvl := range r.LevelPct {
		if lvl < levelPct {
			minutes += stepMin
		}
	}
	return minutes
}
