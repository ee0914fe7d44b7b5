package simulator

import "fmt"

// BatteryConfig holds the battery's electrical parameters.
type BatteryConfig struct {
	CapacityMAh      float64 `mapstructure:"capacity_mah"`       // cell capacity in mAh
	VoltageV         float64 `mapstructure:"voltage_v"`          // nominal bus voltage
	ChargeCurrentMA  float64 `mapstructure:"charge_current_ma"`  // nominal charging current
	InitialChargePct float64 `mapstructure:"initial_charge_pct"` // state of charge at sweep start, percent
}

// Validate rejects configurations the stepper cannot run with. The
// sweep itself never fails; anything invalid is caught here.
func (c BatteryConfig) Validate() error {
	if c.CapacityMAh <= 0 {
		return fmt.Errorf("battery capacity must be positive, got %v mAh", c.CapacityMAh)
	}
	if c.VoltageV <= 0 {
		return fmt.Errorf("battery voltage must be positive, got %v V", c.VoltageV)
	}
	if c.ChargeCurrentMA <= 0 {
		return fmt.Errorf("charge current must be positive, got %v mA", c.ChargeCurrentMA)
	}
	if c.InitialChargePct < 0 || c.InitialChargePct > 100 {
		return fmt.Errorf("initial charge must be within [0, 100]%%, got %v", c.InitialChargePct)
	}
	return nil
}

// StepResult records one simulation step.
type StepResult struct {
	ChargeMAmin float64 // stored charge after the step
	CurrentMA   float64 // positive = charging, negative = discharging
	LevelPct    float64 // charge as a percentage of capacity
}

// Battery steps a single state variable, the stored charge, through the
// angle sweep. Charge is held in mA·min so that current times minutes
// adds directly; capacity in mA·min is capacity in mAh times 60.
type Battery struct {
	config BatteryConfig

	CapacityMAmin float64
	ChargeMAmin   float64
}

// NewBattery validates the configuration and returns a battery at its
// initial state of charge.
func NewBattery(cfg BatteryConfig) (*Battery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	capacity := cfg.CapacityMAh * 60
	return &Battery{
		config:        cfg,
		CapacityMAmin: capacity,
		ChargeMAmin:   capacity * cfg.InitialChargePct / 100,
	}, nil
}

// Step advances the charge state by one angular step and returns the
// step's record. solarMW and loadMW are the illumination and total
// consumption at the current angle; stepMin is the real-time duration
// of the step in minutes.
//
// Branch priority: saturated, surplus charging, deficit discharging. A
// full battery holds zero current only while the panel still covers the
// load; a deficit resumes discharging from the clamped charge.
func (b *Battery) Step(solarMW, loadMW, stepMin float64) StepResult {
	chargePowerMW := b.config.VoltageV * b.config.ChargeCurrentMA

	var currentMA float64
	switch {
	case b.ChargeMAmin >= b.CapacityMAmin && solarMW >= loadMW:
		// Saturated: clamp exactly, stop accumulating.
		b.ChargeMAmin = b.CapacityMAmin
	case solarMW > loadMW+chargePowerMW:
		// Surplus: cover the load, put the remainder into the battery,
		// at the nominal rate whenever the surplus sustains it.
		currentMA = (solarMW - loadMW) / b.config.VoltageV
		if currentMA > b.config.ChargeCurrentMA {
			currentMA = b.config.ChargeCurrentMA
		}
		b.ChargeMAmin += currentMA * stepMin
		if b.ChargeMAmin > b.CapacityMAmin {
			b.ChargeMAmin = b.CapacityMAmin
		}
	default:
		// Deficit: the battery covers the shortfall. When solar covers
		// the load but not the full charging power on top, the same
		// arithmetic trickle-charges at the reduced surplus rate.
		currentMA = (solarMW - loadMW) / b.config.VoltageV
		b.ChargeMAmin += currentMA * stepMin
		if b.ChargeMAmin < 0 {
			b.ChargeMAmin = 0
		}
		if b.ChargeMAmin > b.CapacityMAmin {
			b.ChargeMAmin = b.CapacityMAmin
		}
	}

	return StepResult{
		ChargeMAmin: b.ChargeMAmin,
		CurrentMA:   currentMA,
		LevelPct:    b.ChargeMAmin / b.CapacityMAmin * 100,
	}
}

// LevelPct returns the current state of charge as a percentage.
func (b *Battery) LevelPct() float64 {
	return b.ChargeMAmin / b.CapacityMAmin * 100
}

// Reset returns the charge to the configured initial state.
func (b *Battery) Reset() {
	b.ChargeMAmin = b.CapacityMAmin * b.config.InitialChargePct / 100
}
