package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"power_budget/internal/model"
	"power_budget/internal/simulator"
	"power_budget/internal/solar"
)

// Config is the full simulation scenario: orbit geometry, panel, battery
// and subsystem table. It is assembled once before the sweep starts and
// read-only afterwards.
type Config struct {
	Orbit      model.Orbit
	Panel      solar.Panel
	Battery    simulator.BatteryConfig
	Subsystems []model.SubsystemSpec
}

// Default returns the reference flight scenario: a 90-minute orbit, a
// 220 mW panel and a 200 mAh cell at 3.7 V starting half charged.
func Default() Config {
	orbit := model.Orbit{PeriodMin: 90, StepDeg: 1.0 / 60}
	return Config{
		Orbit: orbit,
		Panel: solar.Panel{PeakMW: 220},
		Battery: simulator.BatteryConfig{
			CapacityMAh:      200,
			VoltageV:         3.7,
			ChargeCurrentMA:  40,
			InitialChargePct: 50,
		},
		Subsystems: model.DefaultSubsystems(orbit),
	}
}

// Load reads config.yml from the given directory. Anything unset falls
// back to the reference scenario, so a missing file is not an error.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")

	def := Default()
	v.SetDefault("orbit.period_min", def.Orbit.PeriodMin)
	v.SetDefault("orbit.step_deg", def.Orbit.StepDeg)
	v.SetDefault("panel.peak_mw", def.Panel.PeakMW)
	v.SetDefault("battery.capacity_mah", def.Battery.CapacityMAh)
	v.SetDefault("battery.voltage_v", def.Battery.VoltageV)
	v.SetDefault("battery.charge_current_ma", def.Battery.ChargeCurrentMA)
	v.SetDefault("battery.initial_charge_pct", def.Battery.InitialChargePct)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Orbit: model.Orbit{
			PeriodMin: v.GetFloat64("orbit.period_min"),
			StepDeg:   v.GetFloat64("orbit.step_deg"),
		},
		Panel: solar.Panel{PeakMW: v.GetFloat64("panel.peak_mw")},
		Battery: simulator.BatteryConfig{
			CapacityMAh:      v.GetFloat64("battery.capacity_mah"),
			VoltageV:         v.GetFloat64("battery.voltage_v"),
			ChargeCurrentMA:  v.GetFloat64("battery.charge_current_ma"),
			InitialChargePct: v.GetFloat64("battery.initial_charge_pct"),
		},
	}

	if v.IsSet("subsystems") {
		var specs []model.SubsystemSpec
		if err := v.UnmarshalKey("subsystems", &specs); err != nil {
			return Config{}, fmt.Errorf("parsing subsystems: %w", err)
		}
		for i := range specs {
			// An omitted deactivation angle means the window spans the
			// whole orbit.
			if specs[i].EndDeg == 0 {
				specs[i].EndDeg = 360
			}
		}
		cfg.Subsystems = specs
	} else {
		cfg.Subsystems = model.DefaultSubsystems(cfg.Orbit)
	}

	return cfg, nil
}

// Validate checks the entire scenario. Construction is the only place
// invalid input can surface; the sweep never fails afterwards.
func (c Config) Validate() error {
	if err := c.Orbit.Validate(); err != nil {
		return fmt.Errorf("orbit: %w", err)
	}
	if c.Panel.PeakMW < 0 {
		return fmt.Errorf("panel peak power must not be negative, got %v mW", c.Panel.PeakMW)
	}
	if err := c.Battery.Validate(); err != nil {
		return fmt.Errorf("battery: %w", err)
	}
	for _, s := range c.Subsystems {
		if err := validateSubsystem(s); err != nil {
			return fmt.Errorf("subsystem %s: %w", s.ID, err)
		}
	}
	return nil
}

func validateSubsystem(s model.SubsystemSpec) error {
	if s.IdleMW < 0 || s.PeakMW < 0 {
		return errors.New("power draws must not be negative")
	}
	if !s.Periodic() {
		return nil
	}
	if s.DurationMin < 0 {
		return errors.New("operation duration must not be negative")
	}
	if s.StartDeg < 0 || s.StartDeg >= 360 {
		return fmt.Errorf("start angle %v° outside [0, 360)", s.StartDeg)
	}
	if s.EndDeg < s.StartDeg {
		return fmt.Errorf("end angle %v° before start angle %v°", s.EndDeg, s.StartDeg)
	}
	return nil
}
