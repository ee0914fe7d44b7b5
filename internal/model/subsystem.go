package model

// SubsystemID identifies an onboard subsystem.
type SubsystemID string

const (
	SubsystemGPS             SubsystemID = "gps"
	SubsystemMCU             SubsystemID = "mcu"
	SubsystemIMU             SubsystemID = "imu"
	SubsystemTransceiver     SubsystemID = "transceiver"
	SubsystemCamera          SubsystemID = "camera"
	SubsystemAttitudeControl SubsystemID = "attitude_control"
	SubsystemEnvSensors      SubsystemID = "env_sensors"
)

// SubsystemInfo holds the display name for a subsystem.
type SubsystemInfo struct {
	Name string
}

// SubsystemCatalog maps every known SubsystemID to its display name.
var SubsystemCatalog = map[SubsystemID]SubsystemInfo{
	SubsystemGPS:             {Name: "GPS Receiver"},
	SubsystemMCU:             {Name: "Onboard Computer"},
	SubsystemIMU:             {Name: "IMU"},
	SubsystemTransceiver:     {Name: "Transceiver"},
	SubsystemCamera:          {Name: "Camera"},
	SubsystemAttitudeControl: {Name: "Attitude Control"},
	SubsystemEnvSensors:      {Name: "Environmental Sensors"},
}

// SubsystemSpec describes the power behavior of one subsystem. It is
// fixed at configuration time and read-only during simulation.
//
// IdleMW is the always-on baseline draw; it counts even when the
// subsystem is disabled. PeakMW is the draw above idle while the duty
// window is active; Enabled gates only this periodic part. DurationMin
// is the length of one operation in minutes and is converted to an
// angular width through the orbit before any window comparison.
type SubsystemSpec struct {
	ID          SubsystemID `mapstructure:"id"`
	IdleMW      float64     `mapstructure:"idle_mw"`
	PeakMW      float64     `mapstructure:"peak_mw"`
	StartDeg    float64     `mapstructure:"start_deg"`
	EndDeg      float64     `mapstructure:"end_deg"`
	PeriodDeg   float64     `mapstructure:"period_deg"`
	DurationMin float64     `mapstructure:"duration_min"`
	Enabled     bool        `mapstructure:"enabled"`
}

// Periodic reports whether the spec carries a duty-cycle load at all.
func (s SubsystemSpec) Periodic() bool {
	return s.PeriodDeg > 0 && s.PeakMW > 0
}

// Name returns the catalog display name, or the raw ID for subsystems
// not in the catalog.
func (s SubsystemSpec) Name() string {
	if info, ok := SubsystemCatalog[s.ID]; ok {
		return info.Name
	}
	return string(s.ID)
}

// DefaultSubsystems returns the reference flight configuration. The
// transceiver's deactivation angle is derived from its operation length,
// so it depends on the orbit. Attitude control runs its duty cycle over
// the whole orbit.
func DefaultSubsystems(o Orbit) []SubsystemSpec {
	return []SubsystemSpec{
		{ID: SubsystemGPS, IdleMW: 50},
		{ID: SubsystemMCU, IdleMW: 10},
		{ID: SubsystemIMU, IdleMW: 6},
		{
			ID:          SubsystemTransceiver,
			IdleMW:      0.9,
			PeakMW:      200 - 0.9,
			StartDeg:    60,
			EndDeg:      60 + o.TimeToAngle(15),
			PeriodDeg:   360,
			DurationMin: 15,
			Enabled:     true,
		},
		{
			ID:          SubsystemCamera,
			PeakMW:      60,
			StartDeg:    0,
			EndDeg:      180,
			PeriodDeg:   5,
			DurationMin: 0.03,
			Enabled:     true,
		},
		{
			ID:          SubsystemAttitudeControl,
			PeakMW:      66,
			StartDeg:    0,
			EndDeg:      360,
			PeriodDeg:   10,
			DurationMin: 1,
			Enabled:     true,
		},
		{ID: SubsystemEnvSensors, IdleMW: 1},
	}
}
