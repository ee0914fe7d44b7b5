package load

import (
	"math"

	"power_budget/internal/model"
)

// Profile evaluates total subsystem power draw over an orbit. Every
// angle is evaluated independently; there is no state between calls.
type Profile struct {
	orbit      model.Orbit
	subsystems []model.SubsystemSpec
}

func NewProfile(orbit model.Orbit, subsystems []model.SubsystemSpec) *Profile {
	return &Profile{orbit: orbit, subsystems: subsystems}
}

// Subsystems returns the specs the profile evaluates.
func (p *Profile) Subsystems() []model.SubsystemSpec {
	return p.subsystems
}

// IdleMW returns the always-on baseline draw in mW. Idle terms count
// even for disabled subsystems; Enabled gates only the duty-cycle peak.
func (p *Profile) IdleMW() float64 {
	var total float64
	for _, s := range p.subsystems {
		total += s.IdleMW
	}
	return total
}

// ActiveAt reports whether a subsystem's periodic load draws peak power
// at the given angle. A load is active iff the subsystem is enabled, the
// angle falls in its overall window [StartDeg, EndDeg), and the phase of
// the angle within the repeat period falls in the duty sub-window. All
// comparisons are half-open: a load exactly at its end angle is off.
func (p *Profile) ActiveAt(s model.SubsystemSpec, angleDeg float64) bool {
	if !s.Enabled || !s.Periodic() {
		return false
	}
	if angleDeg < s.StartDeg || angleDeg >= s.EndDeg {
		return false
	}
	phase := math.Mod(angleDeg, s.PeriodDeg)
	phaseStart := math.Mod(s.StartDeg, s.PeriodDeg)
	durationDeg := p.orbit.TimeToAngle(s.DurationMin)
	return phase >= phaseStart && phase < phaseStart+durationDeg
}

// TotalAt returns total consumption in mW at the given angle: the idle
// baseline plus the peak of every active periodic load. Loads sum
// additively, with no mutual exclusion.
func (p *Profile) TotalAt(angleDeg float64) float64 {
	total := p.IdleMW()
	for _, s := range p.subsystems {
		if p.ActiveAt(s, angleDeg) {
			total += s.PeakMW
		}
	}
	return total
}
