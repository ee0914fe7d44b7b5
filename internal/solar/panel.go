package solar

import "math"

// SolarIntensity is the solar constant in W/mm².
const SolarIntensity = 1353.0 / 1e6

// Panel models a single flat solar cell rotating with the spacecraft
// over one orbit. Illumination follows the sine of the orbital angle;
// the half of the orbit where the sine is non-positive is eclipse.
type Panel struct {
	PeakMW float64 // cell output at normal incidence
}

// PowerAt returns the instantaneous cell output in mW at the given
// orbital angle in degrees. Defined for all real angles; never negative.
func (p Panel) PowerAt(angleDeg float64) float64 {
	s := math.Sin(angleDeg * math.Pi / 180)
	if s <= 0 {
		return 0
	}
	return p.PeakMW * s
}

// AM15Intensity returns the solar intensity at air mass 1.5 in W/mm²,
// for comparing orbital output with ground reference conditions.
func AM15Intensity() float64 {
	return 1.1 * SolarIntensity * math.Pow(0.7, math.Pow(1.5, 0.678))
}

// IncidentPower returns the power in mW falling on a cell of the given
// dimensions in mm under the given intensity in W/mm².
func IncidentPower(intensity, lengthMM, widthMM float64) float64 {
	return intensity * lengthMM * widthMM * 1000
}

// CellPeakPower estimates the electrical peak output in mW of a cell
// from its geometry, conversion efficiency and fill factor (both in
// percent). Hosts can use this instead of configuring PeakMW directly.
func CellPeakPower(intensity, lengthMM, widthMM, efficiencyPct, fillFactorPct float64) float64 {
	return IncidentPower(intensity, lengthMM, widthMM) * efficiencyPct / 100 * fillFactorPct / 100
}
