package model

import (
	"fmt"
	"math"
)

// Orbit describes one circular orbital period and the angular resolution
// used to sweep it. The orbital angle in degrees is the simulation's time
// axis; elapsed time and angle convert linearly through the period.
type Orbit struct {
	PeriodMin float64 // orbital period in minutes
	StepDeg   float64 // angular step of the sweep in degrees
}

// TimeToAngle converts elapsed time in minutes to degrees of orbit.
func (o Orbit) TimeToAngle(minutes float64) float64 {
	return minutes / o.PeriodMin * 360
}

// AngleToTime converts degrees of orbit to elapsed minutes.
func (o Orbit) AngleToTime(deg float64) float64 {
	return deg / 360 * o.PeriodMin
}

// StepMinutes returns the real-time duration of one angular step.
func (o Orbit) StepMinutes() float64 {
	return o.PeriodMin / 360 * o.StepDeg
}

// Steps returns the number of entries in the sweep [0, 360).
func (o Orbit) Steps() int {
	return int(math.Round(360 / o.StepDeg))
}

// Angles returns the full sweep [0, 360) at StepDeg increments, in
// strictly increasing order.
func (o Orbit) Angles() []float64 {
	n := o.Steps()
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = float64(i) * o.StepDeg
	}
	return angles
}

// Validate rejects orbits the sweep cannot run over.
func (o Orbit) Validate() error {
	if o.PeriodMin <= 0 {
		return fmt.Errorf("orbital period must be positive, got %v min", o.PeriodMin)
	}
	if o.StepDeg <= 0 {
		return fmt.Errorf("angular step must be positive, got %v°", o.StepDeg)
	}
	steps := 360 / o.StepDeg
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return fmt.Errorf("angular step %v° does not divide a full orbit", o.StepDeg)
	}
	return nil
}
