package solar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanel_EclipseHalfIsZero(t *testing.T) {
	p := Panel{PeakMW: 220}

	// Everywhere the computed sine is non-positive the cell is dark.
	// Exactly 180° is excluded: in floating point its sine lands a hair
	// above zero, so the cell sees a vanishing but positive output there.
	for angle := 180.5; angle <= 360; angle += 0.5 {
		assert.Zero(t, p.PowerAt(angle), "angle %v should be eclipse", angle)
	}
	assert.Zero(t, p.PowerAt(0))
	assert.Less(t, p.PowerAt(180), 1e-10)
}

func TestPanel_SunlitHalf(t *testing.T) {
	p := Panel{PeakMW: 220}

	// Peak output at 90°, sine shape elsewhere
	assert.InDelta(t, 220, p.PowerAt(90), 1e-9)
	assert.InDelta(t, 110, p.PowerAt(30), 1e-9)
	assert.InDelta(t, 220*math.Sin(45*math.Pi/180), p.PowerAt(45), 1e-9)
}

func TestPanel_NonNegativeEverywhere(t *testing.T) {
	p := Panel{PeakMW: 220}
	for angle := -720.0; angle <= 720; angle += 1.0 / 3 {
		assert.GreaterOrEqual(t, p.PowerAt(angle), 0.0, "angle %v", angle)
	}
}

func TestPanel_Periodic(t *testing.T) {
	p := Panel{PeakMW: 220}
	for _, angle := range []float64{12.5, 100, 250, 359} {
		assert.InDelta(t, p.PowerAt(angle), p.PowerAt(angle+360), 1e-9)
		assert.InDelta(t, p.PowerAt(angle), p.PowerAt(angle-360), 1e-9)
	}
}

func TestIncidentPower(t *testing.T) {
	// 54.5 × 38 mm cell under the solar constant
	got := IncidentPower(SolarIntensity, 54.5, 38)
	assert.InDelta(t, 1353.0/1e6*54.5*38*1000, got, 1e-9)
}

func TestAM15Intensity_BelowSolarConstant(t *testing.T) {
	am15 := AM15Intensity()
	assert.Greater(t, am15, 0.0)
	assert.Less(t, am15, 1.1*SolarIntensity)
}

func TestCellPeakPower(t *testing.T) {
	// 11.7% efficiency, 70% fill factor
	incident := IncidentPower(SolarIntensity, 54.5, 38)
	got := CellPeakPower(SolarIntensity, 54.5, 38, 11.7, 70)
	assert.InDelta(t, incident*0.117*0.7, got, 1e-9)
}
