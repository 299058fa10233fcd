package atmosfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Positive error means the approximation overestimates the reference.
func Test_pct_error_sign(t *testing.T) {
	assert.InDelta(t, 10.0, PctError(110, 100), 1e-12)
	assert.InDelta(t, -10.0, PctError(90, 100), 1e-12)
	assert.Equal(t, 0.0, PctError(100, 100))
}

func Test_compare_states(t *testing.T) {
	ref, err := EvaluateGeometric(5000)
	assert.NoError(t, err)
	exp, err := ExponentialState(5000, 8000)
	assert.NoError(t, err)

	errs := CompareStates(exp, ref)
	assert.InDelta(t, PctError(exp.Pressure, ref.Pressure), errs.Pressure, 1e-12)
	// The isothermal model holds sea level temperature, so it overestimates
	// everywhere in the troposphere.
	assert.Greater(t, errs.Temperature, 0.0)
}

// At sea level the geopotential correction vanishes.
func Test_geopotential_approximation_sea_level(t *testing.T) {
	rep, err := GeopotentialApproximation(0)
	assert.NoError(t, err)

	assert.Equal(t, 0.0, rep.AltitudeDifference)
	assert.Equal(t, 0.0, rep.AltitudePct)
	assert.Equal(t, 0.0, rep.Errors.Pressure)
	assert.Equal(t, 0.0, rep.Errors.Temperature)
}

// At 20 km the naive evaluation sits 63 m too high, which underestimates
// pressure by about 1%. Both altitudes fall in the isothermal tropopause,
// so the temperature error is exactly zero there.
func Test_geopotential_approximation_20km(t *testing.T) {
	rep, err := GeopotentialApproximation(20000)
	assert.NoError(t, err)

	assert.InDelta(t, 62.728, rep.AltitudeDifference, 0.001)
	assert.InDelta(t, 0.3136, rep.AltitudePct, 0.001)
	assert.InDelta(t, -0.9843, rep.Errors.Pressure, 0.001)
	assert.Equal(t, 0.0, rep.Errors.Temperature)
	assert.InDelta(t, rep.Errors.Pressure, rep.Errors.Density, 1e-9)
}

// The correction grows with altitude.
func Test_geopotential_approximation_grows(t *testing.T) {
	low, err := GeopotentialApproximation(1000)
	assert.NoError(t, err)
	high, err := GeopotentialApproximation(50000)
	assert.NoError(t, err)

	assert.Greater(t, high.AltitudeDifference, low.AltitudeDifference)
}

func Test_geopotential_approximation_domain(t *testing.T) {
	var de *DomainError
	_, err := GeopotentialApproximation(90000)
	assert.ErrorAs(t, err, &de)
}
