package atmosfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Sea level reference state (ISO 2533): T0 = 288.15 K, P0 = 101325 Pa,
// rho = 1.2250 kg/m³, a = 340.29 m/s.
func Test_isa_sea_level(t *testing.T) {
	st, err := EvaluateGeometric(0)
	assert.NoError(t, err)

	assert.InDelta(t, 288.15, st.Temperature, 1e-12)
	assert.InDelta(t, 101325.0, st.Pressure, 1e-9)
	assert.InDelta(t, 1.2250, st.Density, 1e-4)
	assert.InDelta(t, 340.294, st.SpeedOfSound, 1e-3)
	assert.Equal(t, st.GeometricAltitude, st.GeopotentialAltitude)
	assert.InDelta(t, 1.0, st.PressureRatio, 1e-12)
}

// Tropopause values from the U.S. Standard Atmosphere 1976 tables.
func Test_isa_tropopause(t *testing.T) {
	st, err := Evaluate(11000)
	assert.NoError(t, err)

	assert.InDelta(t, 216.65, st.Temperature, 1e-9)
	assert.InDelta(t, 22632.06, st.Pressure, 0.01)
	assert.InDelta(t, 295.07, st.SpeedOfSound, 0.01)
}

// Pressure decreases strictly with altitude; temperature and density stay
// positive everywhere in the domain.
func Test_isa_monotonic_pressure_positive_state(t *testing.T) {
	prev, err := EvaluateGeometric(0)
	assert.NoError(t, err)
	for h := 500.0; h <= 86000.0; h += 500.0 {
		st, err := EvaluateGeometric(h)
		assert.NoError(t, err)
		assert.Less(t, st.Pressure, prev.Pressure)
		assert.Greater(t, st.Temperature, 0.0)
		assert.Greater(t, st.Density, 0.0)
		prev = st
	}
}

func Test_isa_domain_errors(t *testing.T) {
	var de *DomainError

	_, err := EvaluateGeometric(-1)
	assert.ErrorAs(t, err, &de)

	_, err = EvaluateGeometric(90000)
	assert.ErrorAs(t, err, &de)
}

// EvaluateGeometric fills both altitude fields: the geopotential altitude
// of 20 km geometric is about 63 m lower.
func Test_isa_geometric_conversion(t *testing.T) {
	st, err := EvaluateGeometric(20000)
	assert.NoError(t, err)

	assert.Equal(t, 20000.0, st.GeometricAltitude)
	assert.InDelta(t, 19937.272, st.GeopotentialAltitude, 0.001)
}
