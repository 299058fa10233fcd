package atmosfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Layer selection picks the highest-indexed layer whose base does not
// exceed the altitude.
func Test_layer_for_selection(t *testing.T) {
	cases := []struct {
		altitude float64
		base     float64
	}{
		{0, 0},
		{10999.9, 0},
		{11000, 11000},
		{25000, 20000},
		{47000, 47000},
		{84851.9, 71000},
		{84852, 84852},
		{86000, 84852},
	}
	for _, c := range cases {
		l, err := LayerFor(c.altitude)
		assert.NoError(t, err)
		assert.Equal(t, c.base, l.BaseAltitude)
	}
}

func Test_layer_for_domain(t *testing.T) {
	var de *DomainError

	_, err := LayerFor(-1)
	assert.ErrorAs(t, err, &de)

	_, err = LayerFor(86000.1)
	assert.ErrorAs(t, err, &de)
}

// Base pressures derived from the hydrostatic integration, cross-checked
// against the U.S. Standard Atmosphere 1976 tables (22632 Pa at 11 km,
// 5474.9 Pa at 20 km, 3.956 Pa at 71 km).
func Test_layer_base_pressures(t *testing.T) {
	expected := []float64{101325, 22632.064, 5474.8887, 868.0187, 110.9063, 66.9389, 3.9564, 0.3734}
	assert.Equal(t, len(expected), len(layers))
	for i, p := range expected {
		assert.InDelta(t, p, layers[i].BasePressure, 0.001)
	}
}

// Temperature and pressure are continuous at every interior layer
// boundary, including the mesopause base at 84,852 m where the 71 km layer
// closes at exactly 186.946 K.
func Test_layer_boundary_continuity(t *testing.T) {
	const eps = 1e-3 // [m]
	for _, l := range layers[1:] {
		below, err := Evaluate(l.BaseAltitude - eps)
		assert.NoError(t, err)
		at, err := Evaluate(l.BaseAltitude)
		assert.NoError(t, err)

		assert.InDelta(t, at.Temperature, below.Temperature, 1e-4)
		assert.InEpsilon(t, at.Pressure, below.Pressure, 1e-6)
	}
}
