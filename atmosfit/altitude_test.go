package atmosfit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Round trip geometric -> geopotential -> geometric across the whole model
// domain.
func Test_altitude_roundtrip(t *testing.T) {
	for h := 0.0; h <= 86000.0; h += 1000.0 {
		geop := ToGeopotential(h)
		back, err := ToGeometric(geop)
		assert.NoError(t, err)
		assert.InDelta(t, h, back, 1e-6)
	}
}

// The two altitude conventions coincide at sea level and diverge
// monotonically with altitude.
func Test_altitude_divergence(t *testing.T) {
	assert.Equal(t, 0.0, ToGeopotential(0))

	prev := 0.0
	for h := 1000.0; h <= 86000.0; h += 1000.0 {
		diff := h - ToGeopotential(h)
		assert.Greater(t, diff, prev)
		prev = diff
	}
}

// Expected value from the transform H = r·h/(r+h) with r = 6,356,766 m:
// at 20 km the geopotential correction is about 63 m.
func Test_altitude_geopotential_at_20km(t *testing.T) {
	assert.InDelta(t, 19937.2723, ToGeopotential(20000), 0.001)
}

// The inverse transform has a singularity at the Earth radius constant.
func Test_altitude_to_geometric_rejects_singularity(t *testing.T) {
	_, err := ToGeometric(Re)
	assert.Error(t, err)

	var de *DomainError
	_, err = ToGeometric(7.0e6)
	assert.ErrorAs(t, err, &de)
}
