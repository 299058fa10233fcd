package atmosfit

//--------------------------------------
// Geometric / geopotential altitude
//--------------------------------------

// ToGeopotential converts a geometric altitude hGeom [m] to geopotential
// altitude [m] using H = r·h/(r+h). The correction compensates for the
// decrease of gravitational acceleration with height; it is zero at sea
// level and grows to about 63 m at 20 km.
func ToGeopotential(hGeom float64) float64 {
	return Re * hGeom / (Re + hGeom)
}

// ToGeometric converts a geopotential altitude hGeop [m] back to geometric
// altitude [m] using the inverse transform h = r·H/(r−H). Inputs at or
// above the Earth radius constant would cross the transform's singularity
// and are rejected; within the model domain this cannot happen.
func ToGeometric(hGeop float64) (float64, error) {
	if hGeop >= Re {
		return 0, &DomainError{Altitude: hGeop}
	}
	return Re * hGeop / (Re - hGeop), nil
}
