package atmosfit

import "math"

//--------------------------------------
// Reference atmosphere model
//--------------------------------------

// AtmosphericState is the complete model output at a single altitude.
// Produced fresh per query and never mutated.
type AtmosphericState struct {
	GeometricAltitude    float64 // [m]
	GeopotentialAltitude float64 // [m]
	Temperature          float64 // [K]
	Pressure             float64 // [Pa]
	Density              float64 // [kg/m³]
	SpeedOfSound         float64 // [m/s]
	PressureRatio        float64 // P/P0 [-]
	DensityRatio         float64 // ρ/ρ0 [-]
}

// Evaluate computes the reference atmosphere state at a geopotential
// altitude [m]:
//
//	T = Tb + L·(H − Hb)
//	P per layer kind (see pressureInLayer)
//	ρ = P·M/(R·T)
//	a = sqrt(γ·R·T/M)
//
// The geometric altitude field is filled with the input as-is; use
// EvaluateGeometric when starting from a geometric altitude.
func Evaluate(hGeop float64) (*AtmosphericState, error) {
	layer, err := LayerFor(hGeop)
	if err != nil {
		return nil, err
	}
	T := layer.BaseTemperature + layer.LapseRate*(hGeop-layer.BaseAltitude)
	P := pressureInLayer(layer, hGeop)
	rho := P * Mair / (Rgas * T)
	a := math.Sqrt(Gamma * Rgas * T / Mair)
	return &AtmosphericState{
		GeometricAltitude:    hGeop,
		GeopotentialAltitude: hGeop,
		Temperature:          T,
		Pressure:             P,
		Density:              rho,
		SpeedOfSound:         a,
		PressureRatio:        P / P0,
		DensityRatio:         rho / Rho0,
	}, nil
}

// EvaluateGeometric computes the reference state for a geometric altitude
// [m], applying the geopotential conversion first. The geometric altitude
// itself is bounds-checked against the model domain, so callers get the
// same validity limit regardless of which altitude convention they hold.
func EvaluateGeometric(hGeom float64) (*AtmosphericState, error) {
	if hGeom < 0 || hGeom > MaxAltitude {
		return nil, &DomainError{Altitude: hGeom}
	}
	st, err := Evaluate(ToGeopotential(hGeom))
	if err != nil {
		return nil, err
	}
	st.GeometricAltitude = hGeom
	return st, nil
}
