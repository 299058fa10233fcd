package atmosfit

import "math"

//--------------------------------------
// Single-parameter exponential model
//--------------------------------------

// StandardScaleHeight is the textbook scale height of Earth's atmosphere
// [m]. It serves as the baseline the optimizer is compared against.
const StandardScaleHeight = 8000.0

// ExponentialPressure computes P = P0·exp(−h/β) for altitude h [m] and
// scale height beta [m].
func ExponentialPressure(h, beta float64) (float64, error) {
	return ExponentialPressureFrom(h, beta, P0)
}

// ExponentialPressureFrom is ExponentialPressure with an explicit base
// pressure [Pa] in place of the sea level standard.
func ExponentialPressureFrom(h, beta, basePressure float64) (float64, error) {
	if beta <= 0 {
		return 0, &InvalidParameterError{Beta: beta}
	}
	return basePressure * math.Exp(-h/beta), nil
}

// ExponentialDensity computes ρ = ρ0·exp(−h/β). Under the isothermal
// assumption density decays with the same scale height as pressure.
func ExponentialDensity(h, beta float64) (float64, error) {
	if beta <= 0 {
		return 0, &InvalidParameterError{Beta: beta}
	}
	return Rho0 * math.Exp(-h/beta), nil
}

// ExponentialState returns the full state of the isothermal exponential
// model. Temperature is constant at T0, so the speed of sound is constant
// as well.
func ExponentialState(h, beta float64) (*AtmosphericState, error) {
	P, err := ExponentialPressure(h, beta)
	if err != nil {
		return nil, err
	}
	rho, err := ExponentialDensity(h, beta)
	if err != nil {
		return nil, err
	}
	return &AtmosphericState{
		GeometricAltitude:    h,
		GeopotentialAltitude: h,
		Temperature:          T0,
		Pressure:             P,
		Density:              rho,
		SpeedOfSound:         math.Sqrt(Gamma * Rgas * T0 / Mair),
		PressureRatio:        P / P0,
		DensityRatio:         rho / Rho0,
	}, nil
}
