package atmosfit

//--------------------------------------
// Error analysis
//--------------------------------------

// PctError returns the signed percentage deviation of an approximated
// value from a reference value. Positive means the approximation
// overestimates the reference.
func PctError(approx, reference float64) float64 {
	return (approx - reference) / reference * 100
}

// StateErrors holds element-wise percentage deviations between two model
// states.
type StateErrors struct {
	Temperature  float64 // [%]
	Pressure     float64 // [%]
	Density      float64 // [%]
	SpeedOfSound float64 // [%]
}

// CompareStates computes the percentage deviation of approx from reference
// for every thermodynamic property.
func CompareStates(approx, reference *AtmosphericState) StateErrors {
	return StateErrors{
		Temperature:  PctError(approx.Temperature, reference.Temperature),
		Pressure:     PctError(approx.Pressure, reference.Pressure),
		Density:      PctError(approx.Density, reference.Density),
		SpeedOfSound: PctError(approx.SpeedOfSound, reference.SpeedOfSound),
	}
}

// GeopotentialApproximationReport quantifies the error of treating a
// geometric altitude as geopotential when evaluating the reference model.
type GeopotentialApproximationReport struct {
	AltitudeDifference float64 // hGeom − hGeop [m]
	AltitudePct        float64 // relative altitude error [%], zero at sea level
	Errors             StateErrors
}

// GeopotentialApproximation evaluates the reference model twice for a
// geometric altitude: once with the proper geopotential conversion and
// once with the geometric altitude used directly, and reports the
// resulting deviations. Near sea level the correction is negligible; at
// tens of kilometers the pressure error approaches the percent range.
func GeopotentialApproximation(hGeom float64) (*GeopotentialApproximationReport, error) {
	proper, err := EvaluateGeometric(hGeom)
	if err != nil {
		return nil, err
	}
	naive, err := Evaluate(hGeom)
	if err != nil {
		return nil, err
	}
	rep := &GeopotentialApproximationReport{
		AltitudeDifference: hGeom - proper.GeopotentialAltitude,
		Errors:             CompareStates(naive, proper),
	}
	if hGeom > 0 {
		rep.AltitudePct = rep.AltitudeDifference / hGeom * 100
	}
	return rep, nil
}
