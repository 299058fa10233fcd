package atmosfit

import "fmt"

// DomainError reports an altitude outside the validity range of the
// atmosphere model, [0, 86000] m.
type DomainError struct {
	Altitude float64 // offending altitude [m]
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("altitude %.1f m is outside the model domain [0, %.0f] m", e.Altitude, MaxAltitude)
}

// InvalidParameterError reports a non-positive scale height.
type InvalidParameterError struct {
	Beta float64 // offending scale height [m]
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("scale height %.1f m must be positive", e.Beta)
}

// InvalidRangeError reports a degenerate or too-narrow altitude range.
type InvalidRangeError struct {
	Min    float64 // requested lower bound [m]
	Max    float64 // requested upper bound [m]
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid altitude range [%.1f, %.1f] m: %s", e.Min, e.Max, e.Reason)
}

// OptimizationError reports a minimizer that failed to converge within its
// iteration budget or hit a non-finite objective value.
type OptimizationError struct {
	Reason string
}

func (e *OptimizationError) Error() string {
	return "scale height optimization failed: " + e.Reason
}
