package atmosfit

import (
	"math"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// Scale height optimization
//--------------------------------------

const (
	betaLowerBound = 1000.0  // search bracket for the fitted scale height [m]
	betaUpperBound = 20000.0 // [m]

	// Optimization ranges narrower than this are rejected: a fit over a
	// few hundred meters says nothing about the exponential model.
	minRangeWidth = 1000.0 // [m]

	defaultSampleCount = 50

	goldenTol     = 1e-6 // bracket width at convergence [m]
	goldenMaxIter = 200
)

// OptimizationResult is the outcome of a single scale height fit.
type OptimizationResult struct {
	Beta        float64 // fitted scale height [m]
	RMSEPct     float64 // relative pressure RMSE at Beta [%]
	MinAltitude float64 // fitted range lower bound [m]
	MaxAltitude float64 // fitted range upper bound [m]
	SampleCount int
}

// OptimizeScaleHeight fits the exponential model's scale height to the
// reference atmosphere over [minAlt, maxAlt] by minimizing the sum of
// squared pressure residuals
//
//	f(β) = Σ (P0·exp(−hᵢ/β) − P_ISA(hᵢ))²
//
// at n uniformly spaced altitudes (n < 2 selects the default of 50).
// Reference pressures are evaluated with the geopotential conversion
// applied. The search bracket is β ∈ [1000, 20000] m; a minimum on the
// bracket boundary is reported as-is, signalling that the requested range
// lies outside where an exponential fit does well.
func OptimizeScaleHeight(minAlt, maxAlt float64, n int) (*OptimizationResult, error) {
	if minAlt < 0 || maxAlt > MaxAltitude || maxAlt <= minAlt {
		return nil, &InvalidRangeError{Min: minAlt, Max: maxAlt, Reason: "must satisfy 0 <= min < max <= 86000"}
	}
	if maxAlt-minAlt < minRangeWidth {
		return nil, &InvalidRangeError{Min: minAlt, Max: maxAlt, Reason: "narrower than 1000 m"}
	}
	if n < 2 {
		n = defaultSampleCount
	}

	altitudes := spanAltitudes(minAlt, maxAlt, n)
	pressures := make([]float64, n)
	for i, h := range altitudes {
		st, err := EvaluateGeometric(h)
		if err != nil {
			return nil, err
		}
		pressures[i] = st.Pressure
	}

	resid := make([]float64, n)
	objective := func(beta float64) float64 {
		for i, h := range altitudes {
			resid[i] = P0*math.Exp(-h/beta) - pressures[i]
		}
		return floats.Dot(resid, resid)
	}

	beta, err := minimizeGolden(objective, betaLowerBound, betaUpperBound)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("atmosfit")
	logger.Debugf("scale height fit over [%.0f, %.0f] m: beta=%.1f m", minAlt, maxAlt, beta)

	return &OptimizationResult{
		Beta:        beta,
		RMSEPct:     pressureRMSEPct(altitudes, pressures, beta),
		MinAltitude: minAlt,
		MaxAltitude: maxAlt,
		SampleCount: n,
	}, nil
}

// ScaleHeightRMSEPct reports the relative pressure RMSE [%] of the
// exponential model with the given scale height against the reference
// atmosphere, sampled like OptimizeScaleHeight. It lets callers compare a
// fitted scale height against the 8000 m baseline over the same range.
func ScaleHeightRMSEPct(minAlt, maxAlt float64, n int, beta float64) (float64, error) {
	if beta <= 0 {
		return 0, &InvalidParameterError{Beta: beta}
	}
	if minAlt < 0 || maxAlt > MaxAltitude || maxAlt <= minAlt {
		return 0, &InvalidRangeError{Min: minAlt, Max: maxAlt, Reason: "must satisfy 0 <= min < max <= 86000"}
	}
	if n < 2 {
		n = defaultSampleCount
	}
	altitudes := spanAltitudes(minAlt, maxAlt, n)
	pressures := make([]float64, n)
	for i, h := range altitudes {
		st, err := EvaluateGeometric(h)
		if err != nil {
			return 0, err
		}
		pressures[i] = st.Pressure
	}
	return pressureRMSEPct(altitudes, pressures, beta), nil
}

// spanAltitudes samples n uniform altitudes on [minAlt, maxAlt] with the
// endpoints pinned exactly, so a boundary sample never leaves the model
// domain by a rounding ulp.
func spanAltitudes(minAlt, maxAlt float64, n int) []float64 {
	s := floats.Span(make([]float64, n), minAlt, maxAlt)
	s[0], s[n-1] = minAlt, maxAlt
	return s
}

// pressureRMSEPct is sqrt(mean(((P_exp − P_ref)/P_ref)²)) · 100 over the
// sampled altitudes.
func pressureRMSEPct(altitudes, pressures []float64, beta float64) float64 {
	rel := make([]float64, len(altitudes))
	for i, h := range altitudes {
		rel[i] = (P0*math.Exp(-h/beta) - pressures[i]) / pressures[i]
	}
	return math.Sqrt(floats.Dot(rel, rel)/float64(len(rel))) * 100
}

// minimizeGolden performs a golden-section search for the minimum of f on
// [a, b]. The bracket shrinks by the golden ratio each iteration and the
// midpoint of the final bracket is returned; a boundary minimum converges
// onto the boundary. Non-finite objective values and exhaustion of the
// iteration budget are reported as errors, never as a silent boundary
// result.
func minimizeGolden(f func(float64) float64, a, b float64) (float64, error) {
	const invPhi = 0.6180339887498949 // (√5−1)/2

	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	for i := 0; b-a > goldenTol; i++ {
		if i >= goldenMaxIter {
			return 0, &OptimizationError{Reason: "iteration limit reached before bracket convergence"}
		}
		if math.IsNaN(fc) || math.IsInf(fc, 0) || math.IsNaN(fd) || math.IsInf(fd, 0) {
			return 0, &OptimizationError{Reason: "objective is not finite"}
		}
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}
	return (a + b) / 2, nil
}
