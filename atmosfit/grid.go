package atmosfit

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// Grid sampling for visualization
//--------------------------------------

const (
	// Scale height domain of the error heatmap [m]. Fixed to the region
	// where the optimizer's fits land for realistic altitude bands.
	heatmapBetaMin = 5000.0
	heatmapBetaMax = 12000.0

	comparisonSamples = 50
)

// Grid is a dense error surface over scale height and altitude.
// Errors[i][j] is the pressure percentage error of the exponential model
// with scale height Betas[j] at altitude Altitudes[i].
type Grid struct {
	Betas     []float64   // [m]
	Altitudes []float64   // [m]
	Errors    [][]float64 // [%]
}

// Heatmap samples the exponential model's pressure error against the
// reference atmosphere on a numAlt × numBeta grid over [minAlt, maxAlt]
// and the fixed scale height domain [5000, 12000] m. Rows are filled
// concurrently; cells share no mutable state.
func Heatmap(minAlt, maxAlt float64, numBeta, numAlt int) (*Grid, error) {
	if minAlt < 0 || maxAlt > MaxAltitude || maxAlt <= minAlt {
		return nil, &InvalidRangeError{Min: minAlt, Max: maxAlt, Reason: "must satisfy 0 <= min < max <= 86000"}
	}
	if numBeta < 2 || numAlt < 2 {
		return nil, &InvalidRangeError{Min: minAlt, Max: maxAlt, Reason: "grid needs at least 2 samples per axis"}
	}

	g := &Grid{
		Betas:     floats.Span(make([]float64, numBeta), heatmapBetaMin, heatmapBetaMax),
		Altitudes: spanAltitudes(minAlt, maxAlt, numAlt),
		Errors:    make([][]float64, numAlt),
	}

	// Reference pressures, one per row. The range was validated above, so
	// evaluation cannot fail inside the fan-out.
	refs := make([]float64, numAlt)
	for i, h := range g.Altitudes {
		st, err := EvaluateGeometric(h)
		if err != nil {
			return nil, err
		}
		refs[i] = st.Pressure
	}

	var wg sync.WaitGroup
	for i := range g.Altitudes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h := g.Altitudes[i]
			row := make([]float64, numBeta)
			for j, beta := range g.Betas {
				row[j] = PctError(P0*math.Exp(-h/beta), refs[i])
			}
			g.Errors[i] = row
		}(i)
	}
	wg.Wait()
	return g, nil
}

// ComparisonSample is one row of the error-vs-altitude comparison table.
type ComparisonSample struct {
	AltitudeKm       float64           // [km]
	ISA              *AtmosphericState // reference state at this altitude
	OptimalPressure  float64           // exponential pressure with the fitted scale height [Pa]
	StandardPressure float64           // exponential pressure with the 8000 m standard [Pa]
	OptimalErrorPct  float64           // [%]
	StandardErrorPct float64           // [%]
}

// ComparisonTable is an ordered sequence of samples across an altitude
// range, one per sampled altitude.
type ComparisonTable []ComparisonSample

// Comparison evaluates the reference model, the fitted-β exponential model
// and the standard-β (8000 m) exponential model at 50 uniform altitudes
// across [minAlt, maxAlt]. Altitudes in the result are reported in
// kilometers, matching the plot series the table feeds.
func Comparison(minAlt, maxAlt, optimalBeta float64) (ComparisonTable, error) {
	if optimalBeta <= 0 {
		return nil, &InvalidParameterError{Beta: optimalBeta}
	}
	if minAlt < 0 || maxAlt > MaxAltitude || maxAlt <= minAlt {
		return nil, &InvalidRangeError{Min: minAlt, Max: maxAlt, Reason: "must satisfy 0 <= min < max <= 86000"}
	}

	altitudes := spanAltitudes(minAlt, maxAlt, comparisonSamples)
	table := make(ComparisonTable, len(altitudes))
	for i, h := range altitudes {
		st, err := EvaluateGeometric(h)
		if err != nil {
			return nil, err
		}
		pOpt := P0 * math.Exp(-h/optimalBeta)
		pStd := P0 * math.Exp(-h/StandardScaleHeight)
		table[i] = ComparisonSample{
			AltitudeKm:       h / 1000,
			ISA:              st,
			OptimalPressure:  pOpt,
			StandardPressure: pStd,
			OptimalErrorPct:  PctError(pOpt, st.Pressure),
			StandardErrorPct: PctError(pStd, st.Pressure),
		}
	}
	return table, nil
}
