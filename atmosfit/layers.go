package atmosfit

import "math"

//--------------------------------------
// Atmospheric layer table
//--------------------------------------

// LayerKind selects the analytic pressure branch of a layer, so the
// evaluation never has to compare a lapse rate against zero.
type LayerKind int

const (
	Gradient   LayerKind = iota // linear temperature profile, L != 0
	Isothermal                  // constant temperature, L == 0
)

// LayerDefinition is one layer of the piecewise reference atmosphere.
// BasePressure is derived from the previous layer's closing value when the
// table is built, so pressure and temperature are continuous at every
// layer boundary.
type LayerDefinition struct {
	BaseAltitude    float64 // geopotential altitude of the layer base [m]
	BaseTemperature float64 // temperature at the layer base [K]
	LapseRate       float64 // dT/dH within the layer [K/m]
	BasePressure    float64 // pressure at the layer base [Pa]
	Kind            LayerKind
}

// layers is the U.S. Standard Atmosphere 1976 table over geopotential
// altitude, valid on [0, 86000] m. The mesopause base sits at 84,852 m,
// where the 71 km layer closes at exactly 186.946 K. Built once at process
// start and read-only afterwards.
var layers = makeLayerTable()

func makeLayerTable() []LayerDefinition {
	t := []LayerDefinition{
		{BaseAltitude: 0, BaseTemperature: 288.15, LapseRate: -0.0065, Kind: Gradient},     // Troposphere
		{BaseAltitude: 11000, BaseTemperature: 216.65, LapseRate: 0, Kind: Isothermal},     // Tropopause
		{BaseAltitude: 20000, BaseTemperature: 216.65, LapseRate: 0.001, Kind: Gradient},   // Lower stratosphere
		{BaseAltitude: 32000, BaseTemperature: 228.65, LapseRate: 0.0028, Kind: Gradient},  // Upper stratosphere
		{BaseAltitude: 47000, BaseTemperature: 270.65, LapseRate: 0, Kind: Isothermal},     // Stratopause
		{BaseAltitude: 51000, BaseTemperature: 270.65, LapseRate: -0.0028, Kind: Gradient}, // Lower mesosphere
		{BaseAltitude: 71000, BaseTemperature: 214.65, LapseRate: -0.002, Kind: Gradient},  // Upper mesosphere
		{BaseAltitude: 84852, BaseTemperature: 186.946, LapseRate: 0, Kind: Isothermal},    // Mesopause
	}
	t[0].BasePressure = P0
	for i := 1; i < len(t); i++ {
		t[i].BasePressure = pressureInLayer(&t[i-1], t[i].BaseAltitude)
	}
	return t
}

// pressureInLayer integrates the hydrostatic equation analytically from the
// layer base up to the geopotential altitude hGeop, which must lie at or
// above the base.
//
// Isothermal: P = Pb · exp(−g0·M·ΔH / (R·Tb))
// Gradient:   P = Pb · (Tb/T)^(g0·M / (R·L))
func pressureInLayer(l *LayerDefinition, hGeop float64) float64 {
	dh := hGeop - l.BaseAltitude
	if l.Kind == Isothermal {
		return l.BasePressure * math.Exp(-G0*Mair*dh/(Rgas*l.BaseTemperature))
	}
	T := l.BaseTemperature + l.LapseRate*dh
	return l.BasePressure * math.Pow(l.BaseTemperature/T, G0*Mair/(Rgas*l.LapseRate))
}

// LayerFor returns the layer containing the geopotential altitude hGeop:
// the highest-indexed layer whose base does not exceed it.
func LayerFor(hGeop float64) (*LayerDefinition, error) {
	if hGeop < 0 || hGeop > MaxAltitude {
		return nil, &DomainError{Altitude: hGeop}
	}
	for i := len(layers) - 1; i > 0; i-- {
		if layers[i].BaseAltitude <= hGeop {
			return &layers[i], nil
		}
	}
	return &layers[0], nil
}
