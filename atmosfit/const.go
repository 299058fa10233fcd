package atmosfit

// Physical constants (ISO 2533:1975 / U.S. Standard Atmosphere 1976)
const (
	G0    = 9.80665   // Standard gravitational acceleration [m/s²]
	Rgas  = 8.31432   // Universal gas constant [J/(mol·K)]
	Mair  = 0.0289644 // Molar mass of dry air [kg/mol]
	Gamma = 1.4       // Ratio of specific heats of dry air (cp/cv) [-]
	Re    = 6356766.0 // Earth radius for geopotential conversion [m]

	T0   = 288.15   // Sea level standard temperature [K]
	P0   = 101325.0 // Sea level standard pressure [Pa]
	Rho0 = 1.225    // Sea level standard density [kg/m³]

	// Upper validity limit of the layer table [m]. Altitudes above it are
	// outside the model domain and rejected.
	MaxAltitude = 86000.0
)
