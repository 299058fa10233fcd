package atmosfit

import (
	"bytes"
	"strconv"
)

//--------------------------------------
// CSV export
//--------------------------------------

// ToCSV writes the comparison table in CSV form.
func (t ComparisonTable) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("altitude_km")
	buf.WriteString(",isa_temperature_K")
	buf.WriteString(",isa_pressure_Pa")
	buf.WriteString(",isa_density_kg_m3")
	buf.WriteString(",isa_speed_of_sound_m_s")
	buf.WriteString(",exp_optimal_pressure_Pa")
	buf.WriteString(",exp_standard_pressure_Pa")
	buf.WriteString(",error_optimal_pct")
	buf.WriteString(",error_standard_pct")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(t); i++ {
		buf.WriteString(strconv.FormatFloat(t[i].AltitudeKm, 'f', -1, 64))
		writeFloat(t[i].ISA.Temperature)
		writeFloat(t[i].ISA.Pressure)
		writeFloat(t[i].ISA.Density)
		writeFloat(t[i].ISA.SpeedOfSound)
		writeFloat(t[i].OptimalPressure)
		writeFloat(t[i].StandardPressure)
		writeFloat(t[i].OptimalErrorPct)
		writeFloat(t[i].StandardErrorPct)
		buf.WriteString("\n")
	}
}

// ToCSV writes the error grid as a matrix: the header row carries the
// scale heights, the first column the altitudes.
func (g *Grid) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("altitude_m")
	for _, beta := range g.Betas {
		buf.WriteString(",beta_")
		buf.WriteString(strconv.FormatFloat(beta, 'f', 0, 64))
	}
	buf.WriteString("\n")

	for i := 0; i < len(g.Altitudes); i++ {
		buf.WriteString(strconv.FormatFloat(g.Altitudes[i], 'f', -1, 64))
		for j := 0; j < len(g.Betas); j++ {
			buf.WriteString(",")
			buf.WriteString(strconv.FormatFloat(g.Errors[i][j], 'f', -1, 64))
		}
		buf.WriteString("\n")
	}
}
