// atmosfit
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/atmosfit/atmosfit-go/atmosfit"
	"github.com/hhkbp2/go-logging"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	parser := argparse.NewParser("atmosfit", "Computes standard atmosphere state and fits exponential scale heights against it")

	mode := parser.Selector("m", "mode", []string{"state", "optimize", "heatmap", "compare"}, &argparse.Options{
		Default: "state",
		Help:    "state=atmospheric state at one altitude, optimize=fit the scale height over a range, heatmap=error grid, compare=error-vs-altitude table"})

	altitude := parser.Float("a", "altitude", &argparse.Options{
		Default: 0.0,
		Help:    "geometric altitude for the state mode [m]"})

	minAlt := parser.Float("", "min", &argparse.Options{
		Default: 0.0,
		Help:    "altitude range lower bound [m]"})

	maxAlt := parser.Float("", "max", &argparse.Options{
		Default: 15000.0,
		Help:    "altitude range upper bound [m]"})

	samples := parser.Int("n", "samples", &argparse.Options{
		Default: 50,
		Help:    "number of altitude samples for the optimizer"})

	beta := parser.Float("b", "beta", &argparse.Options{
		Default: 0.0,
		Help:    "scale height for the compare mode [m]; 0 runs the optimizer first"})

	numBeta := parser.Int("", "num_beta", &argparse.Options{
		Default: 30,
		Help:    "heatmap grid size along the scale height axis"})

	numAlt := parser.Int("", "num_alt", &argparse.Options{
		Default: 30,
		Help:    "heatmap grid size along the altitude axis"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "output file path (stdout when empty)"})

	format := parser.Selector("f", "format", []string{"CSV", "HTML"}, &argparse.Options{
		Default: "CSV",
		Help:    "output format for heatmap and compare modes"})

	logLevel := parser.Selector("", "log_level", []string{"debug", "info", "warn", "error"}, &argparse.Options{
		Default: "info",
		Help:    "log verbosity"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	setLogLevel(*logLevel)

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	switch *mode {
	case "state":
		err = runState(buf, *altitude)
	case "optimize":
		err = runOptimize(buf, *minAlt, *maxAlt, *samples)
	case "heatmap":
		err = runHeatmap(buf, *minAlt, *maxAlt, *numBeta, *numAlt, *format)
	case "compare":
		err = runCompare(buf, *minAlt, *maxAlt, *beta, *samples, *format)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("saving: %s", *filename)
		if err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm); err != nil {
			panic(err)
		}
	}
}

func setLogLevel(level string) {
	logger := logging.GetLogger("atmosfit")
	if level == "debug" {
		logger.SetLevel(logging.LevelDebug)
	} else if level == "info" {
		logger.SetLevel(logging.LevelInfo)
	} else if level == "warn" {
		logger.SetLevel(logging.LevelWarn)
	} else {
		logger.SetLevel(logging.LevelError)
	}
}

// Atmospheric state at a single geometric altitude, plus the size of the
// geopotential correction at that altitude.
func runState(buf *bytes.Buffer, altitude float64) error {
	st, err := atmosfit.EvaluateGeometric(altitude)
	if err != nil {
		return err
	}
	rep, err := atmosfit.GeopotentialApproximation(altitude)
	if err != nil {
		return err
	}

	fmt.Fprintf(buf, "Geometric altitude:    %12.1f m\n", st.GeometricAltitude)
	fmt.Fprintf(buf, "Geopotential altitude: %12.1f m\n", st.GeopotentialAltitude)
	fmt.Fprintf(buf, "Temperature:           %12.2f K (%.2f degC)\n", st.Temperature, st.Temperature-273.15)
	fmt.Fprintf(buf, "Pressure:              %12.2f Pa (P/P0 = %.6f)\n", st.Pressure, st.PressureRatio)
	fmt.Fprintf(buf, "Density:               %12.6f kg/m3 (rho/rho0 = %.6f)\n", st.Density, st.DensityRatio)
	fmt.Fprintf(buf, "Speed of sound:        %12.2f m/s\n", st.SpeedOfSound)
	fmt.Fprintf(buf, "Geopotential offset:   %12.2f m (naive pressure error %+.3f %%)\n",
		rep.AltitudeDifference, rep.Errors.Pressure)
	return nil
}

// Scale height fit over an altitude range, reported against the 8000 m
// standard over the same samples.
func runOptimize(buf *bytes.Buffer, minAlt, maxAlt float64, n int) error {
	res, err := atmosfit.OptimizeScaleHeight(minAlt, maxAlt, n)
	if err != nil {
		return err
	}
	baseline, err := atmosfit.ScaleHeightRMSEPct(minAlt, maxAlt, res.SampleCount, atmosfit.StandardScaleHeight)
	if err != nil {
		return err
	}

	fmt.Fprintf(buf, "Altitude range:  %.0f - %.0f m (%d samples)\n", res.MinAltitude, res.MaxAltitude, res.SampleCount)
	fmt.Fprintf(buf, "Fitted beta:     %.1f m\n", res.Beta)
	fmt.Fprintf(buf, "Relative RMSE:   %.3f %% (standard %.0f m: %.3f %%)\n",
		res.RMSEPct, atmosfit.StandardScaleHeight, baseline)
	return nil
}

func runHeatmap(buf *bytes.Buffer, minAlt, maxAlt float64, numBeta, numAlt int, format string) error {
	grid, err := atmosfit.Heatmap(minAlt, maxAlt, numBeta, numAlt)
	if err != nil {
		return err
	}
	if format == "HTML" {
		return grid.RenderHTML(buf)
	}
	grid.ToCSV(buf)
	return nil
}

func runCompare(buf *bytes.Buffer, minAlt, maxAlt, beta float64, n int, format string) error {
	if beta <= 0 {
		res, err := atmosfit.OptimizeScaleHeight(minAlt, maxAlt, n)
		if err != nil {
			return err
		}
		beta = res.Beta
		log.Printf("fitted scale height: %.1f m (relative RMSE %.3f %%)", res.Beta, res.RMSEPct)
	}
	table, err := atmosfit.Comparison(minAlt, maxAlt, beta)
	if err != nil {
		return err
	}
	if format == "HTML" {
		return table.RenderHTML(buf)
	}
	table.ToCSV(buf)
	return nil
}
