package atmosfit

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

//--------------------------------------
// Chart rendering (go-echarts)
//--------------------------------------

// RenderHTML renders the error grid as a standalone HTML heatmap:
// scale height on the x axis, altitude on the y axis, pressure error [%]
// as the cell value.
func (g *Grid) RenderHTML(w io.Writer) error {
	xLabels := make([]string, len(g.Betas))
	for j, beta := range g.Betas {
		xLabels[j] = fmt.Sprintf("%.0f", beta)
	}
	yLabels := make([]string, len(g.Altitudes))
	for i, h := range g.Altitudes {
		yLabels[i] = fmt.Sprintf("%.1f", h/1000)
	}

	min, max := g.Errors[0][0], g.Errors[0][0]
	data := make([]opts.HeatMapData, 0, len(g.Altitudes)*len(g.Betas))
	for i := range g.Altitudes {
		for j := range g.Betas {
			v := g.Errors[i][j]
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, v}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Exponential model pressure error", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Pressure error vs reference atmosphere [%]",
			Subtitle: fmt.Sprintf("scale height %.0f-%.0f m, altitude %.1f-%.1f km", g.Betas[0], g.Betas[len(g.Betas)-1], g.Altitudes[0]/1000, g.Altitudes[len(g.Altitudes)-1]/1000),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "scale height [m]"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "altitude [km]", Data: yLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("pressure error", data)
	return hm.Render(w)
}

// RenderHTML renders the comparison table as an HTML line chart of the
// fitted and standard scale height errors over altitude.
func (t ComparisonTable) RenderHTML(w io.Writer) error {
	x := make([]string, len(t))
	optSeries := make([]opts.LineData, len(t))
	stdSeries := make([]opts.LineData, len(t))
	for i, s := range t {
		x[i] = fmt.Sprintf("%.1f", s.AltitudeKm)
		optSeries[i] = opts.LineData{Value: s.OptimalErrorPct}
		stdSeries[i] = opts.LineData{Value: s.StandardErrorPct}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Exponential model error vs altitude", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Pressure error vs altitude [%]"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "altitude [km]"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "error [%]"}),
	)
	line.SetXAxis(x).
		AddSeries("fitted scale height", optSeries).
		AddSeries("standard 8000 m", stdSeries)
	return line.Render(w)
}
