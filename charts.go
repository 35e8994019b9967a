package main

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/heatmaphero/coverage.report/internal/heatmap"
	"github.com/heatmaphero/coverage.report/internal/survey"
)

// sampleChartHandler renders an interactive scatter (HTML) of the survey
// samples for a metric, coloured by value. Debugging aid for checking
// coverage of a walk without waiting for the raster; the PNG endpoint is
// the real output.
// Query params:
//   - metric (optional; defaults to rssi)
func (s *Server) sampleChartHandler(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = string(survey.MetricRSSI)
	}
	info, err := survey.Lookup(survey.Metric(metric))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	samples := survey.Samples(s.records, info)
	if len(samples) == 0 {
		http.Error(w, fmt.Sprintf("no %s samples loaded", info.Metric), http.StatusNotFound)
		return
	}
	set := heatmap.Dedupe(samples)

	data := make([]opts.ScatterData, 0, set.Len())
	vLo, vHi := set.V[0], set.V[0]
	var xPad, yPad float64
	xLo, xHi := set.X[0], set.X[0]
	yLo, yHi := set.Y[0], set.Y[0]
	for i := 0; i < set.Len(); i++ {
		vLo, vHi = min(vLo, set.V[i]), max(vHi, set.V[i])
		xLo, xHi = min(xLo, set.X[i]), max(xHi, set.X[i])
		yLo, yHi = min(yLo, set.Y[i]), max(yHi, set.Y[i])
		data = append(data, opts.ScatterData{Value: []interface{}{set.X[i], set.Y[i], set.V[i]}})
	}
	xPad = max((xHi-xLo)*0.05, 1)
	yPad = max((yHi-yLo)*0.05, 1)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Survey Samples", Theme: "dark", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: info.Label, Subtitle: fmt.Sprintf("metric=%s points=%d", info.Metric, set.Len())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: xLo - xPad, Max: xHi + xPad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: yLo - yPad, Max: yHi + yPad, Name: "Y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(vLo),
			Max:        float32(vHi),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}},
		}),
	)

	scatter.AddSeries("samples", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		http.Error(w, fmt.Sprintf("failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
