// Package chart renders correlation summaries as static interactive HTML
// charts.
package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Emilio-Vasquez/Applied-Data-Analytics/internal/stats"
)

const labelWidth = 56

// CorrelationBar renders the ranked correlations as a grouped bar chart,
// Spearman next to Pearson per feature.
func CorrelationBar(rows []stats.CorrRow, title string, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Spearman ranked; Pearson shown for comparison",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1100px",
			Height: "640px",
		}),
	)

	names := make([]string, len(rows))
	spearman := make([]opts.BarData, len(rows))
	pearson := make([]opts.BarData, len(rows))
	for i, r := range rows {
		names[i] = stats.ShortenLabel(r.Feature, labelWidth)
		spearman[i] = opts.BarData{Value: corrValue(r.Spearman)}
		pearson[i] = opts.BarData{Value: corrValue(r.Pearson)}
	}

	bar.SetXAxis(names).
		AddSeries("Spearman", spearman).
		AddSeries("Pearson", pearson)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

// SpearmanHeatmap renders a focused rank-correlation matrix. labels index
// both axes; matrix[i][j] is the correlation between labels i and j.
func SpearmanHeatmap(matrix [][]float64, labels []string, title string, w io.Writer) error {
	short := make([]string, len(labels))
	for i, l := range labels {
		short[i] = stats.ShortenLabel(l, 28)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "900px",
			Height: "780px",
		}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: short}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: -1,
			Max: 1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#ffffff", "#a50026"},
			},
		}),
	)

	var data []opts.HeatMapData
	for i := range matrix {
		for j := range matrix[i] {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, corrValue(matrix[i][j])}})
		}
	}
	hm.SetXAxis(short).AddSeries("spearman", data)

	if err := hm.Render(w); err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	return nil
}

// corrValue rounds for display; undefined correlations become nil so the
// chart shows a gap instead of a bogus bar.
func corrValue(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return math.Round(v*1000) / 1000
}
