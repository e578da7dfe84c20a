// Package report renders analytics results as images.
package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/tanziljws/tanipintar-website/internal/analytics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var barColor = color.RGBA{R: 21, G: 128, B: 61, A: 255}

// MonthlyHarvestChart draws the monthly harvest series as a PNG bar chart.
func MonthlyHarvestChart(series []analytics.MonthlyBucket, trend analytics.Trend) ([]byte, error) {
	if len(series) == 0 {
		series = []analytics.MonthlyBucket{{YearMonth: analytics.NoDataKey}}
	}

	p := plot.New()
	p.Title.Text = "Estimasi Panen per Bulan"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Bulan"
	p.Y.Label.Text = "Estimasi Panen (Ton)"

	values := make(plotter.Values, len(series))
	labels := make([]string, len(series))
	maxValue := 0.0
	for i, b := range series {
		values[i] = b.TotalTon
		labels[i] = b.YearMonth
		maxValue = math.Max(maxValue, b.TotalTon)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	if len(labels) > 6 {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	p.Y.Min = 0
	p.Y.Max = math.Max(maxValue*1.15, 1)

	for i, val := range values {
		if val <= 0 {
			continue
		}
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: float64(i), Y: val + p.Y.Max*0.02}},
			Labels: []string{fmt.Sprintf("%.1f", val)},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to label bar %d: %w", i, err)
		}
		p.Add(label)
	}

	if len(series) >= 2 {
		p.Legend.Top = true
		p.Legend.Add(fmt.Sprintf("Tren rata-rata %+.1f%%", trend.AverageTrendPercent), bars)
	}

	writer, err := p.WriterTo(8*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create png writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
