package impactviz

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/gilliganondata/causalimpact-visuals/impacttable"
)

// ToLineChart renders a chart descriptor with the Apache ECharts backend.
// Layers are added in slice order so later layers draw over earlier ones.
// The returned chart remains open to further SetGlobalOptions calls by the
// caller.
func ToLineChart(c *Chart) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: c.Title,
			},
		),
		charts.WithXAxisOpts(
			opts.XAxis{
				AxisLabel: &opts.AxisLabel{
					Interval: labelInterval(c),
				},
			},
		),
		charts.WithYAxisOpts(yAxisOpts(c.YAxis)),
		charts.WithLegendOpts(
			opts.Legend{
				Show: opts.Bool(true),
			},
		),
	)

	line.SetXAxis(xLabels(c))

	// echarts ties a mark line to a series and draws it above every line
	// series regardless of add order, so the marker rides the first series
	// to sit as far back as the backend allows
	var markers []charts.SeriesOpts
	for i := range c.Layers {
		if c.Layers[i].Type == LayerMarker {
			markers = append(markers, markerOpts(c, &c.Layers[i])...)
		}
	}

	for i := range c.Layers {
		layer := &c.Layers[i]
		var extra []charts.SeriesOpts
		if markers != nil && layer.Type != LayerMarker {
			extra = markers
			markers = nil
		}
		switch layer.Type {
		case LayerBand:
			addBand(line, layer, fmt.Sprintf("band-%d", i), extra)
		case LayerLine:
			addLine(line, layer, extra)
		}
	}
	return line
}

func xLabels(c *Chart) []string {
	labels := make([]string, 0, len(c.T))
	for _, ts := range c.T {
		labels = append(labels, ts.Format(c.XAxis.LabelFormat))
	}
	return labels
}

// labelInterval maps the tick interval onto the echarts category axis by
// skipping the labels between ticks.
func labelInterval(c *Chart) string {
	freq, err := impacttable.TimeSlice(c.T).EstimateFreq()
	if err != nil || freq <= 0 {
		return ""
	}
	periods := int(c.XAxis.TickInterval / freq)
	if periods <= 1 {
		return ""
	}
	return fmt.Sprintf("%d", periods-1)
}

func yAxisOpts(axis YAxis) opts.YAxis {
	y := opts.YAxis{
		AxisLabel: &opts.AxisLabel{
			Formatter: axis.Format.Template(),
		},
		SplitLine: &opts.SplitLine{
			Show: opts.Bool(axis.ShowMinorGridLines),
		},
	}
	if axis.Min != nil {
		y.Min = *axis.Min
	}
	if axis.Max != nil {
		y.Max = *axis.Max
	}
	return y
}

// addBand draws a filled region by stacking an invisible lower series with
// the lower-to-upper delta carrying the area style.
func addBand(line *charts.Line, layer *Layer, stack string, extra []charts.SeriesOpts) {
	delta := make([]float64, len(layer.Upper))
	copy(delta, layer.Upper)
	floats.Sub(delta, layer.Lower)

	lowerOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(
			opts.LineChart{
				Stack:      stack,
				Symbol:     "none",
				ShowSymbol: opts.Bool(false),
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Opacity: 0,
			},
		),
	}
	lowerOpts = append(lowerOpts, extra...)
	line.AddSeries(layer.Name+" lower", lineData(layer.Lower), lowerOpts...)
	line.AddSeries(layer.Name, lineData(delta),
		charts.WithLineChartOpts(
			opts.LineChart{
				Stack:      stack,
				Symbol:     "none",
				ShowSymbol: opts.Bool(false),
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Opacity: 0,
			},
		),
		charts.WithAreaStyleOpts(
			opts.AreaStyle{
				Color:   layer.Color,
				Opacity: layer.Opacity,
			},
		),
	)
}

func addLine(line *charts.Line, layer *Layer, extra []charts.SeriesOpts) {
	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(
			opts.LineChart{
				Symbol:     "none",
				ShowSymbol: opts.Bool(false),
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Color: layer.Color,
				Width: layer.Width,
				Type:  string(layer.Pattern),
			},
		),
	}
	seriesOpts = append(seriesOpts, extra...)
	line.AddSeries(layer.Name, lineData(layer.Y), seriesOpts...)
}

func markerOpts(c *Chart, layer *Layer) []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithMarkLineNameXAxisItemOpts(
			opts.MarkLineNameXAxisItem{
				Name:  layer.Name,
				XAxis: layer.At.Format(c.XAxis.LabelFormat),
			},
		),
		charts.WithMarkLineStyleOpts(
			opts.MarkLineStyle{
				Symbol: []string{"none", "none"},
				LineStyle: &opts.LineStyle{
					Color: layer.Color,
					Width: layer.Width,
					Type:  string(layer.Pattern),
				},
			},
		),
	}
}

func lineData(vals []float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(vals))
	for _, v := range vals {
		data = append(data, opts.LineData{Value: v})
	}
	return data
}

// PlotImpact renders the three standard impact charts for a table onto a
// single echarts page.
func PlotImpact(w io.Writer, td *impacttable.Table, style *Style) error {
	page := components.NewPage()
	for _, kind := range []ChartKind{ChartOriginal, ChartPointwise, ChartCumulative} {
		c, err := Build(td, kind, time.Time{}, style)
		if err != nil {
			return fmt.Errorf("unable to build %s chart, %w", kind, err)
		}
		page.AddCharts(ToLineChart(c))
	}
	return page.Render(w)
}
