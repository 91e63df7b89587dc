package impactviz

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/gilliganondata/causalimpact-visuals/impacttable"
)

var (
	ErrEmptyTable       = errors.New("table has no rows")
	ErrUnknownChartKind = errors.New("unknown chart kind")
	ErrNilStyle         = errors.New("no style configuration")
)

// ChartKind selects which view of the impact table a chart shows.
type ChartKind string

const (
	// ChartOriginal plots the observed series against the counterfactual
	// prediction.
	ChartOriginal ChartKind = "original"
	// ChartPointwise plots the per-period effect against a zero baseline.
	ChartPointwise ChartKind = "pointwise"
	// ChartCumulative plots the running post-period effect against a zero
	// baseline.
	ChartCumulative ChartKind = "cumulative"
)

// Chart is a renderable chart descriptor: an ordered back-to-front layer
// stack over a shared time index plus axis configuration. It holds no
// references into the source table, so callers may discard the table after
// building.
type Chart struct {
	Kind  ChartKind `json:"kind"`
	Title string    `json:"title"`

	T      []time.Time `json:"t"`
	Layers []Layer     `json:"layers"`

	XAxis XAxis `json:"x_axis"`
	YAxis YAxis `json:"y_axis"`
}

// Build assembles a chart of the given kind from an extracted table. The
// intervention marker is drawn at the given timestamp; a zero value falls
// back to the table's own intervention time. The table and style are read
// but never mutated, so concurrent builds over the same inputs are safe.
func Build(td *impacttable.Table, kind ChartKind, intervention time.Time, style *Style) (*Chart, error) {
	if td == nil || td.Len() == 0 {
		return nil, ErrEmptyTable
	}
	if style == nil {
		return nil, ErrNilStyle
	}
	if intervention.IsZero() {
		intervention = td.InterventionTime()
	}

	n := td.Len()

	var title string
	var band, secondary, primary Layer
	switch kind {
	case ChartOriginal:
		title = "Observed vs Predicted"
		band = bandLayer("prediction interval", td.PredictedLower, td.PredictedUpper, style)
		secondary = predictionLayer("predicted", td.Predicted, style)
		primary = mainLayer("observed", td.Observed, style)
	case ChartPointwise:
		title = "Pointwise Effect"
		band = bandLayer("effect interval", td.PointEffectLower, td.PointEffectUpper, style)
		secondary = mainLayer("zero baseline", zeros(n), style)
		primary = mainLayer("pointwise effect", td.PointEffect, style)
	case ChartCumulative:
		title = "Cumulative Effect"
		band = bandLayer("cumulative interval", td.CumEffectLower, td.CumEffectUpper, style)
		secondary = mainLayer("zero baseline", zeros(n), style)
		primary = mainLayer("cumulative effect", td.CumEffect, style)
	default:
		return nil, fmt.Errorf("%q, %w", kind, ErrUnknownChartKind)
	}

	t := make([]time.Time, n)
	copy(t, td.T)

	c := &Chart{
		Kind:  kind,
		Title: title,
		T:     t,

		// Band first so it can never occlude either line, primary last so
		// nothing occludes it.
		Layers: []Layer{
			band,
			markerLayer(intervention, style),
			secondary,
			primary,
		},

		XAxis: dateAxis(td.T, style),
		YAxis: valueAxis(td, kind, style),
	}
	return c, nil
}

func zeros(n int) []float64 {
	return make([]float64, n)
}

// JSON serializes the chart descriptor so a non-echarts backend can consume
// the layer stack and axis configuration directly.
func (c *Chart) JSON() ([]byte, error) {
	return json.Marshal(c)
}
