package impactviz

import "time"

// LayerType discriminates the visual element a Layer describes.
type LayerType string

const (
	LayerBand   LayerType = "band"
	LayerLine   LayerType = "line"
	LayerMarker LayerType = "marker"
)

// Layer is one visual element of a chart. Type determines which data fields
// are populated: bands carry Lower/Upper, lines carry Y, markers carry At.
// A rendering backend consumes the layer list front-to-back in slice order,
// drawing later layers over earlier ones.
type Layer struct {
	Type LayerType `json:"type"`
	Name string    `json:"name"`

	Lower []float64 `json:"lower,omitempty"`
	Upper []float64 `json:"upper,omitempty"`
	Y     []float64 `json:"y,omitempty"`
	At    time.Time `json:"at,omitempty"`

	Color   string      `json:"color"`
	Width   float32     `json:"width,omitempty"`
	Pattern LinePattern `json:"pattern,omitempty"`
	Opacity float32     `json:"opacity,omitempty"`
}

func bandLayer(name string, lower, upper []float64, style *Style) Layer {
	return Layer{
		Type:    LayerBand,
		Name:    name,
		Lower:   copySeries(lower),
		Upper:   copySeries(upper),
		Color:   style.RibbonColor,
		Opacity: style.RibbonAlpha,
	}
}

func markerLayer(at time.Time, style *Style) Layer {
	return Layer{
		Type:    LayerMarker,
		Name:    "intervention",
		At:      at,
		Color:   style.InterventionLineColor,
		Width:   style.InterventionLineWidth,
		Pattern: style.InterventionLinePattern,
	}
}

func predictionLayer(name string, y []float64, style *Style) Layer {
	return Layer{
		Type:    LayerLine,
		Name:    name,
		Y:       copySeries(y),
		Color:   style.PredictionLineColor,
		Width:   style.PredictionLineWidth,
		Pattern: style.PredictionLinePattern,
	}
}

func mainLayer(name string, y []float64, style *Style) Layer {
	return Layer{
		Type:    LayerLine,
		Name:    name,
		Y:       copySeries(y),
		Color:   style.MainLineColor,
		Width:   style.MainLineWidth,
		Pattern: PatternSolid,
	}
}

func copySeries(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
