package impacttable

import (
	"fmt"
	"time"
)

// DefaultTimeLayout parses row labels of the form produced by most daily
// causal impact exports, e.g. "2023-04-17".
const DefaultTimeLayout = "2006-01-02"

// ModelResult is the typed boundary between this library and an external
// causal impact estimation library. Every series must have one entry per
// period. The time index arrives either as native timestamps in T or as row
// labels in Labels, parsed with TimeLayout. PostStart marks the first period
// treated as affected by the intervention.
type ModelResult struct {
	T          []time.Time
	Labels     []string
	TimeLayout string

	PostStart time.Time

	Observed []float64

	Predicted      []float64
	PredictedLower []float64
	PredictedUpper []float64

	PointEffect      []float64
	PointEffectLower []float64
	PointEffectUpper []float64

	CumEffect      []float64
	CumEffectLower []float64
	CumEffectUpper []float64
}

// Extract converts a model result into a Table, preserving period order and
// copying every series verbatim. The only transformation applied is parsing
// label-indexed time into timestamps.
func Extract(res *ModelResult) (*Table, error) {
	if res == nil || (len(res.T) == 0 && len(res.Labels) == 0) {
		return nil, ErrEmptyResult
	}

	t, err := resolveTimeIndex(res)
	if err != nil {
		return nil, err
	}

	n := len(t)
	series := []struct {
		name string
		vals []float64
	}{
		{"observed", res.Observed},
		{"predicted", res.Predicted},
		{"predicted_lower", res.PredictedLower},
		{"predicted_upper", res.PredictedUpper},
		{"pointwise_effect", res.PointEffect},
		{"pointwise_effect_lower", res.PointEffectLower},
		{"pointwise_effect_upper", res.PointEffectUpper},
		{"cumulative_effect", res.CumEffect},
		{"cumulative_effect_lower", res.CumEffectLower},
		{"cumulative_effect_upper", res.CumEffectUpper},
	}
	for _, s := range series {
		if s.vals == nil {
			return nil, fmt.Errorf("%s, %w", s.name, ErrMissingField)
		}
		if len(s.vals) != n {
			return nil, fmt.Errorf(
				"%s has length %d, but time index has length %d, %w",
				s.name, len(s.vals), n, ErrSeriesLenMismatch,
			)
		}
	}

	postStart, err := resolvePostStart(t, res.PostStart)
	if err != nil {
		return nil, err
	}

	td := &Table{
		T:                t,
		Observed:         copySeries(res.Observed),
		Predicted:        copySeries(res.Predicted),
		PredictedLower:   copySeries(res.PredictedLower),
		PredictedUpper:   copySeries(res.PredictedUpper),
		PointEffect:      copySeries(res.PointEffect),
		PointEffectLower: copySeries(res.PointEffectLower),
		PointEffectUpper: copySeries(res.PointEffectUpper),
		CumEffect:        copySeries(res.CumEffect),
		CumEffectLower:   copySeries(res.CumEffectLower),
		CumEffectUpper:   copySeries(res.CumEffectUpper),
		postStart:        postStart,
	}
	return td, nil
}

func resolveTimeIndex(res *ModelResult) (TimeSlice, error) {
	var t TimeSlice
	if len(res.T) > 0 {
		t = make(TimeSlice, len(res.T))
		copy(t, res.T)
	} else {
		layout := res.TimeLayout
		if layout == "" {
			layout = DefaultTimeLayout
		}
		t = make(TimeSlice, 0, len(res.Labels))
		for i, label := range res.Labels {
			parsed, err := time.Parse(layout, label)
			if err != nil {
				return nil, fmt.Errorf("label %q at row %d, %w", label, i, ErrMalformedTimestamp)
			}
			t = append(t, parsed)
		}
	}

	var lastT time.Time
	for i, currT := range t {
		if !currT.After(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		lastT = currT
	}
	return t, nil
}

// resolvePostStart locates the first period at or after the declared post
// start. Both phases must end up non-empty.
func resolvePostStart(t TimeSlice, postStart time.Time) (int, error) {
	if postStart.IsZero() {
		return 0, fmt.Errorf("post start is unset, %w", ErrInvalidPostStart)
	}
	for i, currT := range t {
		if !currT.Before(postStart) {
			if i == 0 {
				return 0, fmt.Errorf("post start %s leaves an empty pre period, %w", postStart, ErrInvalidPostStart)
			}
			return i, nil
		}
	}
	return 0, fmt.Errorf("post start %s is after the last period, %w", postStart, ErrInvalidPostStart)
}

func copySeries(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}
