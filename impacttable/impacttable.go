package impacttable

import (
	"errors"
	"time"
)

var (
	ErrEmptyResult        = errors.New("model result has no periods")
	ErrMissingField       = errors.New("model result is missing a required series")
	ErrMalformedTimestamp = errors.New("time label cannot be parsed")
	ErrSeriesLenMismatch  = errors.New("series length does not match the time index")
	ErrNonMonotonic       = errors.New("time index is not monotonically increasing")
	ErrInvalidPostStart   = errors.New("post period start does not leave two non-empty phases")
	ErrCannotInferFreq    = errors.New("cannot infer period frequency from fewer than two rows")
)

// Table is the extracted, row-per-period view of a fitted causal impact
// result. Columns are stored as parallel slices sharing the time index.
// A Table is created once by Extract and never mutated afterwards.
type Table struct {
	T TimeSlice

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

	postStart int // index of the first post-intervention row
}

// Row is a single period of the table, materialized for callers that want
// row-oriented access.
type Row struct {
	Timestamp time.Time

	Observed float64

	Predicted      float64
	PredictedLower float64
	PredictedUpper float64

	PointEffect      float64
	PointEffectLower float64
	PointEffectUpper float64

	CumEffect      float64
	CumEffectLower float64
	CumEffectUpper float64
}

func (td *Table) Len() int {
	return len(td.T)
}

// Row returns the i'th period of the table.
func (td *Table) Row(i int) Row {
	return Row{
		Timestamp:        td.T[i],
		Observed:         td.Observed[i],
		Predicted:        td.Predicted[i],
		PredictedLower:   td.PredictedLower[i],
		PredictedUpper:   td.PredictedUpper[i],
		PointEffect:      td.PointEffect[i],
		PointEffectLower: td.PointEffectLower[i],
		PointEffectUpper: td.PointEffectUpper[i],
		CumEffect:        td.CumEffect[i],
		CumEffectLower:   td.CumEffectLower[i],
		CumEffectUpper:   td.CumEffectUpper[i],
	}
}

// InterventionTime returns the timestamp of the first post-intervention
// period. It is always derived from the time index rather than stored.
func (td *Table) InterventionTime() time.Time {
	return td.T[td.postStart]
}

// PrePeriod returns the time range treated as unaffected by the intervention.
func (td *Table) PrePeriod() (time.Time, time.Time) {
	return td.T[0], td.T[td.postStart-1]
}

// PostPeriod returns the time range treated as potentially affected by the
// intervention.
func (td *Table) PostPeriod() (time.Time, time.Time) {
	return td.T[td.postStart], td.T[len(td.T)-1]
}

// Copy returns a deep copy of the table so callers can hold a mutable view
// without touching the shared extract output.
func (td *Table) Copy() *Table {
	next := &Table{
		T:                make(TimeSlice, len(td.T)),
		Observed:         make([]float64, len(td.Observed)),
		Predicted:        make([]float64, len(td.Predicted)),
		PredictedLower:   make([]float64, len(td.PredictedLower)),
		PredictedUpper:   make([]float64, len(td.PredictedUpper)),
		PointEffect:      make([]float64, len(td.PointEffect)),
		PointEffectLower: make([]float64, len(td.PointEffectLower)),
		PointEffectUpper: make([]float64, len(td.PointEffectUpper)),
		CumEffect:        make([]float64, len(td.CumEffect)),
		CumEffectLower:   make([]float64, len(td.CumEffectLower)),
		CumEffectUpper:   make([]float64, len(td.CumEffectUpper)),
		postStart:        td.postStart,
	}
	copy(next.T, td.T)
	copy(next.Observed, td.Observed)
	copy(next.Predicted, td.Predicted)
	copy(next.PredictedLower, td.PredictedLower)
	copy(next.PredictedUpper, td.PredictedUpper)
	copy(next.PointEffect, td.PointEffect)
	copy(next.PointEffectLower, td.PointEffectLower)
	copy(next.PointEffectUpper, td.PointEffectUpper)
	copy(next.CumEffect, td.CumEffect)
	copy(next.CumEffectLower, td.CumEffectLower)
	copy(next.CumEffectUpper, td.CumEffectUpper)
	return next
}
