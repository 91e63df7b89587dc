package impacttable

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
)

// GenerateT creates n contiguous periods at the given interval ending just
// before nowFunc's time, truncated to whole minutes.
func GenerateT(n int, interval time.Duration, nowFunc func() time.Time) TimeSlice {
	t := make(TimeSlice, 0, n)
	ct := time.Unix(nowFunc().Unix()/60*60, 0).Add(-time.Duration(n) * interval).UTC()
	for i := 0; i < n; i++ {
		t = append(t, ct.Add(interval*time.Duration(i)))
	}
	return t
}

// SimulateOptions controls the synthetic causal impact scenario produced by
// GenerateImpact.
type SimulateOptions struct {
	Baseline   float64 // mean of the counterfactual series
	WeeklyAmp  float64 // amplitude of the weekly seasonal wave
	NoiseScale float64 // stddev of the observation noise
	Lift       float64 // additive effect applied from the post period onward
	Margin     float64 // half-width of every credible interval
}

func NewDefaultSimulateOptions() *SimulateOptions {
	return &SimulateOptions{
		Baseline:   200.0,
		WeeklyAmp:  25.0,
		NoiseScale: 5.0,
		Lift:       40.0,
		Margin:     15.0,
	}
}

// GenerateImpact builds a synthetic fitted-model result with n daily periods
// where the post period starts at index postIdx. The counterfactual is a
// baseline plus a weekly wave, the observed series adds noise everywhere and
// the lift from postIdx onward, and the cumulative triple is the running sum
// of the pointwise triple over the post period.
func GenerateImpact(n, postIdx int, opt *SimulateOptions, nowFunc func() time.Time) *ModelResult {
	if opt == nil {
		opt = NewDefaultSimulateOptions()
	}
	t := GenerateT(n, 24*time.Hour, nowFunc)

	const weekSec = 7 * 24 * 3600.0

	predicted := make([]float64, n)
	observed := make([]float64, n)
	for i := 0; i < n; i++ {
		predicted[i] = opt.Baseline + opt.WeeklyAmp*math.Sin(2.0*math.Pi/weekSec*float64(t[i].Unix()))
		observed[i] = predicted[i] + rand.NormFloat64()*opt.NoiseScale
		if i >= postIdx {
			observed[i] += opt.Lift
		}
	}

	pointEffect := make([]float64, n)
	copy(pointEffect, observed)
	floats.Sub(pointEffect, predicted)

	res := &ModelResult{
		T:         t,
		PostStart: t[postIdx],

		Observed:       observed,
		Predicted:      predicted,
		PredictedLower: offsetSeries(predicted, -opt.Margin),
		PredictedUpper: offsetSeries(predicted, opt.Margin),

		PointEffect:      pointEffect,
		PointEffectLower: offsetSeries(pointEffect, -opt.Margin),
		PointEffectUpper: offsetSeries(pointEffect, opt.Margin),

		CumEffect:      postCumSum(pointEffect, postIdx, 0),
		CumEffectLower: postCumSum(pointEffect, postIdx, -opt.Margin),
		CumEffectUpper: postCumSum(pointEffect, postIdx, opt.Margin),
	}
	return res
}

func offsetSeries(src []float64, offset float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)
	floats.AddConst(offset, dst)
	return dst
}

// postCumSum running-sums src shifted by offset from postIdx onward, leaving
// the pre period identically zero.
func postCumSum(src []float64, postIdx int, offset float64) []float64 {
	dst := make([]float64, len(src))
	if postIdx >= len(src) {
		return dst
	}
	post := make([]float64, len(src)-postIdx)
	copy(post, src[postIdx:])
	floats.AddConst(offset, post)
	floats.CumSum(dst[postIdx:], post)
	return dst
}
