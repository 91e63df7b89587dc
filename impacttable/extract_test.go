package impacttable

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
}

// validResult builds a minimal four period result with the post period
// starting at the third period.
func validResult() *ModelResult {
	return &ModelResult{
		T:         []time.Time{day(1), day(2), day(3), day(4)},
		PostStart: day(3),

		Observed:       []float64{10, 11, 15, 16},
		Predicted:      []float64{10, 11, 12, 12},
		PredictedLower: []float64{9, 10, 11, 11},
		PredictedUpper: []float64{11, 12, 13, 13},

		PointEffect:      []float64{0, 0, 3, 4},
		PointEffectLower: []float64{-1, -1, 2, 3},
		PointEffectUpper: []float64{1, 1, 4, 5},

		CumEffect:      []float64{0, 0, 3, 7},
		CumEffectLower: []float64{0, 0, 2, 5},
		CumEffectUpper: []float64{0, 0, 4, 9},
	}
}

func TestExtract(t *testing.T) {
	testData := map[string]struct {
		mutate func(res *ModelResult)
		err    error
	}{
		"valid": {
			mutate: func(res *ModelResult) {},
		},
		"valid with labels": {
			mutate: func(res *ModelResult) {
				res.T = nil
				res.Labels = []string{"2023-01-01", "2023-01-02", "2023-01-03", "2023-01-04"}
			},
		},
		"missing predicted upper": {
			mutate: func(res *ModelResult) {
				res.PredictedUpper = nil
			},
			err: ErrMissingField,
		},
		"missing observed": {
			mutate: func(res *ModelResult) {
				res.Observed = nil
			},
			err: ErrMissingField,
		},
		"malformed label": {
			mutate: func(res *ModelResult) {
				res.T = nil
				res.Labels = []string{"2023-01-01", "not-a-date", "2023-01-03", "2023-01-04"}
			},
			err: ErrMalformedTimestamp,
		},
		"series length mismatch": {
			mutate: func(res *ModelResult) {
				res.CumEffect = res.CumEffect[:2]
			},
			err: ErrSeriesLenMismatch,
		},
		"non-monotonic time index": {
			mutate: func(res *ModelResult) {
				res.T[1], res.T[2] = res.T[2], res.T[1]
			},
			err: ErrNonMonotonic,
		},
		"post start unset": {
			mutate: func(res *ModelResult) {
				res.PostStart = time.Time{}
			},
			err: ErrInvalidPostStart,
		},
		"post start before all periods": {
			mutate: func(res *ModelResult) {
				res.PostStart = day(1)
			},
			err: ErrInvalidPostStart,
		},
		"post start after all periods": {
			mutate: func(res *ModelResult) {
				res.PostStart = day(30)
			},
			err: ErrInvalidPostStart,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			res := validResult()
			td.mutate(res)
			table, err := Extract(res)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 4, table.Len())
			assert.Equal(t, day(3), table.InterventionTime())
			assert.Equal(t, res.Observed, table.Observed)
			assert.Equal(t, res.CumEffectUpper, table.CumEffectUpper)
		})
	}
}

func TestExtractNil(t *testing.T) {
	_, err := Extract(nil)
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = Extract(&ModelResult{})
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestExtractMissingFieldNames(t *testing.T) {
	res := validResult()
	res.PredictedUpper = nil
	_, err := Extract(res)
	require.ErrorIs(t, err, ErrMissingField)
	assert.True(t, strings.Contains(err.Error(), "predicted_upper"))
}

func TestExtractMalformedLabelContext(t *testing.T) {
	res := validResult()
	res.T = nil
	res.Labels = []string{"2023-01-01", "01/02/2023", "2023-01-03", "2023-01-04"}
	_, err := Extract(res)
	require.ErrorIs(t, err, ErrMalformedTimestamp)
	assert.True(t, strings.Contains(err.Error(), "01/02/2023"))
}

func TestExtractCustomLayout(t *testing.T) {
	res := validResult()
	res.T = nil
	res.TimeLayout = "01/02/2006"
	res.Labels = []string{"01/01/2023", "01/02/2023", "01/03/2023", "01/04/2023"}
	table, err := Extract(res)
	require.NoError(t, err)
	assert.Equal(t, TimeSlice{day(1), day(2), day(3), day(4)}, table.T)
}

func TestExtractCopiesInput(t *testing.T) {
	res := validResult()
	table, err := Extract(res)
	require.NoError(t, err)

	res.Observed[0] = -999
	res.T[0] = day(9)
	assert.Equal(t, 10.0, table.Observed[0])
	assert.Equal(t, day(1), table.T[0])
}

func TestTablePeriods(t *testing.T) {
	table, err := Extract(validResult())
	require.NoError(t, err)

	preStart, preEnd := table.PrePeriod()
	assert.Equal(t, day(1), preStart)
	assert.Equal(t, day(2), preEnd)

	postStart, postEnd := table.PostPeriod()
	assert.Equal(t, day(3), postStart)
	assert.Equal(t, day(4), postEnd)
}

func TestTableRow(t *testing.T) {
	table, err := Extract(validResult())
	require.NoError(t, err)

	row := table.Row(2)
	assert.Equal(t, day(3), row.Timestamp)
	assert.Equal(t, 15.0, row.Observed)
	assert.Equal(t, 12.0, row.Predicted)
	assert.Equal(t, 3.0, row.PointEffect)
	assert.Equal(t, 3.0, row.CumEffect)
}

func TestTableCopy(t *testing.T) {
	table, err := Extract(validResult())
	require.NoError(t, err)

	next := table.Copy()
	require.Equal(t, table, next)

	next.Observed[0] = -1
	next.T[0] = day(9)
	assert.Equal(t, 10.0, table.Observed[0])
	assert.Equal(t, day(1), table.T[0])
	assert.Equal(t, day(3), next.InterventionTime())
}
