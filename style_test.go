package impactviz

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultStyle(t *testing.T) {
	style := NewDefaultStyle()

	assert.Equal(t, float32(0.9), style.RibbonAlpha)
	assert.Equal(t, float32(0.8), style.MainLineWidth)
	assert.Equal(t, float32(0.6), style.PredictionLineWidth)
	assert.Equal(t, PatternDashed, style.PredictionLinePattern)
	assert.Equal(t, PatternDotted, style.InterventionLinePattern)
	assert.Equal(t, 7*24*time.Hour, style.DateTickInterval)
	assert.Equal(t, "Jan 2", style.DateLabelFormat)
	assert.Equal(t, "$", style.ValueFormat.Symbol)
	assert.True(t, style.Theme.ShowXAxisLine)
	assert.False(t, style.Theme.ShowYAxisTitle)
	assert.False(t, style.Theme.ShowMinorGridLines)
}

func TestStyleCopy(t *testing.T) {
	base := NewDefaultStyle()
	variant := base.Copy()
	variant.RibbonColor = "#FFE4E1"
	variant.DateTickInterval = 14 * 24 * time.Hour

	assert.Equal(t, "#E6E6FA", base.RibbonColor)
	assert.Equal(t, 7*24*time.Hour, base.DateTickInterval)
	assert.Equal(t, "#FFE4E1", variant.RibbonColor)
}

func TestStyleJSONRoundTrip(t *testing.T) {
	style := NewDefaultStyle()
	buf, err := json.Marshal(style)
	require.NoError(t, err)

	var next Style
	require.NoError(t, json.Unmarshal(buf, &next))
	assert.Equal(t, *style, next)
}

func TestDefaultCalendar(t *testing.T) {
	c := DefaultCalendar()
	assert.False(t, c.IsWorkday(time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)))
	assert.False(t, c.IsWorkday(time.Date(2023, 7, 8, 0, 0, 0, 0, time.UTC)))
	assert.True(t, c.IsWorkday(time.Date(2023, 7, 5, 0, 0, 0, 0, time.UTC)))
}
