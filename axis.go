package impactviz

import (
	"time"

	"github.com/rickar/cal/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/gilliganondata/causalimpact-visuals/impacttable"
)

// HeadroomFactor is the margin multiplier applied above the maximum plotted
// value on the original chart's vertical axis.
const HeadroomFactor = 1.05

// Tick is one labeled position on the time axis.
type Tick struct {
	Time  time.Time `json:"time"`
	Label string    `json:"label"`
}

type XAxis struct {
	Ticks        []Tick        `json:"ticks"`
	TickInterval time.Duration `json:"tick_interval"`
	LabelFormat  string        `json:"label_format"`
	ShowAxisLine bool          `json:"show_axis_line"`
}

// YAxis describes the vertical axis. Min and Max are nil when the axis
// floats to the natural data range.
type YAxis struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`

	Format ValueFormat `json:"format"`

	ShowTitle          bool `json:"show_title"`
	ShowMinorGridLines bool `json:"show_minor_grid_lines"`
}

// dateAxis places ticks from the first timestamp at the configured interval.
// A partial trailing interval gets no tick, so the last tick never lands
// past the final period.
func dateAxis(t impacttable.TimeSlice, style *Style) XAxis {
	interval := style.DateTickInterval
	if interval <= 0 {
		interval = 7 * 24 * time.Hour
	}

	last := t.EndTime()
	ticks := make([]Tick, 0, int(last.Sub(t.StartTime())/interval)+1)
	for cur := t.StartTime(); !cur.After(last); cur = cur.Add(interval) {
		at := cur
		if style.BusinessDayTicks {
			at = nextBusinessDay(at, style.businessCalendar())
			if at.After(last) {
				break
			}
		}
		ticks = append(ticks, Tick{Time: at, Label: at.Format(style.DateLabelFormat)})
	}

	return XAxis{
		Ticks:        ticks,
		TickInterval: interval,
		LabelFormat:  style.DateLabelFormat,
		ShowAxisLine: style.Theme.ShowXAxisLine,
	}
}

func nextBusinessDay(t time.Time, c *cal.BusinessCalendar) time.Time {
	for !c.IsWorkday(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// valueAxis pins the original chart to a zero floor with a fixed headroom
// factor over the largest plotted value, band bounds included. Effect charts
// float since their values are signed.
func valueAxis(td *impacttable.Table, kind ChartKind, style *Style) YAxis {
	axis := YAxis{
		Format:             style.ValueFormat,
		ShowTitle:          style.Theme.ShowYAxisTitle,
		ShowMinorGridLines: style.Theme.ShowMinorGridLines,
	}
	if kind != ChartOriginal {
		return axis
	}

	maxVal := floats.Max(td.Observed)
	maxVal = max(maxVal, floats.Max(td.Predicted))
	maxVal = max(maxVal, floats.Max(td.PredictedUpper))

	// A non-positive maximum would invert the axis under the headroom
	// factor, so the upper bound pins to zero instead.
	upper := 0.0
	if maxVal > 0 {
		upper = HeadroomFactor * maxVal
	}

	lower := 0.0
	axis.Min = &lower
	axis.Max = &upper
	return axis
}
