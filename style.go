package impactviz

import (
	"strconv"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// LinePattern is the dash pattern of a stroked line.
type LinePattern string

const (
	PatternSolid  LinePattern = "solid"
	PatternDashed LinePattern = "dashed"
	PatternDotted LinePattern = "dotted"
)

// Style is the shared visual configuration threaded through every chart
// build. It is treated as immutable after construction; derive a variant
// with Copy and override fields on the copy.
type Style struct {
	RibbonColor string  `json:"ribbon_color"`
	RibbonAlpha float32 `json:"ribbon_alpha"`

	MainLineWidth float32 `json:"main_line_width"`
	MainLineColor string  `json:"main_line_color"`

	PredictionLineWidth   float32     `json:"prediction_line_width"`
	PredictionLineColor   string      `json:"prediction_line_color"`
	PredictionLinePattern LinePattern `json:"prediction_line_pattern"`

	InterventionLineWidth   float32     `json:"intervention_line_width"`
	InterventionLineColor   string      `json:"intervention_line_color"`
	InterventionLinePattern LinePattern `json:"intervention_line_pattern"`

	DateTickInterval time.Duration `json:"date_tick_interval"`
	DateLabelFormat  string        `json:"date_label_format"`

	ValueFormat ValueFormat `json:"value_format"`

	Theme Theme `json:"theme"`

	// BusinessDayTicks shifts any date tick landing on a weekend or holiday
	// forward to the next business day per Calendar.
	BusinessDayTicks bool                  `json:"business_day_ticks"`
	Calendar         *cal.BusinessCalendar `json:"-"`
}

// Theme is the minimal base theme applied to every chart.
type Theme struct {
	ShowXAxisLine      bool `json:"show_x_axis_line"`
	ShowYAxisTitle     bool `json:"show_y_axis_title"`
	ShowMinorGridLines bool `json:"show_minor_grid_lines"`
}

func NewDefaultStyle() *Style {
	return &Style{
		RibbonColor: "#E6E6FA",
		RibbonAlpha: 0.9,

		MainLineWidth: 0.8,
		MainLineColor: "#4D4D4D",

		PredictionLineWidth:   0.6,
		PredictionLineColor:   "#27408B",
		PredictionLinePattern: PatternDashed,

		InterventionLineWidth:   0.8,
		InterventionLineColor:   "#BFBFBF",
		InterventionLinePattern: PatternDotted,

		DateTickInterval: 7 * 24 * time.Hour,
		DateLabelFormat:  "Jan 2",

		ValueFormat: ValueFormat{
			Symbol:   "$",
			Grouping: true,
		},

		Theme: Theme{
			ShowXAxisLine: true,
		},
	}
}

// Copy returns a shallow copy for deriving a style variant without mutating
// the shared instance. The calendar pointer is shared since calendars are
// read-only after construction.
func (s *Style) Copy() *Style {
	next := *s
	return &next
}

func (s *Style) businessCalendar() *cal.BusinessCalendar {
	if s.Calendar != nil {
		return s.Calendar
	}
	return DefaultCalendar()
}

// DefaultCalendar returns a business calendar observing US holidays, used
// when BusinessDayTicks is set without an explicit calendar.
func DefaultCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(us.Holidays...)
	return c
}

// ValueFormat renders vertical-axis labels in a currency-like form. Symbol
// may be empty for unitless values.
type ValueFormat struct {
	Symbol   string `json:"symbol"`
	Grouping bool   `json:"grouping"`
	Decimals int    `json:"decimals"`
}

// Format renders a single axis value, e.g. 1234.56 -> "$1,235" with the
// default settings.
func (v ValueFormat) Format(x float64) string {
	neg := x < 0
	if neg {
		x = -x
	}

	s := strconv.FormatFloat(x, 'f', v.Decimals, 64)
	if v.Grouping {
		s = groupThousands(s)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(v.Symbol)
	b.WriteString(s)
	return b.String()
}

// Template returns the echarts axis label template equivalent of Format.
func (v ValueFormat) Template() string {
	return v.Symbol + "{value}"
}

func groupThousands(s string) string {
	intPart := s
	var fracPart string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	n := len(intPart)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)
	return b.String()
}
