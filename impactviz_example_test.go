package impactviz

import (
	"fmt"
	"os"
	"time"

	"github.com/gilliganondata/causalimpact-visuals/impacttable"
)

// ExamplePlotImpact extracts a simulated causal impact result and renders
// the three standard charts to an html file.
func ExamplePlotImpact() {
	res := impacttable.GenerateImpact(100, 60, nil, time.Now)

	table, err := impacttable.Extract(res)
	if err != nil {
		fmt.Println(err)
		return
	}

	style := NewDefaultStyle()

	if err := os.MkdirAll("examples", 0o755); err != nil {
		fmt.Println(err)
		return
	}
	file, err := os.Create("examples/impact.html")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer file.Close()

	if err := PlotImpact(file, table, style); err != nil {
		fmt.Println(err)
	}
	// Output:
}

// ExampleBuild derives a style variant and builds a single chart from it.
func ExampleBuild() {
	res := impacttable.GenerateImpact(60, 40, nil, time.Now)
	table, err := impacttable.Extract(res)
	if err != nil {
		fmt.Println(err)
		return
	}

	style := NewDefaultStyle().Copy()
	style.ValueFormat.Symbol = "€"
	style.BusinessDayTicks = true

	c, err := Build(table, ChartCumulative, time.Time{}, style)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Kind, len(c.Layers))
	// Output: cumulative 4
}
