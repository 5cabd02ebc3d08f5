package dashboard

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	colorSearches  = "#8884d8"
	colorQuotes    = "#82ca9d"
	colorRate      = "#ff7300"
	colorCompleted = "#4CAF50"
	colorCancelled = "#F44336"
	colorActive    = "#2196F3"

	heightWide  = 400
	heightPanel = 300
)

// series is one named column of values bound to the category axis.
type series struct {
	name   string
	color  string
	values []float64
	stack  string
}

// Slice is one pie segment.
type Slice struct {
	Name  string
	Value int
	Color string
}

func baseOpts(id string, height int) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: id,
			Width:   "100%",
			Height:  fmt.Sprintf("%dpx", height),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Bottom: "0",
		}),
	}
}

func valueAxis(name string) opts.YAxis {
	return opts.YAxis{
		Name: name,
		Type: "value",
		AxisLabel: &opts.AxisLabel{
			Show: opts.Bool(true),
		},
		SplitLine: &opts.SplitLine{
			Show: opts.Bool(true),
			LineStyle: &opts.LineStyle{
				Type: "dashed",
			},
		},
	}
}

func categoryAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name: name,
		Type: "category",
		AxisLabel: &opts.AxisLabel{
			Show: opts.Bool(true),
		},
	}
}

func barData(values []float64) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: finite(v)}
	}
	return data
}

func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: finite(v)}
	}
	return data
}

// newBarChart draws one or more bar series over the category labels.
// Series sharing a stack name are stacked.
func newBarChart(id, axisName string, labels []string, height int, ss ...series) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(baseOpts(id, height),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(categoryAxis(axisName)),
		charts.WithYAxisOpts(valueAxis("")),
	)...)

	bar.SetXAxis(labels)
	for _, s := range ss {
		bar.AddSeries(s.name, barData(s.values),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.color}),
			charts.WithBarChartOpts(opts.BarChart{Stack: s.stack}),
		)
	}

	return bar
}

// newLineChart draws a single smoothed line.
func newLineChart(id, axisName string, labels []string, height int, s series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(baseOpts(id, height),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(categoryAxis(axisName)),
		charts.WithYAxisOpts(valueAxis("")),
	)...)

	line.SetXAxis(labels)
	line.AddSeries(s.name, lineData(s.values),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: s.color}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: s.color}),
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)

	return line
}

// newFunnelChart is the composed chart shared by every breakdown: searches
// and quotes as bars on the left axis, conversion rate as a line on the right.
func newFunnelChart(id, axisName string, labels []string, searches, quotes, rates []float64, brush bool) *charts.Bar {
	global := append(baseOpts(id, heightWide),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(categoryAxis(axisName)),
		charts.WithYAxisOpts(valueAxis("Searches")),
	)
	if brush {
		global = append(global, charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}))
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(global...)
	rateAxis := valueAxis("Conversion Rate (%)")
	rateAxis.AxisLabel.Formatter = "{value}%"
	rateAxis.SplitLine = nil
	bar.ExtendYAxis(rateAxis)

	bar.SetXAxis(labels).
		AddSeries("Total Searches", barData(searches), charts.WithItemStyleOpts(opts.ItemStyle{Color: colorSearches})).
		AddSeries("Quotes Received", barData(quotes), charts.WithItemStyleOpts(opts.ItemStyle{Color: colorQuotes}))

	rate := charts.NewLine()
	rate.SetXAxis(labels).
		AddSeries("Conversion Rate (%)", lineData(rates),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRate}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colorRate}),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), YAxisIndex: 1}),
		)
	bar.Overlap(rate)

	return bar
}

// newPieChart draws a full pie with "name: percent" labels.
func newPieChart(id, name string, slices []Slice) *charts.Pie {
	data := make([]opts.PieData, len(slices))
	for i, s := range slices {
		data[i] = opts.PieData{
			Name:      s.Name,
			Value:     s.Value,
			ItemStyle: &opts.ItemStyle{Color: s.Color},
		}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(append(baseOpts(id, heightPanel),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)...)

	pie.AddSeries(name, data).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {d}%",
			}),
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"0%", "55%"},
				Center: []string{"50%", "45%"},
			}),
		)

	return pie
}

// funnelColumns splits funnel records into the three composed-chart series.
func funnelColumns(n int, at func(i int) (searches, quotes int, rate float64)) (searches, quotes, rates []float64) {
	searches = make([]float64, n)
	quotes = make([]float64, n)
	rates = make([]float64, n)
	for i := range n {
		s, q, r := at(i)
		searches[i] = float64(s)
		quotes[i] = float64(q)
		rates[i] = r
	}
	return searches, quotes, rates
}
