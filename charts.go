package fundtrack

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// Chart rendering dimensions.
const (
	chartWidth  = 1024
	chartHeight = 512
)

// RenderPriceChart renders the fund's price history as a PNG line chart.
// It needs at least two price points to draw a line.
func RenderPriceChart(f *Fund) ([]byte, error) {
	if f == nil {
		return nil, ErrNoSelection
	}
	if len(f.PriceHistory) < 2 {
		return nil, fmt.Errorf("%s has %d price points, need at least 2 to chart", f.Label(), len(f.PriceHistory))
	}

	points := make([]PricePoint, len(f.PriceHistory))
	copy(points, f.PriceHistory)
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Date.Time()
		ys[i] = p.Price.InexactFloat64()
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s price", f.Label()),
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    f.Code,
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("cannot render price chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDistributionChart renders the portfolio value split per fund as a
// PNG pie chart. Funds with no positive value are left out.
func RenderDistributionChart(s *State) ([]byte, error) {
	st := s.ComputeStats()

	var values []chart.Value
	for _, slice := range st.Distribution {
		if !slice.Value.IsPositive() {
			continue
		}
		values = append(values, chart.Value{
			Label: slice.Fund.Code,
			Value: slice.Value.InexactFloat64(),
		})
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no fund holds a positive value, nothing to chart")
	}

	graph := chart.PieChart{
		Title:  "Portfolio distribution",
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("cannot render distribution chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderMonthlyChart renders net transacted amounts per calendar month as a
// PNG bar chart.
func RenderMonthlyChart(s *State) ([]byte, error) {
	st := s.ComputeStats()
	if len(st.Flows) == 0 {
		return nil, fmt.Errorf("no transactions recorded, nothing to chart")
	}

	bars := make([]chart.Value, 0, len(st.Flows))
	for _, flow := range st.Flows {
		bars = append(bars, chart.Value{
			Label: flow.Month,
			Value: flow.Amount.InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    "Monthly net amounts",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("cannot render monthly chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderReturnChart renders every fund's return percentage as a PNG bar
// chart.
func RenderReturnChart(s *State) ([]byte, error) {
	if len(s.Funds) == 0 {
		return nil, fmt.Errorf("no funds recorded, nothing to chart")
	}

	bars := make([]chart.Value, 0, len(s.Funds))
	for _, f := range s.Funds {
		m := f.Metrics()
		bars = append(bars, chart.Value{
			Label: f.Code,
			Value: m.ReturnPct.InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    "Return by fund (%)",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("cannot render return chart: %w", err)
	}
	return buf.Bytes(), nil
}
