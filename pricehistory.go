package fundtrack

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PricePoint is a dated price observation for a fund.
//
// A fund's history holds exactly one point per distinct date: updating a
// date that is already present overwrites the entry in place.
type PricePoint struct {
	Date  Date            `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// Trend classifies a day-over-day price change for display.
type Trend int

const (
	Flat Trend = iota
	Rising
	Falling
)

func (t Trend) String() string {
	switch t {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	default:
		return "flat"
	}
}

// A change is rising above +2% and falling below -2%, strictly.
var (
	risingAbove  = decimal.NewFromInt(2)
	fallingBelow = decimal.NewFromInt(-2)
)

// PriceChange is one row of the price-history view: a price point with its
// percent change relative to the chronologically previous (older) point.
type PriceChange struct {
	PricePoint
	Change Percent
	Trend  Trend
}

// PriceReport returns the fund's price history most recent first, each entry
// carrying the percent change against the next older entry. The oldest entry
// reports a zero change, as there is no older point to compare against.
func (f *Fund) PriceReport() []PriceChange {
	if f == nil || len(f.PriceHistory) == 0 {
		return nil
	}

	sorted := make([]PricePoint, len(f.PriceHistory))
	copy(sorted, f.PriceHistory)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	report := make([]PriceChange, 0, len(sorted))
	for i, p := range sorted {
		prev := p.Price // the oldest point is compared against itself
		if i < len(sorted)-1 {
			prev = sorted[i+1].Price
		}
		change := p.Price.Sub(prev).Div(prev).Mul(hundred)

		trend := Flat
		switch {
		case change.GreaterThan(risingAbove):
			trend = Rising
		case change.LessThan(fallingBelow):
			trend = Falling
		}
		report = append(report, PriceChange{
			PricePoint: p,
			Change:     Percent(change.InexactFloat64()),
			Trend:      trend,
		})
	}
	return report
}
