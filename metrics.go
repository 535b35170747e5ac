package fundtrack

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Metrics are the aggregate portfolio figures for one fund, produced by
// replaying its ledger. All values are unrounded; rounding happens only at
// the display boundary.
type Metrics struct {
	// Units is the net position. Selling more units than held is not
	// guarded against, so this can go negative.
	Units int64
	// AvgPrice is the average net acquisition price over all buys.
	AvgPrice decimal.Decimal
	// Value is the position valued at the fund's current price.
	Value decimal.Decimal
	// Invested is the running net capital: buys add their net cost, sells
	// subtract their net proceeds. Selling at a gain can therefore drive
	// Invested negative while units remain, which is the recorded
	// accounting convention of this ledger.
	Invested decimal.Decimal
	// Profit is Value minus Invested.
	Profit decimal.Decimal
	// ReturnPct is Profit over Invested, in percent, zero unless Invested
	// is positive.
	ReturnPct decimal.Decimal
}

// Return is the return percentage as a display Percent.
func (m Metrics) Return() Percent { return Percent(m.ReturnPct.InexactFloat64()) }

// Metrics replays the fund's ledger in insertion order and returns the
// aggregate figures. A nil fund (nothing selected) yields all zeros; that is
// the defined neutral result, not an error.
func (f *Fund) Metrics() Metrics {
	var m Metrics
	if f == nil {
		return m
	}

	var buyUnits int64
	var buyAmount decimal.Decimal

	for _, tx := range f.Transactions {
		net := f.Net(tx)
		if tx.Type == Buy {
			m.Units += tx.Units
			m.Invested = m.Invested.Add(net)
			buyUnits += tx.Units
			buyAmount = buyAmount.Add(net)
		} else {
			m.Units -= tx.Units
			m.Invested = m.Invested.Sub(net)
		}
	}

	if buyUnits > 0 {
		m.AvgPrice = buyAmount.Div(decimal.NewFromInt(buyUnits))
	}
	m.Value = f.Price.Mul(decimal.NewFromInt(m.Units))
	m.Profit = m.Value.Sub(m.Invested)
	if m.Invested.IsPositive() {
		m.ReturnPct = m.Profit.Div(m.Invested).Mul(hundred)
	}
	return m
}
