package fundtrack

import (
	"sort"

	"github.com/shopspring/decimal"
)

// FundPerf pairs a fund with its computed metrics, for ranking views.
type FundPerf struct {
	Fund    *Fund
	Metrics Metrics
}

// MonthlyFlow is the total net amount transacted in one calendar month.
// Both buys and sells contribute their net amount positively: it measures
// activity, not direction.
type MonthlyFlow struct {
	Month  string // "2006-01"
	Amount decimal.Decimal
}

// Slice is one fund's share of the portfolio, for distribution views.
type Slice struct {
	Fund  *Fund
	Value decimal.Decimal
}

// Stats aggregates figures across every fund in the state.
type Stats struct {
	FundCount    int
	TotalTx      int
	TotalValue   decimal.Decimal
	TotalProfit  decimal.Decimal
	Best         *FundPerf
	Worst        *FundPerf
	Flows        []MonthlyFlow
	Distribution []Slice
}

// ComputeStats walks every fund once and aggregates the cross-fund view.
// Best and worst rank by return percentage; on a tie the fund appearing
// first in the state wins. Both are nil when there are no funds.
func (s *State) ComputeStats() Stats {
	st := Stats{FundCount: len(s.Funds)}

	flows := map[string]decimal.Decimal{}
	for _, f := range s.Funds {
		m := f.Metrics()
		st.TotalTx += len(f.Transactions)
		st.TotalValue = st.TotalValue.Add(m.Value)
		st.TotalProfit = st.TotalProfit.Add(m.Profit)
		st.Distribution = append(st.Distribution, Slice{Fund: f, Value: m.Value})

		if st.Best == nil || m.ReturnPct.GreaterThan(st.Best.Metrics.ReturnPct) {
			st.Best = &FundPerf{Fund: f, Metrics: m}
		}
		if st.Worst == nil || m.ReturnPct.LessThan(st.Worst.Metrics.ReturnPct) {
			st.Worst = &FundPerf{Fund: f, Metrics: m}
		}

		for _, tx := range f.Transactions {
			month := tx.Date.Format("2006-01")
			flows[month] = flows[month].Add(f.Net(tx))
		}
	}

	for month, amount := range flows {
		st.Flows = append(st.Flows, MonthlyFlow{Month: month, Amount: amount})
	}
	sort.Slice(st.Flows, func(i, j int) bool { return st.Flows[i].Month < st.Flows[j].Month })
	return st
}
