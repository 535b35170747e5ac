package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/okasha/fundtrack"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// StatsMarkdown renders the cross-fund statistics report.
func StatsMarkdown(s *fundtrack.State, currency string) string {
	st := s.ComputeStats()

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio statistics")
	doc.Table(md.TableSet{
		Header: []string{"", ""},
		Rows: [][]string{
			{"Funds", strconv.Itoa(st.FundCount)},
			{"Transactions", strconv.Itoa(st.TotalTx)},
			{"Total Value", fundtrack.M(st.TotalValue, currency).String()},
			{"Total Profit", fundtrack.M(st.TotalProfit, currency).SignedString()},
		},
	})

	if st.Best != nil && st.Worst != nil {
		doc.H2("Performance")
		doc.Table(md.TableSet{
			Header: []string{"", "Fund", "Return"},
			Rows: [][]string{
				{"Best", st.Best.Fund.Label(), st.Best.Metrics.Return().SignedString()},
				{"Worst", st.Worst.Fund.Label(), st.Worst.Metrics.Return().SignedString()},
			},
		})
	}

	out := doc.String()
	var b bytes.Buffer
	b.WriteString(out)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(st.Flows) == 0 {
			return false
		}
		var sec bytes.Buffer
		sd := md.NewMarkdown(&sec)
		sd.H2("Monthly net amounts")
		rows := make([][]string, 0, len(st.Flows))
		for _, flow := range st.Flows {
			rows = append(rows, []string{flow.Month, fundtrack.M(flow.Amount, currency).String()})
		}
		sd.Table(md.TableSet{Header: []string{"Month", "Amount"}, Rows: rows})
		fmt.Fprint(w, sd.String())
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(st.Distribution) == 0 {
			return false
		}
		var sec bytes.Buffer
		sd := md.NewMarkdown(&sec)
		sd.H2("Value distribution")
		rows := make([][]string, 0, len(st.Distribution))
		for _, slice := range st.Distribution {
			share := "-"
			if st.TotalValue.IsPositive() {
				share = fundtrack.Percent(slice.Value.Div(st.TotalValue).Mul(decimalHundred).InexactFloat64()).String()
			}
			rows = append(rows, []string{slice.Fund.Code, fundtrack.M(slice.Value, currency).String(), share})
		}
		sd.Table(md.TableSet{Header: []string{"Fund", "Value", "Share"}, Rows: rows})
		fmt.Fprint(w, sd.String())
		return true
	})

	return b.String()
}
