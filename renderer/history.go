package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/okasha/fundtrack"
)

func trendMark(t fundtrack.Trend) string {
	switch t {
	case fundtrack.Rising:
		return "↑"
	case fundtrack.Falling:
		return "↓"
	default:
		return "→"
	}
}

// HistoryMarkdown renders a fund's price history, most recent first, with
// the day-over-day change of each point.
func HistoryMarkdown(f *fundtrack.Fund, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s price history", f.Label()))

	report := f.PriceReport()
	if len(report) == 0 {
		doc.PlainText("No prices recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(report))
	for _, pc := range report {
		rows = append(rows, []string{
			pc.Date.String(),
			fundtrack.M(pc.Price, currency).String(),
			pc.Change.SignedString(),
			trendMark(pc.Trend),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Price", "Change", "Trend"},
		Rows:   rows,
	})
	return doc.String()
}
