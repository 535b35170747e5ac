package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/okasha/fundtrack"
)

// FundsMarkdown renders the fund list as a markdown table, marking the
// current selection.
func FundsMarkdown(s *fundtrack.State, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Funds")
	if len(s.Funds) == 0 {
		doc.PlainText("No funds recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(s.Funds))
	for _, f := range s.Funds {
		m := f.Metrics()
		advice := fundtrack.Advise(m)
		selected := ""
		if f.ID == s.CurrentFundID {
			selected = "*"
		}
		rows = append(rows, []string{
			selected,
			f.Code,
			f.Name,
			fundtrack.M(f.Price, currency).String(),
			strconv.FormatInt(m.Units, 10),
			fundtrack.M(m.Value, currency).String(),
			m.Return().SignedString(),
			advice.Text,
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"", "Code", "Name", "Price", "Units", "Value", "Return", "Advice"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d funds.", len(s.Funds)))
	return doc.String()
}
