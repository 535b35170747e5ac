package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/okasha/fundtrack"
)

// Transaction renders a transaction to a one line string.
func Transaction(f *fundtrack.Fund, tx fundtrack.Transaction, currency string) string {
	net := fundtrack.M(f.Net(tx), currency)
	if tx.Type == fundtrack.Buy {
		return fmt.Sprintf("Bought %d units of %s at %s for %s net on %s", tx.Units, f.Code, fundtrack.M(tx.Price, currency), net, tx.Date)
	}
	return fmt.Sprintf("Sold %d units of %s at %s for %s net on %s", tx.Units, f.Code, fundtrack.M(tx.Price, currency), net, tx.Date)
}

// TransactionsMarkdown renders a fund's ledger as a markdown table. The
// index column is the one delete-tx takes.
func TransactionsMarkdown(f *fundtrack.Fund, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s transactions", f.Label()))
	if len(f.Transactions) == 0 {
		doc.PlainText("No transactions recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(f.Transactions))
	for i, tx := range f.Transactions {
		rows = append(rows, []string{
			strconv.Itoa(i),
			tx.Date.String(),
			string(tx.Type),
			strconv.FormatInt(tx.Units, 10),
			fundtrack.M(tx.Price, currency).String(),
			fundtrack.M(tx.Gross(), currency).String(),
			fundtrack.M(f.Fee(tx), currency).String(),
			fundtrack.M(f.Net(tx), currency).String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Date", "Type", "Units", "Price", "Amount", "Fee", "Net"},
		Rows:   rows,
	})
	return doc.String()
}
