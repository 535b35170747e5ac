package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/okasha/fundtrack"
	"github.com/okasha/fundtrack/renderer"
	"github.com/shopspring/decimal"
)

// recordTransaction parses the common buy/sell flags, appends the
// transaction to the current fund and saves the state.
func recordTransaction(typ fundtrack.TxType, date string, units int64, price string) subcommands.ExitStatus {
	day := fundtrack.Date{}
	if date != "" {
		var err error
		day, err = fundtrack.ParseDate(date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fund, err := state.CurrentFund()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var tx fundtrack.Transaction
	if typ == fundtrack.Buy {
		tx, err = fundtrack.NewBuy(day, units, p)
	} else {
		tx, err = fundtrack.NewSell(day, units, p)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fund.AddTransaction(tx)
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Transaction(fund, tx, currency()))
	return subcommands.ExitSuccess
}

// --- Buy Command ---

type buyCmd struct {
	date  string
	units int64
	price string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of units in the current fund" }
func (*buyCmd) Usage() string {
	return `buy -u <units> -p <price> [-d <date>]

  Records a purchase of units in the current fund. The subscription fee is
  charged on the amount.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.Int64Var(&c.units, "u", 0, "Number of units")
	f.StringVar(&c.price, "p", "", "Execution price per unit")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.units <= 0 || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return recordTransaction(fundtrack.Buy, c.date, c.units, c.price)
}

// --- Sell Command ---

type sellCmd struct {
	date  string
	units int64
	price string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of units in the current fund" }
func (*sellCmd) Usage() string {
	return `sell -u <units> -p <price> [-d <date>]

  Records a sale of units in the current fund. The redemption fee is charged
  on the amount.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.Int64Var(&c.units, "u", 0, "Number of units")
	f.StringVar(&c.price, "p", "", "Execution price per unit")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.units <= 0 || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return recordTransaction(fundtrack.Sell, c.date, c.units, c.price)
}

// --- Tx Command ---

type txCmd struct {
	fund string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of a fund" }
func (*txCmd) Usage() string {
	return `tx [-f <id-or-code>]

  Lists the ledger of the current fund, or of the given one.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to report on, defaults to the current one")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fund, err := pickFund(state, c.fund)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown(fund, currency()))
	return subcommands.ExitSuccess
}

// --- Delete Tx Command ---

type deleteTxCmd struct {
	fund string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction by its ledger index" }
func (*deleteTxCmd) Usage() string {
	return `delete-tx [-f <id-or-code>] <index>

  Deletes a transaction by the index the tx command displays.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to delete from, defaults to the current one")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	i, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing index: %v\n", err)
		return subcommands.ExitUsageError
	}

	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fund, err := pickFund(state, c.fund)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(fmt.Sprintf("Delete transaction %d of %s?", i, fund.Label())) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitFailure
	}
	if err := fund.DeleteTransaction(i); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %d of %s\n", i, fund.Label())
	return subcommands.ExitSuccess
}

// pickFund resolves the -f flag: the named fund, or the current one.
func pickFund(state *fundtrack.State, idOrCode string) (*fundtrack.Fund, error) {
	if idOrCode == "" {
		return state.CurrentFund()
	}
	return state.Fund(idOrCode)
}
