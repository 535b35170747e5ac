package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/okasha/fundtrack"
	"github.com/okasha/fundtrack/renderer"
	"github.com/shopspring/decimal"
)

// --- Add Fund Command ---

type addFundCmd struct {
	name   string
	code   string
	price  string
	subFee float64
	redFee float64
}

func (*addFundCmd) Name() string     { return "add-fund" }
func (*addFundCmd) Synopsis() string { return "register a new fund and select it" }
func (*addFundCmd) Usage() string {
	return `add-fund -n <name> -c <code> -p <price> [-sub <fee%>] [-red <fee%>]

  Registers a new fund with its fee schedule and makes it the current fund.
`
}

func (c *addFundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Fund name")
	f.StringVar(&c.code, "c", "", "Fund code (short ticker-like identifier)")
	f.StringVar(&c.price, "p", "", "Current unit price")
	f.Float64Var(&c.subFee, "sub", 0, "Subscription fee in percent, charged on buys")
	f.Float64Var(&c.redFee, "red", 0, "Redemption fee in percent, charged on sells")
}

func (c *addFundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.code == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	fund, err := fundtrack.NewFund(c.name, c.code, price, decimal.NewFromFloat(c.subFee), decimal.NewFromFloat(c.redFee))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := state.AddFund(fund); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added and selected %s\n", fund.Label())
	return subcommands.ExitSuccess
}

// --- Delete Fund Command ---

type deleteFundCmd struct{}

func (*deleteFundCmd) Name() string     { return "delete-fund" }
func (*deleteFundCmd) Synopsis() string { return "delete a fund and its whole history" }
func (*deleteFundCmd) Usage() string {
	return `delete-fund <id-or-code>

  Deletes a fund with its ledger and price history. The last remaining fund
  cannot be deleted.
`
}

func (c *deleteFundCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteFundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fund, err := state.Fund(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(fmt.Sprintf("Delete %s with %d transactions?", fund.Label(), len(fund.Transactions))) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitFailure
	}
	if err := state.DeleteFund(f.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s\n", fund.Label())
	return subcommands.ExitSuccess
}

// --- Funds Command ---

type fundsCmd struct{}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list all funds with their position" }
func (*fundsCmd) Usage() string {
	return `funds

  Lists every fund with its current position, return and recommendation.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.FundsMarkdown(state, currency()))
	return subcommands.ExitSuccess
}

// --- Select Command ---

type selectCmd struct{}

func (*selectCmd) Name() string     { return "select" }
func (*selectCmd) Synopsis() string { return "make a fund the current one" }
func (*selectCmd) Usage() string {
	return `select <id-or-code>

  Makes a fund the current one. Commands that act on a single fund act on it.
`
}

func (c *selectCmd) SetFlags(f *flag.FlagSet) {}

func (c *selectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fund, err := state.SelectFund(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Selected %s\n", fund.Label())
	return subcommands.ExitSuccess
}
