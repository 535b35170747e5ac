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

// --- Update Price Command ---

type updatePriceCmd struct {
	date string
	fund string
}

func (*updatePriceCmd) Name() string     { return "update-price" }
func (*updatePriceCmd) Synopsis() string { return "record a price observation for a fund" }
func (*updatePriceCmd) Usage() string {
	return `update-price [-f <id-or-code>] [-d <date>] <price>

  Records a price for the fund and makes it the current price. Recording a
  price for a day that already has one overwrites it.
`
}

func (c *updatePriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Observation date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.fund, "f", "", "Fund to update, defaults to the current one")
}

func (c *updatePriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}
	day := fundtrack.Date{}
	if c.date != "" {
		day, err = fundtrack.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
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
	if err := fund.SetPrice(day, price); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s price is now %s\n", fund.Label(), fundtrack.M(price, currency()))
	return subcommands.ExitSuccess
}

// --- Fetch Price Command ---

type fetchPriceCmd struct {
	fund string
	url  string
	path string
}

func (*fetchPriceCmd) Name() string     { return "fetch-price" }
func (*fetchPriceCmd) Synopsis() string { return "fetch today's price from a remote JSON endpoint" }
func (*fetchPriceCmd) Usage() string {
	return `fetch-price -url <address> -path <jsonpath> [-f <id-or-code>]

  Fetches the fund price from a JSON endpoint and records it for today.
  The jsonpath expression selects the price inside the response, for
  example "$.data.nav".
`
}

func (c *fetchPriceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to update, defaults to the current one")
	f.StringVar(&c.url, "url", "", "Address of the JSON endpoint")
	f.StringVar(&c.path, "path", "", "jsonpath expression selecting the price")
}

func (c *fetchPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.url == "" || c.path == "" {
		f.Usage()
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

	price, err := fundtrack.FetchPrice(fundtrack.Daily(), c.url, c.path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := fund.SetPrice(fundtrack.Today(), price); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s price is now %s\n", fund.Label(), fundtrack.M(price, currency()))
	return subcommands.ExitSuccess
}

// --- History Command ---

type historyCmd struct {
	fund string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the price history of a fund" }
func (*historyCmd) Usage() string {
	return `history [-f <id-or-code>]

  Displays the price history of the fund, most recent first, with the
  day-over-day change and trend of each point.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to report on, defaults to the current one")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.HistoryMarkdown(fund, currency()))
	return subcommands.ExitSuccess
}
