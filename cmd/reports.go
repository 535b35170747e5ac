package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/okasha/fundtrack"
	"github.com/okasha/fundtrack/renderer"
)

// --- Summary Command ---

type summaryCmd struct {
	fund string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the position and recommendation of a fund" }
func (*summaryCmd) Usage() string {
	return `summary [-f <id-or-code>]

  Displays the position of the fund: units, invested capital, value, profit,
  return and the derived recommendation.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.fund, "f", "", "Fund to report on, defaults to the current one")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.SummaryMarkdown(fund, currency()))
	return subcommands.ExitSuccess
}

// --- Stats Command ---

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display statistics across all funds" }
func (*statsCmd) Usage() string {
	return `stats

  Displays aggregate statistics: totals, best and worst performers, monthly
  net amounts and the portfolio value distribution.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatsMarkdown(state, currency()))
	return subcommands.ExitSuccess
}

// --- Chart Command ---

type chartCmd struct {
	kind   string
	fund   string
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a chart to a PNG file" }
func (*chartCmd) Usage() string {
	return `chart -k <kind> [-f <id-or-code>] [-o <file>]

  Renders a chart as a PNG image. Kinds:
    price        price history of one fund (needs at least 2 points)
    distribution portfolio value split per fund
    monthly      net transacted amounts per month
    returns      return percentage per fund
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "price", "Chart kind (price, distribution, monthly, returns)")
	f.StringVar(&c.fund, "f", "", "Fund to chart, defaults to the current one (price kind only)")
	f.StringVar(&c.output, "o", "chart.png", "Output PNG file")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var png []byte
	switch c.kind {
	case "price":
		fund, err := pickFund(state, c.fund)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		png, err = fundtrack.RenderPriceChart(fund)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case "distribution":
		png, err = fundtrack.RenderDistributionChart(state)
	case "monthly":
		png, err = fundtrack.RenderMonthlyChart(state)
	case "returns":
		png, err = fundtrack.RenderReturnChart(state)
	default:
		fmt.Fprintf(os.Stderr, "Unknown chart kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(c.output, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", c.output)
	return subcommands.ExitSuccess
}
