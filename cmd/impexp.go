package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/okasha/fundtrack"
)

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all funds to a file" }
func (*exportCmd) Usage() string {
	return `export -o <file>

  Exports every fund. The format follows the file extension: .json keeps
  the full dataset, .csv and .xlsx flatten it to one row per transaction.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "funds.json", "Output file (.json, .csv or .xlsx)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating export file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch ext := strings.ToLower(filepath.Ext(c.output)); ext {
	case ".json":
		err = fundtrack.ExportJSON(out, state)
	case ".csv":
		err = fundtrack.ExportCSV(out, state)
	case ".xlsx":
		err = fundtrack.ExportXLSX(out, state)
	default:
		fmt.Fprintf(os.Stderr, "Unsupported export format %q, want .json, .csv or .xlsx\n", ext)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d funds to %s\n", len(state.Funds), c.output)
	return subcommands.ExitSuccess
}

// --- Import Command ---

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import funds from a file, replacing the current data" }
func (*importCmd) Usage() string {
	return `import <file>

  Imports funds from a .json, .csv or .xlsx file and replaces the current
  dataset with them. The file is fully parsed before anything is replaced,
  a malformed file leaves the data untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	in, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	funds, err := fundtrack.ImportFile(name, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !confirm(fmt.Sprintf("Replace the current data with %d imported funds?", len(funds))) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitFailure
	}

	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	state.Replace(funds)
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d funds from %s\n", len(funds), name)
	return subcommands.ExitSuccess
}

// --- Clear Command ---

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all funds and start over" }
func (*clearCmd) Usage() string {
	return `clear

  Deletes every fund, its ledger and price history. The next run starts
  from the sample dataset again.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !confirm(fmt.Sprintf("Delete all %d funds and their whole history?", len(state.Funds))) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitFailure
	}
	state.Clear()
	if err := EncodeState(state); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("All data cleared.")
	return subcommands.ExitSuccess
}
