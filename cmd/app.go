// Package cmd implements the CLI application to track investment funds.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/okasha/fundtrack"
)

// Commands is the full list of subcommands. A main package registers them
// on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addFundCmd{},
	&deleteFundCmd{},
	&fundsCmd{},
	&selectCmd{},

	&buyCmd{},
	&sellCmd{},
	&txCmd{},
	&deleteTxCmd{},

	&updatePriceCmd{},
	&fetchPriceCmd{},
	&historyCmd{},

	&summaryCmd{},
	&statsCmd{},
	&chartCmd{},

	&exportCmd{},
	&importCmd{},
	&clearCmd{},

	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", fundtrack.DefaultDataFile(), "Path to the funds data file")
var displayCurrency = flag.String("currency", "EGP", "Display currency for amounts")
var assumeYes = flag.Bool("y", false, "Assume yes on confirmation prompts")

// DecodeState loads the funds data file, falling back to the sample dataset
// when it does not exist yet.
func DecodeState() (*fundtrack.State, error) {
	return fundtrack.LoadState(*dataFile)
}

// EncodeState saves the state back to the funds data file.
func EncodeState(s *fundtrack.State) error {
	return fundtrack.SaveState(*dataFile, s)
}

func currency() string { return *displayCurrency }

// confirm asks the user a yes/no question on the terminal. The -y flag
// answers yes without asking.
func confirm(question string) bool {
	if *assumeYes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// printMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is still printed, the report matters more than the styling.
func printMarkdown(text string) {
	out, err := glamour.Render(text, "auto")
	if err != nil {
		fmt.Print(text)
		return
	}
	fmt.Print(out)
}
