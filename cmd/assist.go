package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/okasha/fundtrack/agent"
	"github.com/okasha/fundtrack/renderer"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }

func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }

func (*assistCmd) Usage() string {
	return `assist [question]:
  Start an interactive session with the AI assistant. The assistant sees the
  current portfolio and answers questions about it.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	state, err := DecodeState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	// the assistant grounds its answers on the reports the tool itself produces
	var report strings.Builder
	report.WriteString(renderer.FundsMarkdown(state, currency()))
	report.WriteString("\n")
	report.WriteString(renderer.StatsMarkdown(state, currency()))

	advisor := agent.NewAdvisor(report.String())
	a := agent.New(os.Stdout, os.Stdin, advisor)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
