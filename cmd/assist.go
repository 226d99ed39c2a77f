package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/taxreport"
	"github.com/etnz/taxreport/agent"
	"github.com/etnz/taxreport/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI accountant a question about the report" }
func (*assistCmd) Usage() string {
	return `trc assist <question>

  Computes the tax report and asks the Gemini-backed accountant the given
  question about it. Requires Gemini credentials in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "assist needs a question")
		return subcommands.ExitUsageError
	}
	question := strings.Join(f.Args(), " ")

	ledger, err := ReadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger from %q: %v\n", *ledgerDir, err)
		return subcommands.ExitFailure
	}
	report, err := taxreport.NewTaxReport(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing report: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	accountant := agent.NewAccountant()
	if err := accountant.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting the accountant:", err)
		return subcommands.ExitFailure
	}

	answer, err := accountant.Ask(ctx,
		&genai.Part{Text: renderer.TaxReportMarkdown(report)},
		&genai.Part{Text: question},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Accountant failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(answer)
	return subcommands.ExitSuccess
}
