package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/taxreport"
	"github.com/etnz/taxreport/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	raw bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute and display the tax report" }
func (*reportCmd) Usage() string {
	return `trc report [-raw]

  Reads the bank CSV export, classifies every row, matches stock trades
  with FIFO, and displays the resulting tax report. The run aborts if one
  of the consistency checks fails.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print plain markdown instead of rendering for the terminal")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	md := renderer.TaxReportMarkdown(report)
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
