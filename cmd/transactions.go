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

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	raw bool
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list the ledger rows per classifier category" }
func (*transactionsCmd) Usage() string {
	return `trc transactions [-raw]

  Classifies the ledger and lists every row under its category (trades per
  symbol, dividends, cash infusions, expenses), for auditing the
  classification before trusting the report.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print plain markdown instead of rendering for the terminal")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := ReadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger from %q: %v\n", *ledgerDir, err)
		return subcommands.ExitFailure
	}

	md := renderer.TransactionsMarkdown(taxreport.Classify(ledger))
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
