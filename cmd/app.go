// Package cmd implements the CLI application to compute tax reports from a
// bank account export.
package cmd

import (
	"flag"

	"github.com/etnz/taxreport"
	"github.com/etnz/taxreport/nordea"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&reportCmd{}, "reports")
	c.Register(&checkCmd{}, "reports")
	c.Register(&transactionsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerDir = flag.String("ledger-dir", ".", "Directory containing the bank CSV export files")

// ReadLedger loads the bank export from the app ledger directory.
func ReadLedger() (*taxreport.Ledger, error) {
	return nordea.ReadDir(*ledgerDir)
}
