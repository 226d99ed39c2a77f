package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/taxreport/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Shell completion: a no-op unless invoked by the completion machinery.
	complete.Complete("trc", &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"report":       {Flags: map[string]complete.Predictor{"raw": nil}},
			"transactions": {Flags: map[string]complete.Predictor{"raw": nil}},
			"check":        {},
			"topic":        {Args: predict.Set{"readme", "report", "fifo", "format", "*"}},
			"assist":       {},
		},
	})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
