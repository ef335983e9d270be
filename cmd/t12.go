package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/parkrow/propfin"
	"github.com/parkrow/propfin/renderer"
)

// t12Cmd holds the flags for the 't12' subcommand.
type t12Cmd struct {
	property string
	end      string
}

func (*t12Cmd) Name() string     { return "t12" }
func (*t12Cmd) Synopsis() string { return "display a property's trailing-twelve-month report" }
func (*t12Cmd) Usage() string {
	return `pfd t12 -p <property> [-to <period>]

  Fetches the month-sliced export rows and renders the twelve months
  ending at the given period, oldest first. Months that have not elapsed
  yet are shown as zero.
`
}

func (c *t12Cmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id to report on.")
	f.StringVar(&c.end, "to", propfin.ThisMonth().String(), "Last month of the window, formatted YYYY-MM.")
}

func (c *t12Cmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property> is required")
		return subcommands.ExitUsageError
	}
	end, err := propfin.ParseMonth(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	rows, err := ExportClient().T12Rows(ctx, c.property, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching t12 rows: %v\n", err)
		return subcommands.ExitFailure
	}

	report := propfin.NewT12Report(rows, end, propfin.ThisMonth())
	printMarkdown(renderer.T12Markdown(report, c.property))

	return subcommands.ExitSuccess
}
