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

// varianceCmd holds the flags for the 'variance' subcommand.
type varianceCmd struct {
	property string
	period   string
}

func (*varianceCmd) Name() string     { return "variance" }
func (*varianceCmd) Synopsis() string { return "compare a property's expenses against the previous month" }
func (*varianceCmd) Usage() string {
	return `pfd variance -p <property> [-d <period>]

  Fetches the period and its predecessor, aggregates by category, and
  flags the categories whose change exceeds their configured thresholds.
  When the previous period cannot be fetched the current period still
  renders, with "no comparison available".
`
}

func (c *varianceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id to report on.")
	f.StringVar(&c.period, "d", propfin.ThisMonth().String(), "Period to compare, formatted YYYY-MM.")
}

func (c *varianceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property> is required")
		return subcommands.ExitUsageError
	}
	period, err := propfin.ParseMonth(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	cur, prev, err := ExportClient().LineItemPeriods(ctx, "cash_flow", c.property, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching periods: %v\n", err)
		return subcommands.ExitFailure
	}

	report := propfin.NewVarianceReport(cur, prev)
	printMarkdown(renderer.VarianceMarkdown(report, c.property, period))

	return subcommands.ExitSuccess
}
