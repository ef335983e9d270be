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

// cashFlowCmd holds the flags for the 'cashflow' subcommand.
type cashFlowCmd struct {
	property string
	period   string
}

func (*cashFlowCmd) Name() string     { return "cashflow" }
func (*cashFlowCmd) Synopsis() string { return "display a property's cash-flow statement" }
func (*cashFlowCmd) Usage() string {
	return `pfd cashflow -p <property> [-d <period>]

  Fetches the raw cash-flow export for a property and renders the
  classified statement: operating, investing and financing activities.
`
}

func (c *cashFlowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id to report on.")
	f.StringVar(&c.period, "d", propfin.ThisMonth().String(), "Period to report on, formatted YYYY-MM.")
}

func (c *cashFlowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property> is required")
		return subcommands.ExitUsageError
	}
	period, err := propfin.ParseMonth(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	items, err := ExportClient().LineItems(ctx, "cash_flow", c.property, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching cash flow: %v\n", err)
		return subcommands.ExitFailure
	}

	report := propfin.NewCashFlowReport(items)
	printMarkdown(renderer.CashFlowMarkdown(report, c.property, period))

	return subcommands.ExitSuccess
}
