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

// balanceSheetCmd holds the flags for the 'balance' subcommand.
type balanceSheetCmd struct {
	property string
	period   string
}

func (*balanceSheetCmd) Name() string     { return "balance" }
func (*balanceSheetCmd) Synopsis() string { return "display a property's balance sheet" }
func (*balanceSheetCmd) Usage() string {
	return `pfd balance -p <property> [-d <period>]

  Fetches the raw balance-sheet export for a property and renders the
  classified sections plus the derived equity and LTV figures.
`
}

func (c *balanceSheetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id to report on.")
	f.StringVar(&c.period, "d", propfin.ThisMonth().String(), "Period to report on, formatted YYYY-MM.")
}

func (c *balanceSheetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property> is required")
		return subcommands.ExitUsageError
	}
	period, err := propfin.ParseMonth(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	items, err := ExportClient().LineItems(ctx, "balance_sheet", c.property, period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching balance sheet: %v\n", err)
		return subcommands.ExitFailure
	}

	report := propfin.NewBalanceSheetReport(items)
	printMarkdown(renderer.BalanceSheetMarkdown(report, c.property, period))

	return subcommands.ExitSuccess
}
