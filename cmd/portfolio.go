package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/parkrow/propfin"
	"github.com/parkrow/propfin/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	asJSON bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the portfolio roll-up and data quality" }
func (*portfolioCmd) Usage() string {
	return `pfd portfolio [-json]

  Validates every property record, resolves fallbacks for the incomplete
  ones, and renders the portfolio aggregates: total revenue, total NOI
  and the average cap rate.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Emit the roll-up as JSON instead of markdown.")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := ExportClient().Investments(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching investments: %v\n", err)
		return subcommands.ExitFailure
	}

	pv := propfin.NewPortfolioValidation(ctx, records, Fallback())

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pv); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding roll-up: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PortfolioMarkdown(pv))
	return subcommands.ExitSuccess
}
