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

// propertyCmd holds the flags for the 'property' subcommand.
type propertyCmd struct {
	property string
}

func (*propertyCmd) Name() string     { return "property" }
func (*propertyCmd) Synopsis() string { return "display one property's financials and data quality" }
func (*propertyCmd) Usage() string {
	return `pfd property -p <property>

  Validates the property's record in the investments export. Complete
  records report authoritative figures; incomplete ones go through the
  fallback chain (live rent roll, then static table) and are tagged
  "calculated".
`
}

func (c *propertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.property, "p", "", "Property id to report on.")
}

func (c *propertyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" {
		fmt.Fprintln(os.Stderr, "Error: -p <property> is required")
		return subcommands.ExitUsageError
	}

	records, err := ExportClient().Investments(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching investments: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, rec := range records {
		if rec.AssetID != c.property {
			continue
		}
		v := propfin.ValidateProperty(rec)
		if v.IsComplete {
			fin := propfin.FinancialsFromRecord(rec, v)
			printMarkdown(renderer.PropertyMarkdown(&fin))
			return subcommands.ExitSuccess
		}
		if fin := Fallback().CalculatedFinancials(ctx, c.property, propfin.ParseCurrency(rec.PurchasePrice)); fin != nil {
			fin.MissingFields = v.MissingFields
			printMarkdown(renderer.PropertyMarkdown(fin))
			return subcommands.ExitSuccess
		}
		printMarkdown(renderer.NoPropertyDataMarkdown(c.property))
		return subcommands.ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: property %q is not in the investments export\n", c.property)
	return subcommands.ExitFailure
}
