package renderer

import (
	"strings"

	"github.com/parkrow/propfin"
)

// PropertyMarkdown renders one property's financials with their provenance.
func PropertyMarkdown(f *propfin.PropertyFinancials) string {
	r := newRenderer()
	r.Printf("# %s\n\n", f.AssetName)
	r.Printf("Source: %s (%s)\n\n", f.DataSource, f.DataCompleteness)

	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Purchase Price | %s |\n", f.PurchasePrice)
	r.Printf("| Monthly Revenue | %s |\n", f.MonthlyRevenue)
	r.Printf("| Annual Revenue | %s |\n", f.AnnualRevenue)
	r.Printf("| Occupied Units | %d |\n", f.OccupiedUnits)
	r.Printf("| Avg Rent / Unit | %s |\n", f.AvgRentPerUnit)
	r.Printf("| Estimated NOI | %s |\n", f.EstimatedNOI)
	r.Printf("| Cap Rate | %s |\n", f.EstimatedCapRate)
	r.Printf("\n")

	if len(f.MissingFields) > 0 {
		r.Printf("Missing from the source record: %s.\n\n", strings.Join(f.MissingFields, ", "))
	}
	return r.String()
}

// NoPropertyDataMarkdown is the explicit "no data" rendering for a property
// that exhausted the fallback chain.
func NoPropertyDataMarkdown(propertyID string) string {
	r := newRenderer()
	r.Printf("# Property %s\n\n", propertyID)
	r.Printf("No usable data: the record failed validation and no fallback source answered.\n")
	return r.String()
}
