package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/parkrow/propfin"
)

// PortfolioMarkdown renders the portfolio roll-up: the aggregate figures,
// then each bucket.
func PortfolioMarkdown(pv *propfin.PortfolioValidation) string {
	r := newRenderer()
	r.Printf("# Portfolio Health\n\n")
	r.Printf("%d properties: %d complete, %d calculated, %d incomplete.\n\n",
		pv.TotalProperties, len(pv.Complete), len(pv.Calculated), len(pv.Incomplete))

	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Total Revenue | %s |\n", pv.AggregatedFinancials.TotalRevenue)
	r.Printf("| Total NOI | %s |\n", pv.AggregatedFinancials.TotalNOI)
	r.Printf("| Average Cap Rate | %s |\n", pv.AggregatedFinancials.AverageCapRate)
	r.Printf("\n")

	r.renderBucket("Complete", pv.Complete)
	r.renderBucket("Calculated", pv.Calculated)

	ConditionalBlock(r, func(w io.Writer) bool {
		fmt.Fprintf(w, "## Incomplete\n\n")
		for _, v := range pv.Incomplete {
			fmt.Fprintf(w, "- %s: missing %s (grade %s)\n",
				v.PropertyID, strings.Join(v.MissingFields, ", "), v.Grade)
		}
		fmt.Fprintf(w, "\n")
		return len(pv.Incomplete) > 0
	})
	return r.String()
}

func (r *mdRenderer) renderBucket(title string, all []propfin.PropertyFinancials) {
	ConditionalBlock(r, func(w io.Writer) bool {
		fmt.Fprintf(w, "## %s\n\n", title)
		fmt.Fprintf(w, "| Property | Annual Revenue | NOI | Cap Rate | Source |\n")
		fmt.Fprintf(w, "|:---|---:|---:|---:|:---|\n")
		for _, f := range all {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				f.AssetName, f.AnnualRevenue, f.EstimatedNOI, f.EstimatedCapRate, f.DataSource)
		}
		fmt.Fprintf(w, "\n")
		return len(all) > 0
	})
}
