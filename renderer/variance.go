package renderer

import (
	"fmt"
	"io"

	"github.com/parkrow/propfin"
)

// VarianceMarkdown renders a period-over-period variance report. When no
// previous period was available it says so instead of rendering an empty
// table.
func VarianceMarkdown(report *propfin.VarianceReport, propertyID string, period propfin.Month) string {
	r := newRenderer()
	r.Printf("# Variance — %s — %s vs %s\n\n", propertyID, period.Label(), period.Add(-1).Label())

	if report.NoComparison {
		r.Printf("No comparison available: the previous period could not be fetched.\n")
		return r.String()
	}

	r.Printf("| Category | Current | Previous | Variance | %% | Status |\n")
	r.Printf("|:---|---:|---:|---:|---:|:---|\n")
	for _, rec := range report.Records {
		r.Printf("| %s | %s | %s | %s | %s | %s |\n",
			rec.Category, rec.CurrentPeriod, rec.PreviousPeriod,
			rec.Variance.SignedString(), rec.VariancePercent.SignedString(), rec.Status)
	}
	r.Printf("\n")

	ConditionalBlock(r, func(w io.Writer) bool {
		alerts := report.Alerts()
		fmt.Fprintf(w, "## Needs Attention\n\n")
		for _, rec := range alerts {
			fmt.Fprintf(w, "- **%s**: %s is %s vs %s (%s)\n",
				rec.Status, rec.Category, rec.CurrentPeriod, rec.PreviousPeriod,
				rec.VariancePercent.SignedString())
		}
		fmt.Fprintf(w, "\n")
		return len(alerts) > 0
	})
	return r.String()
}
