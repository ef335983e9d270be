package renderer

import (
	"fmt"
	"io"

	"github.com/parkrow/propfin"
)

// CashFlowMarkdown renders a cash-flow statement.
func CashFlowMarkdown(report *propfin.CashFlowReport, propertyID string, period propfin.Month) string {
	r := newRenderer()
	r.Printf("# Cash Flow — %s — %s\n\n", propertyID, period.Label())

	r.renderSection("Operating Activities", report.OperatingActivities)
	r.renderSection("Investing Activities", report.InvestingActivities)
	r.renderSection("Financing Activities", report.FinancingActivities)

	r.Printf("## Summary\n\n")
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Net Cash Flow | %s |\n", report.NetCashFlow)
	ConditionalBlock(r, func(w io.Writer) bool {
		fmt.Fprintf(w, "| Cash at Beginning | %s |\n", report.CashAtBeginning)
		fmt.Fprintf(w, "| Cash at End | %s |\n", report.CashAtEnd)
		return !report.CashAtBeginning.IsZero() || !report.CashAtEnd.IsZero()
	})
	r.Printf("\n")
	return r.String()
}
