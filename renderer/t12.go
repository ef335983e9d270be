package renderer

import (
	"strings"

	"github.com/parkrow/propfin"
)

// T12Markdown renders the trailing-twelve-month report. One row per account,
// one column per month, totals at the bottom.
func T12Markdown(report *propfin.T12Report, propertyID string) string {
	r := newRenderer()
	r.Printf("# Trailing Twelve Months — %s\n\n", propertyID)

	r.Printf("| Account | %s | Total |\n", strings.Join(report.Months, " | "))
	r.Printf("|:---%s|---:|\n", strings.Repeat("|---:", len(report.Months)))
	for _, series := range report.Accounts {
		r.Printf("| %s ", series.AccountName)
		for _, amt := range series.MonthlyAmounts {
			r.Printf("| %s ", amt)
		}
		r.Printf("| %s |\n", series.Total)
	}
	r.Printf("\n")

	r.Printf("## Totals\n\n")
	r.Printf("| | %s |\n", strings.Join(report.Months, " | "))
	r.Printf("|:---%s|\n", strings.Repeat("|---:", len(report.Months)))
	r.renderTotalRow("Revenue", report.Totals.Revenue)
	r.renderTotalRow("Expenses", report.Totals.Expenses)
	r.renderTotalRow("Net Income", report.Totals.NetIncome)
	r.Printf("\n")
	return r.String()
}

func (r *mdRenderer) renderTotalRow(label string, amounts []propfin.Money) {
	r.Printf("| %s ", label)
	for _, amt := range amounts {
		r.Printf("| %s ", amt)
	}
	r.Printf("|\n")
}
