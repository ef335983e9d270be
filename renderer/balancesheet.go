package renderer

import "github.com/parkrow/propfin"

// BalanceSheetMarkdown renders a balance sheet.
func BalanceSheetMarkdown(report *propfin.BalanceSheetReport, propertyID string, period propfin.Month) string {
	r := newRenderer()
	r.Printf("# Balance Sheet — %s — %s\n\n", propertyID, period.Label())

	r.renderSection("Current Assets", report.Assets["current"])
	r.renderSection("Fixed Assets", report.Assets["fixed"])
	r.renderSection("Current Liabilities", report.Liabilities["current"])
	r.renderSection("Long-Term Liabilities", report.Liabilities["longTerm"])
	r.renderSection("Equity", report.Equity)

	r.Printf("## Position\n\n")
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| Total Assets | %s |\n", report.TotalAssets())
	r.Printf("| Total Liabilities | %s |\n", report.TotalLiabilities())
	r.Printf("| Owner Equity | %s |\n", report.OwnerEquity())
	r.Printf("| LTV | %s |\n", report.LTV())
	r.Printf("\n")
	return r.String()
}
