package propfin

// BalanceSheetReport is the canonical balance sheet consumed by the
// presentation layer (BalanceSheetData shape): keyed section maps plus
// derived covenant figures.
type BalanceSheetReport struct {
	Assets      map[string]StatementSection `json:"assets"`      // "current", "fixed"
	Liabilities map[string]StatementSection `json:"liabilities"` // "current", "longTerm"
	Equity      StatementSection            `json:"equity"`
}

// NewBalanceSheetReport aggregates raw ledger rows into the canonical
// balance sheet. Labeled source totals ("Total Assets", "Total
// Liabilities", "Total Equity") are trusted over synthesized sums when the
// export carries them.
func NewBalanceSheetReport(items []LedgerLineItem) *BalanceSheetReport {
	classified, sourceTotals := ClassifyItems(items, LedgerLineItem.BalanceAmount)

	buckets := make(map[AccountCategory][]ClassifiedLineItem)
	for _, it := range classified {
		switch {
		case it.Category.IsAsset(), it.Category.IsLiability(), it.Category == Equity:
			buckets[it.Category] = append(buckets[it.Category], it)
		default:
			// P&L rows in a balance-sheet export roll into equity as
			// current-period earnings.
			buckets[Equity] = append(buckets[Equity], it)
		}
	}

	report := &BalanceSheetReport{
		Assets: map[string]StatementSection{
			"current": newSection(buckets[CurrentAsset], lookupTotal(sourceTotals, "total current assets")),
			"fixed":   newSection(buckets[FixedAsset], lookupTotal(sourceTotals, "total fixed assets")),
		},
		Liabilities: map[string]StatementSection{
			"current":  newSection(buckets[CurrentLiability], lookupTotal(sourceTotals, "total current liabilities")),
			"longTerm": newSection(buckets[LongTermLiability], lookupTotal(sourceTotals, "total long term liabilities", "total long-term liabilities")),
		},
		Equity: newSection(buckets[Equity], lookupTotal(sourceTotals, "total equity", "total capital")),
	}

	// Section-level source totals override the bucket split sums too.
	if m := lookupTotal(sourceTotals, "total assets"); m != nil {
		report.Assets["total"] = StatementSection{Total: *m}
	}
	if m := lookupTotal(sourceTotals, "total liabilities"); m != nil {
		report.Liabilities["total"] = StatementSection{Total: *m}
	}
	return report
}

// TotalAssets returns the export's own "Total Assets" figure when present,
// otherwise the sum of the current and fixed sections.
func (r *BalanceSheetReport) TotalAssets() Money {
	if s, ok := r.Assets["total"]; ok {
		return s.Total
	}
	return r.Assets["current"].Total.Add(r.Assets["fixed"].Total)
}

// TotalLiabilities mirrors TotalAssets for the liability side.
func (r *BalanceSheetReport) TotalLiabilities() Money {
	if s, ok := r.Liabilities["total"]; ok {
		return s.Total
	}
	return r.Liabilities["current"].Total.Add(r.Liabilities["longTerm"].Total)
}

// OwnerEquity returns the equity section total, derived as
// assets − liabilities when the export carried no explicit equity rows.
func (r *BalanceSheetReport) OwnerEquity() Money {
	if len(r.Equity.Items) > 0 || !r.Equity.Total.IsZero() {
		return r.Equity.Total
	}
	return r.TotalAssets().Sub(r.TotalLiabilities())
}

// LTV is the loan-to-value ratio (total liabilities over total assets) used
// by covenant displays. Zero assets yields 0, never a division error.
func (r *BalanceSheetReport) LTV() Percent {
	return r.TotalLiabilities().PercentOf(r.TotalAssets())
}
