package propfin

// StatementSection groups the classified line items of one statement
// section with their signed total. Total equals the signed sum of
// Items[].Amount unless the export carried its own labeled subtotal row for
// the section, in which case that figure is trusted instead: the source's
// subtotal may include adjustments classification cannot see. Both paths
// agree whenever the source labeling is internally consistent.
type StatementSection struct {
	Items []ClassifiedLineItem `json:"items"`
	Total Money                `json:"total"`
}

func newSection(items []ClassifiedLineItem, sourceTotal *Money) StatementSection {
	s := StatementSection{Items: items}
	if sourceTotal != nil {
		s.Total = *sourceTotal
		return s
	}
	for _, it := range items {
		s.Total = s.Total.Add(it.Amount)
	}
	return s
}

// CashFlowReport is the canonical cash-flow statement consumed by the
// presentation layer (ProcessedCashFlowData shape).
type CashFlowReport struct {
	OperatingActivities StatementSection `json:"operatingActivities"`
	InvestingActivities StatementSection `json:"investingActivities"`
	FinancingActivities StatementSection `json:"financingActivities"`
	NetCashFlow         Money            `json:"netCashFlow"`
	CashAtBeginning     Money            `json:"cashAtBeginning"`
	CashAtEnd           Money            `json:"cashAtEnd"`
}

// cashFlowSection routes a category to its statement section.
//
// Revenue, expenses and working-capital movements are operating; fixed
// assets are investing; long-term debt and equity are financing.
// Unclassified rows stay in operating so they are never silently dropped
// from the statement total.
func cashFlowSection(c AccountCategory) int {
	switch {
	case c == FixedAsset:
		return 1 // investing
	case c == LongTermLiability || c == Equity:
		return 2 // financing
	default:
		return 0 // operating
	}
}

// signedCashAmount applies the sign convention "inflow positive" to a
// classified item. Rows the export tagged IN/OUT already carry the right
// sign from Amount(); untagged expense rows and fixed-asset purchases are
// reported by the ledger as positive display strings and are flipped here.
func signedCashAmount(li LedgerLineItem, c AccountCategory) Money {
	m := li.Amount()
	if li.CashFlowType != "" {
		return m
	}
	if c.IsExpense() || c == FixedAsset {
		return m.Abs().Neg()
	}
	return m
}

// NewCashFlowReport aggregates raw ledger rows for one period into the
// canonical cash-flow statement. It is pure and idempotent: the same rows
// always produce a deep-equal report.
func NewCashFlowReport(items []LedgerLineItem) *CashFlowReport {
	sections := [3][]ClassifiedLineItem{}
	sourceTotals := make(map[string]Money)
	for _, li := range items {
		if label, ok := sourceTotalLabel(li.AccountName); ok {
			sourceTotals[label] = li.Amount()
			continue
		}
		it := ClassifiedLineItem{
			AccountCode: li.AccountCode,
			AccountName: li.AccountName,
			Category:    Classify(li.AccountCode, li.AccountName),
		}
		it.Amount = signedCashAmount(li, it.Category)
		s := cashFlowSection(it.Category)
		sections[s] = append(sections[s], it)
	}

	report := &CashFlowReport{
		OperatingActivities: newSection(sections[0], operatingTotal(sourceTotals)),
		InvestingActivities: newSection(sections[1], lookupTotal(sourceTotals, "total investing activities")),
		FinancingActivities: newSection(sections[2], lookupTotal(sourceTotals, "total financing activities")),
	}
	report.NetCashFlow = report.OperatingActivities.Total.
		Add(report.InvestingActivities.Total).
		Add(report.FinancingActivities.Total)

	// carried through unchanged from the source when present.
	if m := lookupTotal(sourceTotals, "cash at beginning of period", "cash at beginning"); m != nil {
		report.CashAtBeginning = *m
	}
	if m := lookupTotal(sourceTotals, "cash at end of period", "cash at end"); m != nil {
		report.CashAtEnd = *m
	}
	return report
}

// operatingTotal resolves the labeled source total of the operating
// section. The export writes either a whole-section label or a pair of
// income/expense subtotals; in the paired form the section total is
// income − expense. An income subtotal alone covers only half the section
// and is never trusted as its total.
func operatingTotal(sourceTotals map[string]Money) *Money {
	if m := lookupTotal(sourceTotals, "total operating activities", "net operating income"); m != nil {
		return m
	}
	income := lookupTotal(sourceTotals, "total operating income", "total income")
	expense := lookupTotal(sourceTotals, "total operating expense", "total operating expenses", "total expense", "total expenses")
	if income != nil && expense != nil {
		// expense subtotals are printed as positive display strings
		m := income.Sub(expense.Abs())
		return &m
	}
	return nil
}

// lookupTotal returns the first labeled source total present among labels.
func lookupTotal(sourceTotals map[string]Money, labels ...string) *Money {
	for _, l := range labels {
		if m, ok := sourceTotals[l]; ok {
			return &m
		}
	}
	return nil
}

// NetOperatingIncome computes revenue minus expenses over classified items.
// Unclassified rows count as revenue adjustments so that total revenue plus
// total expense always reconciles to NOI exactly.
func NetOperatingIncome(items []ClassifiedLineItem) Money {
	var noi Money
	for _, it := range items {
		if it.Category.IsExpense() {
			noi = noi.Sub(it.Amount.Abs())
			continue
		}
		if it.Category == Revenue || it.Category == Unclassified {
			noi = noi.Add(it.Amount)
		}
	}
	return noi
}
