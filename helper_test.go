package propfin

// USD is a helper for tests to create money from const
func USD(v float64) Money { return M(v) }

// item is a helper for tests to create a raw ledger row with a display
// amount used for both the period and balance columns.
func item(code, name, amount string) LedgerLineItem {
	return LedgerLineItem{AccountCode: code, AccountName: name, SelectedPeriod: amount, Balance: amount}
}
