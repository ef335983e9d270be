package propfin

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CashFlowDirection tags a line item the export already assigned to a cash
// movement direction.
type CashFlowDirection string

const (
	CashIn  CashFlowDirection = "IN"
	CashOut CashFlowDirection = "OUT"
)

// LedgerLineItem is one general-ledger row for one period, exactly as the
// accounting export produces it. Numeric fields are display-formatted
// strings ("$1,234.00", "($500.00)", "$-") and may be placeholders; only
// AccountName is guaranteed present.
//
// Fields the export sends that this engine has no schema for are preserved
// verbatim in Extra rather than dropped, so classification rules operate on
// stable guarantees while nothing is lost on round-trip.
type LedgerLineItem struct {
	AccountCode      string
	AccountName      string
	SelectedPeriod   string
	FiscalYearToDate string
	Balance          string
	CashFlowAmount   *float64
	CashFlowType     CashFlowDirection

	Extra map[string]json.RawMessage
}

// knownLineItemFields are the keys lifted out of the raw object; everything
// else lands in Extra.
var knownLineItemFields = map[string]bool{
	"AccountCode":      true,
	"AccountNumber":    true,
	"AccountName":      true,
	"SelectedPeriod":   true,
	"FiscalYearToDate": true,
	"Balance":          true,
	"CashFlowAmount":   true,
	"CashFlowType":     true,
}

func (li *LedgerLineItem) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	str := func(key string) string {
		var s string
		if v, ok := raw[key]; ok {
			// a non-string here is a malformed cell, treated as blank
			_ = json.Unmarshal(v, &s)
		}
		return s
	}

	li.AccountCode = str("AccountCode")
	if li.AccountCode == "" {
		// some export layouts use AccountNumber for the same column
		li.AccountCode = str("AccountNumber")
	}
	li.AccountName = str("AccountName")
	li.SelectedPeriod = str("SelectedPeriod")
	li.FiscalYearToDate = str("FiscalYearToDate")
	li.Balance = str("Balance")
	li.CashFlowType = CashFlowDirection(str("CashFlowType"))
	if v, ok := raw["CashFlowAmount"]; ok {
		var f float64
		if err := json.Unmarshal(v, &f); err == nil {
			li.CashFlowAmount = &f
		}
	}

	if li.AccountName == "" {
		return fmt.Errorf("ledger line item without AccountName: %s", string(b))
	}

	for k, v := range raw {
		if knownLineItemFields[k] {
			continue
		}
		if li.Extra == nil {
			li.Extra = make(map[string]json.RawMessage)
		}
		li.Extra[k] = v
	}
	return nil
}

// Amount returns the selected-period amount. When the export pre-computed a
// cash-flow amount for the row, that figure wins; otherwise the display
// string is parsed. OUT rows are negated so that within any section the
// sign convention is uniformly "inflow positive".
func (li LedgerLineItem) Amount() Money {
	var m Money
	if li.CashFlowAmount != nil {
		m = M(*li.CashFlowAmount)
	} else {
		m = ParseCurrency(li.SelectedPeriod)
	}
	if li.CashFlowType == CashOut {
		m = m.Abs().Neg()
	}
	return m
}

// BalanceAmount returns the balance column, used by the balance-sheet
// aggregator.
func (li LedgerLineItem) BalanceAmount() Money {
	if li.Balance != "" {
		return ParseCurrency(li.Balance)
	}
	return ParseCurrency(li.SelectedPeriod)
}

// ClassifiedLineItem is a line item after classification, carrying the
// resolved category and parsed amount.
type ClassifiedLineItem struct {
	AccountCode string          `json:"accountCode,omitempty"`
	AccountName string          `json:"accountName"`
	Category    AccountCategory `json:"-"`
	Amount      Money           `json:"amount"`
}

// ClassifyItems classifies raw rows using amount to extract each row's
// figure. Labeled source subtotal rows ("Total ...") are not classified as
// accounts; they are returned separately keyed by their normalized label so
// aggregators can prefer them over locally recomputed sums.
func ClassifyItems(items []LedgerLineItem, amount func(LedgerLineItem) Money) (classified []ClassifiedLineItem, sourceTotals map[string]Money) {
	classified = make([]ClassifiedLineItem, 0, len(items))
	sourceTotals = make(map[string]Money)
	for _, li := range items {
		if label, ok := sourceTotalLabel(li.AccountName); ok {
			sourceTotals[label] = amount(li)
			continue
		}
		classified = append(classified, ClassifiedLineItem{
			AccountCode: li.AccountCode,
			AccountName: li.AccountName,
			Category:    Classify(li.AccountCode, li.AccountName),
			Amount:      amount(li),
		})
	}
	return classified, sourceTotals
}

// netTotalLabels are the exact "net ..." subtotal rows the export writes.
// The prefix alone is not enough: "Net Metering Income" is a real account
// and must stay on the statement.
var netTotalLabels = map[string]bool{
	"net operating income": true,
	"net income":           true,
	"net cash flow":        true,
	"net change in cash":   true,
}

// sourceTotalLabel reports whether an account name is one of the export's
// own subtotal rows, returning its normalized label.
func sourceTotalLabel(name string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(lower, "total ") || strings.HasPrefix(lower, "cash at ") || netTotalLabels[lower] {
		return lower, true
	}
	return "", false
}

// DecodeLineItems parses a JSON array of raw ledger rows.
func DecodeLineItems(data []byte) ([]LedgerLineItem, error) {
	var items []LedgerLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding ledger line items: %w", err)
	}
	return items, nil
}
