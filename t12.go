package propfin

import (
	"encoding/json"
	"fmt"
)

// t12Width is the fixed number of monthly slots in a trailing-twelve report.
const t12Width = 12

// T12Row is one month-sliced account row as the export produces it:
// Slice00 is the oldest month of the window, Slice11 the newest. Slices are
// display-formatted strings with the usual placeholders.
type T12Row struct {
	AccountCode string
	AccountName string
	Slices      [t12Width]string

	Extra map[string]json.RawMessage
}

func (r *T12Row) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	str := func(key string) string {
		var s string
		if v, ok := raw[key]; ok {
			_ = json.Unmarshal(v, &s)
		}
		return s
	}
	r.AccountCode = str("AccountCode")
	r.AccountName = str("AccountName")
	known := map[string]bool{"AccountCode": true, "AccountName": true}
	for i := 0; i < t12Width; i++ {
		key := fmt.Sprintf("Slice%02d", i)
		r.Slices[i] = str(key)
		known[key] = true
	}
	if r.AccountName == "" {
		return fmt.Errorf("t12 row without AccountName: %s", string(b))
	}
	for k, v := range raw {
		if known[k] {
			continue
		}
		if r.Extra == nil {
			r.Extra = make(map[string]json.RawMessage)
		}
		r.Extra[k] = v
	}
	return nil
}

// AccountSeries is the 12-wide monthly series of one account.
type AccountSeries struct {
	AccountCode    string          `json:"accountCode,omitempty"`
	AccountName    string          `json:"accountName"`
	Category       AccountCategory `json:"-"`
	MonthlyAmounts []Money         `json:"monthlyAmounts"` // always length 12
	Total          Money           `json:"total"`
}

// T12Totals carries the portfolio-level monthly totals. For every slot m,
// NetIncome[m] = Revenue[m] − Expenses[m].
type T12Totals struct {
	Revenue   []Money `json:"revenue"`
	Expenses  []Money `json:"expenses"`
	NetIncome []Money `json:"netIncome"`
}

// T12Report is the canonical trailing-twelve-month view (T12Data shape).
type T12Report struct {
	Months   []string        `json:"months"` // 12 column labels, oldest first
	Accounts []AccountSeries `json:"accounts"`
	Totals   T12Totals       `json:"totals"`
}

// NewT12Report builds the trailing-twelve series ending at 'end' from
// month-sliced export rows. Months that have not elapsed yet relative to
// 'now' are zero-filled, never interpolated and never NaN: a window ending
// in the future reports 0 for every month past the current one, whatever
// the source slices contain.
func NewT12Report(rows []T12Row, end, now Month) *T12Report {
	window := MonthsEnding(end, t12Width)

	months := make([]string, t12Width)
	elapsed := make([]bool, t12Width)
	for i, m := range window {
		months[i] = m.Label()
		elapsed[i] = !m.After(now)
	}

	totals := T12Totals{
		Revenue:   make([]Money, t12Width),
		Expenses:  make([]Money, t12Width),
		NetIncome: make([]Money, t12Width),
	}

	accounts := make([]AccountSeries, 0, len(rows))
	for _, row := range rows {
		if _, ok := sourceTotalLabel(row.AccountName); ok {
			// the T12 export repeats the statement subtotals as rows;
			// the monthly totals are resynthesized below instead.
			continue
		}
		series := AccountSeries{
			AccountCode:    row.AccountCode,
			AccountName:    row.AccountName,
			Category:       Classify(row.AccountCode, row.AccountName),
			MonthlyAmounts: make([]Money, t12Width),
		}
		for i := 0; i < t12Width; i++ {
			if !elapsed[i] {
				continue // zero-fill, slot stays M(0)
			}
			amt := ParseCurrency(row.Slices[i])
			series.MonthlyAmounts[i] = amt
			series.Total = series.Total.Add(amt)

			switch {
			case series.Category.IsExpense():
				totals.Expenses[i] = totals.Expenses[i].Add(amt.Abs())
			case series.Category == Revenue, series.Category == Unclassified:
				totals.Revenue[i] = totals.Revenue[i].Add(amt)
			}
		}
		accounts = append(accounts, series)
	}

	for i := 0; i < t12Width; i++ {
		totals.NetIncome[i] = totals.Revenue[i].Sub(totals.Expenses[i])
	}

	return &T12Report{Months: months, Accounts: accounts, Totals: totals}
}

// DecodeT12Rows parses a JSON array of month-sliced export rows.
func DecodeT12Rows(data []byte) ([]T12Row, error) {
	var rows []T12Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding t12 rows: %w", err)
	}
	return rows, nil
}
