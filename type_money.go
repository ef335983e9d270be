package propfin

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// reportingCurrency is the currency of every figure in the ledger export.
// The accounting system reports a single-entity book, always in USD.
const reportingCurrency = "USD"

// Money represents a monetary value with exact decimal arithmetic.
type Money struct {
	value decimal.Decimal // major unit value
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float32:
		return decimal.NewFromFloat32(n)
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt32(n)
	case int64:
		return decimal.NewFromInt(n)
	case decimal.Decimal:
		return n
	}
	panic("unsupported decimal source type")
}

// currency returns the reporting currency with its formatting metadata.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency.
	return *money.New(0, reportingCurrency).Currency()
}

// String formats the value the way the accounting exports display it,
// e.g. "$1,234.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the value with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money               { return Money{value: m.value.Abs()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulFloat scales the value, used for margin assumptions and per-unit math.
func (m Money) MulFloat(f float64) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(f))}
}

// MulInt scales the value by an integer factor (e.g. monthly to annual).
func (m Money) MulInt(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))}
}

// DivInt divides the value, used for per-unit averages. Returns zero Money
// when n is 0 so callers never need to guard.
func (m Money) DivInt(n int) Money {
	if n == 0 {
		return Money{}
	}
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))}
}

// PercentOf returns 100*m/n, or 0 when n is zero. This is the safe ratio
// used for cap rates and LTV where a zero denominator means "not available".
func (m Money) PercentOf(n Money) Percent {
	if n.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// AsFloat converts to float64 for display-only math. Aggregation must stay
// on the decimal value.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON emits a plain number rounded to the currency fraction, which
// is the contract shape the presentation layer consumes.
func (m Money) MarshalJSON() ([]byte, error) {
	rounded := m.value.Round(int32(m.currency().Fraction))
	return []byte(rounded.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a display-formatted string.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	*m = ParseCurrency(s)
	return nil
}

// ParseCurrency converts a display-formatted currency string to Money.
//
// It is a total function: the ledger export routinely uses placeholder
// strings ("$-", "-", "") for zero or blank cells, so any input that cannot
// be parsed yields zero rather than an error. Detecting genuinely missing
// data is the completeness validator's job, not the parser's.
//
// Handled forms: "$1,234.00", "1234", "($500.00)" (negative), "$-", "-", "".
func ParseCurrency(value string) Money {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", "\t", "").Replace(strings.TrimSpace(value))
	if cleaned == "" || cleaned == "-" {
		return Money{}
	}
	neg := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		neg = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}
	}
	if neg {
		d = d.Neg()
	}
	return Money{value: d}
}
