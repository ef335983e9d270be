package propfin

import (
	"encoding/json"
	"fmt"
	"time"
)

// monthFormat is the format used to represent months as strings.
const monthFormat = "2006-01"

// Month represents a reporting period with month granularity.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// ThisMonth returns the current month.
func ThisMonth() Month { y, m, _ := time.Now().Date(); return NewMonth(y, m) }

// time returns a canonical time for the month (first day, midnight UTC).
func (p Month) time() time.Time { return time.Date(p.y, p.m, 1, 0, 0, 0, 0, time.UTC) }

// Add returns the month shifted by i months (negative to go back).
func (p Month) Add(i int) Month { return NewMonth(p.y, p.m+time.Month(i)) }

// Before reports whether p is strictly before q.
func (p Month) Before(q Month) bool { return p.time().Before(q.time()) }

// After reports whether p is strictly after q.
func (p Month) After(q Month) bool { return p.time().After(q.time()) }

// Year returns the month's year.
func (p Month) Year() int { return p.y }

// Month returns the month of year.
func (p Month) Month() time.Month { return p.m }

// String formats the month in its standard "2006-01" form.
func (p Month) String() string { return p.time().Format(monthFormat) }

// Label returns the short display form used as a report column header.
func (p Month) Label() string { return p.time().Format("Jan 2006") }

// ParseMonth parses a Month from its standard "2006-01" form.
func ParseMonth(str string) (Month, error) {
	t, err := time.Parse(monthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, monthFormat, err)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	p, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// MonthsEnding returns the n consecutive months ending at 'end', oldest
// first. A trailing-twelve window is MonthsEnding(end, 12).
func MonthsEnding(end Month, n int) []Month {
	months := make([]Month, n)
	for i := range months {
		months[i] = end.Add(i - n + 1)
	}
	return months
}

func (p Month) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

func (p *Month) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

var _ json.Marshaler = (*Month)(nil)
var _ json.Unmarshaler = (*Month)(nil)
