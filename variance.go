package propfin

// VarianceStatus is the tri-state outcome of a period-over-period
// comparison.
type VarianceStatus int

const (
	Normal VarianceStatus = iota
	Review
	Alert
)

func (s VarianceStatus) String() string {
	switch s {
	case Review:
		return "review"
	case Alert:
		return "alert"
	default:
		return "normal"
	}
}

// Default review/alert thresholds for categories without a dedicated entry
// in varianceThresholds.
const (
	defaultReviewThreshold Percent = 5
	defaultAlertThreshold  Percent = 25
)

// varianceThresholds is the fixed per-category review threshold table.
// These are configured, not inferred: maintenance swings widely month to
// month, utilities are seasonal, management fees are contractual and should
// barely move.
var varianceThresholds = map[AccountCategory]Percent{
	CleaningMaintenance: 25,
	Repairs:             25,
	Utilities:           15,
	ManagementFees:      10,
}

// VarianceThresholds returns the review and alert thresholds for a
// category: a configured category alerts at twice its review threshold,
// anything else uses the wider default band.
func VarianceThresholds(c AccountCategory) (review, alert Percent) {
	if t, ok := varianceThresholds[c]; ok {
		return t, 2 * t
	}
	return defaultReviewThreshold, defaultAlertThreshold
}

// VarianceRecord compares one category across two aggregated periods.
type VarianceRecord struct {
	Category        AccountCategory `json:"category"`
	CurrentPeriod   Money           `json:"currentPeriod"`
	PreviousPeriod  Money           `json:"previousPeriod"`
	Variance        Money           `json:"variance"`
	VariancePercent Percent         `json:"variancePercent"`
	Status          VarianceStatus  `json:"status"`
}

// NewVarianceRecord builds the variance record for a category using its
// configured thresholds: Review when |pct| exceeds the review threshold,
// Alert when it exceeds the alert threshold.
//
// A zero previous period makes the percent change undefined; the record
// then reports 0% and Normal whatever the absolute delta, so brand-new
// accounts never fire alerts on their first period.
func NewVarianceRecord(category AccountCategory, current, previous Money) VarianceRecord {
	review, alert := VarianceThresholds(category)
	return newVarianceRecord(category, current, previous, review, alert)
}

func newVarianceRecord(category AccountCategory, current, previous Money, review, alert Percent) VarianceRecord {
	r := VarianceRecord{
		Category:       category,
		CurrentPeriod:  current,
		PreviousPeriod: previous,
		Variance:       current.Sub(previous),
	}
	if previous.IsZero() {
		return r
	}
	r.VariancePercent = r.Variance.PercentOf(previous)
	switch {
	case r.VariancePercent.Abs() > alert:
		r.Status = Alert
	case r.VariancePercent.Abs() > review:
		r.Status = Review
	}
	return r
}

// VarianceReport compares two classified periods category by category.
type VarianceReport struct {
	Records []VarianceRecord `json:"records"`
	// NoComparison is set when no previous period was available; Records is
	// then empty and the caller should render "no comparison available"
	// rather than an error.
	NoComparison bool `json:"noComparison,omitempty"`
}

// NewVarianceReport aggregates both periods per category and compares them.
// A nil previous slice degrades to NoComparison instead of failing: the
// previous-period fetch is independently failable and must never prevent
// rendering the current period.
func NewVarianceReport(current, previous []LedgerLineItem) *VarianceReport {
	if previous == nil {
		return &VarianceReport{NoComparison: true}
	}
	cur := sumByCategory(current)
	prev := sumByCategory(previous)

	report := &VarianceReport{}
	for c := Unclassified; c <= OtherExpense; c++ {
		curAmt, curOK := cur[c]
		prevAmt, prevOK := prev[c]
		if !curOK && !prevOK {
			continue
		}
		report.Records = append(report.Records, NewVarianceRecord(c, curAmt, prevAmt))
	}
	return report
}

// Alerts returns the records whose status is not Normal, worst first.
func (r *VarianceReport) Alerts() []VarianceRecord {
	var out []VarianceRecord
	for _, rec := range r.Records {
		if rec.Status == Alert {
			out = append(out, rec)
		}
	}
	for _, rec := range r.Records {
		if rec.Status == Review {
			out = append(out, rec)
		}
	}
	return out
}

func sumByCategory(items []LedgerLineItem) map[AccountCategory]Money {
	classified, _ := ClassifyItems(items, LedgerLineItem.Amount)
	sums := make(map[AccountCategory]Money)
	for _, it := range classified {
		sums[it.Category] = sums[it.Category].Add(it.Amount.Abs())
	}
	return sums
}
