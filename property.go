package propfin

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// missingPlaceholder is the string the investments export writes into
// currency cells it has no figure for. A field holding it counts as
// missing, not as zero.
const missingPlaceholder = "$-"

// PropertyRecord is one raw row of the investments export. All currency and
// percent fields are display-formatted strings; the column keys are the
// export's own.
type PropertyRecord struct {
	AssetID         string `json:"Asset ID"`
	AssetIDName     string `json:"Asset ID + Name"`
	PortfolioName   string `json:"Portfolio Name"`
	Units           string `json:"Units"`
	PurchasePrice   string `json:"Purchase Price"`
	ProformaRevenue string `json:"Proforma Revenue"`
	EGI             string `json:"EGI"`
	NOI             string `json:"NOI"`
	GoingInCapRate  string `json:"Going-In Cap Rate"`
	DebtService     string `json:"Debt Service"`
	LTVRatio        string `json:"LTV Ratio"`
}

// CompletenessGrade buckets how much of a property record is usable.
type CompletenessGrade string

const (
	Excellent CompletenessGrade = "excellent" // ≥90% of tracked fields present
	Good      CompletenessGrade = "good"      // ≥70%
	Fair      CompletenessGrade = "fair"      // ≥50%
	Poor      CompletenessGrade = "poor"
)

// PropertyValidation is the outcome of validating one property record.
// Warnings are advisory only: they never downgrade completeness.
type PropertyValidation struct {
	PropertyID    string            `json:"propertyId"`
	IsComplete    bool              `json:"isComplete"`
	MissingFields []string          `json:"missingFields"`
	Warnings      []string          `json:"warnings"`
	Grade         CompletenessGrade `json:"grade"`
}

// criticalFields are the fields whose absence makes a record unusable for
// authoritative reporting.
var criticalFields = []struct {
	name string
	get  func(PropertyRecord) string
}{
	{"PropertyId", func(r PropertyRecord) string { return r.AssetID }},
	{"Asset ID + Name", func(r PropertyRecord) string { return r.AssetIDName }},
	{"NOI", func(r PropertyRecord) string { return r.NOI }},
	{"Proforma Revenue", func(r PropertyRecord) string { return r.ProformaRevenue }},
}

// trackedFields is the superset used for the completeness grade.
var trackedFields = []func(PropertyRecord) string{
	func(r PropertyRecord) string { return r.AssetID },
	func(r PropertyRecord) string { return r.AssetIDName },
	func(r PropertyRecord) string { return r.PortfolioName },
	func(r PropertyRecord) string { return r.Units },
	func(r PropertyRecord) string { return r.PurchasePrice },
	func(r PropertyRecord) string { return r.ProformaRevenue },
	func(r PropertyRecord) string { return r.EGI },
	func(r PropertyRecord) string { return r.NOI },
	func(r PropertyRecord) string { return r.GoingInCapRate },
	func(r PropertyRecord) string { return r.DebtService },
}

// fieldMissing reports whether a raw field value counts as absent. The
// export writes "$-" for currency cells without a figure.
func fieldMissing(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == missingPlaceholder
}

// ValidateProperty checks a property record's critical fields and grades
// its overall completeness.
//
// A non-positive purchase price or unit count produces a warning, not a
// missing-field entry: the record is still reportable, the figure is just
// suspect.
func ValidateProperty(rec PropertyRecord) PropertyValidation {
	v := PropertyValidation{
		PropertyID:    rec.AssetID,
		MissingFields: []string{},
		Warnings:      []string{},
	}

	for _, f := range criticalFields {
		if fieldMissing(f.get(rec)) {
			v.MissingFields = append(v.MissingFields, f.name)
		}
	}
	v.IsComplete = len(v.MissingFields) == 0

	if !fieldMissing(rec.PurchasePrice) && !ParseCurrency(rec.PurchasePrice).IsPositive() {
		v.Warnings = append(v.Warnings, fmt.Sprintf("purchase price %q is not positive", rec.PurchasePrice))
	}
	if !fieldMissing(rec.Units) && rec.UnitCount() <= 0 {
		v.Warnings = append(v.Warnings, fmt.Sprintf("unit count %q is not positive", rec.Units))
	}

	present := 0
	for _, get := range trackedFields {
		if !fieldMissing(get(rec)) {
			present++
		}
	}
	ratio := float64(present) / float64(len(trackedFields))
	switch {
	case ratio >= 0.9:
		v.Grade = Excellent
	case ratio >= 0.7:
		v.Grade = Good
	case ratio >= 0.5:
		v.Grade = Fair
	default:
		v.Grade = Poor
	}
	return v
}

// UnitCount parses the unit count column, 0 for blanks or malformed cells.
func (r PropertyRecord) UnitCount() int {
	n, err := strconv.Atoi(strings.TrimSpace(r.Units))
	if err != nil {
		return 0
	}
	return n
}

// DataCompleteness states where a PropertyFinancials value came from and
// how much to trust it.
type DataCompleteness string

const (
	CompletenessComplete   DataCompleteness = "complete"   // authoritative record passed validation
	CompletenessPartial    DataCompleteness = "partial"    // authoritative record with gaps
	CompletenessCalculated DataCompleteness = "calculated" // estimated from rent-roll or static table
	CompletenessMissing    DataCompleteness = "missing"    // nothing usable found
)

// PropertyFinancials is the canonical per-property output. It is
// constructed fresh on each request — from the authoritative record, the
// live rent-roll, or the static fallback table — and never mutated after.
type PropertyFinancials struct {
	PropertyID       string           `json:"propertyId"`
	AssetName        string           `json:"assetName"`
	PurchasePrice    Money            `json:"purchasePrice"`
	MonthlyRevenue   Money            `json:"monthlyRevenue"`
	AnnualRevenue    Money            `json:"annualRevenue"`
	OccupiedUnits    int              `json:"occupiedUnits"`
	AvgRentPerUnit   Money            `json:"avgRentPerUnit"`
	EstimatedNOI     Money            `json:"estimatedNOI"`
	EstimatedCapRate Percent          `json:"estimatedCapRate"`
	DataCompleteness DataCompleteness `json:"dataCompleteness"`
	MissingFields    []string         `json:"missingFields"`
	DataSource       string           `json:"dataSource"`
}

// CapRate is annual NOI over purchase price as a percentage, 0 when the
// price is zero.
func CapRate(noi, purchasePrice Money) Percent { return noi.PercentOf(purchasePrice) }

// FinancialsFromRecord builds PropertyFinancials from a validated
// authoritative record. Callers should only use it when validation passed;
// the validation result decides the completeness tag.
func FinancialsFromRecord(rec PropertyRecord, v PropertyValidation) PropertyFinancials {
	annual := ParseCurrency(rec.ProformaRevenue)
	noi := ParseCurrency(rec.NOI)
	price := ParseCurrency(rec.PurchasePrice)
	units := rec.UnitCount()

	completeness := CompletenessComplete
	if !v.IsComplete {
		completeness = CompletenessPartial
	}
	capRate := ParsePercent(rec.GoingInCapRate)
	if capRate == 0 {
		capRate = CapRate(noi, price)
	}
	return PropertyFinancials{
		PropertyID:       rec.AssetID,
		AssetName:        rec.AssetIDName,
		PurchasePrice:    price,
		MonthlyRevenue:   annual.DivInt(12),
		AnnualRevenue:    annual,
		OccupiedUnits:    units,
		AvgRentPerUnit:   annual.DivInt(12).DivInt(units),
		EstimatedNOI:     noi,
		EstimatedCapRate: capRate,
		DataCompleteness: completeness,
		MissingFields:    v.MissingFields,
		DataSource:       "investments",
	}
}

// DecodePropertyRecords parses a JSON array of investments rows.
func DecodePropertyRecords(data []byte) ([]PropertyRecord, error) {
	var recs []PropertyRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decoding property records: %w", err)
	}
	return recs, nil
}
