package propfin

import (
	"strings"
	"testing"
)

func fullRecord() PropertyRecord {
	return PropertyRecord{
		AssetID:         "100",
		AssetIDName:     "S0021 - 67 Park",
		PortfolioName:   "Core",
		Units:           "11",
		PurchasePrice:   "$623,077.00",
		ProformaRevenue: "$131,280.00",
		EGI:             "$125,000.00",
		NOI:             "$78,768.00",
		GoingInCapRate:  "12.64%",
		DebtService:     "$41,000.00",
		LTVRatio:        "65.00%",
	}
}

func TestValidateProperty_Complete(t *testing.T) {
	v := ValidateProperty(fullRecord())
	if !v.IsComplete {
		t.Errorf("IsComplete = false, missing %v", v.MissingFields)
	}
	if len(v.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", v.Warnings)
	}
	if v.Grade != Excellent {
		t.Errorf("grade = %v, want excellent", v.Grade)
	}
	if v.PropertyID != "100" {
		t.Errorf("propertyId = %q", v.PropertyID)
	}
}

// Blank cells and the "$-" placeholder both count as missing.
func TestValidateProperty_MissingCriticalFields(t *testing.T) {
	rec := fullRecord()
	rec.NOI = ""
	rec.ProformaRevenue = "$-"
	v := ValidateProperty(rec)

	if v.IsComplete {
		t.Error("IsComplete = true with missing critical fields")
	}
	if len(v.MissingFields) != 2 {
		t.Fatalf("missingFields = %v, want [NOI, Proforma Revenue]", v.MissingFields)
	}
	if v.MissingFields[0] != "NOI" || v.MissingFields[1] != "Proforma Revenue" {
		t.Errorf("missingFields = %v", v.MissingFields)
	}
}

// Warnings are advisory: a suspect price never downgrades completeness.
func TestValidateProperty_WarningsDoNotDowngrade(t *testing.T) {
	rec := fullRecord()
	rec.PurchasePrice = "$0.00"
	rec.Units = "0"
	v := ValidateProperty(rec)

	if !v.IsComplete {
		t.Errorf("IsComplete = false, missing %v; warnings must not downgrade", v.MissingFields)
	}
	if len(v.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", v.Warnings)
	}
	if !strings.Contains(v.Warnings[0], "purchase price") {
		t.Errorf("first warning = %q", v.Warnings[0])
	}
}

func TestValidateProperty_Grades(t *testing.T) {
	blank := func(rec *PropertyRecord, n int) {
		// blank tracked fields from the back, keeping the critical four
		clear := []*string{&rec.DebtService, &rec.GoingInCapRate, &rec.EGI,
			&rec.PurchasePrice, &rec.Units, &rec.PortfolioName}
		for i := 0; i < n && i < len(clear); i++ {
			*clear[i] = ""
		}
	}
	testCases := []struct {
		blanks int
		want   CompletenessGrade
	}{
		{0, Excellent}, // 10/10
		{1, Excellent}, // 9/10
		{2, Good},      // 8/10
		{3, Good},      // 7/10
		{4, Fair},      // 6/10
		{5, Fair},      // 5/10
		{6, Poor},      // 4/10
	}
	for _, tc := range testCases {
		rec := fullRecord()
		blank(&rec, tc.blanks)
		if v := ValidateProperty(rec); v.Grade != tc.want {
			t.Errorf("with %d blanks grade = %v, want %v", tc.blanks, v.Grade, tc.want)
		}
	}
}

func TestPropertyRecord_UnitCount(t *testing.T) {
	testCases := []struct {
		units string
		want  int
	}{
		{"11", 11},
		{" 8 ", 8},
		{"", 0},
		{"n/a", 0},
	}
	for _, tc := range testCases {
		rec := PropertyRecord{Units: tc.units}
		if got := rec.UnitCount(); got != tc.want {
			t.Errorf("UnitCount(%q) = %d, want %d", tc.units, got, tc.want)
		}
	}
}

func TestFinancialsFromRecord(t *testing.T) {
	rec := fullRecord()
	f := FinancialsFromRecord(rec, ValidateProperty(rec))

	if f.DataSource != "investments" {
		t.Errorf("dataSource = %q", f.DataSource)
	}
	if f.DataCompleteness != CompletenessComplete {
		t.Errorf("dataCompleteness = %v, want complete", f.DataCompleteness)
	}
	if !f.AnnualRevenue.Equal(USD(131280)) {
		t.Errorf("annualRevenue = %v", f.AnnualRevenue)
	}
	if !f.MonthlyRevenue.Equal(USD(10940)) {
		t.Errorf("monthlyRevenue = %v, want $10,940.00", f.MonthlyRevenue)
	}
	if !f.EstimatedCapRate.Equal(12.64) {
		t.Errorf("capRate = %v, want the stated 12.64%%", f.EstimatedCapRate)
	}
	if f.OccupiedUnits != 11 {
		t.Errorf("occupiedUnits = %d", f.OccupiedUnits)
	}
}

// Without a stated cap rate it is derived from NOI over purchase price.
func TestFinancialsFromRecord_DerivedCapRate(t *testing.T) {
	rec := fullRecord()
	rec.GoingInCapRate = ""
	f := FinancialsFromRecord(rec, ValidateProperty(rec))
	// 78768 / 623077
	if f.EstimatedCapRate < 12.63 || f.EstimatedCapRate > 12.65 {
		t.Errorf("capRate = %v, want ≈12.64%%", f.EstimatedCapRate)
	}
}

// Partial records still produce financials, tagged partial with the gaps
// listed.
func TestFinancialsFromRecord_Partial(t *testing.T) {
	rec := fullRecord()
	rec.NOI = "$-"
	v := ValidateProperty(rec)
	f := FinancialsFromRecord(rec, v)

	if f.DataCompleteness != CompletenessPartial {
		t.Errorf("dataCompleteness = %v, want partial", f.DataCompleteness)
	}
	if len(f.MissingFields) != 1 || f.MissingFields[0] != "NOI" {
		t.Errorf("missingFields = %v, want [NOI]", f.MissingFields)
	}
	if !f.EstimatedNOI.IsZero() {
		t.Errorf("estimatedNOI = %v, want 0 for a placeholder cell", f.EstimatedNOI)
	}
}

func TestDecodePropertyRecords(t *testing.T) {
	data := []byte(`[{
		"Asset ID": "100",
		"Asset ID + Name": "S0021 - 67 Park",
		"Purchase Price": "$623,077.00",
		"Proforma Revenue": "$131,280.00",
		"NOI": "$78,768.00",
		"Units": "11",
		"Going-In Cap Rate": "12.64%"
	}]`)
	recs, err := DecodePropertyRecords(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].AssetIDName != "S0021 - 67 Park" {
		t.Errorf("recs = %+v", recs)
	}
	if recs[0].GoingInCapRate != "12.64%" {
		t.Errorf("cap rate column = %q", recs[0].GoingInCapRate)
	}
}
