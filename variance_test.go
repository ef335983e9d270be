package propfin

import "testing"

func TestNewVarianceRecord(t *testing.T) {
	testCases := []struct {
		name       string
		category   AccountCategory
		current    float64
		previous   float64
		wantPct    Percent
		wantStatus VarianceStatus
	}{
		{"unchanged", CleaningMaintenance, 6800, 6800, 0, Normal},
		{"within band", Utilities, 1100, 1000, 10, Normal},
		{"over review", Utilities, 1200, 1000, 20, Review},
		{"over alert", Utilities, 1400, 1000, 40, Alert},
		{"drop triggers too", Repairs, 500, 1000, -50, Review},
		{"management fees are tight", ManagementFees, 1150, 1000, 15, Review},
		{"default band", Payroll, 1100, 1000, 10, Review},
		{"default alert", Payroll, 1300, 1000, 30, Alert},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewVarianceRecord(tc.category, USD(tc.current), USD(tc.previous))
			if !rec.VariancePercent.Equal(tc.wantPct) {
				t.Errorf("variance = %v, want %v", rec.VariancePercent, tc.wantPct)
			}
			if rec.Status != tc.wantStatus {
				t.Errorf("status = %v, want %v", rec.Status, tc.wantStatus)
			}
		})
	}
}

// A zero previous period is undefined, not infinite: 0% and Normal,
// whatever the current amount.
func TestNewVarianceRecord_ZeroPrevious(t *testing.T) {
	rec := NewVarianceRecord(Repairs, USD(9000), USD(0))
	if !rec.VariancePercent.Equal(0) {
		t.Errorf("variance = %v, want 0%% on zero previous", rec.VariancePercent)
	}
	if rec.Status != Normal {
		t.Errorf("status = %v, want Normal on zero previous", rec.Status)
	}

	// both zero must not panic either
	rec = NewVarianceRecord(Repairs, USD(0), USD(0))
	if rec.Status != Normal || !rec.VariancePercent.Equal(0) {
		t.Errorf("0/0 record = %+v, want 0%% Normal", rec)
	}
}

func TestVarianceThresholds(t *testing.T) {
	testCases := []struct {
		category      AccountCategory
		review, alert Percent
	}{
		{CleaningMaintenance, 25, 50},
		{Repairs, 25, 50},
		{Utilities, 15, 30},
		{ManagementFees, 10, 20},
		{Payroll, 5, 25},
		{Revenue, 5, 25},
	}
	for _, tc := range testCases {
		review, alert := VarianceThresholds(tc.category)
		if review != tc.review || alert != tc.alert {
			t.Errorf("VarianceThresholds(%v) = (%v, %v), want (%v, %v)",
				tc.category, review, alert, tc.review, tc.alert)
		}
	}
}

func TestNewVarianceReport(t *testing.T) {
	current := []LedgerLineItem{
		item("6210", "Building Maintenance", "$1,300.00"),
		item("", "Utilities - Common Area", "$1,400.00"),
	}
	previous := []LedgerLineItem{
		item("6210", "Building Maintenance", "$1,200.00"),
		item("", "Utilities - Common Area", "$1,000.00"),
	}
	r := NewVarianceReport(current, previous)
	if r.NoComparison {
		t.Fatal("NoComparison set despite a previous period")
	}
	if len(r.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(r.Records))
	}

	alerts := r.Alerts()
	if len(alerts) != 1 {
		t.Fatalf("got %d alerts, want 1 (utilities at +40%%)", len(alerts))
	}
	if alerts[0].Category != Utilities || alerts[0].Status != Alert {
		t.Errorf("alert = %v/%v, want Utilities/Alert", alerts[0].Category, alerts[0].Status)
	}
}

// A failed previous-period fetch degrades to "no comparison", it never
// blocks the current period.
func TestNewVarianceReport_NoPrevious(t *testing.T) {
	current := []LedgerLineItem{item("6210", "Building Maintenance", "$1,300.00")}
	r := NewVarianceReport(current, nil)
	if !r.NoComparison {
		t.Error("NoComparison not set for a nil previous period")
	}
	if len(r.Records) != 0 {
		t.Errorf("got %d records, want none", len(r.Records))
	}
	if len(r.Alerts()) != 0 {
		t.Errorf("got alerts from a no-comparison report")
	}
}

// Alerts orders Alert records ahead of Review records.
func TestVarianceReport_AlertsWorstFirst(t *testing.T) {
	r := &VarianceReport{Records: []VarianceRecord{
		{Category: Utilities, Status: Review},
		{Category: Repairs, Status: Alert},
		{Category: Payroll, Status: Normal},
	}}
	alerts := r.Alerts()
	if len(alerts) != 2 {
		t.Fatalf("got %d alerts, want 2", len(alerts))
	}
	if alerts[0].Status != Alert || alerts[1].Status != Review {
		t.Errorf("order = %v, %v; want Alert first", alerts[0].Status, alerts[1].Status)
	}
}

func TestVarianceStatus_String(t *testing.T) {
	if Normal.String() != "normal" || Review.String() != "review" || Alert.String() != "alert" {
		t.Errorf("got %q %q %q", Normal, Review, Alert)
	}
}
