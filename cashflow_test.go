package propfin

import (
	"reflect"
	"testing"
)

func operatingStatement() []LedgerLineItem {
	return []LedgerLineItem{
		item("4010", "Rent Income", "$9,800.00"),
		item("4090", "Laundry Income", "$700.00"),
		item("", "Late Fee Income", "$-"),
		item("4100", "Parking Income", "$0.00"),
		item("", "Subsidy Income", "$0.00"),
		item("6210", "Building Maintenance", "$1,200.00"),
		item("", "Utilities - Common Area", "$900.00"),
		item("", "Property Management Fee", "$800.00"),
		item("", "Property Insurance", "$800.00"),
	}
}

// Revenue items totaling 10500 and expense items totaling 3700 must yield
// an NOI of exactly 6800.
func TestNetOperatingIncome(t *testing.T) {
	rows := operatingStatement()
	classified, _ := ClassifyItems(rows, LedgerLineItem.Amount)
	if got := NetOperatingIncome(classified); !got.Equal(USD(6800)) {
		t.Errorf("NetOperatingIncome() = %v, want $6,800.00", got)
	}
}

// Unclassified rows count toward the totals so revenue + expense always
// reconciles to NOI exactly.
func TestNetOperatingIncome_IncludesUnclassified(t *testing.T) {
	rows := []LedgerLineItem{
		item("4010", "Rent Income", "$1,000.00"),
		item("", "Account 42", "$50.00"), // no rule matches, no usable code
	}
	classified, _ := ClassifyItems(rows, LedgerLineItem.Amount)
	if classified[1].Category != Unclassified {
		t.Fatalf("expected Unclassified, got %v", classified[1].Category)
	}
	if got := NetOperatingIncome(classified); !got.Equal(USD(1050)) {
		t.Errorf("NetOperatingIncome() = %v, want $1,050.00", got)
	}
}

func TestNewCashFlowReport_Sections(t *testing.T) {
	rows := append(operatingStatement(),
		item("1510", "Building & Improvements", "$5,000.00"),
		item("2510", "Mortgage Payable", "$2,000.00"),
		item("", "Cash at Beginning of Period", "$12,000.00"),
		item("", "Cash at End of Period", "$15,800.00"),
	)
	r := NewCashFlowReport(rows)

	// operating: 10500 revenue − 3700 expenses
	if !r.OperatingActivities.Total.Equal(USD(6800)) {
		t.Errorf("operating total = %v, want $6,800.00", r.OperatingActivities.Total)
	}
	// investing: the building purchase is an outflow
	if !r.InvestingActivities.Total.Equal(USD(-5000)) {
		t.Errorf("investing total = %v, want -$5,000.00", r.InvestingActivities.Total)
	}
	// financing: borrowing is an inflow
	if !r.FinancingActivities.Total.Equal(USD(2000)) {
		t.Errorf("financing total = %v, want $2,000.00", r.FinancingActivities.Total)
	}
	if !r.NetCashFlow.Equal(USD(3800)) {
		t.Errorf("net cash flow = %v, want $3,800.00", r.NetCashFlow)
	}
	if !r.CashAtBeginning.Equal(USD(12000)) || !r.CashAtEnd.Equal(USD(15800)) {
		t.Errorf("cash carry-through = %v / %v", r.CashAtBeginning, r.CashAtEnd)
	}
}

// A labeled source subtotal wins over the locally synthesized sum.
func TestNewCashFlowReport_PrefersSourceTotal(t *testing.T) {
	rows := append(operatingStatement(),
		// the export's own figure includes an adjustment classification
		// cannot see
		item("", "Total Operating Activities", "$6,750.00"),
	)
	r := NewCashFlowReport(rows)
	if !r.OperatingActivities.Total.Equal(USD(6750)) {
		t.Errorf("operating total = %v, want the labeled $6,750.00", r.OperatingActivities.Total)
	}
}

// Some exports label income and expense subtotals separately instead of a
// section total; the section total is then their difference.
func TestNewCashFlowReport_PairedSubtotals(t *testing.T) {
	rows := append(operatingStatement(),
		item("", "Total Operating Income", "$10,450.00"),
		item("", "Total Operating Expense", "$3,700.00"),
	)
	r := NewCashFlowReport(rows)
	if !r.OperatingActivities.Total.Equal(USD(6750)) {
		t.Errorf("operating total = %v, want the paired $6,750.00", r.OperatingActivities.Total)
	}
}

// An income subtotal covers only half the section; alone it must never be
// trusted as the section total.
func TestNewCashFlowReport_IncomeSubtotalAloneIgnored(t *testing.T) {
	rows := append(operatingStatement(),
		item("", "Total Operating Income", "$10,500.00"),
	)
	r := NewCashFlowReport(rows)
	if !r.OperatingActivities.Total.Equal(USD(6800)) {
		t.Errorf("operating total = %v, want the synthesized $6,800.00", r.OperatingActivities.Total)
	}
}

// When the export's labeling is internally consistent both paths agree.
func TestNewCashFlowReport_DualPathAgreement(t *testing.T) {
	plain := NewCashFlowReport(operatingStatement())

	labelings := map[string][]LedgerLineItem{
		"section total": {item("", "Total Operating Activities", "$6,800.00")},
		"paired subtotals": {
			item("", "Total Operating Income", "$10,500.00"),
			item("", "Total Operating Expense", "$3,700.00"),
		},
	}
	for name, rows := range labelings {
		labeled := NewCashFlowReport(append(operatingStatement(), rows...))
		if !plain.OperatingActivities.Total.Equal(labeled.OperatingActivities.Total) {
			t.Errorf("%s: synthesized %v != labeled %v",
				name, plain.OperatingActivities.Total, labeled.OperatingActivities.Total)
		}
	}
}

// Rows the export pre-tagged with a direction keep their sign.
func TestNewCashFlowReport_TaggedDirections(t *testing.T) {
	amt := 250.0
	rows := []LedgerLineItem{
		{AccountName: "Owner Contribution", CashFlowAmount: &amt, CashFlowType: CashIn},
		{AccountName: "Owner Draw", CashFlowAmount: &amt, CashFlowType: CashOut},
	}
	r := NewCashFlowReport(rows)
	if !r.FinancingActivities.Total.Equal(USD(0)) {
		t.Errorf("financing total = %v, want $0 (in and out cancel)", r.FinancingActivities.Total)
	}
}

func TestNewCashFlowReport_Idempotent(t *testing.T) {
	rows := append(operatingStatement(),
		item("1510", "Building & Improvements", "$5,000.00"),
	)
	a := NewCashFlowReport(rows)
	b := NewCashFlowReport(rows)
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs on identical input are not deep-equal")
	}
}
