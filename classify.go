package propfin

import "strings"

// AccountCategory is the closed set of semantic buckets a GL account can
// belong to.
type AccountCategory int

const (
	Unclassified AccountCategory = iota
	Revenue
	Equity

	// asset subtypes
	CurrentAsset
	FixedAsset

	// liability subtypes
	CurrentLiability
	LongTermLiability

	// expense subtypes, in the fixed bucket order of the chart of accounts
	CleaningMaintenance
	Utilities
	Repairs
	ManagementFees
	TaxesLicenses
	DuesSubscriptions
	Payroll
	AutoTravel
	GeneralAdmin
	MortgageInterest
	OtherExpense
)

func (c AccountCategory) String() string {
	switch c {
	case Revenue:
		return "revenue"
	case Equity:
		return "equity"
	case CurrentAsset:
		return "current-asset"
	case FixedAsset:
		return "fixed-asset"
	case CurrentLiability:
		return "current-liability"
	case LongTermLiability:
		return "long-term-liability"
	case CleaningMaintenance:
		return "cleaning-maintenance"
	case Utilities:
		return "utilities"
	case Repairs:
		return "repairs"
	case ManagementFees:
		return "management-fees"
	case TaxesLicenses:
		return "taxes-licenses"
	case DuesSubscriptions:
		return "dues-subscriptions"
	case Payroll:
		return "payroll"
	case AutoTravel:
		return "auto-travel"
	case GeneralAdmin:
		return "general-admin"
	case MortgageInterest:
		return "mortgage-interest"
	case OtherExpense:
		return "other-expense"
	default:
		return "unclassified"
	}
}

// IsExpense reports whether the category is one of the expense buckets.
func (c AccountCategory) IsExpense() bool { return c >= CleaningMaintenance && c <= OtherExpense }

// IsAsset reports whether the category is one of the asset buckets.
func (c AccountCategory) IsAsset() bool { return c == CurrentAsset || c == FixedAsset }

// IsLiability reports whether the category is one of the liability buckets.
func (c AccountCategory) IsLiability() bool {
	return c == CurrentLiability || c == LongTermLiability
}

// rule binds an ordered set of case-insensitive name keywords to a category.
type rule struct {
	keywords []string
	category AccountCategory
}

// classificationRules is the ordered cascade of name tests. Order is
// load-bearing: the first matching rule wins, and several account names
// match more than one keyword set. In particular:
//
//   - "Property Management Fee" must land in ManagementFees, so the
//     management-fee rule precedes the general-admin rule.
//   - "Security Deposits Held" must land in CurrentLiability, so the
//     security-deposit rule precedes the generic asset "deposit" rule.
//   - "Mortgage Interest" is an expense, not a balance: the
//     mortgage-interest rule precedes both the "expense" catch-all and the
//     "mortgage payable" balance rule.
//
// Reordering entries changes classification results.
var classificationRules = []rule{
	// revenue
	{[]string{"rent income", "rental income", "tenant rent", "late fee", "application fee", "laundry income", "parking income", "subsidy", "other income", "revenue"}, Revenue},

	// liabilities that would otherwise match asset or expense keywords
	{[]string{"security deposit", "prepaid rent", "tenant deposit"}, CurrentLiability},

	// expense buckets, fixed order
	{[]string{"cleaning", "maintenance", "landscap", "snow removal", "pest control", "turnover"}, CleaningMaintenance},
	{[]string{"utilit", "electric", "gas service", "water", "sewer", "trash", "garbage"}, Utilities},
	{[]string{"repair", "plumbing", "hvac", "roofing", "appliance"}, Repairs},
	{[]string{"management fee", "property management", "pm fee", "asset management"}, ManagementFees},
	{[]string{"tax", "license", "permit"}, TaxesLicenses},
	{[]string{"dues", "subscription", "membership"}, DuesSubscriptions},
	{[]string{"payroll", "salar", "wages", "benefits"}, Payroll},
	{[]string{"auto", "vehicle", "travel", "mileage"}, AutoTravel},
	{[]string{"mortgage interest", "interest expense", "loan interest", "debt service"}, MortgageInterest},
	{[]string{"admin", "office", "legal", "professional", "insurance", "bank charge", "advertising", "marketing"}, GeneralAdmin},
	{[]string{"expense", "misc"}, OtherExpense},

	// balance-sheet accounts
	{[]string{"accumulated depreciation", "building", "land", "improvement", "fixture", "equipment"}, FixedAsset},
	{[]string{"cash", "checking", "savings", "bank", "receivable", "escrow", "deposit"}, CurrentAsset},
	{[]string{"mortgage payable", "note payable", "loan payable", "long term"}, LongTermLiability},
	{[]string{"payable", "accrued", "liability"}, CurrentLiability},
	{[]string{"equity", "capital", "retained earnings", "owner contribution", "owner draw", "distribution"}, Equity},
}

// Classify maps a GL account to its semantic category. It is a pure,
// deterministic function of (code, name): the same input always yields the
// same category, and it never fails — rows no rule recognizes come back as
// Unclassified and still count toward statement totals.
//
// The account name is matched against classificationRules first; when no
// name rule matches, the numeric GL code prefix decides:
// 1xxx asset, 2xxx liability, 3xxx equity, 4xxx revenue, 5xxx/6xxx expense.
func Classify(code, name string) AccountCategory {
	lower := strings.ToLower(name)
	for _, r := range classificationRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return classifyByCode(code)
}

// classifyByCode applies the GL numbering convention. Within the asset and
// liability ranges the midpoint splits current from fixed/long-term, the
// usual layout of this chart of accounts.
func classifyByCode(code string) AccountCategory {
	code = strings.TrimSpace(code)
	if len(code) == 0 {
		return Unclassified
	}
	switch code[0] {
	case '1':
		if len(code) >= 2 && code[1] >= '5' {
			return FixedAsset
		}
		return CurrentAsset
	case '2':
		if len(code) >= 2 && code[1] >= '5' {
			return LongTermLiability
		}
		return CurrentLiability
	case '3':
		return Equity
	case '4':
		return Revenue
	case '5', '6':
		return OtherExpense
	default:
		return Unclassified
	}
}
