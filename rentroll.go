package propfin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// NOIMarginAssumption is the fixed operating margin used when NOI has to be
// estimated from rent-roll revenue. It is a documented assumption for this
// market, not a derived figure, and is deliberately a named constant so the
// estimate is auditable and overridable at the call sites that own it.
const NOIMarginAssumption = 0.60

// rentRollWait bounds the live rent-roll call: the fallback must never
// block the primary render path, so on timeout it is treated as absent.
const rentRollWait = 3 * time.Second

// RentRollUnit is one unit row of the live rent-roll feed.
type RentRollUnit struct {
	UnitName    string `json:"UnitName"`
	Status      string `json:"Status"`
	Tenant      string `json:"Tenant"`
	CurrentRent string `json:"CurrentRent"` // display formatted
}

// Occupied reports whether the unit counts as occupied: either the feed
// marks it "Current" or it carries rent.
func (u RentRollUnit) Occupied() bool {
	return u.Status == "Current" || ParseCurrency(u.CurrentRent).IsPositive()
}

// RentRollAPI fetches unit-level data from the secondary rent-roll service.
type RentRollAPI struct {
	BaseURL string
	Client  *http.Client
}

// Units returns the rent-roll rows for a property and month.
func (a *RentRollAPI) Units(ctx context.Context, propertyID string, month Month) ([]RentRollUnit, error) {
	addr := fmt.Sprintf("%s/rentroll?property=%s&month=%s",
		a.BaseURL, url.QueryEscape(propertyID), url.QueryEscape(month.String()))
	client := a.Client
	if client == nil {
		client = new(http.Client)
	}
	var units []RentRollUnit
	if err := jwget(ctx, client, addr, "$.units", &units); err != nil {
		return nil, err
	}
	return units, nil
}

// FinancialsFromUnits estimates property financials from unit-level
// rent-roll data: occupied units drive monthly revenue, annual is twelve
// months of it, NOI applies NOIMarginAssumption, and the cap rate divides
// by the purchase price (0 when the price is 0).
func FinancialsFromUnits(propertyID, assetName string, purchasePrice Money, units []RentRollUnit) PropertyFinancials {
	var monthly Money
	occupied := 0
	for _, u := range units {
		if !u.Occupied() {
			continue
		}
		occupied++
		monthly = monthly.Add(ParseCurrency(u.CurrentRent))
	}
	annual := monthly.MulInt(12)
	noi := annual.MulFloat(NOIMarginAssumption)
	return PropertyFinancials{
		PropertyID:       propertyID,
		AssetName:        assetName,
		PurchasePrice:    purchasePrice,
		MonthlyRevenue:   monthly,
		AnnualRevenue:    annual,
		OccupiedUnits:    occupied,
		AvgRentPerUnit:   monthly.DivInt(occupied),
		EstimatedNOI:     noi,
		EstimatedCapRate: CapRate(noi, purchasePrice),
		DataCompleteness: CompletenessCalculated,
		MissingFields:    []string{},
		DataSource:       "rent-roll",
	}
}

// FallbackProvider supplies calculated financials for properties whose
// authoritative record failed validation. Three tiers, each independently
// failable: the live rent-roll feed, then the static pre-computed table,
// then nothing (nil, which callers must render as an explicit "no data"
// state rather than zeroes).
type FallbackProvider struct {
	RentRoll *RentRollAPI // nil disables the live tier
	// Static overrides the built-in table, mostly for tests.
	Static map[string]PropertyFinancials
	// Wait bounds the live call; rentRollWait when zero.
	Wait time.Duration
}

// CalculatedFinancials resolves the fallback chain for one property. The
// returned value is freshly constructed on every call.
func (p *FallbackProvider) CalculatedFinancials(ctx context.Context, propertyID string, purchasePrice Money) *PropertyFinancials {
	if f := p.liveFinancials(ctx, propertyID, purchasePrice); f != nil {
		return f
	}
	table := p.Static
	if table == nil {
		table = calculatedFinancialsTable
	}
	if f, ok := table[propertyID]; ok {
		f.DataCompleteness = CompletenessCalculated
		f.DataSource = "static-table"
		return &f
	}
	return nil
}

func (p *FallbackProvider) liveFinancials(ctx context.Context, propertyID string, purchasePrice Money) *PropertyFinancials {
	if p.RentRoll == nil {
		return nil
	}
	wait := p.Wait
	if wait == 0 {
		wait = rentRollWait
	}
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	units, err := p.RentRoll.Units(ctx, propertyID, ThisMonth())
	if err != nil {
		log.Printf("rent-roll unavailable for %s, falling back to static table: %v", propertyID, err)
		return nil
	}
	if len(units) == 0 {
		// an empty rent roll is as useless as a failed one
		return nil
	}
	f := FinancialsFromUnits(propertyID, "", purchasePrice, units)
	return &f
}

// calculatedFinancialsTable is the static tier of the fallback chain:
// pre-computed figures for properties whose ledger feed has been
// chronically incomplete. Keyed by property id.
var calculatedFinancialsTable = map[string]PropertyFinancials{
	"100": {
		PropertyID:       "100",
		AssetName:        "S0021 - 67 Park",
		PurchasePrice:    M(623077),
		MonthlyRevenue:   M(10940),
		AnnualRevenue:    M(131280),
		OccupiedUnits:    11,
		AvgRentPerUnit:   M(994.55),
		EstimatedNOI:     M(78768),
		EstimatedCapRate: 12.64,
		MissingFields:    []string{},
	},
	"102": {
		PropertyID:       "102",
		AssetName:        "S0023 - 131 Putnam",
		PurchasePrice:    M(540000),
		MonthlyRevenue:   M(7850),
		AnnualRevenue:    M(94200),
		OccupiedUnits:    8,
		AvgRentPerUnit:   M(981.25),
		EstimatedNOI:     M(56520),
		EstimatedCapRate: 10.47,
		MissingFields:    []string{},
	},
	"107": {
		PropertyID:       "107",
		AssetName:        "S0028 - 12 Vine",
		PurchasePrice:    M(415000),
		MonthlyRevenue:   M(5400),
		AnnualRevenue:    M(64800),
		OccupiedUnits:    6,
		AvgRentPerUnit:   M(900),
		EstimatedNOI:     M(38880),
		EstimatedCapRate: 9.37,
		MissingFields:    []string{},
	},
}
