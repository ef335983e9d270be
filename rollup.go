package propfin

import "context"

// PortfolioFinancials aggregates figures across the reportable properties.
type PortfolioFinancials struct {
	TotalRevenue Money `json:"totalRevenue"`
	TotalNOI     Money `json:"totalNOI"`
	// AverageCapRate is the unweighted mean of per-property cap rates,
	// reproducing the established reporting convention. A NOI-weighted mean
	// would arguably be more correct; changing it would silently change
	// reported numbers, so it stays a simple mean.
	AverageCapRate Percent `json:"averageCapRate"`
}

// PortfolioValidation routes every property to complete, calculated or
// incomplete and rolls up the reportable ones.
//
// Invariant: TotalProperties equals
// len(Complete) + len(Calculated) + len(Incomplete).
type PortfolioValidation struct {
	TotalProperties      int                  `json:"totalProperties"`
	Complete             []PropertyFinancials `json:"complete"`
	Calculated           []PropertyFinancials `json:"calculated"`
	Incomplete           []PropertyValidation `json:"incomplete"`
	AggregatedFinancials PortfolioFinancials  `json:"aggregatedFinancials"`
}

// NewPortfolioValidation validates every record and rolls up the portfolio.
//
// Records passing validation are "complete" and report authoritative
// figures. Failing records go through the fallback chain; a fallback hit is
// "calculated", a miss is "incomplete". Aggregates are straight sums over
// complete + calculated. A nil fallback skips the calculated tier entirely.
func NewPortfolioValidation(ctx context.Context, records []PropertyRecord, fallback *FallbackProvider) *PortfolioValidation {
	pv := &PortfolioValidation{
		TotalProperties: len(records),
		Complete:        []PropertyFinancials{},
		Calculated:      []PropertyFinancials{},
		Incomplete:      []PropertyValidation{},
	}

	for _, rec := range records {
		v := ValidateProperty(rec)
		if v.IsComplete {
			pv.Complete = append(pv.Complete, FinancialsFromRecord(rec, v))
			continue
		}
		if fallback != nil {
			if f := fallback.CalculatedFinancials(ctx, rec.AssetID, ParseCurrency(rec.PurchasePrice)); f != nil {
				f.MissingFields = v.MissingFields
				pv.Calculated = append(pv.Calculated, *f)
				continue
			}
		}
		pv.Incomplete = append(pv.Incomplete, v)
	}

	pv.AggregatedFinancials = aggregate(append(append([]PropertyFinancials{}, pv.Complete...), pv.Calculated...))
	return pv
}

func aggregate(all []PropertyFinancials) PortfolioFinancials {
	var agg PortfolioFinancials
	var rates float64
	for _, f := range all {
		agg.TotalRevenue = agg.TotalRevenue.Add(f.AnnualRevenue)
		agg.TotalNOI = agg.TotalNOI.Add(f.EstimatedNOI)
		rates += float64(f.EstimatedCapRate)
	}
	if len(all) > 0 {
		agg.AverageCapRate = Percent(rates / float64(len(all)))
	}
	return agg
}
