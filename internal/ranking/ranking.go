// Package ranking filters a contract catalog and orders it by computed
// monthly cost.
package ranking

import (
	"sort"
	"strompris/internal/models"
	"strompris/internal/pricing"
	"time"
)

// TopDeals filters the catalog by area availability and customer-type
// eligibility, computes a cost breakdown for each surviving contract and
// returns up to limit contracts ordered ascending by total monthly cost.
// Ties keep the catalog order. An empty result is not an error.
func TopDeals(catalog []models.Contract, areaCode, customerType string, limit int, annualKwh, referencePricePerKwh float64, month time.Month) []models.RankedContract {
	ranked := make([]models.RankedContract, 0, len(catalog))
	for _, c := range catalog {
		if !c.AvailableIn(areaCode) || !c.EligibleFor(customerType) {
			continue
		}
		ranked = append(ranked, models.RankedContract{
			Contract: c,
			Cost:     pricing.Breakdown(c, annualKwh, referencePricePerKwh, areaCode, month),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Cost.TotalMonthly < ranked[j].Cost.TotalMonthly
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
