// Package pricing computes comparable monthly costs for heterogeneous
// electricity contracts.
package pricing

import "time"

// seasonalShares apportions annual consumption across calendar months to
// reflect heating-driven demand variation. The twelve shares sum to 100.00.
var seasonalShares = map[time.Month]float64{
	time.January:   12.51,
	time.February:  11.02,
	time.March:     10.77,
	time.April:     8.58,
	time.May:       6.66,
	time.June:      4.97,
	time.July:      4.63,
	time.August:    4.96,
	time.September: 6.22,
	time.October:   8.26,
	time.November:  9.95,
	time.December:  11.47,
}

// SeasonalShare returns the percentage share of annual consumption for the
// given month
func SeasonalShare(month time.Month) float64 {
	return seasonalShares[month]
}

// MonthlyConsumption converts an annual kWh figure into the expected
// consumption for the given month using the seasonal distribution
func MonthlyConsumption(annualKwh float64, month time.Month) float64 {
	return annualKwh * seasonalShares[month] / 100
}

// MonthlyConsumptionNow converts an annual kWh figure into the expected
// consumption for the current calendar month
func MonthlyConsumptionNow(annualKwh float64) float64 {
	return MonthlyConsumption(annualKwh, time.Now().Month())
}
