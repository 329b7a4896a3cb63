package pricing

import (
	"math"
	"strompris/internal/models"
	"time"
)

// roundOre rounds an amount in NOK to øre precision
func roundOre(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// EffectivePricePerKwh resolves the energy price per kWh for a contract.
// Spot contracts pay the reference price plus addon and certificate. Fixed
// contracts pay the most specific sales-network price for the area, then
// the whole-country network price, then the contract-level fixed price.
// Variable and unrecognized contract types degrade to additive fees only.
func EffectivePricePerKwh(c models.Contract, referencePricePerKwh float64, areaCode string) float64 {
	switch c.Type {
	case models.ContractTypeSpot:
		return referencePricePerKwh + c.AddonPricePerKwh + c.CertificatePricePerKwh
	case models.ContractTypeFixed:
		if price, ok := fixedPriceFor(c, areaCode); ok {
			return price
		}
		if c.FixedPricePerKwh != nil {
			return *c.FixedPricePerKwh
		}
		return 0
	default:
		return c.AddonPricePerKwh + c.CertificatePricePerKwh
	}
}

// fixedPriceFor resolves an area-scoped fixed price. An exact area match
// wins over the whole-country network.
func fixedPriceFor(c models.Contract, areaCode string) (float64, bool) {
	var countryPrice *float64
	for i, n := range c.SalesNetworks {
		if n.AreaCode == areaCode {
			return n.PricePerKwh, true
		}
		if n.AreaCode == models.WholeCountryCode && countryPrice == nil {
			countryPrice = &c.SalesNetworks[i].PricePerKwh
		}
	}
	if countryPrice != nil {
		return *countryPrice, true
	}
	return 0, false
}

// Breakdown computes the full monthly cost breakdown for a contract. It
// never fails: missing optional contract fields count as zero, and negative
// addon prices (rebates) flow through unchanged.
func Breakdown(c models.Contract, annualKwh, referencePricePerKwh float64, areaCode string, month time.Month) models.CostBreakdown {
	consumption := MonthlyConsumption(annualKwh, month)
	price := EffectivePricePerKwh(c, referencePricePerKwh, areaCode)
	energyCost := consumption * price

	certificateCost := 0.0
	if c.Type == models.ContractTypeSpot || c.Type == models.ContractTypeVariable || c.Type == models.ContractTypeOther {
		certificateCost = consumption * c.CertificatePricePerKwh
	}

	periodicFee := 0.0
	if c.PostalInvoiceFeeApplied {
		periodicFee = c.PostalInvoiceFee / 12
	}

	return models.CostBreakdown{
		MonthlyConsumptionKwh: consumption,
		PricePerKwh:           price,
		EnergyCost:            roundOre(energyCost),
		CertificateCost:       roundOre(certificateCost),
		MonthlyFee:            c.MonthlyFee,
		PeriodicFee:           roundOre(periodicFee),
		TotalMonthly:          roundOre(energyCost + c.MonthlyFee + periodicFee),
	}
}

// MonthlyCost computes only the total monthly cost for a contract
func MonthlyCost(c models.Contract, annualKwh, referencePricePerKwh float64, areaCode string, month time.Month) float64 {
	return Breakdown(c, annualKwh, referencePricePerKwh, areaCode, month).TotalMonthly
}
