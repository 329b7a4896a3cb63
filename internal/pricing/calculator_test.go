package pricing

import (
	"strompris/internal/models"
	"strompris/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakdown_SpotContract(t *testing.T) {
	contract := models.Contract{
		Type:                   models.ContractTypeSpot,
		AddonPricePerKwh:       0.03,
		CertificatePricePerKwh: 0.01,
		MonthlyFee:             39,
	}

	breakdown := Breakdown(contract, 16000, 0.80, "NO1", time.January)

	// 16000 × 12.51% = 2001.6 kWh at 0.80+0.03+0.01 = 0.84 NOK/kWh
	assert.InDelta(t, 2001.6, breakdown.MonthlyConsumptionKwh, 1e-9)
	assert.InDelta(t, 0.84, breakdown.PricePerKwh, 1e-9)
	assert.InDelta(t, 1681.34, breakdown.EnergyCost, 0.005)
	assert.InDelta(t, 39, breakdown.MonthlyFee, 1e-9)
	assert.InDelta(t, 0, breakdown.PeriodicFee, 1e-9)
	assert.Equal(t, 1720.34, breakdown.TotalMonthly)
}

func TestBreakdown_FixedContractFallsBackToContractPrice(t *testing.T) {
	contract := models.Contract{
		Type:             models.ContractTypeFixed,
		AddonPricePerKwh: 0.03,
		MonthlyFee:       39,
		FixedPricePerKwh: testutil.Float64(0.75),
		SalesNetworks: []models.SalesNetwork{
			{AreaCode: "NO4", PricePerKwh: 0.99},
		},
	}

	// No network covers NO1, so the contract-level price wins
	assert.InDelta(t, 0.75, EffectivePricePerKwh(contract, 0.80, "NO1"), 1e-9)
}

func TestEffectivePricePerKwh(t *testing.T) {
	tests := []struct {
		name     string
		contract models.Contract
		refPrice float64
		areaCode string
		want     float64
	}{
		{
			name: "Spot adds addon and certificate to reference",
			contract: models.Contract{
				Type:                   models.ContractTypeSpot,
				AddonPricePerKwh:       0.05,
				CertificatePricePerKwh: 0.02,
			},
			refPrice: 1.0,
			want:     1.07,
		},
		{
			name: "Spot rebate lowers price below reference",
			contract: models.Contract{
				Type:             models.ContractTypeSpot,
				AddonPricePerKwh: -0.02,
			},
			refPrice: 1.0,
			want:     0.98,
		},
		{
			name: "Fixed prefers exact area network over whole country",
			contract: models.Contract{
				Type:             models.ContractTypeFixed,
				FixedPricePerKwh: testutil.Float64(0.70),
				SalesNetworks: []models.SalesNetwork{
					{AreaCode: models.WholeCountryCode, PricePerKwh: 0.85},
					{AreaCode: "NO3", PricePerKwh: 0.65},
				},
			},
			areaCode: "NO3",
			want:     0.65,
		},
		{
			name: "Fixed uses whole country network when area has no entry",
			contract: models.Contract{
				Type:             models.ContractTypeFixed,
				FixedPricePerKwh: testutil.Float64(0.70),
				SalesNetworks: []models.SalesNetwork{
					{AreaCode: models.WholeCountryCode, PricePerKwh: 0.85},
					{AreaCode: "NO3", PricePerKwh: 0.65},
				},
			},
			areaCode: "NO1",
			want:     0.85,
		},
		{
			name:     "Fixed without any price resolves to zero",
			contract: models.Contract{Type: models.ContractTypeFixed},
			want:     0,
		},
		{
			name: "Variable ignores reference price",
			contract: models.Contract{
				Type:                   models.ContractTypeVariable,
				AddonPricePerKwh:       0.10,
				CertificatePricePerKwh: 0.01,
			},
			refPrice: 2.0,
			want:     0.11,
		},
		{
			name: "Unknown type degrades to additive fees only",
			contract: models.Contract{
				Type:             models.ContractTypeOther,
				AddonPricePerKwh: 0.04,
			},
			refPrice: 2.0,
			want:     0.04,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EffectivePricePerKwh(tt.contract, tt.refPrice, tt.areaCode), 1e-9)
		})
	}
}

func TestBreakdown_PostalInvoiceFeeAmortizedMonthly(t *testing.T) {
	contract := models.Contract{
		Type:             models.ContractTypeVariable,
		MonthlyFee:       29,
		PostalInvoiceFee: 120,
	}

	// Not applied: no periodic fee
	breakdown := Breakdown(contract, 10000, 0, "NO1", time.June)
	assert.InDelta(t, 0, breakdown.PeriodicFee, 1e-9)

	contract.PostalInvoiceFeeApplied = true
	breakdown = Breakdown(contract, 10000, 0, "NO1", time.June)
	assert.InDelta(t, 10, breakdown.PeriodicFee, 1e-9)
	assert.InDelta(t, breakdown.EnergyCost+29+10, breakdown.TotalMonthly, 0.01)
}

func TestMonthlyCost_MonotonicInConsumption(t *testing.T) {
	contract := models.Contract{
		Type:                   models.ContractTypeSpot,
		AddonPricePerKwh:       0.05,
		CertificatePricePerKwh: 0.02,
		MonthlyFee:             49,
	}

	prev := 0.0
	for _, annual := range []float64{0, 5000, 10000, 16000, 25000, 40000} {
		cost := MonthlyCost(contract, annual, 0.90, "NO2", time.February)
		assert.GreaterOrEqual(t, cost, prev, "cost decreased at %v kWh", annual)
		prev = cost
	}
}

func TestMonthlyCost_MonotonicInReferencePriceForSpot(t *testing.T) {
	contract := models.Contract{
		Type:             models.ContractTypeSpot,
		AddonPricePerKwh: 0.03,
		MonthlyFee:       39,
	}

	prev := 0.0
	for _, refPrice := range []float64{0, 0.25, 0.50, 0.80, 1.20, 2.50} {
		cost := MonthlyCost(contract, 16000, refPrice, "NO1", time.January)
		assert.GreaterOrEqual(t, cost, prev, "cost decreased at reference price %v", refPrice)
		prev = cost
	}
}

func TestBreakdown_MissingOptionalFieldsDefaultToZero(t *testing.T) {
	breakdown := Breakdown(models.Contract{Type: models.ContractTypeSpot}, 16000, 0.80, "NO1", time.January)
	assert.InDelta(t, 2001.6*0.80, breakdown.EnergyCost, 0.01)
	assert.InDelta(t, breakdown.EnergyCost, breakdown.TotalMonthly, 0.01)
}
