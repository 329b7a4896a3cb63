package models

// CostBreakdown represents the computed monthly cost of a contract for a
// given consumption and reference price. It is always derived fresh and
// never stored. All amounts are in NOK, rounded to øre precision.
type CostBreakdown struct {
	// MonthlyConsumptionKwh is the seasonally adjusted consumption the cost
	// is computed for
	MonthlyConsumptionKwh float64 `json:"monthly_consumption_kwh" example:"2001.6"`
	// PricePerKwh is the resolved effective energy price used
	PricePerKwh float64 `json:"price_per_kwh" example:"0.84"`
	// EnergyCost is consumption times the effective price
	EnergyCost float64 `json:"energy_cost" example:"1681.34"`
	// CertificateCost is the electricity certificate share of the energy
	// cost, shown for display; it is already included in EnergyCost
	CertificateCost float64 `json:"certificate_cost" example:"20.02"`
	// MonthlyFee is the contract's flat monthly fee
	MonthlyFee float64 `json:"monthly_fee" example:"39"`
	// PeriodicFee is the annual postal invoice fee amortized to one month,
	// zero when not applied
	PeriodicFee float64 `json:"periodic_fee" example:"0"`
	// TotalMonthly is energy cost plus monthly and periodic fees
	TotalMonthly float64 `json:"total_monthly" example:"1720.34"`
}

// RankedContract represents one entry of a ranked deal list
type RankedContract struct {
	Contract Contract      `json:"contract"`
	Cost     CostBreakdown `json:"cost"`
}

// RankedDealsResponse represents the cached ranked deal list returned by
// the deals endpoint
type RankedDealsResponse struct {
	AreaCode          string           `json:"area_code" example:"NO1"`
	CustomerType      string           `json:"customer_type,omitempty" example:"private"`
	AnnualConsumption float64          `json:"annual_consumption" example:"16000"`
	ReferencePrice    float64          `json:"reference_price" example:"0.80"`
	Deals             []RankedContract `json:"deals"`
	FromCache         bool             `json:"from_cache"`
	Stale             bool             `json:"stale"`
}
