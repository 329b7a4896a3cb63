package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContractType is the normalized type of an electricity contract. Raw
// catalog values, including legacy aliases such as "hourly_spot", are
// normalized through ParseContractType once when a contract enters the
// system.
type ContractType string

const (
	// ContractTypeSpot tracks the market reference price plus a supplier addon
	ContractTypeSpot ContractType = "spot"
	// ContractTypeFixed has a fixed price per kWh for the binding period
	ContractTypeFixed ContractType = "fixed"
	// ContractTypeVariable has a supplier-set price, priced here as additive fees only
	ContractTypeVariable ContractType = "variable"
	// ContractTypeOther covers unrecognized types, which degrade to additive fees only
	ContractTypeOther ContractType = "other"
)

// ParseContractType normalizes a raw contract type string, mapping legacy
// aliases onto the closed set of contract types. Unrecognized values map to
// ContractTypeOther rather than failing.
func ParseContractType(raw string) ContractType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "spot", "hourly_spot", "spot_hourly", "spotpris":
		return ContractTypeSpot
	case "fixed", "fixed_price", "fastpris":
		return ContractTypeFixed
	case "variable", "variable_price":
		return ContractTypeVariable
	default:
		return ContractTypeOther
	}
}

// Customer types a contract can be limited to. An empty CustomerType on a
// contract means it is open to all customers.
const (
	CustomerTypePrivate  = "private"
	CustomerTypeBusiness = "business"
)

// Price units accepted at the ingestion boundary. All prices are stored in
// NOK per kWh; øre inputs are converted on ingest.
const (
	PriceUnitKr  = "kr"
	PriceUnitOre = "ore"
)

// NormalizePrice converts a price in the given unit to NOK per kWh. An
// empty unit is treated as NOK.
func NormalizePrice(value float64, unit string) float64 {
	if unit == PriceUnitOre {
		return value / 100
	}
	return value
}

// SalesNetwork represents an area-scoped fixed price for a contract
type SalesNetwork struct {
	AreaCode    string  `json:"area_code" example:"NO1"`
	PricePerKwh float64 `json:"price_per_kwh" example:"0.79"`
}

// Contract represents a priceable electricity product from the catalog.
// All prices are in NOK per kWh, fees in NOK.
type Contract struct {
	ID                      uuid.UUID      `json:"id" db:"id"`
	Name                    string         `json:"name" db:"name"`
	Supplier                string         `json:"supplier" db:"supplier"`
	Type                    ContractType   `json:"type" db:"contract_type"`
	AddonPricePerKwh        float64        `json:"addon_price_per_kwh" db:"addon_price_per_kwh"`
	CertificatePricePerKwh  float64        `json:"certificate_price_per_kwh" db:"certificate_price_per_kwh"`
	MonthlyFee              float64        `json:"monthly_fee" db:"monthly_fee"`
	FixedPricePerKwh        *float64       `json:"fixed_price_per_kwh,omitempty" db:"fixed_price_per_kwh"`
	PostalInvoiceFee        float64        `json:"postal_invoice_fee" db:"postal_invoice_fee"`
	PostalInvoiceFeeApplied bool           `json:"postal_invoice_fee_applied" db:"postal_invoice_fee_applied"`
	SalesNetworks           []SalesNetwork `json:"sales_networks,omitempty" db:"sales_networks"`
	CustomerType            string         `json:"customer_type" db:"customer_type"`
	BindingPeriod           int            `json:"binding_period" db:"binding_period"`
	BindingPeriodUnit       string         `json:"binding_period_unit" db:"binding_period_unit"`
	CreatedAt               time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at" db:"updated_at"`
}

// AvailableIn reports whether the contract can be sold in the given price
// area. A contract with no sales networks has no area restriction; the
// whole-country marker matches every area.
func (c Contract) AvailableIn(areaCode string) bool {
	if len(c.SalesNetworks) == 0 {
		return true
	}
	for _, n := range c.SalesNetworks {
		if n.AreaCode == areaCode || n.AreaCode == WholeCountryCode {
			return true
		}
	}
	return false
}

// EligibleFor reports whether the contract is open to the given customer
// type. Unset eligibility on either side means "all customers".
func (c Contract) EligibleFor(customerType string) bool {
	return c.CustomerType == "" || customerType == "" || c.CustomerType == customerType
}

// CreateContractRequest represents the request to create a catalog contract.
// PriceUnit declares the unit of every price field in the request so that
// normalization happens once at this boundary, never by magnitude guessing.
type CreateContractRequest struct {
	Name                    string         `json:"name" binding:"required,nospaces"`
	Supplier                string         `json:"supplier" binding:"required,nospaces"`
	Type                    string         `json:"type" binding:"required"`
	PriceUnit               string         `json:"price_unit" binding:"omitempty,oneof=kr ore"`
	AddonPricePerKwh        float64        `json:"addon_price_per_kwh"`
	CertificatePricePerKwh  float64        `json:"certificate_price_per_kwh" binding:"omitempty,min=0"`
	MonthlyFee              float64        `json:"monthly_fee" binding:"omitempty,min=0"`
	FixedPricePerKwh        *float64       `json:"fixed_price_per_kwh"`
	PostalInvoiceFee        float64        `json:"postal_invoice_fee" binding:"omitempty,min=0"`
	PostalInvoiceFeeApplied bool           `json:"postal_invoice_fee_applied"`
	SalesNetworks           []SalesNetwork `json:"sales_networks" binding:"omitempty,dive"`
	CustomerType            string         `json:"customer_type" binding:"omitempty,customertype"`
	BindingPeriod           int            `json:"binding_period" binding:"omitempty,min=0"`
	BindingPeriodUnit       string         `json:"binding_period_unit" binding:"omitempty,oneof=month year"`
}

// Contract converts the request into a catalog contract, normalizing the
// contract type and price units
func (r CreateContractRequest) Contract() Contract {
	c := Contract{
		ID:                      uuid.New(),
		Name:                    r.Name,
		Supplier:                r.Supplier,
		Type:                    ParseContractType(r.Type),
		AddonPricePerKwh:        NormalizePrice(r.AddonPricePerKwh, r.PriceUnit),
		CertificatePricePerKwh:  NormalizePrice(r.CertificatePricePerKwh, r.PriceUnit),
		MonthlyFee:              r.MonthlyFee,
		PostalInvoiceFee:        r.PostalInvoiceFee,
		PostalInvoiceFeeApplied: r.PostalInvoiceFeeApplied,
		CustomerType:            r.CustomerType,
		BindingPeriod:           r.BindingPeriod,
		BindingPeriodUnit:       r.BindingPeriodUnit,
	}
	if c.BindingPeriodUnit == "" {
		c.BindingPeriodUnit = "month"
	}
	if r.FixedPricePerKwh != nil {
		fixed := NormalizePrice(*r.FixedPricePerKwh, r.PriceUnit)
		c.FixedPricePerKwh = &fixed
	}
	for _, n := range r.SalesNetworks {
		c.SalesNetworks = append(c.SalesNetworks, SalesNetwork{
			AreaCode:    n.AreaCode,
			PricePerKwh: NormalizePrice(n.PricePerKwh, r.PriceUnit),
		})
	}
	return c
}

// UpdateContractRequest represents the request to update a catalog contract
type UpdateContractRequest struct {
	CreateContractRequest
}
