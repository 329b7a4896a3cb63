package models

import "time"

// WholeCountryCode is the sales network marker for contracts sold in every
// price area.
const WholeCountryCode = "NO"

// PriceArea represents one of the five Norwegian electricity price areas
type PriceArea struct {
	Code string `json:"code" example:"NO1"`
	Name string `json:"name" example:"Øst-Norge"`
}

// PriceAreas lists the fixed Norwegian price areas
var PriceAreas = []PriceArea{
	{Code: "NO1", Name: "Øst-Norge"},
	{Code: "NO2", Name: "Sør-Norge"},
	{Code: "NO3", Name: "Midt-Norge"},
	{Code: "NO4", Name: "Nord-Norge"},
	{Code: "NO5", Name: "Vest-Norge"},
}

// PriceAreaByCode looks up a price area by its code
func PriceAreaByCode(code string) (PriceArea, bool) {
	for _, area := range PriceAreas {
		if area.Code == code {
			return area, true
		}
	}
	return PriceArea{}, false
}

// PriceRecord represents one hourly spot price observation. Prices are in
// NOK per kWh.
type PriceRecord struct {
	PricePerKwh float64   `json:"price_per_kwh" example:"0.82"`
	StartTime   time.Time `json:"start_time" example:"2024-03-20T13:00:00+01:00"`
	EndTime     time.Time `json:"end_time" example:"2024-03-20T14:00:00+01:00"`
}

// DailyPriceSummary represents the spot prices of one calendar day in one
// price area reduced to average, min and max
type DailyPriceSummary struct {
	Date         time.Time     `json:"date"`
	AveragePrice float64       `json:"average_price"`
	MinPrice     float64       `json:"min_price"`
	MaxPrice     float64       `json:"max_price"`
	Records      []PriceRecord `json:"records,omitempty"`
}

// AreaPriceProfile represents one price area over a requested day window.
// AveragePrice is the mean of the daily averages and is zero when Days is
// empty; callers must check Days rather than trust a zero average.
type AreaPriceProfile struct {
	AreaCode     string              `json:"area_code" example:"NO1"`
	AreaName     string              `json:"area_name" example:"Øst-Norge"`
	Days         []DailyPriceSummary `json:"days"`
	AveragePrice float64             `json:"average_price"`
}

// NationalPriceProfile represents all area profiles for the same window
// together with the mean of their averages
type NationalPriceProfile struct {
	Areas           []AreaPriceProfile `json:"areas"`
	NationalAverage float64            `json:"national_average"`
}

// AreaAverageResponse represents the response for a single area's price
// summary. CurrentPrice is nil when no record covers the current hour.
type AreaAverageResponse struct {
	AreaCode     string   `json:"area_code" example:"NO1"`
	AreaName     string   `json:"area_name" example:"Øst-Norge"`
	CurrentPrice *float64 `json:"current_price"`
	AveragePrice float64  `json:"average_price"`
	DaysIncluded int      `json:"days_included"`
}

// AggregatedPricesResponse represents the cached national profile returned
// by the prices endpoint
type AggregatedPricesResponse struct {
	Areas           []AreaPriceProfile `json:"areas"`
	NationalAverage float64            `json:"national_average"`
	FromCache       bool               `json:"from_cache"`
	Stale           bool               `json:"stale"`
}
