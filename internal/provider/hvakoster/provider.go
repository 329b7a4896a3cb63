// Package hvakoster fetches hourly spot prices from the hvakosterstrommen.no
// Strømpris API.
package hvakoster

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strompris/internal/models"
	"strompris/internal/provider"
	"time"
)

const (
	// ProviderName is the unique identifier for the hvakosterstrommen provider
	ProviderName = "hvakoster"
	// BaseURL is the base URL for the Strømpris API
	BaseURL = "https://www.hvakosterstrommen.no/api/v1/prices"
)

// priceEntry represents a single hourly entry from the Strømpris API
type priceEntry struct {
	NOKPerKwh    float64   `json:"NOK_per_kWh"`
	EURPerKwh    float64   `json:"EUR_per_kWh"`
	ExchangeRate float64   `json:"EXR"`
	TimeStart    time.Time `json:"time_start"`
	TimeEnd      time.Time `json:"time_end"`
}

// Client fetches day-ahead prices from the Strømpris API. It implements
// aggregator.PriceSource.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new Strømpris API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchDayPrices fetches the hourly price records for one price area and
// calendar day. A 404 from the API means the day is not published yet and
// yields no records, not an error.
func (c *Client) FetchDayPrices(ctx context.Context, areaCode string, date time.Time) ([]models.PriceRecord, error) {
	// URL layout: /api/v1/prices/2024/03-20_NO1.json
	reqURL := fmt.Sprintf("%s/%d/%02d-%02d_%s.json",
		c.baseURL, date.Year(), int(date.Month()), date.Day(), areaCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var entries []priceEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make([]models.PriceRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, models.PriceRecord{
			PricePerKwh: entry.NOKPerKwh,
			StartTime:   entry.TimeStart,
			EndTime:     entry.TimeEnd,
		})
	}
	return records, nil
}

// Warmer refreshes cached aggregated price data
type Warmer interface {
	Refresh(ctx context.Context) error
	RefreshWindow(ctx context.Context, windowDays int) error
}

// DefaultConfig returns the default configuration for the provider
func DefaultConfig() provider.Config {
	return provider.Config{
		Schedule:   "15 13 * * *", // Day-ahead prices are published around 13:00
		Enabled:    true,
		WindowDays: 7,
	}
}

// Provider warms the aggregated price cache from the Strømpris API on a
// schedule. It implements provider.Provider.
type Provider struct {
	warmer Warmer
	config provider.Config
}

// NewProvider creates a new scheduled cache-warming provider
func NewProvider(warmer Warmer, config provider.Config) *Provider {
	if config.Schedule == "" {
		config.Schedule = DefaultConfig().Schedule
	}
	if config.WindowDays == 0 {
		config.WindowDays = DefaultConfig().WindowDays
	}
	return &Provider{warmer: warmer, config: config}
}

// Name returns the provider's unique identifier
func (p *Provider) Name() string {
	return ProviderName
}

// GetConfig returns the provider's configuration
func (p *Provider) GetConfig() provider.Config {
	return p.config
}

// Run refreshes the aggregated price cache for the configured window
func (p *Provider) Run(ctx context.Context) error {
	if err := p.warmer.RefreshWindow(ctx, p.config.WindowDays); err != nil {
		return fmt.Errorf("failed to refresh aggregated prices: %w", err)
	}
	return nil
}

// RunWithOptions refreshes the aggregated price cache for a specific window
func (p *Provider) RunWithOptions(ctx context.Context, opts provider.RunOptions) error {
	windowDays := opts.WindowDays
	if windowDays == 0 {
		windowDays = p.config.WindowDays
	}
	if err := p.warmer.RefreshWindow(ctx, windowDays); err != nil {
		return fmt.Errorf("failed to refresh aggregated prices: %w", err)
	}
	return nil
}
