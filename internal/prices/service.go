// Package prices exposes cached aggregated spot price data to the API
// layer.
package prices

import (
	"context"
	"fmt"
	"strconv"
	"strompris/internal/aggregator"
	"strompris/internal/cache"
	"strompris/internal/models"
	"time"
)

// Service memoizes aggregator output in the cache layer
type Service struct {
	agg   *aggregator.Service
	cache *cache.Service
	ttl   time.Duration
	// windowDays is the default day window used for area averages and
	// scheduled warms
	windowDays int
	now        func() time.Time
}

// New creates a price service. ttl governs how long aggregated price data
// stays fresh; windowDays is the default aggregation window.
func New(agg *aggregator.Service, cacheSvc *cache.Service, ttl time.Duration, windowDays int) *Service {
	return &Service{
		agg:        agg,
		cache:      cacheSvc,
		ttl:        ttl,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// WithClock returns a copy of the service using the given clock
func (s *Service) WithClock(now func() time.Time) *Service {
	return &Service{agg: s.agg, cache: s.cache, ttl: s.ttl, windowDays: s.windowDays, now: now}
}

func aggregatedKey(windowDays int) string {
	return cache.Key("prices", "agg", strconv.Itoa(windowDays))
}

// Aggregated returns the national price profile for the given day window,
// served from cache when fresh. Window validation happens before any fetch.
func (s *Service) Aggregated(ctx context.Context, windowDays int) (models.AggregatedPricesResponse, error) {
	if windowDays < aggregator.MinWindowDays || windowDays > aggregator.MaxWindowDays {
		return models.AggregatedPricesResponse{}, aggregator.ErrInvalidWindow
	}

	result, err := cache.GetOrCompute(ctx, s.cache, aggregatedKey(windowDays), s.ttl,
		func(ctx context.Context) (models.NationalPriceProfile, error) {
			return s.agg.NationalProfile(ctx, windowDays)
		})
	if err != nil {
		return models.AggregatedPricesResponse{}, fmt.Errorf("failed to aggregate prices: %w", err)
	}

	return models.AggregatedPricesResponse{
		Areas:           result.Value.Areas,
		NationalAverage: result.Value.NationalAverage,
		FromCache:       result.FromCache,
		Stale:           result.Stale,
	}, nil
}

// AreaAverage returns the current and average price for one area over the
// default window. The current price is the record covering the current
// hour, nil when today has no data yet.
func (s *Service) AreaAverage(ctx context.Context, areaCode string) (models.AreaAverageResponse, error) {
	area, ok := models.PriceAreaByCode(areaCode)
	if !ok {
		return models.AreaAverageResponse{}, aggregator.ErrUnknownArea
	}

	result, err := cache.GetOrCompute(ctx, s.cache, cache.Key("prices", "area", area.Code, strconv.Itoa(s.windowDays)), s.ttl,
		func(ctx context.Context) (models.AreaPriceProfile, error) {
			return s.agg.AreaProfile(ctx, area.Code, s.windowDays)
		})
	if err != nil {
		return models.AreaAverageResponse{}, fmt.Errorf("failed to aggregate prices for %s: %w", area.Code, err)
	}

	profile := result.Value
	resp := models.AreaAverageResponse{
		AreaCode:     profile.AreaCode,
		AreaName:     profile.AreaName,
		AveragePrice: profile.AveragePrice,
		DaysIncluded: len(profile.Days),
	}

	now := s.now()
	for _, day := range profile.Days {
		for _, record := range day.Records {
			if !record.StartTime.After(now) && record.EndTime.After(now) {
				price := record.PricePerKwh
				resp.CurrentPrice = &price
			}
		}
	}

	return resp, nil
}

// ReferencePrice returns the price per kWh used as market reference for
// spot contracts in the given area: the area's average over the default
// window. The boolean is false when the area has no data.
func (s *Service) ReferencePrice(ctx context.Context, areaCode string) (float64, bool, error) {
	result, err := cache.GetOrCompute(ctx, s.cache, cache.Key("prices", "area", areaCode, strconv.Itoa(s.windowDays)), s.ttl,
		func(ctx context.Context) (models.AreaPriceProfile, error) {
			return s.agg.AreaProfile(ctx, areaCode, s.windowDays)
		})
	if err != nil {
		return 0, false, err
	}
	return result.Value.AveragePrice, len(result.Value.Days) > 0, nil
}

// Refresh recomputes and overwrites the cached national profile for the
// default window, ignoring entry age. Used by the scheduled warm job.
func (s *Service) Refresh(ctx context.Context) error {
	return s.RefreshWindow(ctx, s.windowDays)
}

// RefreshWindow recomputes and overwrites the cached national profile for
// the given window, ignoring entry age
func (s *Service) RefreshWindow(ctx context.Context, windowDays int) error {
	if windowDays < aggregator.MinWindowDays || windowDays > aggregator.MaxWindowDays {
		return aggregator.ErrInvalidWindow
	}
	_, err := cache.Refresh(ctx, s.cache, aggregatedKey(windowDays),
		func(ctx context.Context) (models.NationalPriceProfile, error) {
			return s.agg.NationalProfile(ctx, windowDays)
		})
	return err
}
