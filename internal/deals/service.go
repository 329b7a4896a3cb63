// Package deals exposes the cached ranked deal list to the API layer.
package deals

import (
	"context"
	"fmt"
	"strconv"
	"strompris/internal/cache"
	"strompris/internal/models"
	"strompris/internal/prices"
	"strompris/internal/ranking"
	"strompris/internal/repository"
	"time"
)

// Service computes ranked deal lists from the contract catalog and the
// aggregated price data, memoized in the cache layer
type Service struct {
	contracts repository.ContractRepository
	prices    *prices.Service
	cache     *cache.Service
	ttl       time.Duration
	now       func() time.Time
}

// New creates a deals service. ttl governs how long a ranked list stays
// fresh.
func New(contracts repository.ContractRepository, priceSvc *prices.Service, cacheSvc *cache.Service, ttl time.Duration) *Service {
	return &Service{
		contracts: contracts,
		prices:    priceSvc,
		cache:     cacheSvc,
		ttl:       ttl,
		now:       time.Now,
	}
}

// WithClock returns a copy of the service using the given clock
func (s *Service) WithClock(now func() time.Time) *Service {
	return &Service{contracts: s.contracts, prices: s.prices, cache: s.cache, ttl: s.ttl, now: now}
}

// Query holds every parameter a ranked deal list depends on. All of them
// go into the cache key.
type Query struct {
	AreaCode          string
	CustomerType      string
	Limit             int
	AnnualConsumption float64
}

func (q Query) cacheKey() string {
	return cache.Key("deals", q.AreaCode, q.CustomerType,
		strconv.Itoa(q.Limit), strconv.FormatFloat(q.AnnualConsumption, 'f', -1, 64))
}

// TopDeals returns the cheapest contracts for the query, cheapest first.
// The result is cached per full parameter tuple; a stale list is served
// when a refresh fails.
func (s *Service) TopDeals(ctx context.Context, q Query) (models.RankedDealsResponse, error) {
	result, err := cache.GetOrCompute(ctx, s.cache, q.cacheKey(), s.ttl,
		func(ctx context.Context) (models.RankedDealsResponse, error) {
			return s.compute(ctx, q)
		})
	if err != nil {
		return models.RankedDealsResponse{}, err
	}

	resp := result.Value
	resp.FromCache = result.FromCache
	resp.Stale = result.Stale
	return resp, nil
}

func (s *Service) compute(ctx context.Context, q Query) (models.RankedDealsResponse, error) {
	catalog, err := s.contracts.List(ctx, repository.ContractFilter{})
	if err != nil {
		return models.RankedDealsResponse{}, fmt.Errorf("failed to load contract catalog: %w", err)
	}

	referencePrice, _, err := s.prices.ReferencePrice(ctx, q.AreaCode)
	if err != nil {
		return models.RankedDealsResponse{}, fmt.Errorf("failed to resolve reference price: %w", err)
	}

	ranked := ranking.TopDeals(catalog, q.AreaCode, q.CustomerType, q.Limit,
		q.AnnualConsumption, referencePrice, s.now().Month())

	return models.RankedDealsResponse{
		AreaCode:          q.AreaCode,
		CustomerType:      q.CustomerType,
		AnnualConsumption: q.AnnualConsumption,
		ReferencePrice:    referencePrice,
		Deals:             ranked,
	}, nil
}
