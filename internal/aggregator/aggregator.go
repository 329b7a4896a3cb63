// Package aggregator reduces hourly spot prices into daily, area and
// national averages.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strompris/internal/models"
	"sync"
	"time"
)

const (
	// MinWindowDays is the smallest accepted day window
	MinWindowDays = 1
	// MaxWindowDays is the largest accepted day window
	MaxWindowDays = 30
)

var (
	// ErrInvalidWindow is returned when a requested day window is outside
	// the accepted range. It is raised before any fetch happens.
	ErrInvalidWindow = fmt.Errorf("window days must be between %d and %d", MinWindowDays, MaxWindowDays)
	// ErrUnknownArea is returned for a price area code that is not one of
	// the fixed Norwegian areas
	ErrUnknownArea = errors.New("unknown price area")
)

// PriceSource fetches the hourly price records of one calendar day for one
// price area. A day without data yields an empty slice, not an error.
type PriceSource interface {
	FetchDayPrices(ctx context.Context, areaCode string, date time.Time) ([]models.PriceRecord, error)
}

// Service aggregates raw hourly prices from a PriceSource
type Service struct {
	source PriceSource
	now    func() time.Time
}

// New creates a new aggregation service
func New(source PriceSource) *Service {
	return &Service{
		source: source,
		now:    time.Now,
	}
}

// WithClock returns a copy of the service using the given clock
func (s *Service) WithClock(now func() time.Time) *Service {
	return &Service{source: s.source, now: now}
}

// DailySummary reduces the price records of one day to average, min and
// max. It returns nil for an empty input: "no data" must stay
// distinguishable from a zero price, or every downstream average would be
// corrupted.
func DailySummary(records []models.PriceRecord) *models.DailyPriceSummary {
	if len(records) == 0 {
		return nil
	}

	sum := records[0].PricePerKwh
	min := records[0].PricePerKwh
	max := records[0].PricePerKwh
	for _, r := range records[1:] {
		sum += r.PricePerKwh
		if r.PricePerKwh < min {
			min = r.PricePerKwh
		}
		if r.PricePerKwh > max {
			max = r.PricePerKwh
		}
	}

	start := records[0].StartTime
	return &models.DailyPriceSummary{
		Date:         time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
		AveragePrice: sum / float64(len(records)),
		MinPrice:     min,
		MaxPrice:     max,
		Records:      records,
	}
}

// AreaProfile fetches and reduces the last windowDays calendar days for one
// price area, most recent day first. A failed or empty day is skipped and
// logged; partial data is degraded but never fatal.
func (s *Service) AreaProfile(ctx context.Context, areaCode string, windowDays int) (models.AreaPriceProfile, error) {
	if windowDays < MinWindowDays || windowDays > MaxWindowDays {
		return models.AreaPriceProfile{}, ErrInvalidWindow
	}
	area, ok := models.PriceAreaByCode(areaCode)
	if !ok {
		return models.AreaPriceProfile{}, ErrUnknownArea
	}

	profile := models.AreaPriceProfile{
		AreaCode: area.Code,
		AreaName: area.Name,
		Days:     make([]models.DailyPriceSummary, 0, windowDays),
	}

	today := s.now()
	for i := 0; i < windowDays; i++ {
		date := today.AddDate(0, 0, -i)
		records, err := s.source.FetchDayPrices(ctx, area.Code, date)
		if err != nil {
			log.Printf("Skipping %s for %s: %v", date.Format("2006-01-02"), area.Code, err)
			continue
		}
		if summary := DailySummary(records); summary != nil {
			profile.Days = append(profile.Days, *summary)
		}
	}

	if len(profile.Days) > 0 {
		sum := 0.0
		for _, d := range profile.Days {
			sum += d.AveragePrice
		}
		profile.AveragePrice = sum / float64(len(profile.Days))
	}

	return profile, nil
}

// NationalProfile runs AreaProfile concurrently for every fixed price area
// and averages the resulting area averages. A failure in one area never
// cancels the others; areas without data are excluded from the national
// average, which is zero when no area returned data.
func (s *Service) NationalProfile(ctx context.Context, windowDays int) (models.NationalPriceProfile, error) {
	if windowDays < MinWindowDays || windowDays > MaxWindowDays {
		return models.NationalPriceProfile{}, ErrInvalidWindow
	}

	profiles := make([]models.AreaPriceProfile, len(models.PriceAreas))
	var wg sync.WaitGroup
	for i, area := range models.PriceAreas {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			profile, err := s.AreaProfile(ctx, code, windowDays)
			if err != nil {
				log.Printf("Area profile for %s failed: %v", code, err)
				profile = models.AreaPriceProfile{AreaCode: code}
			}
			profiles[i] = profile
		}(i, area.Code)
	}
	wg.Wait()

	national := models.NationalPriceProfile{Areas: profiles}
	count := 0
	sum := 0.0
	for _, p := range profiles {
		if len(p.Days) > 0 {
			sum += p.AveragePrice
			count++
		}
	}
	if count > 0 {
		national.NationalAverage = sum / float64(count)
	}

	return national, nil
}
