// Package testutil provides utilities for testing
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strompris/internal/models"
	"strompris/internal/repository"
	"strompris/internal/validation"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Init puts Gin into test mode and registers the custom validators
func Init() {
	gin.SetMode(gin.TestMode)
	validation.Initialize()
}

// DayKey identifies one fetch of one area and calendar day
func DayKey(areaCode string, date time.Time) string {
	return fmt.Sprintf("%s/%s", areaCode, date.Format("2006-01-02"))
}

// StubPriceSource implements aggregator.PriceSource from canned responses.
// Days without a canned response yield no records, like an unpublished day
// upstream.
type StubPriceSource struct {
	mu sync.Mutex
	// Records maps DayKey(area, date) to that day's records
	Records map[string][]models.PriceRecord
	// Errors maps DayKey(area, date) to a fetch failure
	Errors map[string]error
	// Calls counts fetches per DayKey
	Calls map[string]int
}

// NewStubPriceSource creates an empty stub price source
func NewStubPriceSource() *StubPriceSource {
	return &StubPriceSource{
		Records: make(map[string][]models.PriceRecord),
		Errors:  make(map[string]error),
		Calls:   make(map[string]int),
	}
}

// AddDay cans hourly records with the given price for one area and day
func (s *StubPriceSource) AddDay(areaCode string, date time.Time, pricePerKwh float64) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	records := make([]models.PriceRecord, 24)
	for hour := 0; hour < 24; hour++ {
		records[hour] = models.PriceRecord{
			PricePerKwh: pricePerKwh,
			StartTime:   day.Add(time.Duration(hour) * time.Hour),
			EndTime:     day.Add(time.Duration(hour+1) * time.Hour),
		}
	}
	s.Records[DayKey(areaCode, date)] = records
}

// FailDay cans a fetch failure for one area and day
func (s *StubPriceSource) FailDay(areaCode string, date time.Time, err error) {
	s.Errors[DayKey(areaCode, date)] = err
}

// FetchDayPrices implements aggregator.PriceSource
func (s *StubPriceSource) FetchDayPrices(_ context.Context, areaCode string, date time.Time) ([]models.PriceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := DayKey(areaCode, date)
	s.Calls[key]++
	if err, ok := s.Errors[key]; ok {
		return nil, err
	}
	return s.Records[key], nil
}

// StubContractRepository implements repository.ContractRepository in memory
type StubContractRepository struct {
	mu        sync.Mutex
	Contracts []models.Contract
	// ListErr makes List fail when set
	ListErr error
}

// NewStubContractRepository creates a stub catalog with the given contracts
func NewStubContractRepository(contracts ...models.Contract) *StubContractRepository {
	return &StubContractRepository{Contracts: contracts}
}

// Transaction implements repository.Repository
func (r *StubContractRepository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DB implements repository.Repository
func (r *StubContractRepository) DB() *sql.DB { return nil }

// Create appends a contract to the stub catalog
func (r *StubContractRepository) Create(_ context.Context, contract *models.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	contract.CreatedAt = time.Now()
	contract.UpdatedAt = contract.CreatedAt
	r.Contracts = append(r.Contracts, *contract)
	return nil
}

// Update replaces a contract in the stub catalog
func (r *StubContractRepository) Update(_ context.Context, contract *models.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Contracts {
		if r.Contracts[i].ID == contract.ID {
			contract.UpdatedAt = time.Now()
			r.Contracts[i] = *contract
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes a contract from the stub catalog
func (r *StubContractRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Contracts {
		if r.Contracts[i].ID == id {
			r.Contracts = append(r.Contracts[:i], r.Contracts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// GetByID returns a contract from the stub catalog
func (r *StubContractRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Contracts {
		if r.Contracts[i].ID == id {
			contract := r.Contracts[i]
			return &contract, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns the stub catalog, ignoring the filter
func (r *StubContractRepository) List(_ context.Context, _ repository.ContractFilter) ([]models.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return append([]models.Contract(nil), r.Contracts...), nil
}

// SpotContract builds a spot contract fixture
func SpotContract(name string, addon, certificate, monthlyFee float64) models.Contract {
	return models.Contract{
		ID:                     uuid.New(),
		Name:                   name,
		Supplier:               "Testkraft AS",
		Type:                   models.ContractTypeSpot,
		AddonPricePerKwh:       addon,
		CertificatePricePerKwh: certificate,
		MonthlyFee:             monthlyFee,
	}
}

// FixedContract builds a fixed-price contract fixture
func FixedContract(name string, fixedPrice, monthlyFee float64, networks ...models.SalesNetwork) models.Contract {
	return models.Contract{
		ID:               uuid.New(),
		Name:             name,
		Supplier:         "Testkraft AS",
		Type:             models.ContractTypeFixed,
		FixedPricePerKwh: &fixedPrice,
		MonthlyFee:       monthlyFee,
		SalesNetworks:    networks,
	}
}
