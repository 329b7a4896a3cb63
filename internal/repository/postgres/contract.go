// Package postgres provides PostgreSQL implementations of the repository
// interfaces.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strompris/internal/models"
	"strompris/internal/repository"

	"github.com/google/uuid"
)

// ContractRepository implements repository.ContractRepository using PostgreSQL
type ContractRepository struct {
	repository.BaseRepository
}

// NewContractRepository creates a new PostgreSQL contract repository
func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{BaseRepository: repository.NewBaseRepository(db)}
}

const contractColumns = `id, name, supplier, contract_type, addon_price_per_kwh,
	certificate_price_per_kwh, monthly_fee, fixed_price_per_kwh,
	postal_invoice_fee, postal_invoice_fee_applied, sales_networks,
	customer_type, binding_period, binding_period_unit, created_at, updated_at`

// Create inserts a new contract into the catalog
func (r *ContractRepository) Create(ctx context.Context, contract *models.Contract) error {
	networks, err := json.Marshal(contract.SalesNetworks)
	if err != nil {
		return fmt.Errorf("failed to encode sales networks: %w", err)
	}

	query := `
		INSERT INTO contracts (
			id, name, supplier, contract_type, addon_price_per_kwh,
			certificate_price_per_kwh, monthly_fee, fixed_price_per_kwh,
			postal_invoice_fee, postal_invoice_fee_applied, sales_networks,
			customer_type, binding_period, binding_period_unit
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	err = r.DB().QueryRowContext(ctx, query,
		contract.ID, contract.Name, contract.Supplier, contract.Type,
		contract.AddonPricePerKwh, contract.CertificatePricePerKwh,
		contract.MonthlyFee, contract.FixedPricePerKwh,
		contract.PostalInvoiceFee, contract.PostalInvoiceFeeApplied,
		networks, contract.CustomerType,
		contract.BindingPeriod, contract.BindingPeriodUnit,
	).Scan(&contract.CreatedAt, &contract.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

// Update replaces an existing contract
func (r *ContractRepository) Update(ctx context.Context, contract *models.Contract) error {
	networks, err := json.Marshal(contract.SalesNetworks)
	if err != nil {
		return fmt.Errorf("failed to encode sales networks: %w", err)
	}

	query := `
		UPDATE contracts SET
			name = $2, supplier = $3, contract_type = $4,
			addon_price_per_kwh = $5, certificate_price_per_kwh = $6,
			monthly_fee = $7, fixed_price_per_kwh = $8,
			postal_invoice_fee = $9, postal_invoice_fee_applied = $10,
			sales_networks = $11, customer_type = $12,
			binding_period = $13, binding_period_unit = $14,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err = r.DB().QueryRowContext(ctx, query,
		contract.ID, contract.Name, contract.Supplier, contract.Type,
		contract.AddonPricePerKwh, contract.CertificatePricePerKwh,
		contract.MonthlyFee, contract.FixedPricePerKwh,
		contract.PostalInvoiceFee, contract.PostalInvoiceFeeApplied,
		networks, contract.CustomerType,
		contract.BindingPeriod, contract.BindingPeriodUnit,
	).Scan(&contract.UpdatedAt)
	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	return nil
}

// Delete removes a contract from the catalog
func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB().ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// GetByID returns a contract by its ID
func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	contract, err := scanContract(r.DB().QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contract: %w", err)
	}
	return contract, nil
}

// List returns contracts matching the filter, ordered by supplier and name
func (r *ContractRepository) List(ctx context.Context, filter repository.ContractFilter) ([]models.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE 1=1`
	var args []interface{}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += fmt.Sprintf(" AND contract_type = $%d", len(args))
	}
	if filter.CustomerType != nil {
		args = append(args, *filter.CustomerType)
		query += fmt.Sprintf(" AND (customer_type = '' OR customer_type = $%d)", len(args))
	}
	if filter.Supplier != nil {
		args = append(args, *filter.Supplier)
		query += fmt.Sprintf(" AND supplier = $%d", len(args))
	}

	query += " ORDER BY supplier, name"

	if filter.Limit != nil {
		args = append(args, *filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset != nil {
		args = append(args, *filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []models.Contract
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, *contract)
	}
	return contracts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContract(row rowScanner) (*models.Contract, error) {
	var contract models.Contract
	var networks []byte
	err := row.Scan(
		&contract.ID, &contract.Name, &contract.Supplier, &contract.Type,
		&contract.AddonPricePerKwh, &contract.CertificatePricePerKwh,
		&contract.MonthlyFee, &contract.FixedPricePerKwh,
		&contract.PostalInvoiceFee, &contract.PostalInvoiceFeeApplied,
		&networks, &contract.CustomerType,
		&contract.BindingPeriod, &contract.BindingPeriodUnit,
		&contract.CreatedAt, &contract.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(networks) > 0 {
		if err := json.Unmarshal(networks, &contract.SalesNetworks); err != nil {
			return nil, fmt.Errorf("failed to decode sales networks: %w", err)
		}
	}
	return &contract, nil
}
