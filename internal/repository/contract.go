package repository

import (
	"context"
	"strompris/internal/models"

	"github.com/google/uuid"
)

// ContractRepository defines the interface for contract catalog operations
type ContractRepository interface {
	Repository
	Create(ctx context.Context, contract *models.Contract) error
	Update(ctx context.Context, contract *models.Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]models.Contract, error)
}

// ContractFilter defines the filter options for listing contracts
type ContractFilter struct {
	Type         *models.ContractType
	CustomerType *string
	Supplier     *string
	Limit        *int
	Offset       *int
}
