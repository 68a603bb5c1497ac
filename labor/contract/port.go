package contract

import (
	"context"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, c *Contract) error

	Update(ctx context.Context, c *Contract) error

	// GetByID retrieves a contract regardless of owner
	GetByID(ctx context.Context, id kernel.ContractID) (*Contract, error)

	Delete(ctx context.Context, id kernel.ContractID) error

	// ListByUser retrieves a user's contracts, newest start date first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]Contract, error)
}
