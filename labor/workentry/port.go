package workentry

import (
	"context"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, entry *WorkEntry) error

	GetByID(ctx context.Context, id kernel.WorkEntryID) (*WorkEntry, error)

	Delete(ctx context.Context, id kernel.WorkEntryID) error

	// ListByUser retrieves a user's entries, most recent date first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]WorkEntry, error)
}
