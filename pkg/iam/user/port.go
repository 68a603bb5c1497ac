package user

import (
	"context"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

type Repository interface {
	// Create persists a new user; ErrUserAlreadyExists on a taken email
	Create(ctx context.Context, u *User) error

	// Update saves profile fields and the Google link
	Update(ctx context.Context, u *User) error

	FindByID(ctx context.Context, id kernel.UserID) (*User, error)

	FindByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// Delete removes the user; owned records go with it
	Delete(ctx context.Context, id kernel.UserID) error
}
