package vacation

import (
	"context"

	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

type Repository interface {
	// Create persists a new booking
	Create(ctx context.Context, booking *Booking) error

	// Delete removes a booking owned by userID; ErrBookingNotFound when nothing matched
	Delete(ctx context.Context, id kernel.VacationID, userID kernel.UserID) error

	// ListByUser retrieves a user's bookings ordered by start date
	ListByUser(ctx context.Context, userID kernel.UserID) ([]Booking, error)

	// SumDaysTaken totals the days charged against the user's balance
	SumDaysTaken(ctx context.Context, userID kernel.UserID) (int, error)

	// ExistsOverlap checks for a booking sharing any day with [start, end]
	ExistsOverlap(ctx context.Context, userID kernel.UserID, start, end kernel.Date) (bool, error)
}

type SettingsRepository interface {
	// Get returns the user's settings or nil when none were saved
	Get(ctx context.Context, userID kernel.UserID) (*Settings, error)

	// Upsert creates or replaces the user's settings
	Upsert(ctx context.Context, settings *Settings) error
}

// HolidayProvider resolves the holidays of a year. It never fails; unavailable
// sources are replaced by a fallback list.
type HolidayProvider interface {
	FetchHolidays(ctx context.Context, year int) []holiday.Holiday
}
