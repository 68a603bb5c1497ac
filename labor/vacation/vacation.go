package vacation

import (
	"time"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// BookingStatus represents the status of a vacation booking
type BookingStatus string

const (
	BookingStatusPlanned BookingStatus = "Planificado"
)

// Booking is a committed reservation of a contiguous date range against the balance
type Booking struct {
	ID        kernel.VacationID `db:"id" json:"id"`
	UserID    kernel.UserID     `db:"user_id" json:"userId"`
	StartDate kernel.Date       `db:"start_date" json:"startDate"`
	EndDate   kernel.Date       `db:"end_date" json:"endDate"`
	DaysTaken int               `db:"days_taken" json:"daysTaken"`
	Status    BookingStatus     `db:"status" json:"status"`
	CreatedAt time.Time         `db:"created_at" json:"createdAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// Overlaps checks if the booking shares at least one calendar day with [start, end]
func (b *Booking) Overlaps(start, end kernel.Date) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// UsedDays sums the days charged by bookings
func UsedDays(bookings []Booking) int {
	total := 0
	for _, b := range bookings {
		total += b.DaysTaken
	}
	return total
}

// Settings holds the per-user inputs of the entitlement calculation
type Settings struct {
	UserID                  kernel.UserID `db:"user_id" json:"userId"`
	YearsOfService          int           `db:"years_of_service" json:"yearsOfService"`
	TotalAnnualDaysOverride *int          `db:"total_annual_days_override" json:"totalAnnualDaysOverride,omitempty"`
	UpdatedAt               time.Time     `db:"updated_at" json:"updatedAt"`
}

// DefaultSettings are used for users who never saved any
func DefaultSettings(userID kernel.UserID) *Settings {
	return &Settings{UserID: userID}
}

// Entitlement computes the entitlement described by the settings
func (s *Settings) Entitlement() Entitlement {
	e := ComputeEntitlement(s.YearsOfService)
	if s.TotalAnnualDaysOverride != nil {
		e = e.Override(*s.TotalAnnualDaysOverride)
	}
	return e
}
