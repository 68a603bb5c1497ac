package vacation

import (
	"github.com/Abraxas-365/laboral/labor/holiday"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// BookingRequest - DTO for requesting a vacation booking.
// DaysTaken is accepted for compatibility and recomputed on the server.
type BookingRequest struct {
	StartDate *kernel.Date `json:"startDate"`
	EndDate   *kernel.Date `json:"endDate"`
	DaysTaken *int         `json:"daysTaken,omitempty"`
}

// MaxRangeDays caps the calendar days a single booking may span
const MaxRangeDays = 366

// Range returns both endpoints or ErrInvalidRange when one is missing, reversed,
// longer than MaxRangeDays or outside the supported holiday years
func (r BookingRequest) Range() (kernel.Date, kernel.Date, error) {
	if r.StartDate == nil || r.EndDate == nil || r.StartDate.IsZero() || r.EndDate.IsZero() {
		return kernel.Date{}, kernel.Date{}, ErrInvalidRange().WithDetail("reason", "missing endpoint")
	}
	if r.StartDate.After(*r.EndDate) {
		return kernel.Date{}, kernel.Date{}, ErrInvalidRange().
			WithDetail("startDate", r.StartDate.String()).
			WithDetail("endDate", r.EndDate.String()).
			WithDetail("reason", "start after end")
	}
	if r.StartDate.Year() < holiday.MinYear || r.EndDate.Year() > holiday.MaxYear {
		return kernel.Date{}, kernel.Date{}, ErrInvalidRange().
			WithDetail("startDate", r.StartDate.String()).
			WithDetail("endDate", r.EndDate.String()).
			WithDetail("reason", "year out of range")
	}
	if span := r.StartDate.DaysUntil(*r.EndDate) + 1; span > MaxRangeDays {
		return kernel.Date{}, kernel.Date{}, ErrInvalidRange().
			WithDetail("days", span).
			WithDetail("maxDays", MaxRangeDays).
			WithDetail("reason", "range too long")
	}
	return *r.StartDate, *r.EndDate, nil
}

// UpdateSettingsRequest - DTO for editing the entitlement inputs
type UpdateSettingsRequest struct {
	YearsOfService  *int `json:"yearsOfService,omitempty"`
	TotalAnnualDays *int `json:"totalAnnualDays,omitempty"`
	ClearOverride   bool `json:"clearOverride,omitempty"`
}

// Validate rejects negative values
func (r UpdateSettingsRequest) Validate() error {
	if r.YearsOfService != nil && *r.YearsOfService < 0 {
		return ErrInvalidSettings().WithDetail("field", "yearsOfService")
	}
	if r.TotalAnnualDays != nil && *r.TotalAnnualDays < 0 {
		return ErrInvalidSettings().WithDetail("field", "totalAnnualDays")
	}
	return nil
}

// PreviewResponse - business days a range would consume, without booking it
type PreviewResponse struct {
	StartDate       kernel.Date       `json:"startDate"`
	EndDate         kernel.Date       `json:"endDate"`
	BusinessDays    int               `json:"businessDays"`
	Available       int               `json:"available"`
	Fits            bool              `json:"fits"`
	HolidaysInRange []holiday.Holiday `json:"holidaysInRange"`
}

// BalanceResponse - entitlement, usage and remaining days
type BalanceResponse struct {
	Entitlement     Entitlement `json:"entitlement"`
	MaxAccumulation int         `json:"maxAccumulation"`
	UsedDays        int         `json:"usedDays"`
	RemainingDays   int         `json:"remainingDays"`
	Bookings        []Booking   `json:"bookings"`
}

// EntitlementResponse - stored inputs plus the derived entitlement
type EntitlementResponse struct {
	Settings        Settings    `json:"settings"`
	Entitlement     Entitlement `json:"entitlement"`
	MaxAccumulation int         `json:"maxAccumulation"`
}
