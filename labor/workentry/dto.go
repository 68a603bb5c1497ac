package workentry

import (
	"strings"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// MaxHoursPerDay bounds a single entry
const MaxHoursPerDay = 24

// CreateWorkEntryRequest - DTO for recording worked hours
type CreateWorkEntryRequest struct {
	Date        kernel.Date `json:"date"`
	HoursWorked float64     `json:"hoursWorked"`
	IsOvertime  bool        `json:"isOvertime"`
	Notes       string      `json:"notes"`
}

// Validate checks the request and trims notes
func (r *CreateWorkEntryRequest) Validate() error {
	if r.Date.IsZero() {
		return ErrInvalidEntry().WithDetail("field", "date")
	}
	if r.HoursWorked <= 0 || r.HoursWorked > MaxHoursPerDay {
		return ErrInvalidEntry().WithDetail("field", "hoursWorked").WithDetail("max", MaxHoursPerDay)
	}
	r.Notes = strings.TrimSpace(r.Notes)
	return nil
}

// SummaryRequest - query of GET /api/labor/summary
type SummaryRequest struct {
	HourlyRate float64
	From       kernel.Date
	To         kernel.Date
}

// Validate checks the rate and the period
func (r SummaryRequest) Validate() error {
	if r.HourlyRate < 0 {
		return ErrInvalidEntry().WithDetail("field", "hourly_rate")
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return ErrInvalidEntry().WithDetail("field", "from").WithDetail("reason", "from after to")
	}
	return nil
}
