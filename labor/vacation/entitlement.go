package vacation

import (
	"strconv"
	"strings"
)

const (
	// BaseDays is the legal minimum of annual business days
	BaseDays = 15

	// ProgressiveThreshold is the tenure after which progressive days start accruing
	ProgressiveThreshold = 10

	// ProgressiveStep is the number of years per extra progressive day
	ProgressiveStep = 3
)

// Entitlement is the annual vacation entitlement derived from tenure.
// Once Overridden, TotalAnnualDays is authoritative and the breakdown is advisory.
type Entitlement struct {
	YearsOfService  int  `json:"yearsOfService"`
	BaseDays        int  `json:"baseDays"`
	ProgressiveDays int  `json:"progressiveDays"`
	TotalAnnualDays int  `json:"totalAnnualDays"`
	Overridden      bool `json:"overridden"`
}

// ComputeEntitlement applies the "more than 10 years" rule: one extra day per
// full 3 years beyond year 10. Negative tenure counts as 0.
func ComputeEntitlement(yearsOfService int) Entitlement {
	if yearsOfService < 0 {
		yearsOfService = 0
	}

	progressive := 0
	if yearsOfService > ProgressiveThreshold {
		progressive = (yearsOfService - ProgressiveThreshold) / ProgressiveStep
	}

	return Entitlement{
		YearsOfService:  yearsOfService,
		BaseDays:        BaseDays,
		ProgressiveDays: progressive,
		TotalAnnualDays: BaseDays + progressive,
	}
}

// ParseYearsOfService coerces free-form input to a non-negative integer; anything
// unparsable is 0. Fractional input is truncated.
func ParseYearsOfService(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 {
		return int(f)
	}
	return 0
}

// Override replaces the total with a manual figure (carried-over balance)
func (e Entitlement) Override(totalAnnualDays int) Entitlement {
	if totalAnnualDays < 0 {
		totalAnnualDays = 0
	}
	e.TotalAnnualDays = totalAnnualDays
	e.Overridden = true
	return e
}

// MaxAccumulation is the most days that can be accumulated across two periods
func (e Entitlement) MaxAccumulation() int {
	return e.TotalAnnualDays * 2
}

// Remaining is the balance left after used days; it may go negative if the
// entitlement was lowered after bookings were made.
func (e Entitlement) Remaining(usedDays int) int {
	return e.TotalAnnualDays - usedDays
}
