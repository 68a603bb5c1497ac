package contract

import (
	"time"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// ContractType represents the kind of employment contract
type ContractType string

const (
	ContractTypeIndefinite ContractType = "Indefinido"
	ContractTypeFixedTerm  ContractType = "Plazo Fijo"
	ContractTypeFees       ContractType = "Honorarios"
)

// IsValid checks if the contract type is valid
func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeIndefinite, ContractTypeFixedTerm, ContractTypeFees:
		return true
	}
	return false
}

const (
	// MaxHoursPerWeek is the legal ordinary working week
	MaxHoursPerWeek = 45

	// ImportedCompany names contracts created from an uploaded file
	ImportedCompany = "Importado desde Archivo"
)

// Contract is an employment contract of a user
type Contract struct {
	ID           kernel.ContractID `db:"id" json:"id"`
	UserID       kernel.UserID     `db:"user_id" json:"userId"`
	Company      string            `db:"company" json:"company"`
	Role         string            `db:"role" json:"role"`
	StartDate    kernel.Date       `db:"start_date" json:"startDate"`
	Type         ContractType      `db:"type" json:"type"`
	HoursPerWeek int               `db:"hours_per_week" json:"hoursPerWeek"`
	Active       bool              `db:"active" json:"active"`
	FileKey      *string           `db:"file_key" json:"fileKey,omitempty"`
	CreatedAt    time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// BelongsTo checks contract ownership
func (c *Contract) BelongsTo(userID kernel.UserID) bool {
	return c.UserID == userID
}

// YearsOfService counts the full years from the start date to asOf
func (c *Contract) YearsOfService(asOf kernel.Date) int {
	return FullYearsBetween(c.StartDate, asOf)
}

// FullYearsBetween counts completed anniversaries from start to end
func FullYearsBetween(start, end kernel.Date) int {
	if start.IsZero() || end.Before(start) {
		return 0
	}
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years
}

// EarliestActive returns the active contract with the oldest start date
func EarliestActive(contracts []Contract) *Contract {
	var earliest *Contract
	for i := range contracts {
		c := &contracts[i]
		if !c.Active || c.StartDate.IsZero() {
			continue
		}
		if earliest == nil || c.StartDate.Before(earliest.StartDate) {
			earliest = c
		}
	}
	return earliest
}
