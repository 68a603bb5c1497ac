package contract

import (
	"strings"

	"github.com/Abraxas-365/laboral/labor/vacation"
	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// CreateContractRequest - DTO for creating a contract
type CreateContractRequest struct {
	Company      string       `json:"company"`
	Role         string       `json:"role"`
	StartDate    kernel.Date  `json:"startDate"`
	Type         ContractType `json:"type,omitempty"`
	HoursPerWeek *int         `json:"hoursPerWeek,omitempty"`
	Active       *bool        `json:"active,omitempty"`
}

// Normalize applies defaults and validates the request
func (r *CreateContractRequest) Normalize() error {
	r.Company = strings.TrimSpace(r.Company)
	r.Role = strings.TrimSpace(r.Role)

	if r.Company == "" {
		return ErrInvalidContract().WithDetail("field", "company")
	}
	if r.Role == "" {
		return ErrInvalidContract().WithDetail("field", "role")
	}
	if r.StartDate.IsZero() {
		return ErrInvalidContract().WithDetail("field", "startDate")
	}
	if r.Type == "" {
		r.Type = ContractTypeIndefinite
	}
	if !r.Type.IsValid() {
		return ErrInvalidContract().WithDetail("field", "type").WithDetail("value", string(r.Type))
	}
	if r.HoursPerWeek == nil {
		h := MaxHoursPerWeek
		r.HoursPerWeek = &h
	}
	if err := validateHours(*r.HoursPerWeek); err != nil {
		return err
	}
	if r.Active == nil {
		active := true
		r.Active = &active
	}
	return nil
}

// UpdateContractRequest - DTO for editing a contract; nil fields are left as they are
type UpdateContractRequest struct {
	Company      *string       `json:"company,omitempty"`
	Role         *string       `json:"role,omitempty"`
	StartDate    *kernel.Date  `json:"startDate,omitempty"`
	Type         *ContractType `json:"type,omitempty"`
	HoursPerWeek *int          `json:"hoursPerWeek,omitempty"`
	Active       *bool         `json:"active,omitempty"`
}

// Apply validates the request and copies it onto c
func (r UpdateContractRequest) Apply(c *Contract) error {
	if r.Company != nil {
		if strings.TrimSpace(*r.Company) == "" {
			return ErrInvalidContract().WithDetail("field", "company")
		}
		c.Company = strings.TrimSpace(*r.Company)
	}
	if r.Role != nil {
		if strings.TrimSpace(*r.Role) == "" {
			return ErrInvalidContract().WithDetail("field", "role")
		}
		c.Role = strings.TrimSpace(*r.Role)
	}
	if r.StartDate != nil {
		if r.StartDate.IsZero() {
			return ErrInvalidContract().WithDetail("field", "startDate")
		}
		c.StartDate = *r.StartDate
	}
	if r.Type != nil {
		if !r.Type.IsValid() {
			return ErrInvalidContract().WithDetail("field", "type").WithDetail("value", string(*r.Type))
		}
		c.Type = *r.Type
	}
	if r.HoursPerWeek != nil {
		if err := validateHours(*r.HoursPerWeek); err != nil {
			return err
		}
		c.HoursPerWeek = *r.HoursPerWeek
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	return nil
}

func validateHours(h int) error {
	if h <= 0 || h > MaxHoursPerWeek {
		return ErrInvalidContract().WithDetail("field", "hoursPerWeek").WithDetail("max", MaxHoursPerWeek)
	}
	return nil
}

// UploadResponse - DTO returned after a contract file upload
type UploadResponse struct {
	Msg      string    `json:"msg"`
	Contract *Contract `json:"contract"`
}

// TenureResponse - tenure derived from contracts and the entitlement it suggests
type TenureResponse struct {
	YearsOfService       int                  `json:"yearsOfService"`
	Since                *kernel.Date         `json:"since"`
	SuggestedEntitlement vacation.Entitlement `json:"suggestedEntitlement"`
}
