package user

import (
	"strings"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// UpdateProfileRequest - DTO for editing the profile; nil fields are left as they are
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Photo    *string `json:"photo,omitempty"`
	Position *string `json:"position,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// Validate rejects a blank name
func (r UpdateProfileRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return ErrInvalidProfile().WithDetail("field", "name")
	}
	return nil
}

// PublicUser - minimal user returned along with a token
type PublicUser struct {
	ID    kernel.UserID `json:"id"`
	Name  string        `json:"name"`
	Email kernel.Email  `json:"email"`
}
