package auth

import (
	"strings"

	"github.com/Abraxas-365/laboral/pkg/iam/user"
)

// RegisterRequest - DTO for password registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return ErrInvalidRequest()
	}
	if len(r.Password) < MinPasswordLength {
		return ErrWeakPassword()
	}
	return nil
}

// LoginRequest - DTO for password login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest - DTO sent by the client after Google sign-in
type GoogleLoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	GoogleID string `json:"googleId"`
}

// AuthResponse - token plus the public user
type AuthResponse struct {
	Token string          `json:"token"`
	User  user.PublicUser `json:"user"`
}
