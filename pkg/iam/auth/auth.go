package auth

import (
	"time"

	"github.com/Abraxas-365/laboral/pkg/kernel"
)

// TokenClaims are the identity carried by an access token
type TokenClaims struct {
	UserID    kernel.UserID
	Email     kernel.Email
	ExpiresAt time.Time
}

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email kernel.Email) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// PasswordService hashes and verifies passwords
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 6
